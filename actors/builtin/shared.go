package builtin

// Default bitwidth for all HAMTs in actor state, unless otherwise specified.
const DefaultHamtBitwidth = 5

// Default bitwidth for all AMTs in actor state, unless otherwise specified.
const DefaultAmtBitwidth = 3
