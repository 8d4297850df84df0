package builtin

import (
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-state-audit/actors/util/adt"
)

// Type identifies a builtin actor kind.
type Type int

const (
	TypeSystem Type = iota + 1
	TypeInit
	TypeCron
	TypeAccount
	TypePower
	TypeMiner
	TypeMarket
	TypePaymentChannel
	TypeMultisig
	TypeReward
	TypeVerifiedRegistry
)

func (t Type) String() string {
	name, ok := nameByType[t]
	if !ok {
		return "unknown"
	}
	return name
}

// Whether at most one actor of this kind may exist in a state tree.
func (t Type) IsSingleton() bool {
	switch t {
	case TypeSystem, TypeInit, TypeCron, TypePower, TypeMarket, TypeReward, TypeVerifiedRegistry:
		return true
	default:
		return false
	}
}

// Canonical names for builtin actor kinds, as they appear in manifest entries.
var typeByName = map[string]Type{
	"system":           TypeSystem,
	"init":             TypeInit,
	"cron":             TypeCron,
	"account":          TypeAccount,
	"storagepower":     TypePower,
	"storageminer":     TypeMiner,
	"storagemarket":    TypeMarket,
	"paymentchannel":   TypePaymentChannel,
	"multisig":         TypeMultisig,
	"reward":           TypeReward,
	"verifiedregistry": TypeVerifiedRegistry,
}

var nameByType = func() map[Type]string {
	out := make(map[Type]string, len(typeByName))
	for name, t := range typeByName { //nolint:nomaprange
		out[t] = name
	}
	return out
}()

// A Manifest is an immutable bidirectional mapping between actor code CIDs and
// builtin actor kinds. A code CID absent from the manifest denotes an actor of
// no known kind.
type Manifest struct {
	byCode map[cid.Cid]Type
	byType map[Type]cid.Cid
}

// One entry of the stored manifest: a canonical actor kind name and the code CID it binds.
type ManifestEntry struct {
	Name string
	Code cid.Cid
}

// The stored form of a manifest, the root object of an actor bundle.
type ManifestData struct {
	Version uint64
	Entries []ManifestEntry
}

// Builds a manifest from an explicit code-to-kind mapping.
func MakeManifest(codes map[cid.Cid]Type) *Manifest {
	m := &Manifest{
		byCode: make(map[cid.Cid]Type, len(codes)),
		byType: make(map[Type]cid.Cid, len(codes)),
	}
	for code, t := range codes { //nolint:nomaprange
		m.byCode[code] = t
		m.byType[t] = code
	}
	return m
}

// Loads a manifest from its root CID in a store.
// Every entry name must be a canonical builtin actor kind name.
func LoadManifest(store adt.Store, root cid.Cid) (*Manifest, error) {
	var data ManifestData
	if err := store.Get(store.Context(), root, &data); err != nil {
		return nil, xerrors.Errorf("loading manifest root %v: %w", root, err)
	}

	codes := make(map[cid.Cid]Type, len(data.Entries))
	for _, entry := range data.Entries {
		t, ok := typeByName[entry.Name]
		if !ok {
			return nil, xerrors.Errorf("manifest entry %v has unknown actor name %q", entry.Code, entry.Name)
		}
		if _, dup := codes[entry.Code]; dup {
			return nil, xerrors.Errorf("manifest binds code %v twice", entry.Code)
		}
		codes[entry.Code] = t
	}
	return MakeManifest(codes), nil
}

// Resolves an actor code CID to its kind.
func (m *Manifest) Lookup(code cid.Cid) (Type, bool) {
	t, ok := m.byCode[code]
	return t, ok
}

// Returns the code CID bound to a kind.
func (m *Manifest) CodeOf(t Type) (cid.Cid, bool) {
	code, ok := m.byType[t]
	return code, ok
}

func (m *Manifest) Len() int {
	return len(m.byCode)
}

// Makes a synthetic code CID for an actor name, hashing the name with the
// identity function so the CID remains human-readable.
func MakeCodeCID(name string) cid.Cid {
	builder := cid.V1Builder{Codec: cid.Raw, MhType: mh.IDENTITY}
	c, err := builder.Sum([]byte(name))
	if err != nil {
		panic(err)
	}
	return c
}
