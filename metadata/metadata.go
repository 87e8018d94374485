// Package metadata decodes and encodes the entity metadata maps carried
// by Spawn Mob/Entity Metadata-family packets: a closed set of typed
// values keyed by a small integer index, terminated by a sentinel byte
// whose value and per-type wire shape both depend on the negotiated
// protocol version.
package metadata

import (
	"fmt"

	ns "github.com/voxelwire/mcproto/wire"
)

// Kind identifies which field of Value is populated. The kind is
// version-independent; the wire encoding of a given kind (fixed-width
// vs varint, which terminator, which type tag number) is chosen by the
// dialect codec, not by Value itself.
type Kind int

const (
	KindByte Kind = iota
	KindShort
	KindInt
	KindFloat
	KindString
	KindComponent
	KindOptionalComponent
	KindOptionalItemStack
	KindBool
	KindVector3f
	KindRotation3i
	KindPosition
	KindOptionalPosition
	KindDirection
	KindOptionalUUID
	KindBlock
	KindNBT
	KindParticle
)

func (k Kind) String() string {
	switch k {
	case KindByte:
		return "Byte"
	case KindShort:
		return "Short"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindComponent:
		return "Component"
	case KindOptionalComponent:
		return "OptionalComponent"
	case KindOptionalItemStack:
		return "OptionalItemStack"
	case KindBool:
		return "Bool"
	case KindVector3f:
		return "Vector3f"
	case KindRotation3i:
		return "Rotation3i"
	case KindPosition:
		return "Position"
	case KindOptionalPosition:
		return "OptionalPosition"
	case KindDirection:
		return "Direction"
	case KindOptionalUUID:
		return "OptionalUUID"
	case KindBlock:
		return "Block"
	case KindNBT:
		return "NBT"
	case KindParticle:
		return "Particle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Particle is the 1.13+ particle payload: most particle ids carry no
// extra data, but item_crack/block_crack-style particles carry a Slot
// or a block state id alongside the particle id.
type Particle struct {
	ParticleID ns.VarInt
	Slot       *ns.Slot
	BlockState *ns.VarInt
}

// Value is a single metadata entry's payload, tagged by Kind.
type Value struct {
	Kind Kind

	Byte              int8
	Short             int16
	Int               int32
	Float             float32
	String            string
	Component         ns.Component
	OptionalComponent *ns.Component
	Slot              ns.Slot
	Bool              bool
	Vector3f          [3]float32
	Rotation3i        [3]int32
	Position          ns.Position
	OptionalPosition  *ns.Position
	Direction         ns.VarInt
	OptionalUUID      *ns.UUID
	Block             uint16
	NBT               ns.NBT
	Particle          Particle
}

// Metadata is an index -> Value map. Insertion order is preserved for
// re-emit (ordering carries no semantic meaning, but a stable re-emit
// makes round-trip tests deterministic); a Put on an existing index
// overwrites the value in place, matching "duplicate keys: last wins".
type Metadata struct {
	order  []int
	values map[int]Value
}

// New returns an empty Metadata map.
func New() *Metadata {
	return &Metadata{values: make(map[int]Value)}
}

// Put inserts or overwrites the value at index.
func (m *Metadata) Put(index int, v Value) {
	if _, ok := m.values[index]; !ok {
		m.order = append(m.order, index)
	}
	m.values[index] = v
}

// Get returns the value at index, if present.
func (m *Metadata) Get(index int) (Value, bool) {
	v, ok := m.values[index]
	return v, ok
}

// Indices returns the indices present, in insertion order.
func (m *Metadata) Indices() []int {
	return m.order
}

// Len returns the number of entries.
func (m *Metadata) Len() int {
	return len(m.values)
}

// Dialect selects which of the three wire encodings a codec uses.
type Dialect int

const (
	DialectPre9   Dialect = iota // < 1.9 (protocol < 74): header-byte entries, 0x7F terminator
	Dialect9To12                 // 1.9-1.12 (74 <= protocol < 404): [index][varint type][payload], 0xFF terminator
	Dialect13Plus                // 1.13+ (protocol >= 404): same shape as Dialect9To12 with an extended type space
)

// DialectForVersion returns the entity metadata dialect a given
// protocol version number uses.
func DialectForVersion(version int) Dialect {
	switch {
	case version >= 404:
		return Dialect13Plus
	case version >= 74:
		return Dialect9To12
	default:
		return DialectPre9
	}
}

// Decode reads a Metadata map from data using the given dialect,
// returning the number of bytes consumed.
func Decode(dialect Dialect, data ns.ByteArray) (*Metadata, int, error) {
	switch dialect {
	case DialectPre9:
		return decodePre9(data)
	case Dialect9To12:
		return decode9To12(data)
	case Dialect13Plus:
		return decode13Plus(data)
	default:
		return nil, 0, fmt.Errorf("metadata: unknown dialect %d", int(dialect))
	}
}

// Encode serializes m under the given dialect. Returns an error if m
// contains a Kind not representable in that dialect, rather than
// silently dropping the entry.
func Encode(dialect Dialect, m *Metadata) (ns.ByteArray, error) {
	switch dialect {
	case DialectPre9:
		return encodePre9(m)
	case Dialect9To12:
		return encode9To12(m)
	case Dialect13Plus:
		return encode13Plus(m)
	default:
		return nil, fmt.Errorf("metadata: unknown dialect %d", int(dialect))
	}
}

func unsupportedKind(dialect Dialect, k Kind) error {
	return fmt.Errorf("metadata: kind %v is not representable in dialect %d", k, int(dialect))
}
