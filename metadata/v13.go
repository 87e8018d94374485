package metadata

import (
	"fmt"

	ns "github.com/voxelwire/mcproto/wire"
)

// 1.13+ dialect: same shape as the 1.9-1.12 dialect ([u8 index][varint
// type][payload], 0xFF terminator) but the type space is extended: a
// new Optional<Component> is inserted after Component, shifting every
// following type up by one, and NBT/Particle are appended at the end.
const dialect13PlusTerminator = 0xFF

func decode13Plus(data ns.ByteArray) (*Metadata, int, error) {
	m := New()
	offset := 0

	for {
		if offset >= len(data) {
			return nil, 0, fmt.Errorf("metadata: 1.13+ map truncated before terminator")
		}
		indexByte := data[offset]
		offset++
		if indexByte == dialect13PlusTerminator {
			break
		}
		index := int(indexByte)

		var ty ns.VarInt
		n, err := ty.FromBytes(data[offset:])
		if err != nil {
			return nil, 0, fmt.Errorf("metadata: index %d: reading type: %w", index, err)
		}
		offset += n

		v, n, err := decode13PlusValue(int(ty), data[offset:])
		if err != nil {
			return nil, 0, fmt.Errorf("metadata: index %d type %d: %w", index, int(ty), err)
		}
		offset += n
		m.Put(index, v)
	}

	return m, offset, nil
}

func decode13PlusValue(ty int, data ns.ByteArray) (Value, int, error) {
	switch ty {
	case 0:
		var b ns.Byte
		n, err := b.FromBytes(data)
		return Value{Kind: KindByte, Byte: int8(b)}, n, err
	case 1:
		var i ns.VarInt
		n, err := i.FromBytes(data)
		return Value{Kind: KindInt, Int: int32(i)}, n, err
	case 2:
		var f ns.Float
		n, err := f.FromBytes(data)
		return Value{Kind: KindFloat, Float: float32(f)}, n, err
	case 3:
		var s ns.String
		n, err := s.FromBytes(data)
		return Value{Kind: KindString, String: string(s)}, n, err
	case 4:
		var c ns.Component
		n, err := c.FromBytes(data)
		return Value{Kind: KindComponent, Component: c}, n, err
	case 5:
		return decode13OptionalComponent(data)
	case 6:
		var slot ns.Slot
		n, err := slot.FromBytes(data)
		return Value{Kind: KindOptionalItemStack, Slot: slot}, n, err
	case 7:
		var b ns.Boolean
		n, err := b.FromBytes(data)
		return Value{Kind: KindBool, Bool: bool(b)}, n, err
	case 8:
		var vec [3]float32
		n, err := readFloat32Triple(data, &vec)
		return Value{Kind: KindVector3f, Vector3f: vec}, n, err
	case 9:
		var pos ns.Position
		n, err := pos.FromBytes(data)
		return Value{Kind: KindPosition, Position: pos}, n, err
	case 10:
		return decodeOptionalPosition(data)
	case 11:
		var i ns.VarInt
		n, err := i.FromBytes(data)
		return Value{Kind: KindDirection, Direction: i}, n, err
	case 12:
		return decodeOptionalUUID(data)
	case 13:
		return decodeBlock(data)
	case 14:
		var nb ns.NBT
		n, err := nb.FromBytes(data)
		return Value{Kind: KindNBT, NBT: nb}, n, err
	case 15:
		return decodeParticle(data)
	default:
		return Value{}, 0, fmt.Errorf("unknown type tag")
	}
}

func encode13Plus(m *Metadata) (ns.ByteArray, error) {
	var out ns.ByteArray
	for _, index := range m.Indices() {
		v, _ := m.Get(index)
		if index < 0 || index > 0xFE {
			return nil, fmt.Errorf("metadata: index %d out of range", index)
		}

		var tag ns.VarInt
		var payload ns.ByteArray
		var err error
		switch v.Kind {
		case KindByte:
			tag = 0
			payload, err = ns.Byte(v.Byte).ToBytes()
		case KindInt:
			tag = 1
			payload, err = ns.VarInt(v.Int).ToBytes()
		case KindFloat:
			tag = 2
			payload, err = ns.Float(v.Float).ToBytes()
		case KindString:
			tag = 3
			payload, err = ns.String(v.String).ToBytes()
		case KindComponent:
			tag = 4
			payload, err = v.Component.ToBytes()
		case KindOptionalComponent:
			tag = 5
			payload, err = encode13OptionalComponent(v.OptionalComponent)
		case KindOptionalItemStack:
			tag = 6
			payload, err = v.Slot.ToBytes()
		case KindBool:
			tag = 7
			payload, err = ns.Boolean(v.Bool).ToBytes()
		case KindVector3f:
			tag = 8
			payload = writeFloat32Triple(v.Vector3f)
		case KindPosition:
			tag = 9
			payload, err = v.Position.ToBytes()
		case KindOptionalPosition:
			tag = 10
			payload, err = encodeOptionalPosition(v.OptionalPosition)
		case KindDirection:
			tag = 11
			payload, err = v.Direction.ToBytes()
		case KindOptionalUUID:
			tag = 12
			payload, err = encodeOptionalUUID(v.OptionalUUID)
		case KindBlock:
			tag = 13
			payload, err = ns.VarInt(v.Block).ToBytes()
		case KindNBT:
			tag = 14
			payload, err = v.NBT.ToBytes()
		case KindParticle:
			tag = 15
			payload, err = encodeParticle(v.Particle)
		default:
			return nil, unsupportedKind(Dialect13Plus, v.Kind)
		}
		if err != nil {
			return nil, err
		}

		tagBytes, err := tag.ToBytes()
		if err != nil {
			return nil, err
		}

		out = append(out, byte(index))
		out = append(out, tagBytes...)
		out = append(out, payload...)
	}

	out = append(out, dialect13PlusTerminator)
	return out, nil
}

func decode13OptionalComponent(data ns.ByteArray) (Value, int, error) {
	var present ns.Boolean
	n, err := present.FromBytes(data)
	if err != nil {
		return Value{}, 0, err
	}
	offset := n
	if !bool(present) {
		return Value{Kind: KindOptionalComponent}, offset, nil
	}
	var c ns.Component
	n, err = c.FromBytes(data[offset:])
	if err != nil {
		return Value{}, 0, err
	}
	return Value{Kind: KindOptionalComponent, OptionalComponent: &c}, offset + n, nil
}

func encode13OptionalComponent(c *ns.Component) (ns.ByteArray, error) {
	present, err := ns.Boolean(c != nil).ToBytes()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return present, nil
	}
	cBytes, err := c.ToBytes()
	if err != nil {
		return nil, err
	}
	return append(present, cBytes...), nil
}

// decodeParticle reads a particle id followed by the extra payload a
// handful of particle ids carry (item_crack: a Slot, block_crack/
// block_dust: a block state VarInt). Every other particle id carries
// no extra payload.
func decodeParticle(data ns.ByteArray) (Value, int, error) {
	var id ns.VarInt
	offset, err := id.FromBytes(data)
	if err != nil {
		return Value{}, 0, err
	}

	p := Particle{ParticleID: id}
	switch int(id) {
	case particleIDItemCrack:
		var slot ns.Slot
		n, err := slot.FromBytes(data[offset:])
		if err != nil {
			return Value{}, 0, err
		}
		p.Slot = &slot
		offset += n
	case particleIDBlockCrack, particleIDBlockDust:
		var bs ns.VarInt
		n, err := bs.FromBytes(data[offset:])
		if err != nil {
			return Value{}, 0, err
		}
		p.BlockState = &bs
		offset += n
	}

	return Value{Kind: KindParticle, Particle: p}, offset, nil
}

func encodeParticle(p Particle) (ns.ByteArray, error) {
	out, err := p.ParticleID.ToBytes()
	if err != nil {
		return nil, err
	}
	switch int(p.ParticleID) {
	case particleIDItemCrack:
		if p.Slot == nil {
			return nil, fmt.Errorf("metadata: item_crack particle missing slot payload")
		}
		b, err := p.Slot.ToBytes()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	case particleIDBlockCrack, particleIDBlockDust:
		if p.BlockState == nil {
			return nil, fmt.Errorf("metadata: block particle missing block state payload")
		}
		b, err := p.BlockState.ToBytes()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// Particle ids carrying an extra payload, per the 1.13 particle id
// table (iblock_crack=4, item_crack=11, block_dust is encoded via the
// iblock_crack code path pre-1.13 but kept as a distinct id here since
// this dialect is 1.13+ only).
const (
	particleIDBlockCrack = 4
	particleIDItemCrack  = 11
	particleIDBlockDust  = 31
)
