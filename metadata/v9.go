package metadata

import (
	"fmt"

	ns "github.com/voxelwire/mcproto/wire"
)

// 1.9-1.12 dialect: each entry is [u8 index][varint type][payload].
// Terminator: index byte 0xFF.
const dialect9To12Terminator = 0xFF

func decode9To12(data ns.ByteArray) (*Metadata, int, error) {
	m := New()
	offset := 0

	for {
		if offset >= len(data) {
			return nil, 0, fmt.Errorf("metadata: 1.9-1.12 map truncated before terminator")
		}
		indexByte := data[offset]
		offset++
		if indexByte == dialect9To12Terminator {
			break
		}
		index := int(indexByte)

		var ty ns.VarInt
		n, err := ty.FromBytes(data[offset:])
		if err != nil {
			return nil, 0, fmt.Errorf("metadata: index %d: reading type: %w", index, err)
		}
		offset += n

		v, n, err := decode9To12Value(int(ty), data[offset:])
		if err != nil {
			return nil, 0, fmt.Errorf("metadata: index %d type %d: %w", index, int(ty), err)
		}
		offset += n
		m.Put(index, v)
	}

	return m, offset, nil
}

func decode9To12Value(ty int, data ns.ByteArray) (Value, int, error) {
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
		var slot ns.Slot
		n, err := slot.FromBytes(data)
		return Value{Kind: KindOptionalItemStack, Slot: slot}, n, err
	case 6:
		var b ns.Boolean
		n, err := b.FromBytes(data)
		return Value{Kind: KindBool, Bool: bool(b)}, n, err
	case 7:
		var vec [3]float32
		n, err := readFloat32Triple(data, &vec)
		return Value{Kind: KindVector3f, Vector3f: vec}, n, err
	case 8:
		var pos ns.Position
		n, err := pos.FromBytes(data)
		return Value{Kind: KindPosition, Position: pos}, n, err
	case 9:
		return decodeOptionalPosition(data)
	case 10:
		var i ns.VarInt
		n, err := i.FromBytes(data)
		return Value{Kind: KindDirection, Direction: i}, n, err
	case 11:
		return decodeOptionalUUID(data)
	case 12:
		return decodeBlock(data)
	default:
		return Value{}, 0, fmt.Errorf("unknown type tag")
	}
}

func encode9To12(m *Metadata) (ns.ByteArray, error) {
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
		case KindOptionalItemStack:
			tag = 5
			payload, err = v.Slot.ToBytes()
		case KindBool:
			tag = 6
			payload, err = ns.Boolean(v.Bool).ToBytes()
		case KindVector3f:
			tag = 7
			payload = writeFloat32Triple(v.Vector3f)
		case KindPosition:
			tag = 8
			payload, err = v.Position.ToBytes()
		case KindOptionalPosition:
			tag = 9
			payload, err = encodeOptionalPosition(v.OptionalPosition)
		case KindDirection:
			tag = 10
			payload, err = v.Direction.ToBytes()
		case KindOptionalUUID:
			tag = 11
			payload, err = encodeOptionalUUID(v.OptionalUUID)
		case KindBlock:
			tag = 12
			payload, err = ns.VarInt(v.Block).ToBytes()
		default:
			return nil, unsupportedKind(Dialect9To12, v.Kind)
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

	out = append(out, dialect9To12Terminator)
	return out, nil
}

func decodeOptionalPosition(data ns.ByteArray) (Value, int, error) {
	var present ns.Boolean
	n, err := present.FromBytes(data)
	if err != nil {
		return Value{}, 0, err
	}
	offset := n
	if !bool(present) {
		return Value{Kind: KindOptionalPosition}, offset, nil
	}
	var pos ns.Position
	n, err = pos.FromBytes(data[offset:])
	if err != nil {
		return Value{}, 0, err
	}
	return Value{Kind: KindOptionalPosition, OptionalPosition: &pos}, offset + n, nil
}

func encodeOptionalPosition(pos *ns.Position) (ns.ByteArray, error) {
	present, err := ns.Boolean(pos != nil).ToBytes()
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return present, nil
	}
	posBytes, err := pos.ToBytes()
	if err != nil {
		return nil, err
	}
	return append(present, posBytes...), nil
}

func decodeOptionalUUID(data ns.ByteArray) (Value, int, error) {
	var present ns.Boolean
	n, err := present.FromBytes(data)
	if err != nil {
		return Value{}, 0, err
	}
	offset := n
	if !bool(present) {
		return Value{Kind: KindOptionalUUID}, offset, nil
	}
	var u ns.UUID
	n, err = u.FromBytes(data[offset:])
	if err != nil {
		return Value{}, 0, err
	}
	return Value{Kind: KindOptionalUUID, OptionalUUID: &u}, offset + n, nil
}

func encodeOptionalUUID(u *ns.UUID) (ns.ByteArray, error) {
	present, err := ns.Boolean(u != nil).ToBytes()
	if err != nil {
		return nil, err
	}
	if u == nil {
		return present, nil
	}
	uBytes, err := u.ToBytes()
	if err != nil {
		return nil, err
	}
	return append(present, uBytes...), nil
}

func decodeBlock(data ns.ByteArray) (Value, int, error) {
	var i ns.VarInt
	n, err := i.FromBytes(data)
	if err != nil {
		return Value{}, 0, err
	}
	if i < 0 || i > 0xFFFF {
		return Value{}, 0, fmt.Errorf("block id %d out of uint16 range", int(i))
	}
	return Value{Kind: KindBlock, Block: uint16(i)}, n, nil
}
