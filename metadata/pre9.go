package metadata

import (
	"fmt"

	ns "github.com/voxelwire/mcproto/wire"
)

// Pre-1.9 dialect: each entry is a single header byte (index in bits
// 0-4, type tag in bits 5-7) followed by the payload for that type.
// Terminator: header byte 0x7F.
const pre9Terminator = 0x7F

func decodePre9(data ns.ByteArray) (*Metadata, int, error) {
	m := New()
	offset := 0

	for {
		if offset >= len(data) {
			return nil, 0, fmt.Errorf("metadata: pre-1.9 map truncated before terminator")
		}
		header := data[offset]
		offset++
		if header == pre9Terminator {
			break
		}

		index := int(header & 0x1F)
		tag := header >> 5

		var v Value
		var n int
		var err error
		switch tag {
		case 0:
			var b ns.Byte
			n, err = b.FromBytes(data[offset:])
			v = Value{Kind: KindByte, Byte: int8(b)}
		case 1:
			var s ns.Short
			n, err = s.FromBytes(data[offset:])
			v = Value{Kind: KindShort, Short: int16(s)}
		case 2:
			var i ns.Int
			n, err = i.FromBytes(data[offset:])
			v = Value{Kind: KindInt, Int: int32(i)}
		case 3:
			var f ns.Float
			n, err = f.FromBytes(data[offset:])
			v = Value{Kind: KindFloat, Float: float32(f)}
		case 4:
			var s ns.String
			n, err = s.FromBytes(data[offset:])
			v = Value{Kind: KindString, String: string(s)}
		case 5:
			var slot ns.Slot
			n, err = slot.FromBytes(data[offset:])
			v = Value{Kind: KindOptionalItemStack, Slot: slot}
		case 6:
			var rot [3]int32
			n, err = readInt32Triple(data[offset:], &rot)
			v = Value{Kind: KindRotation3i, Rotation3i: rot}
		case 7:
			var vec [3]float32
			n, err = readFloat32Triple(data[offset:], &vec)
			v = Value{Kind: KindVector3f, Vector3f: vec}
		default:
			return nil, 0, fmt.Errorf("metadata: unknown pre-1.9 type tag %d", tag)
		}
		if err != nil {
			return nil, 0, fmt.Errorf("metadata: index %d type %d: %w", index, tag, err)
		}
		offset += n
		m.Put(index, v)
	}

	return m, offset, nil
}

func encodePre9(m *Metadata) (ns.ByteArray, error) {
	var out ns.ByteArray

	for _, index := range m.Indices() {
		v, _ := m.Get(index)
		if index > 0x1F {
			return nil, fmt.Errorf("metadata: pre-1.9 index %d exceeds 5-bit range", index)
		}

		var tag byte
		var payload ns.ByteArray
		var err error
		switch v.Kind {
		case KindByte:
			tag = 0
			payload, err = ns.Byte(v.Byte).ToBytes()
		case KindShort:
			tag = 1
			payload, err = ns.Short(v.Short).ToBytes()
		case KindInt:
			tag = 2
			payload, err = ns.Int(v.Int).ToBytes()
		case KindFloat:
			tag = 3
			payload, err = ns.Float(v.Float).ToBytes()
		case KindString:
			tag = 4
			payload, err = ns.String(v.String).ToBytes()
		case KindOptionalItemStack:
			tag = 5
			payload, err = v.Slot.ToBytes()
		case KindRotation3i:
			tag = 6
			payload = writeInt32Triple(v.Rotation3i)
		case KindVector3f:
			tag = 7
			payload = writeFloat32Triple(v.Vector3f)
		default:
			return nil, unsupportedKind(DialectPre9, v.Kind)
		}
		if err != nil {
			return nil, err
		}

		out = append(out, byte(index)|(tag<<5))
		out = append(out, payload...)
	}

	out = append(out, pre9Terminator)
	return out, nil
}
