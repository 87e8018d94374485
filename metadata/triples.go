package metadata

import (
	"fmt"

	ns "github.com/voxelwire/mcproto/wire"
)

func readInt32Triple(data ns.ByteArray, out *[3]int32) (int, error) {
	offset := 0
	for i := range out {
		var v ns.Int
		n, err := v.FromBytes(data[offset:])
		if err != nil {
			return 0, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = int32(v)
		offset += n
	}
	return offset, nil
}

func writeInt32Triple(v [3]int32) ns.ByteArray {
	var out ns.ByteArray
	for _, c := range v {
		b, _ := ns.Int(c).ToBytes()
		out = append(out, b...)
	}
	return out
}

func readFloat32Triple(data ns.ByteArray, out *[3]float32) (int, error) {
	offset := 0
	for i := range out {
		var v ns.Float
		n, err := v.FromBytes(data[offset:])
		if err != nil {
			return 0, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = float32(v)
		offset += n
	}
	return offset, nil
}

func writeFloat32Triple(v [3]float32) ns.ByteArray {
	var out ns.ByteArray
	for _, c := range v {
		b, _ := ns.Float(c).ToBytes()
		out = append(out, b...)
	}
	return out
}
