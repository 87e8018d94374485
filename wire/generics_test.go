package wire_test

import (
	"testing"

	ns "github.com/voxelwire/mcproto/wire"
)

func TestTeleportFlags(t *testing.T) {
	tests := []struct {
		name string
		val  ns.TeleportFlags
	}{
		{"zero", 0},
		{"all set", 0xFFFFFFFF},
		{"some flags", 0x12345678},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marshaled, err := tt.val.ToBytes()
			if err != nil {
				t.Errorf("TeleportFlags.Marshal() error = %v", err)
			}
			var unmarshaled ns.TeleportFlags
			_, err = unmarshaled.FromBytes(marshaled)
			if err != nil {
				t.Errorf("UnmarshalTeleportFlags() error = %v", err)
			}
			if unmarshaled != tt.val {
				t.Errorf("UnmarshalTeleportFlags() = %v, want %v", unmarshaled, tt.val)
			}
		})
	}
}

func TestTeleportFlagsErrorCases(t *testing.T) {
	var tf ns.TeleportFlags
	_, err := tf.FromBytes(ns.ByteArray{0x01, 0x02, 0x03})
	if err == nil {
		t.Error("TeleportFlags.Unmarshal() should error on insufficient data")
	}
}

func TestTeleportFlagsInterface(t *testing.T) {
	val := ns.TeleportFlags(0x12345678)
	data, err := val.ToBytes()
	if err != nil {
		t.Errorf("TeleportFlags.Marshal() error = %v", err)
	}

	var result ns.TeleportFlags
	_, err = result.FromBytes(data)
	if err != nil {
		t.Errorf("TeleportFlags.Unmarshal() error = %v", err)
	}
	if result != val {
		t.Errorf("TeleportFlags interface roundtrip: got %v, want %v", result, val)
	}
}

func TestPrefixedOptional(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		val := ns.PrefixedOptional[ns.VarInt]{Present: true, Value: 42}
		data, err := val.ToBytes()
		if err != nil {
			t.Fatalf("PrefixedOptional.ToBytes() error = %v", err)
		}

		var result ns.PrefixedOptional[ns.VarInt]
		if _, err := result.FromBytes(data); err != nil {
			t.Fatalf("PrefixedOptional.FromBytes() error = %v", err)
		}
		if result != val {
			t.Errorf("PrefixedOptional roundtrip = %+v, want %+v", result, val)
		}
	})

	t.Run("absent", func(t *testing.T) {
		val := ns.PrefixedOptional[ns.VarInt]{Present: false}
		data, err := val.ToBytes()
		if err != nil {
			t.Fatalf("PrefixedOptional.ToBytes() error = %v", err)
		}

		var result ns.PrefixedOptional[ns.VarInt]
		if _, err := result.FromBytes(data); err != nil {
			t.Fatalf("PrefixedOptional.FromBytes() error = %v", err)
		}
		if result.Present {
			t.Errorf("PrefixedOptional.FromBytes() Present = true, want false")
		}
	})
}

func TestPrefixedArray(t *testing.T) {
	val := ns.PrefixedArray[ns.VarInt]{1, 2, 3}
	data, err := val.ToBytes()
	if err != nil {
		t.Fatalf("PrefixedArray.ToBytes() error = %v", err)
	}

	var result ns.PrefixedArray[ns.VarInt]
	if _, err := result.FromBytes(data); err != nil {
		t.Fatalf("PrefixedArray.FromBytes() error = %v", err)
	}
	if len(result) != len(val) {
		t.Fatalf("PrefixedArray roundtrip length = %d, want %d", len(result), len(val))
	}
	for i := range val {
		if result[i] != val[i] {
			t.Errorf("PrefixedArray[%d] = %v, want %v", i, result[i], val[i])
		}
	}
}
