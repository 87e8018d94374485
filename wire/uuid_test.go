package wire_test

import (
	"testing"

	ns "github.com/voxelwire/mcproto/wire"
)

func TestUUID(t *testing.T) {
	tests := []struct {
		name string
		val  ns.UUID
	}{
		{"zero", ns.UUID{}},
		{"ones", ns.UUID{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{"random", ns.UUID{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0, 0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marshaled, err := tt.val.ToBytes()
			if err != nil {
				t.Errorf("UUID.Marshal() error = %v", err)
			}
			var unmarshaled ns.UUID
			_, err = unmarshaled.FromBytes(marshaled)
			if err != nil {
				t.Errorf("UnmarshalUUID() error = %v", err)
			}
			if unmarshaled != tt.val {
				t.Errorf("UnmarshalUUID() = %v, want %v", unmarshaled, tt.val)
			}
		})
	}
}

func TestUUIDErrorCases(t *testing.T) {
	var u ns.UUID
	_, err := u.FromBytes(ns.ByteArray{0x01, 0x02, 0x03})
	if err == nil {
		t.Error("UUID.Unmarshal() should error on insufficient data")
	}
}

func TestUUIDInterface(t *testing.T) {
	val := ns.UUID{
		0x12, 0x34, 0x56, 0x78, 0x90, 0xAB, 0xCD, 0xEF,
		0xFE, 0xDC, 0xBA, 0x09, 0x87, 0x65, 0x43, 0x21,
	}
	data, err := val.ToBytes()
	if err != nil {
		t.Errorf("UUID.Marshal() error = %v", err)
	}

	var result ns.UUID
	_, err = result.FromBytes(data)
	if err != nil {
		t.Errorf("UUID.Unmarshal() error = %v", err)
	}
	if result != val {
		t.Errorf("UUID interface roundtrip: got %v, want %v", result, val)
	}
}

func TestUUIDStringRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		str  string
	}{
		{"dashed", "069a79f4-44e9-4726-a5be-fca90e38aaf5"},
		{"no dashes", "069a79f444e94726a5befca90e38aaf5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ns.NewUUID(tt.str)
			if err != nil {
				t.Fatalf("NewUUID(%q) error = %v", tt.str, err)
			}
			if got, want := u.String(), "069a79f4-44e9-4726-a5be-fca90e38aaf5"; got != want {
				t.Errorf("UUID.String() = %q, want %q", got, want)
			}
			if !ns.ValidateUUID(tt.str) {
				t.Errorf("ValidateUUID(%q) = false, want true", tt.str)
			}
		})
	}

	if ns.ValidateUUID("not-a-uuid") {
		t.Error("ValidateUUID(\"not-a-uuid\") = true, want false")
	}
}
