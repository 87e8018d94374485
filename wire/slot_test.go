package wire_test

import (
	"testing"

	ns "github.com/voxelwire/mcproto/wire"
)

func TestSlotAbsent(t *testing.T) {
	val := ns.Slot{Present: false}
	data, err := val.ToBytes()
	if err != nil {
		t.Fatalf("Slot.ToBytes() error = %v", err)
	}
	if len(data) != 1 || data[0] != 0 {
		t.Fatalf("Slot{Present:false}.ToBytes() = %v, want [0]", data)
	}

	var result ns.Slot
	if _, err := result.FromBytes(data); err != nil {
		t.Fatalf("Slot.FromBytes() error = %v", err)
	}
	if result.Present {
		t.Errorf("Slot.FromBytes() Present = true, want false")
	}
}

func TestSlotPresentRoundTrip(t *testing.T) {
	val := ns.Slot{Present: true, ItemID: 42, Count: 5}
	data, err := val.ToBytes()
	if err != nil {
		t.Fatalf("Slot.ToBytes() error = %v", err)
	}

	var result ns.Slot
	n, err := result.FromBytes(data)
	if err != nil {
		t.Fatalf("Slot.FromBytes() error = %v", err)
	}
	if n != len(data) {
		t.Errorf("Slot.FromBytes() consumed %d bytes, want %d", n, len(data))
	}
	if result.Present != val.Present || result.ItemID != val.ItemID || result.Count != val.Count {
		t.Errorf("Slot roundtrip = %+v, want %+v", result, val)
	}
}
