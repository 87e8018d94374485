package protocol_test

import (
	"testing"

	jp "github.com/voxelwire/mcproto/protocol"
)

func TestWireIDBaseline340(t *testing.T) {
	cases := []struct {
		state jp.State
		bound jp.Bound
		id    jp.ID
		want  int
	}{
		{jp.StateHandshake, jp.C2S, jp.IDIntention, 0x00},
		{jp.StateLogin, jp.C2S, jp.IDKey, 0x01},
		{jp.StatePlay, jp.S2C, jp.IDKeepAlivePlayS2C, 0x26},
	}
	for _, c := range cases {
		got, err := jp.WireID(jp.Version340, c.state, c.bound, c.id)
		if err != nil {
			t.Fatalf("WireID(340, %v, %v, %v): %v", c.state, c.bound, c.id, err)
		}
		if int(got) != c.want {
			t.Errorf("WireID(340, %v, %v, %v) = %#x, want %#x", c.state, c.bound, c.id, int(got), c.want)
		}
	}
}

func TestWireID316OverridesShiftedPlayIDs(t *testing.T) {
	got, err := jp.WireID(jp.Version316, jp.StatePlay, jp.S2C, jp.IDKeepAlivePlayS2C)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x1F {
		t.Errorf("KeepAlivePlayS2C at 316 = %#x, want 0x1F", int(got))
	}

	got340, err := jp.WireID(jp.Version340, jp.StatePlay, jp.S2C, jp.IDKeepAlivePlayS2C)
	if err != nil {
		t.Fatal(err)
	}
	if got340 != 0x26 {
		t.Errorf("KeepAlivePlayS2C at 340 = %#x, want 0x26", int(got340))
	}
}

func TestWireIDFallsThroughForIDsWithoutAn316Override(t *testing.T) {
	got, err := jp.WireID(jp.Version316, jp.StateLogin, jp.S2C, jp.IDLoginPluginRequest)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x04 {
		t.Errorf("LoginPluginRequest at 316 = %#x, want fallback 0x04", int(got))
	}
}

func TestWireIDUnknown(t *testing.T) {
	if _, err := jp.WireID(jp.Version340, jp.StatePlay, jp.C2S, jp.ID(999)); err == nil {
		t.Error("expected error for unregistered id")
	}
}
