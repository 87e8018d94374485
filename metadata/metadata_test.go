package metadata

import (
	"testing"
)

func TestDialectForVersion(t *testing.T) {
	cases := []struct {
		version int
		want    Dialect
	}{
		{47, DialectPre9},
		{73, DialectPre9},
		{74, Dialect9To12},
		{340, Dialect9To12},
		{403, Dialect9To12},
		{404, Dialect13Plus},
		{758, Dialect13Plus},
	}

	for _, c := range cases {
		if got := DialectForVersion(c.version); got != c.want {
			t.Errorf("DialectForVersion(%d) = %v, want %v", c.version, got, c.want)
		}
	}
}

func TestMetadataPutOverwritesLastWins(t *testing.T) {
	m := New()
	m.Put(3, Value{Kind: KindByte, Byte: 1})
	m.Put(1, Value{Kind: KindByte, Byte: 2})
	m.Put(3, Value{Kind: KindByte, Byte: 9})

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if indices := m.Indices(); len(indices) != 2 || indices[0] != 3 || indices[1] != 1 {
		t.Fatalf("Indices() = %v, want [3 1]", indices)
	}
	v, ok := m.Get(3)
	if !ok || v.Byte != 9 {
		t.Fatalf("Get(3) = %+v, %v, want Byte=9", v, ok)
	}
}

func TestMetadataGetMissing(t *testing.T) {
	m := New()
	if _, ok := m.Get(5); ok {
		t.Fatalf("Get(5) on empty map returned ok=true")
	}
}
