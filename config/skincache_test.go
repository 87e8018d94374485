package config

import (
	"path/filepath"
	"testing"
)

func TestSkinCachePath(t *testing.T) {
	got := SkinCachePath("6c0163e1e6ebe3e2cec4ae46a8ecb497")
	want := filepath.Join("skin-cache", "6c", "6c0163e1e6ebe3e2cec4ae46a8ecb497.png")
	if got != want {
		t.Fatalf("SkinCachePath = %q, want %q", got, want)
	}
}

func TestSkinCachePathShortHash(t *testing.T) {
	got := SkinCachePath("a")
	want := filepath.Join("skin-cache", "short", "a.png")
	if got != want {
		t.Fatalf("SkinCachePath(short) = %q, want %q", got, want)
	}
}
