package wire

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// UUID - 128-bit universally unique identifier, wire form is 16 raw bytes
// (big-endian most-significant-bits first), matching the two-int64 packing
// Minecraft uses for profile and entity ids.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Type:UUID
type UUID [16]byte

// NewUUID parses a UUID from its string form, with or without dashes.
// String<->bytes conversion delegates to github.com/google/uuid rather than
// a hand-rolled hex splitter; only the wire-specific packing stays bespoke.
func NewUUID(s string) (UUID, error) {
	var u UUID
	parsed, err := uuid.Parse(s)
	if err != nil {
		return u, fmt.Errorf("invalid UUID format: %w", err)
	}
	copy(u[:], parsed[:])
	return u, nil
}

func (u UUID) ToBytes() (ByteArray, error) {
	return ByteArray(u[:]), nil
}

func (u *UUID) FromBytes(data ByteArray) (int, error) {
	if len(data) < 16 {
		return 0, errors.New("insufficient data for UUID")
	}
	copy(u[:], data[:16])
	return 16, nil
}

// String returns the UUID as a formatted string (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx)
func (u UUID) String() string {
	return uuid.UUID(u).String()
}

// StringNoDashes returns the UUID as a hex string without dashes
func (u UUID) StringNoDashes() string {
	return hex.EncodeToString(u[:])
}

// ValidateUUID validates a UUID format string.
// Accepts whatever uuid.Parse accepts: 32 hex characters (no dashes),
// 36 characters (with dashes), and the braced and "urn:uuid:" forms.
func ValidateUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
