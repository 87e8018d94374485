package auth

import (
	"fmt"

	ns "github.com/voxelwire/mcproto/wire"
)

// Profile is the minimal identity a connection needs to log into a
// server: the account's chosen name, its profile uuid, and a bearer
// token proving the session is authorized to use that profile.
//
// This is deliberately the smallest shape that Login needs; Profile
// carries no skin, cape, or property data, those live in the session
// server's HasJoined response, not in the client's own credentials.
type Profile struct {
	Username    string
	UUID        string
	AccessToken string
}

// ParsedUUID parses the profile's UUID field into its wire form.
func (p Profile) ParsedUUID() (ns.UUID, error) {
	parsed, err := ns.NewUUID(p.UUID)
	if err != nil {
		return ns.UUID{}, fmt.Errorf("parsing profile uuid %q: %w", p.UUID, err)
	}
	return parsed, nil
}

// Valid reports whether the profile's fields are well-formed enough to
// attempt a login: a non-empty username, a parseable uuid, and an
// access token of plausible length.
func (p Profile) Valid() bool {
	return p.Username != "" && ns.ValidateUUID(p.UUID) && ValidateAccessToken(p.AccessToken)
}
