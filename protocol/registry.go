// The registry resolves a version-independent packet identifier to the
// wire-level VarInt a given protocol version actually uses for it.
// Protocol versions renumber packet ids release to release as packets
// are added, removed or reordered within a state; an ID lets the rest
// of this module talk about "the Keep Alive packet" without caring
// which wire id that happens to be for the version currently connected.
package protocol

import (
	"fmt"

	ns "github.com/voxelwire/mcproto/wire"
)

// Version is the protocol version number exchanged in the Intention
// packet's Protocol Version field.
type Version int

const (
	Version316 Version = 316 // 1.11.2
	Version340 Version = 340 // 1.12.2
)

func (v Version) String() string {
	switch v {
	case Version316:
		return "1.11.2"
	case Version340:
		return "1.12.2"
	default:
		return fmt.Sprintf("protocol %d", int(v))
	}
}

// ID is a version-independent identifier for a packet within a given
// state and direction. Its numeric value carries no wire meaning; it is
// only a lookup key into the registry's tables.
type ID int

const (
	IDIntention ID = iota
	IDHello
	IDKey
	IDStatusRequest
	IDPingRequestStatus
	IDTeleportConfirm
	IDChatMessage
	IDPingResponsePlay
	IDKeepAlivePlayC2S
	IDDisconnectLogin
	IDEncryptionRequest
	IDLoginSuccess
	IDSetCompression
	IDLoginPluginRequest
	IDKeepAlivePlayS2C
	IDSystemChatMessage
	IDPingPlayS2C
	IDStatusResponse
	IDPongResponseStatus
)

type idKey struct {
	state State
	bound Bound
	id    ID
}

// wireIDs340 is the baseline table (1.12.2).
var wireIDs340 = map[idKey]ns.VarInt{
	{StateHandshake, C2S, IDIntention}: 0x00,

	{StateLogin, C2S, IDHello}: 0x00,
	{StateLogin, C2S, IDKey}:   0x01,

	{StateStatus, C2S, IDStatusRequest}:     0x00,
	{StateStatus, C2S, IDPingRequestStatus}: 0x01,

	{StatePlay, C2S, IDTeleportConfirm}:  0x00,
	{StatePlay, C2S, IDChatMessage}:      0x03,
	{StatePlay, C2S, IDPingResponsePlay}: 0x18,
	{StatePlay, C2S, IDKeepAlivePlayC2S}: 0x1B,

	{StateLogin, S2C, IDDisconnectLogin}:    0x00,
	{StateLogin, S2C, IDEncryptionRequest}:  0x01,
	{StateLogin, S2C, IDLoginSuccess}:       0x02,
	{StateLogin, S2C, IDSetCompression}:     0x03,
	{StateLogin, S2C, IDLoginPluginRequest}: 0x04,

	{StatePlay, S2C, IDKeepAlivePlayS2C}:  0x26,
	{StatePlay, S2C, IDSystemChatMessage}: 0x62,
	{StatePlay, S2C, IDPingPlayS2C}:       0x33,

	{StateStatus, S2C, IDStatusResponse}:     0x00,
	{StateStatus, S2C, IDPongResponseStatus}: 0x01,
}

// wireIDs316 holds the 1.11.2 wire ids, per the original internal_ids
// table, that WireID consults before wireIDs340 under Version316: 1.12
// inserted the Recipe Book packets ahead of several Play-state packets,
// shifting Keep Alive, Chat Message and friends down. The Login, Status
// and Teleport Confirm entries carry the same values as in wireIDs340.
// Packets with no 1.11.2
// counterpart at all (Login Plugin Request, and the modern Ping
// Request/Response (play) pair, introduced long after 1.12.2) have no
// entry here and fall through to the 340 baseline.
var wireIDs316 = map[idKey]ns.VarInt{
	{StatePlay, C2S, IDTeleportConfirm}:  0x00,
	{StatePlay, C2S, IDChatMessage}:      0x02,
	{StatePlay, C2S, IDKeepAlivePlayC2S}: 0x0B,

	{StateLogin, S2C, IDDisconnectLogin}:   0x00,
	{StateLogin, S2C, IDEncryptionRequest}: 0x01,
	{StateLogin, S2C, IDLoginSuccess}:      0x02,
	{StateLogin, S2C, IDSetCompression}:    0x03,

	{StatePlay, S2C, IDKeepAlivePlayS2C}:  0x1F,
	{StatePlay, S2C, IDSystemChatMessage}: 0x0F, // closest analog: ServerMessage

	{StateStatus, C2S, IDStatusRequest}:      0x00,
	{StateStatus, C2S, IDPingRequestStatus}:  0x01,
	{StateStatus, S2C, IDStatusResponse}:     0x00,
	{StateStatus, S2C, IDPongResponseStatus}: 0x01,
}

// WireID returns the wire-level packet id that id maps to under version.
func WireID(version Version, state State, bound Bound, id ID) (ns.VarInt, error) {
	key := idKey{state, bound, id}
	if version == Version316 {
		if v, ok := wireIDs316[key]; ok {
			return v, nil
		}
	}
	if v, ok := wireIDs340[key]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("protocol: no wire id registered for %v/%v id=%d at %v", state, bound, id, version)
}
