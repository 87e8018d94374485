// The `protocol` package contains the core structs and functions for working with the Java Edition protocol.
//
// > The Minecraft server accepts connections from TCP clients and communicates with them using packets.
// A packet is a sequence of bytes sent over the TCP connection (note: see `wire.ByteArray`).
// The meaning of a packet depends both on its packet ID and the current state of the connection
// (note: each state has its own packet ID counter, so packets in different states can have the same packet ID).
// The initial state of each connection is Handshaking, and state is switched using the packets 'Handshake' and 'Login Success'."
//
// Packet format:
//
// > Packets cannot be larger than (2^21) − 1 or 2 097 151 bytes (the maximum that can be sent in a 3-byte VarInt).
// Moreover, the length field must not be longer than 3 bytes, even if the encoded value is within the limit.
// Unnecessarily long encodings at 3 bytes or below are still allowed.
// For compressed packets, this applies to the Packet Length field, i. e. the compressed length.
//
// See https://minecraft.wiki/w/Java_Edition_protocol/Packets
package protocol

import (
	"bytes"
	"compress/zlib"
	"fmt"

	ns "github.com/voxelwire/mcproto/wire"
)

// State is the phase that the packet is in (handshake, status, login, play).
// This is not sent over network (server and client automatically transition phases).
type State uint8

const (
	StateHandshake State = iota
	StateStatus
	StateLogin
	StatePlay
)

func (s State) String() string {
	switch s {
	case StateHandshake:
		return "Handshake"
	case StateStatus:
		return "Status"
	case StateLogin:
		return "Login"
	case StatePlay:
		return "Play"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Bound is the direction that the packet is going.
//
// Serverbound: Client -> Server (C2S)
//
// Clientbound: Server -> Client (S2C)
type Bound uint8

const (
	// Client -> Server (C2S, serverbound)
	C2S Bound = iota
	// Server -> Client (S2C, clientbound)
	S2C
)

func (b Bound) String() string {
	if b == C2S {
		return "C2S"
	}
	return "S2C"
}

// Packet is a packet identified by protocol state, direction and id,
// carrying its payload either as typed data (via WithData) or raw bytes
// (as read off the wire). ID is the version-independent packet identity;
// PacketID is the resolved wire-level VarInt, filled in by Resolve for
// outbound packets or by the reader for inbound ones.
type Packet struct {
	State    State
	Bound    Bound
	ID       ID
	PacketID ns.VarInt
	Data     ns.ByteArray
}

// NewPacket creates an unresolved packet descriptor with no payload.
// Package-level packet variables (e.g. C2SIntentionPacket) are built this
// way; Resolve fixes the wire id for a connection's negotiated protocol
// version, and WithData then attaches the typed payload.
func NewPacket(state State, bound Bound, id ID) *Packet {
	return &Packet{State: state, Bound: bound, ID: id}
}

// Resolve looks up the wire id this descriptor's ID maps to under
// version and returns a new Packet carrying it.
func (p *Packet) Resolve(version Version) (*Packet, error) {
	wireID, err := WireID(version, p.State, p.Bound, p.ID)
	if err != nil {
		return nil, err
	}
	return &Packet{State: p.State, Bound: p.Bound, ID: p.ID, PacketID: wireID, Data: p.Data}, nil
}

// WithData marshals data (a struct with `mc` struct tags) into a new Packet
// carrying this descriptor's state/bound/id and the marshaled payload.
// The descriptor must already carry a resolved PacketID (see Resolve).
func (p *Packet) WithData(data any) (*Packet, error) {
	payload, err := PacketDataToBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal packet data: %w", err)
	}
	return &Packet{State: p.State, Bound: p.Bound, ID: p.ID, PacketID: p.PacketID, Data: payload}, nil
}

// Unmarshal decodes this packet's raw Data into dest (a struct with `mc` tags).
func (p *Packet) Unmarshal(dest any) error {
	return BytesToPacketData(p.Data, dest)
}

// ToBytes serializes the packet to wire format (length-prefixed, with
// compression framing applied when compressionThreshold >= 0).
//
// Compression behavior (per Minecraft protocol):
//   - If size >= threshold: packet is zlib compressed
//   - If size < threshold: packet is sent uncompressed (with Data Length = 0)
//   - The vanilla server rejects compressed packets smaller than the threshold
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Packet_format
func (p *Packet) ToBytes(compressionThreshold int) ([]byte, error) {
	if compressionThreshold >= 0 {
		return p.toBytesCompressed(compressionThreshold)
	}
	return p.toBytesUncompressed()
}

func (p *Packet) toBytesCompressed(compressionThreshold int) ([]byte, error) {
	packetIDBytes, err := p.PacketID.ToBytes()
	if err != nil {
		return nil, err
	}
	uncompressedPayload := append(packetIDBytes, p.Data...)
	uncompressedLength := len(uncompressedPayload)

	if uncompressedLength >= compressionThreshold {
		compressedPayload := compressZlib(uncompressedPayload)

		dataLengthBytes, err := ns.VarInt(uncompressedLength).ToBytes()
		if err != nil {
			return nil, err
		}
		packetContent := append(dataLengthBytes, compressedPayload...)
		packetLengthBytes, err := ns.VarInt(len(packetContent)).ToBytes()
		if err != nil {
			return nil, err
		}

		return append(packetLengthBytes, packetContent...), nil
	}

	// below threshold: sent uncompressed, with Data Length = 0
	dataLengthBytes, err := ns.VarInt(0).ToBytes()
	if err != nil {
		return nil, err
	}
	packetContent := append(dataLengthBytes, uncompressedPayload...)
	packetLengthBytes, err := ns.VarInt(len(packetContent)).ToBytes()
	if err != nil {
		return nil, err
	}

	return append(packetLengthBytes, packetContent...), nil
}

func (p *Packet) toBytesUncompressed() ([]byte, error) {
	packetIDBytes, err := p.PacketID.ToBytes()
	if err != nil {
		return nil, err
	}

	payload := append(packetIDBytes, p.Data...)
	packetLengthBytes, err := ns.VarInt(len(payload)).ToBytes()
	if err != nil {
		return nil, err
	}

	return append(packetLengthBytes, payload...), nil
}

func compressZlib(data []byte) []byte {
	compressedData := bytes.NewBuffer(nil)
	writer := zlib.NewWriter(compressedData)
	_, _ = writer.Write(data)
	_ = writer.Close()
	return compressedData.Bytes()
}

