// Package session drives a single connection through the
// Handshaking -> Status | Login -> Play state machine: dialing the
// server, negotiating encryption and compression during login, and
// handing back a Client ready to read and write Play packets.
package session

import (
	"bytes"
	"compress/zlib"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	jp "github.com/voxelwire/mcproto/protocol"
	"github.com/voxelwire/mcproto/protoerr"
	ns "github.com/voxelwire/mcproto/wire"
)

// Client is a connection to a single Minecraft server, carrying the
// protocol state, negotiated version, and compression threshold that
// give meaning to the raw packets read off and written to the socket.
type Client struct {
	conn                 *jp.Conn
	state                jp.State
	version              jp.Version
	compressionThreshold int
	debug                bool
	logger               *log.Logger
}

// NewClient creates a Client with no connection yet. Connect must be
// called before any packet can be read or written.
func NewClient(version jp.Version) *Client {
	return &Client{
		state:                jp.StateHandshake,
		version:              version,
		compressionThreshold: -1,
		logger:               log.New(os.Stdout, "[session] ", log.LstdFlags),
	}
}

// Connect resolves address (honoring _minecraft._tcp SRV records when
// no port is given) and dials it over TCP.
func (c *Client) Connect(address string) error {
	resolved, err := resolveMinecraftAddress(address)
	if err != nil {
		return protoerr.New(protoerr.Io, fmt.Errorf("resolving %s: %w", address, err))
	}

	netConn, err := net.Dial("tcp", resolved)
	if err != nil {
		return protoerr.New(protoerr.Io, fmt.Errorf("dialing %s: %w", resolved, err))
	}
	c.conn = jp.NewConn(netConn)
	return nil
}

// Close closes the underlying connection, if any.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// EnableDebug toggles verbose wire-level logging.
func (c *Client) EnableDebug(enabled bool) { c.debug = enabled }

// SetLogger overrides the logger used for debug output.
func (c *Client) SetLogger(l *log.Logger) { c.logger = l }

func (c *Client) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	if c.logger != nil {
		c.logger.Printf(format, args...)
	} else {
		log.Printf(format, args...)
	}
}

// State returns the connection's current protocol state.
func (c *Client) State() jp.State { return c.state }

// SetState transitions the connection to a new protocol state. Each
// state has its own packet id counter, so every subsequent read/write
// resolves ids against the new state.
func (c *Client) SetState(state jp.State) { c.state = state }

// Version returns the negotiated protocol version.
func (c *Client) Version() jp.Version { return c.version }

// CompressionThreshold returns the active compression threshold, or a
// negative value if compression hasn't been enabled yet.
func (c *Client) CompressionThreshold() int { return c.compressionThreshold }

// SetCompressionThreshold enables (threshold >= 0) or disables
// (threshold < 0) zlib compression framing for subsequent packets.
func (c *Client) SetCompressionThreshold(threshold int) { c.compressionThreshold = threshold }

// Conn returns the underlying wire connection, for callers that need
// to reach its cipher state (see protocol.Conn.Encryption).
func (c *Client) Conn() *jp.Conn { return c.conn }

// Send resolves descriptor against the negotiated version, attaches
// data, and writes the resulting packet to the socket.
func (c *Client) Send(descriptor *jp.Packet, data any) error {
	resolved, err := descriptor.Resolve(c.version)
	if err != nil {
		return protoerr.New(protoerr.BadPacket, err)
	}
	packet, err := resolved.WithData(data)
	if err != nil {
		return protoerr.New(protoerr.BadPacket, fmt.Errorf("marshaling %v: %w", descriptor.ID, err))
	}
	return c.WritePacket(packet)
}

// WritePacket serializes and writes an already-resolved packet.
func (c *Client) WritePacket(packet *jp.Packet) error {
	if c.conn == nil {
		return protoerr.New(protoerr.Io, fmt.Errorf("not connected"))
	}

	data, err := packet.ToBytes(c.compressionThreshold)
	if err != nil {
		return protoerr.New(protoerr.MalformedFrame, fmt.Errorf("serializing packet: %w", err))
	}
	c.debugf("-> send: state=%v bound=%v id=0x%02X len=%d bytes=%s", packet.State, packet.Bound, int(packet.PacketID), len(data), hexSnippet(data, 256))

	if _, err := c.conn.Write(data); err != nil {
		return protoerr.New(protoerr.Io, fmt.Errorf("writing packet: %w", err))
	}
	return nil
}

// ReadPacket reads the next frame off the socket, undoing compression
// framing if active, and returns it tagged with the connection's
// current state and S2C direction. The payload is left undecoded;
// callers resolve the wire PacketID back to an internal ID themselves
// (or call Unmarshal directly against a known packet shape).
func (c *Client) ReadPacket() (*jp.Packet, error) {
	if c.conn == nil {
		return nil, protoerr.New(protoerr.Io, fmt.Errorf("not connected"))
	}

	packetLength, err := c.readVarInt()
	if err != nil {
		if protoerr.Is(err, protoerr.MalformedFrame) {
			return nil, err
		}
		return nil, protoerr.New(protoerr.Io, fmt.Errorf("reading packet length: %w", err))
	}

	data := make([]byte, packetLength)
	if _, err := io.ReadFull(c.conn, data); err != nil {
		return nil, protoerr.New(protoerr.Io, fmt.Errorf("reading packet body: %w", err))
	}
	c.debugf("<- recv: len=%d bytes=%s", len(data), hexSnippet(data, 256))

	reader := bytes.NewReader(data)
	if c.compressionThreshold >= 0 {
		return c.readCompressedPacket(reader)
	}
	return c.readUncompressedPacket(reader)
}

func (c *Client) readUncompressedPacket(reader *bytes.Reader) (*jp.Packet, error) {
	packetID, err := readVarIntFromReader(reader)
	if err != nil {
		return nil, protoerr.New(protoerr.MalformedFrame, fmt.Errorf("reading packet id: %w", err))
	}

	remaining, err := io.ReadAll(reader)
	if err != nil {
		return nil, protoerr.New(protoerr.MalformedFrame, fmt.Errorf("reading packet payload: %w", err))
	}

	return &jp.Packet{State: c.state, Bound: jp.S2C, PacketID: packetID, Data: ns.ByteArray(remaining)}, nil
}

func (c *Client) readCompressedPacket(reader *bytes.Reader) (*jp.Packet, error) {
	dataLength, err := readVarIntFromReader(reader)
	if err != nil {
		return nil, protoerr.New(protoerr.MalformedFrame, fmt.Errorf("reading data length: %w", err))
	}
	if dataLength == 0 {
		return c.readUncompressedPacket(reader)
	}

	compressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, protoerr.New(protoerr.MalformedFrame, fmt.Errorf("reading compressed payload: %w", err))
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, protoerr.New(protoerr.MalformedFrame, fmt.Errorf("opening zlib reader: %w", err))
	}
	defer zr.Close()

	uncompressed, err := io.ReadAll(zr)
	if err != nil {
		return nil, protoerr.New(protoerr.MalformedFrame, fmt.Errorf("decompressing payload: %w", err))
	}
	if len(uncompressed) != int(dataLength) {
		return nil, protoerr.Newf(protoerr.MalformedFrame, "declared uncompressed length %d does not match actual %d", int(dataLength), len(uncompressed))
	}

	uncompressedReader := bytes.NewReader(uncompressed)
	packetID, err := readVarIntFromReader(uncompressedReader)
	if err != nil {
		return nil, protoerr.New(protoerr.MalformedFrame, fmt.Errorf("reading packet id: %w", err))
	}
	remaining, err := io.ReadAll(uncompressedReader)
	if err != nil {
		return nil, protoerr.New(protoerr.MalformedFrame, fmt.Errorf("reading packet payload: %w", err))
	}

	return &jp.Packet{State: c.state, Bound: jp.S2C, PacketID: packetID, Data: ns.ByteArray(remaining)}, nil
}

// readVarInt reads a VarInt byte by byte directly off the (possibly
// encrypted) connection; Conn.Read decrypts each chunk it returns, so
// reading one byte at a time here keeps the cipher's internal state in
// the same order the rest of the stream advances it.
func (c *Client) readVarInt() (ns.VarInt, error) {
	var value int32
	var position uint
	buf := make([]byte, 1)

	for {
		if _, err := io.ReadFull(c.conn, buf); err != nil {
			return 0, err
		}
		value |= (int32(buf[0]) & 0x7F) << position
		if buf[0]&0x80 == 0 {
			break
		}
		position += 7
		if position >= 32 {
			return 0, protoerr.Newf(protoerr.MalformedFrame, "varint is too big")
		}
	}

	return ns.VarInt(value), nil
}

func readVarIntFromReader(reader *bytes.Reader) (ns.VarInt, error) {
	var value int32
	var position uint

	for {
		b, err := reader.ReadByte()
		if err != nil {
			return 0, err
		}
		value |= (int32(b) & 0x7F) << position
		if b&0x80 == 0 {
			break
		}
		position += 7
		if position >= 32 {
			return 0, fmt.Errorf("varint is too big")
		}
	}

	return ns.VarInt(value), nil
}

// resolveMinecraftAddress resolves a Minecraft server address using
// SRV records if available, falling back to the default port 25565 if
// none is specified.
func resolveMinecraftAddress(address string) (string, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		host = address
		port = ""
	}

	if port != "" {
		return net.JoinHostPort(host, port), nil
	}

	_, srvRecords, err := net.LookupSRV("minecraft", "tcp", host)
	if err == nil && len(srvRecords) > 0 {
		srv := srvRecords[0]
		target := strings.TrimSuffix(srv.Target, ".")
		return net.JoinHostPort(target, strconv.Itoa(int(srv.Port))), nil
	}

	return net.JoinHostPort(host, "25565"), nil
}

func hexSnippet(data []byte, max int) string {
	if data == nil {
		return ""
	}
	if max > 0 && len(data) > max {
		return hex.EncodeToString(data[:max]) + "..."
	}
	return hex.EncodeToString(data)
}
