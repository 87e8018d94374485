package session

import (
	"encoding/json"
	"fmt"

	"github.com/voxelwire/mcproto/auth"
	jp "github.com/voxelwire/mcproto/protocol"
	"github.com/voxelwire/mcproto/protocol/packets"
	"github.com/voxelwire/mcproto/protoerr"
	ns "github.com/voxelwire/mcproto/wire"
)

// Login carries a connection through the Login state: handshake,
// server-auth (join request plus encryption, if the server asks for
// it), and compression negotiation, leaving the Client in StatePlay on
// success.
func Login(c *Client, address string, profile auth.Profile) error {
	if err := c.Connect(address); err != nil {
		return err
	}

	host, port := splitAddress(address)
	if err := c.Send(packets.C2SIntentionPacket, packets.C2SIntentionPacketData{
		ProtocolVersion: ns.VarInt(c.Version()),
		ServerAddress:   ns.String(host),
		ServerPort:      ns.UnsignedShort(port),
		Intent:          packets.IntentLogin,
	}); err != nil {
		return fmt.Errorf("sending handshake: %w", err)
	}
	c.SetState(jp.StateLogin)

	if err := c.Send(packets.C2SHelloPacket, packets.C2SHelloPacketData{
		Name: ns.String(profile.Username),
	}); err != nil {
		return fmt.Errorf("sending hello: %w", err)
	}

	for {
		packet, err := c.ReadPacket()
		if err != nil {
			return err
		}

		switch packet.PacketID {
		case mustWireID(c, jp.IDEncryptionRequest):
			if err := handleEncryptionRequest(c, packet, profile); err != nil {
				return err
			}
		case mustWireID(c, jp.IDSetCompression):
			var data packets.S2CSetCompressionPacketData
			if err := packet.Unmarshal(&data); err != nil {
				return protoerr.New(protoerr.MalformedFrame, err)
			}
			c.SetCompressionThreshold(int(data.Threshold))
		case mustWireID(c, jp.IDLoginSuccess):
			var data packets.S2CLoginSuccessPacketData
			if err := packet.Unmarshal(&data); err != nil {
				return protoerr.New(protoerr.MalformedFrame, err)
			}
			c.SetState(jp.StatePlay)
			return nil
		case mustWireID(c, jp.IDDisconnectLogin):
			var data packets.S2CDisconnectLoginPacketData
			if err := packet.Unmarshal(&data); err != nil {
				return protoerr.New(protoerr.MalformedFrame, err)
			}
			return protoerr.NewDisconnect(jsonComponentToComponent(data.Reason))
		default:
			// unknown login-state packet (e.g. a plugin request); ignored
		}
	}
}

func handleEncryptionRequest(c *Client, packet *jp.Packet, profile auth.Profile) error {
	var request packets.S2CEncryptionRequestPacketData
	if err := packet.Unmarshal(&request); err != nil {
		return protoerr.New(protoerr.MalformedFrame, fmt.Errorf("unmarshaling encryption request: %w", err))
	}

	encryption := c.Conn().Encryption()
	sharedSecret, err := encryption.GenerateSharedSecret()
	if err != nil {
		return protoerr.New(protoerr.Auth, fmt.Errorf("generating shared secret: %w", err))
	}

	encryptedSecret, err := encryption.EncryptWithPublicKey([]byte(request.PublicKey), sharedSecret)
	if err != nil {
		return protoerr.New(protoerr.Auth, fmt.Errorf("encrypting shared secret: %w", err))
	}
	encryptedVerifyToken, err := encryption.EncryptWithPublicKey([]byte(request.PublicKey), []byte(request.VerifyTok))
	if err != nil {
		return protoerr.New(protoerr.Auth, fmt.Errorf("encrypting verify token: %w", err))
	}

	sessionClient := auth.NewSessionClient()
	if err := sessionClient.Join(profile.AccessToken, profile.UUID, string(request.ServerID), sharedSecret, []byte(request.PublicKey)); err != nil {
		return protoerr.New(protoerr.Auth, fmt.Errorf("joining session server: %w", err))
	}

	if err := c.Send(packets.C2SKeyPacket, packets.C2SKeyPacketData{
		SharedSecret: ns.PrefixedByteArray(encryptedSecret),
		VerifyToken:  ns.PrefixedByteArray(encryptedVerifyToken),
	}); err != nil {
		return fmt.Errorf("sending encryption response: %w", err)
	}

	if err := encryption.EnableEncryption(); err != nil {
		return protoerr.New(protoerr.Auth, fmt.Errorf("enabling encryption: %w", err))
	}
	return nil
}

// mustWireID resolves id to its wire PacketID under the connection's
// negotiated version. Login-state ids are all present across every
// supported version, so a resolution error here means the registry
// itself is missing an entry and there is nothing sensible to do but
// treat the packet as unmatched.
func mustWireID(c *Client, id jp.ID) ns.VarInt {
	wireID, err := jp.WireID(c.Version(), jp.StateLogin, jp.S2C, id)
	if err != nil {
		return -1
	}
	return wireID
}

func jsonComponentToComponent(json_ ns.JSONTextComponent) ns.Component {
	var component ns.Component
	raw, err := json.Marshal(map[string]any(json_))
	if err != nil {
		return component
	}
	_ = json.Unmarshal(raw, &component)
	return component
}

func splitAddress(address string) (string, int) {
	host := address
	port := 25565
	for i := len(address) - 1; i >= 0; i-- {
		if address[i] == ':' {
			host = address[:i]
			if p, err := parsePort(address[i+1:]); err == nil {
				port = p
			}
			break
		}
	}
	return host, port
}

func parsePort(s string) (int, error) {
	var port int
	if _, err := fmt.Sscanf(s, "%d", &port); err != nil {
		return 0, err
	}
	return port, nil
}
