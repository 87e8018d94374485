package session

import (
	"encoding/json"
	"fmt"
	"time"

	jp "github.com/voxelwire/mcproto/protocol"
	"github.com/voxelwire/mcproto/protocol/packets"
	"github.com/voxelwire/mcproto/protoerr"
	ns "github.com/voxelwire/mcproto/wire"
)

// StatusVersion is the version block of a status response.
type StatusVersion struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}

// StatusSamplePlayer is one entry in a status response's player sample.
type StatusSamplePlayer struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// StatusPlayers is the players block of a status response.
type StatusPlayers struct {
	Max    int                  `json:"max"`
	Online int                  `json:"online"`
	Sample []StatusSamplePlayer `json:"sample,omitempty"`
}

// Status is the decoded form of a server's Status Response JSON.
type Status struct {
	Version     StatusVersion        `json:"version"`
	Players     StatusPlayers        `json:"players"`
	Description ns.ChatTextComponent `json:"description"`
	Favicon     string               `json:"favicon,omitempty"`
}

// Ping queries address for its status page: version, player counts,
// description and favicon, plus a measured round-trip latency from a
// matched status ping/pong. The connection is closed before returning.
func Ping(c *Client, address string) (Status, time.Duration, error) {
	if err := c.Connect(address); err != nil {
		return Status{}, 0, err
	}
	defer c.Close()

	host, port := splitAddress(address)
	if err := c.Send(packets.C2SIntentionPacket, packets.C2SIntentionPacketData{
		ProtocolVersion: ns.VarInt(c.Version()),
		ServerAddress:   ns.String(host),
		ServerPort:      ns.UnsignedShort(port),
		Intent:          packets.IntentStatus,
	}); err != nil {
		return Status{}, 0, fmt.Errorf("sending handshake: %w", err)
	}
	c.SetState(jp.StateStatus)

	if err := c.Send(packets.C2SStatusRequestPacket, struct{}{}); err != nil {
		return Status{}, 0, fmt.Errorf("sending status request: %w", err)
	}

	responsePacket, err := c.ReadPacket()
	if err != nil {
		return Status{}, 0, err
	}
	var responseData packets.S2CStatusResponsePacketData
	if err := responsePacket.Unmarshal(&responseData); err != nil {
		return Status{}, 0, protoerr.New(protoerr.MalformedFrame, err)
	}

	var status Status
	if err := json.Unmarshal([]byte(responseData.JSON), &status); err != nil {
		return Status{}, 0, protoerr.New(protoerr.Json, fmt.Errorf("parsing status response: %w", err))
	}

	token := ns.Long(time.Now().UnixMilli())
	sentAt := time.Now()
	if err := c.Send(packets.C2SPingRequestPacket, packets.C2SPingRequestPacketData{Timestamp: token}); err != nil {
		return status, 0, fmt.Errorf("sending status ping: %w", err)
	}

	pongPacket, err := c.ReadPacket()
	if err != nil {
		return status, 0, err
	}
	var pongData packets.S2CPongResponseStatusPacketData
	if err := pongPacket.Unmarshal(&pongData); err != nil {
		return status, 0, protoerr.New(protoerr.MalformedFrame, err)
	}
	if pongData.Payload != token {
		return status, 0, protoerr.Newf(protoerr.BadPacket, "status pong token %d does not match sent %d", int64(pongData.Payload), int64(token))
	}

	return status, time.Since(sentAt), nil
}
