package packets

// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login

import (
	jp "github.com/voxelwire/mcproto/protocol"
	ns "github.com/voxelwire/mcproto/wire"
)

// C2SHelloPacket represents "Login Start" (serverbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Hello
var C2SHelloPacket = jp.NewPacket(jp.StateLogin, jp.C2S, jp.IDHello)

type C2SHelloPacketData struct {
	// Player's Username.
	Name ns.String
}

// C2SKeyPacket represents "Encryption Response" (serverbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Encryption_Response
// https://minecraft.wiki/w/Protocol_encryption
var C2SKeyPacket = jp.NewPacket(jp.StateLogin, jp.C2S, jp.IDKey)

type C2SKeyPacketData struct {
	// Shared Secret value, encrypted with the server's public key.
	SharedSecret ns.PrefixedByteArray
	// Verify Token value, encrypted with the same public key as the shared secret.
	VerifyToken ns.PrefixedByteArray
}
