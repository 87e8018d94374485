package packets

import (
	jp "github.com/voxelwire/mcproto/protocol"
	ns "github.com/voxelwire/mcproto/wire"
)

// S2CDisconnectLoginPacket represents "Disconnect (login)"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Disconnect_(login)
var S2CDisconnectLoginPacket = jp.NewPacket(jp.StateLogin, jp.S2C, jp.IDDisconnectLogin)

type S2CDisconnectLoginPacketData struct {
	Reason ns.JSONTextComponent
}

// S2CEncryptionRequestPacket represents "Encryption Request"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Encryption_Request
// https://minecraft.wiki/w/Protocol_encryption
var S2CEncryptionRequestPacket = jp.NewPacket(jp.StateLogin, jp.S2C, jp.IDEncryptionRequest)

type S2CEncryptionRequestPacketData struct {
	ServerID  ns.String
	PublicKey ns.PrefixedByteArray
	VerifyTok ns.PrefixedByteArray
}

// S2CLoginSuccessPacket represents "Login Success"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Success
var S2CLoginSuccessPacket = jp.NewPacket(jp.StateLogin, jp.S2C, jp.IDLoginSuccess)

type S2CLoginSuccessPacketData struct {
	// Sent as a dashed-hex string on 316/340, not raw bytes (that packing
	// is 1.16+); see ns.UUID's FromBytes for the modern wire shape.
	UUID     ns.String
	Username ns.String
}

// S2CSetCompressionPacket represents "Set Compression"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Compression
var S2CSetCompressionPacket = jp.NewPacket(jp.StateLogin, jp.S2C, jp.IDSetCompression)

type S2CSetCompressionPacketData struct {
	Threshold ns.VarInt
}

// S2CLoginPluginRequestPacket represents "Login Plugin Request"
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Plugin_Request
var S2CLoginPluginRequestPacket = jp.NewPacket(jp.StateLogin, jp.S2C, jp.IDLoginPluginRequest)

type S2CLoginPluginRequestPacketData struct {
	MessageID ns.VarInt
	Channel   ns.Identifier
	Data      ns.ByteArray
}
