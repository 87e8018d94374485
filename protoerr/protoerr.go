// Package protoerr classifies the connection-fatal errors this module
// can raise into a small set of kinds, so a caller can distinguish
// "the server told us why" from "the wire was garbage" without a
// bespoke error hierarchy. Every error still carries the underlying
// cause via %w and prints through the ordinary error interface.
package protoerr

import (
	"errors"
	"fmt"

	ns "github.com/voxelwire/mcproto/wire"
)

// Kind identifies why a connection failed. All kinds are fatal: none
// of them describe a condition this module retries or recovers from
// in-band.
type Kind int

const (
	// MalformedFrame covers bad varints, residual bytes left after a
	// packet is decoded, and decompression failures.
	MalformedFrame Kind = iota
	// BadPacket covers an unknown packet id for the current
	// state/direction, or a field-decode failure within a known packet.
	BadPacket
	// Disconnect is a clean, server-initiated termination carrying a
	// rich text reason.
	Disconnect
	// Io covers socket-level errors (read/write/close failures).
	Io
	// Auth covers session-service non-2xx responses and transport
	// errors while talking to Mojang's auth/session servers.
	Auth
	// Json covers status response or chat component parse failures.
	Json
)

func (k Kind) String() string {
	switch k {
	case MalformedFrame:
		return "MalformedFrame"
	case BadPacket:
		return "BadPacket"
	case Disconnect:
		return "Disconnect"
	case Io:
		return "Io"
	case Auth:
		return "Auth"
	case Json:
		return "Json"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a protocol-level error tagged with a Kind. Disconnect
// errors additionally carry the server's reason as a Component so a
// caller can render it verbatim instead of a generic diagnostic.
type Error struct {
	Kind   Kind
	Reason *ns.Component
	err    error
}

func (e *Error) Error() string {
	if e.Kind == Disconnect && e.Reason != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason.Text)
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.err }

// New wraps err as a protoerr.Error of the given kind.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, err: err}
}

// Newf wraps a formatted error as a protoerr.Error of the given kind.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, err: fmt.Errorf(format, args...)}
}

// NewDisconnect builds a Disconnect error carrying the server's reason
// component verbatim.
func NewDisconnect(reason ns.Component) *Error {
	return &Error{Kind: Disconnect, Reason: &reason, err: fmt.Errorf("disconnected: %s", reason.Text)}
}

// Is reports whether err is a protoerr.Error of the given kind,
// unwrapping through any wrapping errors along the way.
func Is(err error, kind Kind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}
