// Package ipv6 provides a read-only view over an IPv6 header for use by
// the 6LoWPAN frame assembly core: it never writes the header, only
// inspects the fields the core needs (next header, payload length,
// addresses) before compressing or copying it onto the wire.
package ipv6

import (
	"encoding/binary"
	"errors"

	"github.com/soypat/sixlowpan/wire"
)

// HeaderLen is the fixed size of the IPv6 header in bytes.
const HeaderLen = 40

var (
	errShortBuf   = errors.New("ipv6: buffer shorter than header")
	errShortFrame = errors.New("ipv6: payload length exceeds buffer")
)

// NewFrame returns a Frame over buf. An error is returned if buf is
// shorter than the fixed 40-byte IPv6 header.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < HeaderLen {
		return Frame{}, errShortBuf
	}
	return Frame{buf: buf}, nil
}

// Frame is a read-only view of an IPv6 header and the data that follows it.
// See [RFC8200].
//
// [RFC8200]: https://tools.ietf.org/html/rfc8200
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice with which the frame was created.
func (f Frame) RawData() []byte { return f.buf }

// Payload returns the bytes following the fixed IPv6 header, which is the
// transport header followed by its data. Call [Frame.ValidateSize] first
// to avoid a panic on a truncated buffer.
func (f Frame) Payload() []byte {
	return f.buf[HeaderLen : HeaderLen+f.PayloadLength()]
}

// PayloadLength returns the size of the payload in octets, not including
// the fixed IPv6 header.
func (f Frame) PayloadLength() uint16 {
	return binary.BigEndian.Uint16(f.buf[4:6])
}

// NextHeader returns the transport protocol carried after the IPv6 header.
func (f Frame) NextHeader() wire.IPProto {
	return wire.IPProto(f.buf[6])
}

// HopLimit returns the Hop Limit field of the IPv6 header.
func (f Frame) HopLimit() uint8 { return f.buf[7] }

// SourceAddr returns a pointer to the 16-byte source address.
func (f Frame) SourceAddr() *[16]byte { return (*[16]byte)(f.buf[8:24]) }

// DestinationAddr returns a pointer to the 16-byte destination address.
func (f Frame) DestinationAddr() *[16]byte { return (*[16]byte)(f.buf[24:40]) }

// ValidateSize checks the payload length field against the actual buffer
// length and records an error on the validator if they are inconsistent.
func (f Frame) ValidateSize(v *wire.Validator) {
	if int(f.PayloadLength())+HeaderLen > len(f.buf) {
		v.AddError(errShortFrame)
	}
}
