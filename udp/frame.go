// Package udp provides a read-only view over a UDP datagram header, used
// by the 6LoWPAN frame assembly core to find the payload boundary of a
// datagram before compressing or copying its header onto the wire.
package udp

import (
	"encoding/binary"
	"errors"

	"github.com/soypat/sixlowpan/wire"
)

// HeaderLen is the fixed size of a UDP header in bytes.
const HeaderLen = 8

var (
	errShort  = errors.New("udp: buffer shorter than header")
	errBadLen = errors.New("udp: length field shorter than header")
)

// NewFrame returns a Frame over buf. An error is returned if buf is
// shorter than the fixed 8-byte UDP header.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < HeaderLen {
		return Frame{}, errShort
	}
	return Frame{buf: buf}, nil
}

// Frame encapsulates the raw data of a UDP datagram. See [RFC768].
//
// [RFC768]: https://tools.ietf.org/html/rfc768
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice with which the frame was created.
func (ufrm Frame) RawData() []byte { return ufrm.buf }

// SourcePort identifies the sending port for the UDP datagram.
func (ufrm Frame) SourcePort() uint16 {
	return binary.BigEndian.Uint16(ufrm.buf[0:2])
}

// DestinationPort identifies the receiving port for the UDP datagram.
func (ufrm Frame) DestinationPort() uint16 {
	return binary.BigEndian.Uint16(ufrm.buf[2:4])
}

// Length specifies the length in bytes of the UDP header and payload
// together. The minimum value is 8 (header only, no payload).
func (ufrm Frame) Length() uint16 {
	return binary.BigEndian.Uint16(ufrm.buf[4:6])
}

// CRC returns the checksum field in the UDP header.
func (ufrm Frame) CRC() uint16 {
	return binary.BigEndian.Uint16(ufrm.buf[6:8])
}

// Payload returns the payload content section of the UDP datagram.
// Call [Frame.ValidateSize] first to avoid a panic on a truncated buffer.
func (ufrm Frame) Payload() []byte {
	return ufrm.buf[HeaderLen:ufrm.Length()]
}

// ValidateSize checks the Length field against the actual buffer length
// and records an error on the validator if they are inconsistent.
func (ufrm Frame) ValidateSize(v *wire.Validator) {
	ul := ufrm.Length()
	if ul < HeaderLen {
		v.AddError(errBadLen)
	}
	if int(ul) > len(ufrm.RawData()) {
		v.AddError(errShort)
	}
}
