// Package tcp provides a read-only view over a TCP segment header. The
// 6LoWPAN frame assembly core uses it only to classify a pre-formed
// segment (FIN/ACK flags) and to find where the header ends, never to
// drive a connection state machine.
package tcp

import (
	"encoding/binary"
	"errors"

	"github.com/soypat/sixlowpan/wire"
)

// HeaderLen is the fixed size of a TCP header, not including options.
const HeaderLen = 20

var errShortBuf = errors.New("tcp: buffer shorter than header")

// NewFrame returns a Frame over buf. An error is returned if buf is
// shorter than the fixed 20-byte TCP header. Callers should still call
// [Frame.ValidateSize] before touching options/payload to avoid a panic
// on a buffer that claims a header longer than itself.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < HeaderLen {
		return Frame{}, errShortBuf
	}
	return Frame{buf: buf}, nil
}

// Frame is a read-only view of a TCP segment. See [RFC9293].
//
// [RFC9293]: https://datatracker.ietf.org/doc/html/rfc9293
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice with which the frame was created.
func (tfrm Frame) RawData() []byte { return tfrm.buf }

// SourcePort identifies the sending port of the TCP segment.
func (tfrm Frame) SourcePort() uint16 {
	return binary.BigEndian.Uint16(tfrm.buf[0:2])
}

// DestinationPort identifies the receiving port of the TCP segment.
func (tfrm Frame) DestinationPort() uint16 {
	return binary.BigEndian.Uint16(tfrm.buf[2:4])
}

// OffsetAndFlags returns the data offset and flag fields of the TCP header.
// Offset is the header length in 32-bit words, including options (see
// [Frame.HeaderLength]). See [Flags] for the flag bits.
func (tfrm Frame) OffsetAndFlags() (offset uint8, flags Flags) {
	v := binary.BigEndian.Uint16(tfrm.buf[12:14])
	offset = uint8(v >> 12)
	flags = Flags(v).Mask()
	return offset, flags
}

// HeaderLength uses the Offset field to calculate the total length of the
// TCP header including options. Performs no validation.
func (tfrm Frame) HeaderLength() (lengthInBytes int) {
	offset, _ := tfrm.OffsetAndFlags()
	return 4 * int(offset)
}

// Payload returns the bytes following the TCP header (including options).
// Call [Frame.ValidateSize] first to avoid a panic on a truncated buffer.
func (tfrm Frame) Payload() []byte {
	return tfrm.buf[tfrm.HeaderLength():]
}

// ValidateSize checks the header length field against the actual buffer
// length and records an error on the validator if they are inconsistent.
func (tfrm Frame) ValidateSize(v *wire.Validator) {
	off := tfrm.HeaderLength()
	if off < HeaderLen || off > len(tfrm.RawData()) {
		v.AddError(errShortBuf)
	}
}
