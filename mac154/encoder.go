// Package mac154 is a reference IEEE 802.15.4-2006 MAC header encoder. It
// satisfies the frame assembly core's frame-encoder contract
// (wire.MACHeaderQuery in, header bytes out) so the module is runnable
// and testable end-to-end; its internal framing detail beyond that
// contract is not authoritative for any other package.
package mac154

import (
	"encoding/binary"
	"errors"

	"github.com/soypat/sixlowpan/wire"
)

// Frame type and addressing mode values from the frame control field.
const (
	frameTypeData = 0b001

	addrModeNone     = 0b00
	addrModeShort    = 0b10
	addrModeExtended = 0b11
)

const frameVersion2006 = 0b01

var errBufferTooSmall = errors.New("mac154: buffer too small for header")

// Encoder writes IEEE 802.15.4 MAC headers. It tracks a data sequence
// number, incremented on every header it writes: every physical frame,
// including each fragment of one datagram, gets its own DSN, since the
// DSN identifies a MAC-layer transmission/ACK, not a datagram.
// [wire.MACHeaderQuery.FreshSeq] is not consulted by this reference
// encoder for that reason; it remains part of the shared query for
// encoders that do cache a sequence number across calls.
//
// AckRequest controls whether the AR bit is set in the frame control
// field; it is off by default since link-layer ACK is outside this
// module's scope.
type Encoder struct {
	seq        uint8
	AckRequest bool
}

// addrMode reports the addressing mode for a. Every LinkAddr the core
// hands the encoder, including the substituted all-zero broadcast
// address, is a real 2 or 8 byte address to place on the wire — there is
// no "omitted address" case in this core's usage.
func addrMode(a wire.LinkAddr) uint8 {
	if a.IsShort() {
		return addrModeShort
	}
	return addrModeExtended
}

func addrLen(mode uint8) int {
	switch mode {
	case addrModeShort:
		return 2
	case addrModeExtended:
		return 8
	default:
		return 0
	}
}

// headerLen computes the MAC header length for q without writing anything.
// PAN ID compression (omitting the source PAN ID field) applies whenever
// source and destination PAN IDs match, per 802.15.4's PAN ID Compression
// bit.
func headerLen(q wire.MACHeaderQuery) int {
	dstMode := addrMode(q.DestAddr)
	srcMode := addrMode(q.OwnAddr)
	n := 3 // frame control field (2) + sequence number (1)
	if dstMode != addrModeNone {
		n += 2 + addrLen(dstMode) // dest PAN ID + dest address
	}
	if srcMode != addrModeNone {
		if q.OwnPANID != q.DestPANID || dstMode == addrModeNone {
			n += 2 // source PAN ID, omitted under PAN ID compression
		}
		n += addrLen(srcMode)
	}
	return n
}

// SendHeaderLen reports the number of bytes [Encoder.FrameCreate] will
// write for q. It is a pure query and does not mutate the encoder.
func (e *Encoder) SendHeaderLen(q wire.MACHeaderQuery) (int, error) {
	return headerLen(q), nil
}

// FrameCreate writes the MAC header described by q at frame[0:] and
// returns the number of bytes written, which always equals the value
// [Encoder.SendHeaderLen] reports for the same q.
func (e *Encoder) FrameCreate(q wire.MACHeaderQuery, frame []byte) (int, error) {
	n := headerLen(q)
	if len(frame) < n {
		return 0, errBufferTooSmall
	}
	dstMode := addrMode(q.DestAddr)
	srcMode := addrMode(q.OwnAddr)
	panCompressed := srcMode != addrModeNone && dstMode != addrModeNone && q.OwnPANID == q.DestPANID

	var fcf uint16
	fcf |= frameTypeData
	if e.AckRequest {
		fcf |= 1 << 5
	}
	if panCompressed {
		fcf |= 1 << 6
	}
	fcf |= uint16(dstMode) << 10
	fcf |= frameVersion2006 << 12
	fcf |= uint16(srcMode) << 14
	binary.LittleEndian.PutUint16(frame[0:2], fcf)

	e.seq++
	frame[2] = e.seq

	off := 3
	if dstMode != addrModeNone {
		binary.LittleEndian.PutUint16(frame[off:off+2], q.DestPANID)
		off += 2
		off += copyAddr(frame[off:], q.DestAddr)
	}
	if srcMode != addrModeNone {
		if !panCompressed {
			binary.LittleEndian.PutUint16(frame[off:off+2], q.OwnPANID)
			off += 2
		}
		off += copyAddr(frame[off:], q.OwnAddr)
	}
	return off, nil
}

func copyAddr(dst []byte, a wire.LinkAddr) int {
	b := a.Bytes()
	// 802.15.4 addresses are little-endian on the wire.
	for i := range b {
		dst[i] = b[len(b)-1-i]
	}
	return len(b)
}
