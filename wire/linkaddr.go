package wire

import (
	"errors"

	"github.com/soypat/sixlowpan/internal"
)

var errBadLinkAddrLen = errors.New("wire: link address must be 2 or 8 bytes")

// LinkAddr is an IEEE 802.15.4 link-layer address: either a 2-byte short
// address or an 8-byte extended address. The zero value is the all-zero
// extended address, used by this core to represent broadcast.
type LinkAddr struct {
	buf   [8]byte
	short bool
}

// NewLinkAddr copies b into a LinkAddr. b must be 2 or 8 bytes long.
func NewLinkAddr(b []byte) (LinkAddr, error) {
	var a LinkAddr
	switch len(b) {
	case 2:
		a.short = true
		copy(a.buf[6:], b)
	case 8:
		copy(a.buf[:], b)
	default:
		return LinkAddr{}, errBadLinkAddrLen
	}
	return a, nil
}

// Broadcast returns the all-zero extended address this core substitutes
// for a nil destination address.
func Broadcast() LinkAddr { return LinkAddr{} }

// IsShort reports whether the address is a 2-byte short address.
func (a LinkAddr) IsShort() bool { return a.short }

// Len returns 2 for short addresses, 8 for extended addresses.
func (a LinkAddr) Len() int {
	if a.short {
		return 2
	}
	return 8
}

// Bytes returns the address bytes, trailing-aligned: 2 bytes for a short
// address, 8 for an extended one.
func (a *LinkAddr) Bytes() []byte { return a.buf[8-a.Len():] }

// IsZero reports whether every byte of the address is zero.
func (a LinkAddr) IsZero() bool {
	return internal.IsZeroed(a.buf[:]...)
}
