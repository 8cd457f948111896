package internal

import (
	"encoding/binary"
	"log/slog"
)

// SlogLinkAddr returns a slog.Attr for an IEEE 802.15.4 link address, packed
// into a uint64 without allocating a string. addr may be 2 (short) or 8
// (extended) bytes; longer inputs are truncated to their trailing 8 bytes.
func SlogLinkAddr(key string, addr []byte) slog.Attr {
	var buf [8]byte
	if len(addr) > len(buf) {
		addr = addr[len(addr)-len(buf):]
	}
	copy(buf[len(buf)-len(addr):], addr)
	return slog.Uint64(key, binary.BigEndian.Uint64(buf[:]))
}
