package sixlowpan

import "github.com/soypat/sixlowpan/wire"

// Compressor is the external contract for the HC1 and HC06 header
// compression schemes. Neither scheme's internals are implemented by
// this module, but any implementation satisfying this interface can be
// plugged into [Config.Compression] via [Interface.Compressor].
//
// Compress writes the compressed representation of the IPv6 and
// transport headers in datagram into frame, starting at s's current
// write cursor, and MUST advance s accordingly: the number of bytes
// consumed from datagram and the number of bytes written into frame.
type Compressor interface {
	Compress(s *ScratchState, datagram []byte, destAddr wire.LinkAddr, frame []byte) error
}
