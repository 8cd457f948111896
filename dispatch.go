package sixlowpan

import (
	"log/slog"

	"github.com/soypat/sixlowpan/internal"
	"github.com/soypat/sixlowpan/ipv6"
	"github.com/soypat/sixlowpan/tcp"
	"github.com/soypat/sixlowpan/udp"
	"github.com/soypat/sixlowpan/wire"
)

// ipv6DispatchByte identifies an uncompressed IPv6 header follows, per
// RFC 4944 §5.1.
const ipv6DispatchByte = 0x41

const icmpv6HeaderLen = 8

// transportHeaderSize maps an IPv6 next-header value to a function that
// computes the transport header's size from its first bytes.
var transportHeaderSize = map[wire.IPProto]func(transportHdr []byte) (int, bool){
	wire.IPProtoTCP: tcpHeaderSize,
	wire.IPProtoUDP: func([]byte) (int, bool) { return udp.HeaderLen, true },
	wire.IPProtoICMPv6: func([]byte) (int, bool) {
		return icmpv6HeaderLen, true
	},
}

func tcpHeaderSize(transportHdr []byte) (int, bool) {
	tfrm, err := tcp.NewFrame(transportHdr)
	if err != nil {
		return 0, false
	}
	return tfrm.HeaderLength(), true
}

// writeUncompressedDispatch is the "no compression" dispatch path: it
// writes the dispatch byte, copies the 40-byte IPv6 header, then copies
// the transport header sized per transportHeaderSize. An unrecognized
// next header is logged and treated as non-fatal: the datagram still
// ships with only dispatch+IPv6 header copied.
func writeUncompressedDispatch(s *ScratchState, datagram []byte, frame []byte) error {
	frame[s.frameHdrlen] = ipv6DispatchByte
	s.frameHdrlen++

	copy(frame[s.frameHdrlen:], datagram[:ipv6.HeaderLen])
	s.frameHdrlen += ipv6.HeaderLen
	s.uncompHdrlen += ipv6.HeaderLen

	hdr, err := ipv6.NewFrame(datagram)
	if err != nil {
		return err
	}
	proto := hdr.NextHeader()
	sizeFn, ok := transportHeaderSize[proto]
	if !ok {
		receiver := s.Addr(AddrReceiver)
		internal.LogAttrs(s.Log, slog.LevelWarn, "sixlowpan: unknown transport protocol, shipping without transport header",
			slog.Int("proto", int(proto)), internal.SlogLinkAddr("receiver", receiver.Bytes()))
		return nil
	}

	rest := datagram[s.uncompHdrlen:]
	protosize, ok := sizeFn(rest)
	if !ok {
		receiver := s.Addr(AddrReceiver)
		internal.LogAttrs(s.Log, slog.LevelWarn, "sixlowpan: malformed transport header, shipping without transport header",
			slog.Int("proto", int(proto)), internal.SlogLinkAddr("receiver", receiver.Bytes()))
		return nil
	}

	copy(frame[s.frameHdrlen:], rest[:protosize])
	s.frameHdrlen += protosize
	s.uncompHdrlen += protosize
	return nil
}
