package sixlowpan

import (
	"log/slog"

	"github.com/soypat/sixlowpan/internal"
	"github.com/soypat/sixlowpan/ipv6"
	"github.com/soypat/sixlowpan/tcp"
	"github.com/soypat/sixlowpan/wire"
)

// FrameEncoder is the external contract the frame queuer uses to size and
// write the IEEE 802.15.4 MAC header. SendHeaderLen is a pure query;
// FrameCreate writes the header at frame[0:] and MUST return exactly the
// length SendHeaderLen reported for the same query. [mac154.Encoder]
// provides a reference implementation.
type FrameEncoder interface {
	SendHeaderLen(q wire.MACHeaderQuery) (int, error)
	FrameCreate(q wire.MACHeaderQuery, frame []byte) (int, error)
}

// Interface is the frame queuer's owned state: the Go equivalent of the
// source's ieee802154_driver_s fields this core actually touches.
type Interface struct {
	OwnAddr  wire.LinkAddr
	OwnPANID uint16
	// DestPANID, when non-zero, overrides the default assumption that
	// every destination shares OwnPANID. The source hardcodes this
	// assumption with a REVISIT comment; this field resolves it while
	// keeping the assumption as the default.
	DestPANID uint16
	// DgramTag is incremented once per fragmented datagram, never per
	// frame, and wraps on overflow.
	DgramTag uint16

	Queue Queue

	Config     Config
	Log        *slog.Logger
	Allocator  BufferAllocator
	Compressor Compressor
	Encoder    FrameEncoder
}

// NewInterface validates cfg and returns a ready-to-use Interface.
func NewInterface(ownAddr wire.LinkAddr, ownPANID uint16, cfg Config, enc FrameEncoder, alloc BufferAllocator) (*Interface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Interface{
		OwnAddr:   ownAddr,
		OwnPANID:  ownPANID,
		Config:    cfg,
		Encoder:   enc,
		Allocator: alloc,
	}, nil
}

// destPANID returns the PAN ID every frame of one datagram uses, uniform
// across FRAG1 and FRAGN (the source's FRAGN path erroneously queries the
// encoder with the source PAN ID instead; see DESIGN.md).
func (ifc *Interface) destPANID() uint16 {
	if ifc.DestPANID != 0 {
		return ifc.DestPANID
	}
	return ifc.OwnPANID
}

func (ifc *Interface) classifyTCP(s *ScratchState, headers []byte) {
	tfrm, err := tcp.NewFrame(headers[ipv6.HeaderLen:])
	if err != nil {
		return
	}
	_, flags := tfrm.OffsetAndFlags()
	switch {
	case flags.HasAny(tcp.FlagFIN):
		s.setAttr(AttrPacketType, uint16(PacketTypeStreamEnd))
	case flags.Mask() != tcp.FlagACK:
		s.setAttr(AttrPacketType, uint16(PacketTypeStream))
	}
}

// QueueFrames assembles an outbound IPv6 datagram into one or more
// link-layer frames queued for transmission. headers is the
// caller's IPv6 header immediately followed by its transport header
// (exactly as many bytes as dst's next-header needs — 48 for UDP, 48 for
// ICMPv6, 40+4*dataOffset for TCP); payload is the application data that
// follows. On success ifc.Queue holds one or more frames ready for
// transmission by the link driver; on any error ifc.Queue is left empty.
func (ifc *Interface) QueueFrames(dst *ipv6.Frame, headers, payload []byte, destAddr *wire.LinkAddr) (err error) {
	defer func() {
		if err != nil {
			ifc.Queue.Reset()
		}
	}()

	var s ScratchState
	s.reset(ifc.Log)
	s.setAttr(AttrMaxMACTransmissions, ifc.Config.MaxMACRetransmits)

	if dst.NextHeader() == wire.IPProtoTCP {
		ifc.classifyTCP(&s, headers)
	}

	dest := wire.Broadcast()
	if destAddr != nil {
		dest = *destAddr
	}
	s.setAddr(AddrSender, ifc.OwnAddr)
	s.setAddr(AddrReceiver, dest)

	frame0, err := ifc.Allocator.Get(true)
	if err != nil {
		return err
	}

	destPANID := ifc.destPANID()
	macQuery := wire.MACHeaderQuery{OwnAddr: ifc.OwnAddr, DestAddr: dest, OwnPANID: ifc.OwnPANID, DestPANID: destPANID}
	macHdrLen, err := ifc.Encoder.SendHeaderLen(macQuery)
	if err != nil {
		ifc.Allocator.Put(frame0)
		return errMACHeaderQuery(err)
	}
	s.frameHdrlen = macHdrLen

	if ifc.Config.Compression != CompressionNone && len(payload) >= ifc.Config.CompressionThresh {
		err = ifc.Compressor.Compress(&s, headers, dest, frame0.buf)
	} else {
		err = writeUncompressedDispatch(&s, headers, frame0.buf)
	}
	if err != nil {
		ifc.Allocator.Put(frame0)
		return err
	}

	fragmented := len(payload) > ifc.Config.FrameCapacity-s.frameHdrlen
	layout := computeLayout(ifc.Config.FrameCapacity, macHdrLen, s.frameHdrlen, fragmented)
	internal.LogAttrs(ifc.Log, slog.LevelDebug, "sixlowpan: frame layout",
		slog.Int("mac_header_len", layout.MACHeaderLen),
		slog.Int("dispatch_len", layout.DispatchLen),
		slog.Int("frag_header_len", layout.FragHeaderLen),
		slog.Bool("fragmented", fragmented))

	if fragmented {
		if !ifc.Config.FragEnabled {
			ifc.Allocator.Put(frame0)
			return ErrOversize
		}
		return ifc.fragmentDatagram(&s, frame0, payload, dest, destPANID, macHdrLen)
	}
	return ifc.singleFramePath(&s, frame0, payload, dest, destPANID, macHdrLen)
}

// singleFramePath writes the MAC header and copies payload into the one
// frame needed when a datagram fits without fragmentation.
func (ifc *Interface) singleFramePath(s *ScratchState, frame *FrameBuf, payload []byte, dest wire.LinkAddr, destPANID uint16, macHdrLen int) error {
	macQuery := wire.MACHeaderQuery{OwnAddr: ifc.OwnAddr, DestAddr: dest, OwnPANID: ifc.OwnPANID, DestPANID: destPANID}
	written, err := ifc.Encoder.FrameCreate(macQuery, frame.buf)
	if err != nil {
		return errMACHeaderQuery(err)
	}
	if written != macHdrLen {
		return errMACHeaderQuery(errEncoderLengthMismatch)
	}
	copy(frame.buf[s.frameHdrlen:], payload)
	frame.len = s.frameHdrlen + len(payload)
	ifc.Queue.pushInitial(frame)
	return nil
}
