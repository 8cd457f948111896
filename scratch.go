package sixlowpan

import (
	"log/slog"

	"github.com/soypat/sixlowpan/wire"
)

// ScratchState holds the values the source kept as process-wide globals
// (g_uncomp_hdrlen, g_frame_hdrlen, g_pktattrs, g_pktaddrs) guarded by the
// network lock. Here it is scoped to one call of [Interface.QueueFrames]
// instead, so nothing survives between calls and no lock is required for
// it.
type ScratchState struct {
	// uncompHdrlen is the count of bytes already consumed from the
	// uncompressed datagram input.
	uncompHdrlen int
	// frameHdrlen is the write cursor into the current frame's buffer.
	frameHdrlen int
	pktattrs    [numPktAttrs]uint16
	pktaddrs    [numPktAddrs]wire.LinkAddr
	// Log is the logger this datagram's processing should use; it is
	// copied from the owning Interface so every step can log without a
	// global, and may be nil.
	Log *slog.Logger
}

// reset zeroes the scratch state for a new call.
func (s *ScratchState) reset(log *slog.Logger) {
	*s = ScratchState{Log: log}
}

// Attr returns the value stored for attribute id.
func (s *ScratchState) Attr(id PktAttr) uint16 { return s.pktattrs[id] }

func (s *ScratchState) setAttr(id PktAttr, v uint16) { s.pktattrs[id] = v }

// Addr returns the link address stored for address id.
func (s *ScratchState) Addr(id PktAddr) wire.LinkAddr { return s.pktaddrs[id] }

func (s *ScratchState) setAddr(id PktAddr, v wire.LinkAddr) { s.pktaddrs[id] = v }

// FrameHdrlen returns the current write cursor into the frame buffer.
func (s *ScratchState) FrameHdrlen() int { return s.frameHdrlen }

// UncompHdrlen returns the count of bytes already consumed from the
// uncompressed datagram input.
func (s *ScratchState) UncompHdrlen() int { return s.uncompHdrlen }

// Advance moves the frame write cursor forward by frameBytes and the
// uncompressed-input cursor forward by datagramBytes. External
// [Compressor] implementations call this after writing their compressed
// headers, in place of direct field access.
func (s *ScratchState) Advance(frameBytes, datagramBytes int) {
	s.frameHdrlen += frameBytes
	s.uncompHdrlen += datagramBytes
}
