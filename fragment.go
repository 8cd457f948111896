package sixlowpan

import (
	"encoding/binary"
	"log/slog"

	"github.com/soypat/sixlowpan/internal"
	"github.com/soypat/sixlowpan/wire"
)

// Fragment dispatch top-5-bit values, per RFC 4944 §5.3.
const (
	frag1Dispatch = 0b11000
	fragNDispatch = 0b11100

	frag1HeaderLen = 4
	fragNHeaderLen = 5
)

// datagramSizeMask keeps the low 11 bits of the dispatch/size word.
const datagramSizeMask = 0x07ff

func fragDispatchWord(dispatch uint8, datagramSize int) uint16 {
	return uint16(dispatch)<<11 | uint16(datagramSize)&datagramSizeMask
}

// fragmentDatagram splits a datagram too large for one frame into a FRAG1
// frame followed by as many FRAGN frames as needed, per RFC 4944 §5.3.
// frame0 is the already-allocated first frame, into which the MAC header has not
// yet been written and whose buf[macHdrLen:s.frameHdrlen] already holds
// the compressed/uncompressed headers written by the dispatch step.
// payload is the application data following those headers; it is copied
// across frame0 and as many FRAGN frames as needed.
func (ifc *Interface) fragmentDatagram(s *ScratchState, frame0 *FrameBuf, payload []byte, destAddr wire.LinkAddr, destPANID uint16, macHdrLen int) error {
	capacity := ifc.Config.FrameCapacity
	buflen := len(payload)
	datagramSize := buflen + s.uncompHdrlen
	tag := ifc.DgramTag

	internal.LogAttrs(s.Log, slog.LevelInfo, "sixlowpan: fragmenting datagram",
		slog.Int("datagram_size", datagramSize), slog.Int("tag", int(tag)),
		internal.SlogLinkAddr("dest", destAddr.Bytes()))

	macQuery := wire.MACHeaderQuery{OwnAddr: ifc.OwnAddr, DestAddr: destAddr, OwnPANID: ifc.OwnPANID, DestPANID: destPANID}
	written, err := ifc.Encoder.FrameCreate(macQuery, frame0.buf)
	if err != nil {
		return errMACHeaderQuery(err)
	}
	if written != macHdrLen {
		return errMACHeaderQuery(errEncoderLengthMismatch)
	}

	// Shift the already-written compressed headers right by frag1HeaderLen
	// to make room for the FRAG1 header between the MAC header and them.
	hdrSpan := s.frameHdrlen - macHdrLen
	copy(frame0.buf[macHdrLen+frag1HeaderLen:macHdrLen+frag1HeaderLen+hdrSpan], frame0.buf[macHdrLen:macHdrLen+hdrSpan])

	binary.BigEndian.PutUint16(frame0.buf[macHdrLen:macHdrLen+2], fragDispatchWord(frag1Dispatch, datagramSize))
	binary.BigEndian.PutUint16(frame0.buf[macHdrLen+2:macHdrLen+4], tag)
	s.frameHdrlen += frag1HeaderLen

	paysize := (capacity - s.frameHdrlen) &^ 7
	copy(frame0.buf[s.frameHdrlen:], payload[:paysize])
	frame0.len = paysize + s.frameHdrlen
	outlen := paysize

	ifc.Queue.pushInitial(frame0)

	for outlen < buflen {
		frame, err := ifc.Allocator.Get(false)
		if err != nil {
			ifc.Queue.Reset()
			return err
		}

		macQuery.FreshSeq = true
		written, err := ifc.Encoder.FrameCreate(macQuery, frame.buf)
		if err != nil {
			ifc.Queue.Reset()
			return errMACHeaderQuery(err)
		}

		copy(frame.buf[written+fragNHeaderLen:written+fragNHeaderLen+hdrSpan], frame0.buf[macHdrLen+frag1HeaderLen:macHdrLen+frag1HeaderLen+hdrSpan])

		binary.BigEndian.PutUint16(frame.buf[written:written+2], fragDispatchWord(fragNDispatch, datagramSize))
		binary.BigEndian.PutUint16(frame.buf[written+2:written+4], tag)
		frame.buf[written+4] = uint8(outlen >> 3)

		frameHdrlen := written + hdrSpan + fragNHeaderLen
		paysize = (capacity - frameHdrlen) &^ 7
		if remaining := buflen - outlen; remaining < paysize {
			paysize = remaining
		}
		copy(frame.buf[frameHdrlen:], payload[outlen:outlen+paysize])
		frame.len = frameHdrlen + paysize
		outlen += paysize

		ifc.Queue.pushFragment(frame)
	}

	ifc.DgramTag++
	return nil
}
