package sixlowpan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/soypat/sixlowpan/ipv6"
	"github.com/soypat/sixlowpan/wire"
)

// reassemble walks a queued datagram's frames and rebuilds the headers and
// application payload a peer decoder would recover, mirroring the layout
// fragmentDatagram and writeUncompressedDispatch write.
func reassemble(frames []*FrameBuf, macHdrLen, headersLen int) (headers, payload []byte) {
	f0 := frames[0]
	word := uint16(f0.Bytes()[macHdrLen])<<8 | uint16(f0.Bytes()[macHdrLen+1])
	dispatch := word >> 11

	if dispatch != frag1Dispatch {
		// Unfragmented: dispatch byte, then headers, then payload.
		headers = f0.Bytes()[macHdrLen+1 : macHdrLen+1+headersLen]
		payload = append([]byte{}, f0.Bytes()[macHdrLen+1+headersLen:]...)
		return headers, payload
	}

	hdrSpan := 1 + headersLen
	headers = f0.Bytes()[macHdrLen+frag1HeaderLen+1 : macHdrLen+frag1HeaderLen+hdrSpan]
	payload = append(payload, f0.Bytes()[macHdrLen+frag1HeaderLen+hdrSpan:]...)
	for _, f := range frames[1:] {
		payload = append(payload, f.Bytes()[macHdrLen+fragNHeaderLen+hdrSpan:]...)
	}
	return headers, payload
}

func TestQueueFramesProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		macHdrLen := rapid.IntRange(5, 15).Draw(t, "macHdrLen")
		capacity := macHdrLen + rapid.IntRange(80, 300).Draw(t, "capacityExtra")
		payloadLen := rapid.IntRange(0, 500).Draw(t, "payloadLen")

		cfg := Config{
			FrameCapacity:     capacity,
			MTU:               capacity * 64,
			Compression:       CompressionNone,
			FragEnabled:       true,
			MaxMACRetransmits: 3,
			BufferPoolSize:    64,
		}
		own, _ := wire.NewLinkAddr([]byte{1, 2, 3, 4, 5, 6, 7, 8})
		ifc := &Interface{
			OwnAddr:   own,
			OwnPANID:  0x1234,
			Config:    cfg,
			Allocator: NewPool(64, capacity),
			Encoder:   &fakeEncoder{headerLen: macHdrLen},
		}

		headers := buildHeaders(wire.IPProtoUDP, 0)
		payload := randomPayload(newRand(int64(capacity)*10_000+int64(payloadLen)), payloadLen)
		dst, err := ipv6.NewFrame(headers)
		assert.NoError(t, err)

		startTag := ifc.DgramTag
		err = ifc.QueueFrames(&dst, headers, payload, nil)
		assert.NoError(t, err)

		frames := ifc.Queue.Frames()
		assert.NotEmpty(t, frames)

		for _, f := range frames {
			assert.LessOrEqual(t, f.Len(), capacity, "P1: frame must not exceed capacity")
		}

		fragmented := len(frames) > 1
		if fragmented {
			assert.Equal(t, startTag+1, ifc.DgramTag, "P6: tag advances by exactly one per fragmented datagram")
			for _, f := range frames[:len(frames)-1] {
				hdrSpan := 1 + len(headers)
				var paysize int
				if f == frames[0] {
					paysize = f.Len() - (macHdrLen + frag1HeaderLen + hdrSpan)
				} else {
					paysize = f.Len() - (macHdrLen + fragNHeaderLen + hdrSpan)
				}
				assert.Zero(t, paysize%8, "P2: non-final fragment payload size must be a multiple of 8")
			}
		} else {
			assert.Equal(t, startTag, ifc.DgramTag, "tag must not advance for an unfragmented datagram")
		}

		gotHeaders, gotPayload := reassemble(frames, macHdrLen, len(headers))
		assert.Equal(t, headers, gotHeaders, "P5: reassembled headers must match the original")
		assert.Equal(t, payload, gotPayload, "P5: reassembled payload must match the original")
	})
}
