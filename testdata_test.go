package sixlowpan

import (
	"encoding/binary"
	"errors"
	"math/rand"

	"github.com/soypat/sixlowpan/wire"
)

var errFakeEncoder = errors.New("fakeEncoder: induced failure")

// buildHeaders constructs a minimal valid IPv6 header immediately
// followed by a transport header, as the frame queuer expects in its
// headers argument.
func buildHeaders(proto wire.IPProto, tcpFlags uint16) []byte {
	switch proto {
	case wire.IPProtoUDP:
		buf := make([]byte, 40+8)
		buf[6] = byte(wire.IPProtoUDP)
		buf[7] = 64
		binary.BigEndian.PutUint16(buf[4:6], 8)
		return buf
	case wire.IPProtoICMPv6:
		buf := make([]byte, 40+8)
		buf[6] = byte(wire.IPProtoICMPv6)
		buf[7] = 64
		binary.BigEndian.PutUint16(buf[4:6], 8)
		return buf
	case wire.IPProtoTCP:
		buf := make([]byte, 40+20)
		buf[6] = byte(wire.IPProtoTCP)
		buf[7] = 64
		binary.BigEndian.PutUint16(buf[4:6], 20)
		buf[40+12] = 5 << 4 // offset = 5 words, no options
		binary.BigEndian.PutUint16(buf[40+12:40+14], uint16(5<<12)|tcpFlags)
		return buf
	default:
		buf := make([]byte, 40)
		buf[6] = byte(proto)
		buf[7] = 64
		return buf
	}
}

func randomPayload(r *rand.Rand, n int) []byte {
	buf := make([]byte, n)
	r.Read(buf)
	return buf
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// fakeEncoder is a deterministic [FrameEncoder] for tests that do not
// care about real MAC addressing, returning a fixed header length and
// filling it with a recognizable marker byte.
type fakeEncoder struct {
	headerLen int
	fail      bool
}

func (e *fakeEncoder) SendHeaderLen(wire.MACHeaderQuery) (int, error) {
	if e.fail {
		return 0, errFakeEncoder
	}
	return e.headerLen, nil
}

func (e *fakeEncoder) FrameCreate(q wire.MACHeaderQuery, frame []byte) (int, error) {
	if e.fail {
		return 0, errFakeEncoder
	}
	for i := 0; i < e.headerLen; i++ {
		frame[i] = 0xAA
	}
	return e.headerLen, nil
}
