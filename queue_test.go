package sixlowpan

import (
	"testing"

	"github.com/soypat/sixlowpan/ipv6"
	"github.com/soypat/sixlowpan/wire"
)

func TestQueueFramesBroadcastDestination(t *testing.T) {
	ifc := newTestInterface(t, 127, 11, 4)
	headers := buildHeaders(wire.IPProtoUDP, 0)
	payload := randomPayload(newRand(3), 10)
	dst, err := ipv6.NewFrame(headers)
	if err != nil {
		t.Fatal(err)
	}
	if err := ifc.QueueFrames(&dst, headers, payload, nil); err != nil {
		t.Fatal(err)
	}
	if ifc.Queue.Empty() {
		t.Fatal("expected one frame queued")
	}
}

func TestQueueFramesOversizeWithoutFragmentation(t *testing.T) {
	ifc := newTestInterface(t, 60, 11, 4)
	ifc.Config.FragEnabled = false
	headers := buildHeaders(wire.IPProtoUDP, 0)
	payload := randomPayload(newRand(4), 60)
	dst, err := ipv6.NewFrame(headers)
	if err != nil {
		t.Fatal(err)
	}
	err = ifc.QueueFrames(&dst, headers, payload, nil)
	if err != ErrOversize {
		t.Fatalf("err=%v want ErrOversize", err)
	}
	if !ifc.Queue.Empty() {
		t.Error("queue must be empty after a failed QueueFrames call")
	}
}

func TestQueueFramesEncoderFailureRollsBack(t *testing.T) {
	ifc := newTestInterface(t, 127, 11, 4)
	ifc.Encoder = &fakeEncoder{headerLen: 11, fail: true}
	headers := buildHeaders(wire.IPProtoUDP, 0)
	payload := randomPayload(newRand(5), 10)
	dst, err := ipv6.NewFrame(headers)
	if err != nil {
		t.Fatal(err)
	}
	err = ifc.QueueFrames(&dst, headers, payload, nil)
	if err == nil {
		t.Fatal("expected error from failing encoder")
	}
	if !ifc.Queue.Empty() {
		t.Error("queue must be empty after a failed QueueFrames call")
	}
}

func TestQueueFramesAllocationExhaustedMidFragmentation(t *testing.T) {
	// Pool holds exactly one buffer: enough for frame0, not for any FRAGN.
	ifc := newTestInterface(t, 100, 10, 1)
	headers := buildHeaders(wire.IPProtoUDP, 0)
	payload := randomPayload(newRand(6), 60)
	dst, err := ipv6.NewFrame(headers)
	if err != nil {
		t.Fatal(err)
	}
	err = ifc.QueueFrames(&dst, headers, payload, nil)
	if err != ErrAllocationExhausted {
		t.Fatalf("err=%v want ErrAllocationExhausted", err)
	}
	if !ifc.Queue.Empty() {
		t.Error("queue must be empty after a failed QueueFrames call")
	}
}

func TestQueueFramesUnknownTransportShipsWithoutTransportHeader(t *testing.T) {
	ifc := newTestInterface(t, 127, 11, 4)
	headers := buildHeaders(99, 0) // unrecognized next header
	payload := randomPayload(newRand(7), 10)
	dst, err := ipv6.NewFrame(headers)
	if err != nil {
		t.Fatal(err)
	}
	if err := ifc.QueueFrames(&dst, headers, payload, nil); err != nil {
		t.Fatalf("unknown transport must be non-fatal, got %v", err)
	}
	frames := ifc.Queue.Frames()
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	// MAC header + dispatch byte + 40-byte IPv6 header + payload only.
	if want := 11 + 1 + 40 + len(payload); frames[0].Len() != want {
		t.Errorf("frame len=%d want %d (no transport header)", frames[0].Len(), want)
	}
}

func TestQueueFramesTCPStreamEndClassification(t *testing.T) {
	ifc := newTestInterface(t, 127, 11, 4)
	headers := buildHeaders(wire.IPProtoTCP, uint16(tcpFlagFIN))
	payload := randomPayload(newRand(8), 10)
	dst, err := ipv6.NewFrame(headers)
	if err != nil {
		t.Fatal(err)
	}
	if err := ifc.QueueFrames(&dst, headers, payload, nil); err != nil {
		t.Fatal(err)
	}
	if ifc.Queue.Empty() {
		t.Fatal("expected a queued frame")
	}
	var s ScratchState
	s.reset(nil)
	ifc.classifyTCP(&s, headers)
	if got := PacketType(s.Attr(AttrPacketType)); got != PacketTypeStreamEnd {
		t.Errorf("packet type=%d want PacketTypeStreamEnd (%d)", got, PacketTypeStreamEnd)
	}
}

// tcpFlagFIN mirrors tcp.FlagFIN's bit value for building test headers
// without importing the tcp package's flag type into this file's literal.
const tcpFlagFIN = 1
