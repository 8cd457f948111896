package sixlowpan

// FrameLayout describes the byte regions of a constructed frame: the MAC
// header, the dispatch/compressed-header region, an optional fragment
// header, and the payload that follows. It is the Frame Layout
// Calculator the source computes implicitly through its frame_hdrlen
// arithmetic, made explicit here for logging and testing.
type FrameLayout struct {
	Capacity      int
	MACHeaderLen  int
	DispatchLen   int
	FragHeaderLen int
	PayloadOffset int
}

// PayloadCapacity returns how many payload bytes fit after the layout's
// fixed regions.
func (l FrameLayout) PayloadCapacity() int {
	return l.Capacity - l.PayloadOffset
}

// computeLayout derives a FrameLayout from the cursor state immediately
// after the header compressor/dispatch step, before any fragment header
// is inserted. fragmented selects FRAG1 framing (4 byte fragment header)
// over single-frame framing (none).
func computeLayout(capacity, macHdrLen, frameHdrlenAfterHeaders int, fragmented bool) FrameLayout {
	fragLen := 0
	if fragmented {
		fragLen = frag1HeaderLen
	}
	return FrameLayout{
		Capacity:      capacity,
		MACHeaderLen:  macHdrLen,
		DispatchLen:   frameHdrlenAfterHeaders - macHdrLen,
		FragHeaderLen: fragLen,
		PayloadOffset: frameHdrlenAfterHeaders + fragLen,
	}
}
