package sixlowpan

import (
	"errors"
	"fmt"
)

var (
	// ErrOversize is returned when a datagram does not fit in a single
	// frame and [Config.FragEnabled] is false.
	ErrOversize = errors.New("sixlowpan: payload exceeds frame capacity and fragmentation is disabled")
	// ErrUnknownTransport is logged, not returned: an unrecognized
	// IPv6 next-header proceeds with dispatch+IPv6 header only, no
	// transport header copy, matching the source's inherited behavior.
	ErrUnknownTransport = errors.New("sixlowpan: unknown transport protocol")
	// ErrAllocationExhausted is returned when a bounded buffer
	// allocation attempt fails to obtain a frame in time.
	ErrAllocationExhausted = errors.New("sixlowpan: buffer allocation exhausted")

	errEncoderLengthMismatch = errors.New("sixlowpan: frame encoder wrote a header length different from its own query")
)

// errMACHeaderQuery wraps a frame encoder failure encountered while
// sizing or writing a MAC header.
func errMACHeaderQuery(err error) error {
	return fmt.Errorf("sixlowpan: mac header query failed: %w", err)
}
