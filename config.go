// Package sixlowpan assembles an outbound IPv6 datagram into one or more
// IEEE 802.15.4 link-layer frames: it selects a header dispatch
// (uncompressed IPv6, or a configured external compressor), computes
// frame layout, and fragments the datagram when it does not fit in a
// single frame.
package sixlowpan

import (
	"errors"
	"fmt"
)

// CompressionScheme selects which header dispatch the frame queuer uses
// for a datagram at or above [Config.CompressionThresh]. Below the threshold,
// and always when set to [CompressionNone], the uncompressed IPv6
// dispatch writer runs instead.
type CompressionScheme uint8

const (
	CompressionNone CompressionScheme = iota
	CompressionHC1
	CompressionHC06
)

func (c CompressionScheme) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionHC1:
		return "HC1"
	case CompressionHC06:
		return "HC06"
	default:
		return fmt.Sprintf("CompressionScheme(%d)", uint8(c))
	}
}

// Config holds the build-time parameters the source expressed as
// CONFIG_NET_6LOWPAN_* preprocessor macros. Go has no preprocessor, so
// these become runtime fields checked by [Config.Validate].
type Config struct {
	// FrameCapacity is the maximum size in bytes of a single link-layer
	// frame buffer, roughly 127 for IEEE 802.15.4.
	FrameCapacity int
	// MTU is the maximum size in bytes of a whole, post-reassembly
	// datagram this interface will originate.
	MTU int
	// Compression selects the header dispatch scheme.
	Compression CompressionScheme
	// CompressionThresh is the minimum payload size, in bytes, at which
	// Compression is attempted instead of the uncompressed dispatch.
	CompressionThresh int
	// FragEnabled allows the fragment planner to split a datagram across
	// multiple frames. If false, a datagram that does not fit in one
	// frame fails with [ErrOversize].
	FragEnabled bool
	// MaxMACRetransmits is recorded into every datagram's scratch
	// attributes ([AttrMaxMACTransmissions]). That scratch state is local
	// to one [Interface.QueueFrames] call and is not handed to the link
	// driver.
	MaxMACRetransmits uint16
	// BufferPoolSize bounds how many frame buffers [Pool] will hold.
	BufferPoolSize int
}

var (
	errBadFrameCapacity = errors.New("sixlowpan: FrameCapacity must be positive")
	errBadMTU           = errors.New("sixlowpan: MTU must be positive")
	errBadPoolSize      = errors.New("sixlowpan: BufferPoolSize must be positive")
	errMTUExceedsPool   = errors.New("sixlowpan: MTU exceeds FrameCapacity * BufferPoolSize")
)

// Validate checks the configuration for internal consistency. The source
// enforces "MTU > capacity * buffer_pool_size is a build error" with the
// preprocessor; here it is a runtime check performed once, in
// [NewInterface].
func (c Config) Validate() error {
	if c.FrameCapacity <= 0 {
		return errBadFrameCapacity
	}
	if c.MTU <= 0 {
		return errBadMTU
	}
	if c.BufferPoolSize <= 0 {
		return errBadPoolSize
	}
	if c.MTU > c.FrameCapacity*c.BufferPoolSize {
		return errMTUExceedsPool
	}
	return nil
}
