// Package wire contains small shared wire-format types used across the
// ipv6, tcp, udp and mac154 packages: the IP protocol number, a validation
// accumulator, and the IEEE 802.15.4 link address.
package wire

// IPProto is the IP protocol number carried in the IPv6 Next Header field.
type IPProto uint8

// Protocol numbers relevant to 6LoWPAN outbound framing. Of these, only
// TCP, UDP and ICMPv6 are given compression/copy treatment by this core;
// see dispatch.go.
const (
	IPProtoHopByHop IPProto = 0  // hop-by-hop
	IPProtoICMP     IPProto = 1  // ICMP
	IPProtoTCP      IPProto = 6  // TCP
	IPProtoUDP      IPProto = 17 // UDP
	IPProtoICMPv6   IPProto = 58 // ICMPv6
)
