package wire

import "strconv"

// String returns a human readable protocol name, or the numeric value for
// protocols this core does not give special treatment.
func (p IPProto) String() string {
	switch p {
	case IPProtoHopByHop:
		return "hop-by-hop"
	case IPProtoICMP:
		return "ICMP"
	case IPProtoTCP:
		return "TCP"
	case IPProtoUDP:
		return "UDP"
	case IPProtoICMPv6:
		return "ICMPv6"
	default:
		return "proto(" + strconv.Itoa(int(p)) + ")"
	}
}
