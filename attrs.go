package sixlowpan

// PktAttr indexes the per-datagram attribute array, mirroring the
// source's PACKETBUF_ATTR_* Rime attribute ids.
type PktAttr int

const (
	AttrMaxMACTransmissions PktAttr = iota
	AttrPacketType
	numPktAttrs
)

// PacketType is the value stored at [AttrPacketType], classifying a TCP
// datagram for the link layer.
type PacketType uint16

const (
	PacketTypeNone PacketType = iota
	PacketTypeStream
	PacketTypeStreamEnd
)

// PktAddr indexes the per-datagram address array, mirroring the source's
// PACKETBUF_ADDR_* Rime address ids.
type PktAddr int

const (
	AddrSender PktAddr = iota
	AddrReceiver
	numPktAddrs
)
