package util

import (
	"encoding/binary"
	"net"
)

// IPv4ToUint32 returns the 32-bit integer value of an IPv4 address.
// ok is false for anything that does not parse as IPv4.
func IPv4ToUint32(ipStr string) (value uint32, ok bool) {
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return 0, false
	}
	ip = ip.To4()
	if ip == nil {
		return 0, false // IPv6 not supported
	}
	return binary.BigEndian.Uint32(ip), true
}

// SequentialUint32 reports whether two converted IPv4 addresses differ by
// exactly one, i.e. the near and far end of a /31 or the two hosts of a /30.
func SequentialUint32(x, y uint32) bool {
	if x > y {
		return x-y == 1
	}
	return y-x == 1
}
