package ip

import (
	"encoding/hex"
	"net"
)

// IPv4Hex returns the first non-loopback IPv4 address encoded as 8 hex
// characters, or "" when none is available.
func IPv4Hex() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}

	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ipv4 := ipNet.IP.To4(); ipv4 != nil {
			return hex.EncodeToString(ipv4)
		}
	}

	return ""
}
