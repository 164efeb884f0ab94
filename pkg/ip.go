package pkg

import (
	"fmt"
	"net/http"
	"net/netip"
	"strings"
)

var dockerBridges = netip.MustParsePrefix("172.16.0.0/12")

// IPIsLocal reports whether addr (with or without port) is a loopback address
// or the gateway of a docker bridge network, i.e. the request came from this host.
func IPIsLocal(addr string) bool {
	ip, ok := parseAddr(addr)
	if !ok {
		return false
	}
	if ip.IsLoopback() {
		return true
	}
	if !dockerBridges.Contains(ip) {
		return false
	}
	octets := ip.As4()
	return octets[2] == 0 && octets[3] == 1
}

// ReadUserIP returns the client ip, trusting the reverse proxy headers first.
// Requests from this host all map to "localhost".
func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		// first entry is the originating client
		ipAddr = strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-For"), ",")[0])
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	ip, ok := parseAddr(ipAddr)
	if !ok {
		return "", fmt.Errorf("ip addr %s is invalid", ipAddr)
	}
	if IPIsLocal(ipAddr) {
		return "localhost", nil
	}
	return ip.String(), nil
}

func parseAddr(addr string) (netip.Addr, bool) {
	if addrPort, err := netip.ParseAddrPort(addr); err == nil {
		return addrPort.Addr().Unmap(), true
	}
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return netip.Addr{}, false
	}
	return ip.Unmap(), true
}
