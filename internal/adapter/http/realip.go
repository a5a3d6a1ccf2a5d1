package httpadapter

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// clientIP returns the address of the visitor. Proxy headers are honoured
// only when trustProxy is set; otherwise the TCP peer is used.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if ip := parseIP(r.Header.Get("Cf-Connecting-Ip")); ip != "" {
			return ip
		}
		if ip := firstForwarded(r.Header.Get("X-Forwarded-For")); ip != "" {
			return ip
		}
		if ip := parseIP(r.Header.Get("X-Real-Ip")); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return parseIP(host)
}

// firstForwarded returns the left-most valid address of an X-Forwarded-For
// header, which is the original client.
func firstForwarded(header string) string {
	for _, part := range strings.Split(header, ",") {
		if ip := parseIP(part); ip != "" {
			return ip
		}
	}
	return ""
}

func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}
