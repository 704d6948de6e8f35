// Package clientip extracts the caller's address from proxy headers with a
// fixed precedence: CF-Connecting-IP, then the first entry of
// X-Forwarded-For, then the transport-level peer address. It also packs
// IPv4 addresses into 32-bit integers for range lookups.
package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

const (
	headerCFConnectingIP = "CF-Connecting-IP"
	headerXForwardedFor  = "X-Forwarded-For"
)

// FromRequest returns the client address for r, or "" when nothing usable
// is present. X-Forwarded-For is comma-split and the first non-empty entry
// wins; the peer address has its port stripped when one is attached.
func FromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	if ip := strings.TrimSpace(r.Header.Get(headerCFConnectingIP)); ip != "" {
		return ip
	}
	if xff := r.Header.Get(headerXForwardedFor); xff != "" {
		for _, part := range strings.Split(xff, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if r.RemoteAddr == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// ToUint32 packs an IPv4 address big-endian (b0<<24 | b1<<16 | b2<<8 | b3).
// Parse failures and non-IPv4 addresses yield 0.
func ToUint32(ip string) uint32 {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil || !addr.Is4() {
		return 0
	}
	b := addr.As4()
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
