package clientip_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/apikit/pkg/clientip"
)

func TestFromRequest_Precedence(t *testing.T) {
	cases := []struct {
		name       string
		cf         string
		xff        string
		remoteAddr string
		want       string
	}{
		{"cf_wins", "203.0.113.9", "198.51.100.1, 10.0.0.1", "192.0.2.1:4321", "203.0.113.9"},
		{"xff_first_entry", "", "198.51.100.1, 10.0.0.1", "192.0.2.1:4321", "198.51.100.1"},
		{"xff_skips_empty_entries", "", " , ,198.51.100.7", "192.0.2.1:4321", "198.51.100.7"},
		{"xff_entries_trimmed", "", "  198.51.100.2  ", "192.0.2.1:4321", "198.51.100.2"},
		{"remote_addr_port_stripped", "", "", "192.0.2.1:4321", "192.0.2.1"},
		{"remote_addr_without_port", "", "", "192.0.2.1", "192.0.2.1"},
		{"nothing_available", "", "", "", ""},
		{"xff_all_blank_falls_through", "", " , ", "192.0.2.1:4321", "192.0.2.1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.cf != "" {
				req.Header.Set("CF-Connecting-IP", tc.cf)
			}
			if tc.xff != "" {
				req.Header.Set("X-Forwarded-For", tc.xff)
			}
			assert.Equal(t, tc.want, clientip.FromRequest(req))
		})
	}
}

func TestFromRequest_NilRequest(t *testing.T) {
	assert.Equal(t, "", clientip.FromRequest(nil))
}

func TestToUint32(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want uint32
	}{
		{"simple", "1.2.3.4", 0x01020304},
		{"loopback", "127.0.0.1", 0x7F000001},
		{"broadcast", "255.255.255.255", 0xFFFFFFFF},
		{"zero", "0.0.0.0", 0},
		{"trimmed", "  10.0.0.1 ", 0x0A000001},
		{"ipv6_rejected", "2001:db8::1", 0},
		{"ipv4_mapped_ipv6_rejected", "::ffff:1.2.3.4", 0},
		{"garbage", "not-an-ip", 0},
		{"empty", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, clientip.ToUint32(tc.in))
		})
	}
}
