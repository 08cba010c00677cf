package portal

import (
	"net/http/httptest"
	"testing"
)

func TestClientIPResolver(t *testing.T) {
	resolver, err := NewClientIPResolver([]string{"10.0.0.0/8", "192.168.1.1"})
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	cases := []struct {
		name   string
		remote string
		xff    string
		want   string
	}{
		{"direct client forging the header", "203.0.113.50:4000", "1.2.3.4", "203.0.113.50"},
		{"trusted proxy without header", "10.1.2.3:80", "", "10.1.2.3"},
		{"trusted proxy", "10.1.2.3:80", "198.51.100.7", "198.51.100.7"},
		{"spoofed left-most entry", "10.1.2.3:80", "1.2.3.4, 198.51.100.7", "198.51.100.7"},
		{"chain of trusted proxies", "192.168.1.1:80", "198.51.100.7, 10.9.9.9", "198.51.100.7"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/contact/", nil)
			req.RemoteAddr = tc.remote

			if tc.xff != "" {
				req.Header.Set(ForwardedForHeader, tc.xff)
			}

			if got := resolver.Resolve(req); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClientIPResolverDefaults(t *testing.T) {
	var resolver *ClientIPResolver

	req := httptest.NewRequest("POST", "/api/contact/", nil)
	req.RemoteAddr = "203.0.113.50:4000"
	req.Header.Set(ForwardedForHeader, "1.2.3.4")

	if got := resolver.Resolve(req); got != "203.0.113.50" {
		t.Fatalf("a nil resolver must use the peer, got %q", got)
	}

	if _, err := NewClientIPResolver([]string{"not-a-proxy"}); err == nil {
		t.Fatalf("expected an invalid proxy error")
	}
}
