package portal

import (
	"fmt"
	"net/http"
	"net/netip"
	"strings"
)

// ClientIPResolver honours X-Forwarded-For only when the connected peer is one
// of the trusted proxies. A nil resolver trusts nobody.
type ClientIPResolver struct {
	trusted []netip.Prefix
}

// NewClientIPResolver accepts single addresses ("10.0.0.1") and CIDR ranges
// ("10.0.0.0/8").
func NewClientIPResolver(proxies []string) (*ClientIPResolver, error) {
	resolver := &ClientIPResolver{}

	for _, proxy := range proxies {
		proxy = strings.TrimSpace(proxy)

		if strings.Contains(proxy, "/") {
			prefix, err := netip.ParsePrefix(proxy)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy range [%s]: %w", proxy, err)
			}

			resolver.trusted = append(resolver.trusted, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy [%s]: %w", proxy, err)
		}

		resolver.trusted = append(resolver.trusted, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}

	return resolver, nil
}

func (c *ClientIPResolver) isTrusted(value string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(value))
	if err != nil {
		return false
	}

	addr = addr.Unmap()

	for _, prefix := range c.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}

	return false
}

// Resolve walks X-Forwarded-For from the right and returns the first hop that
// is not a trusted proxy.
func (c *ClientIPResolver) Resolve(r *http.Request) string {
	peer := ParseClientIP(r)

	if c == nil || len(c.trusted) == 0 || !c.isTrusted(peer) {
		return peer
	}

	xff := strings.TrimSpace(r.Header.Get(ForwardedForHeader))
	if xff == "" {
		return peer
	}

	hops := strings.Split(xff, ",")

	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])

		if hop == "" || c.isTrusted(hop) {
			continue
		}

		return hop
	}

	return peer
}
