package portal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
)

// SplitCommaList turns "Python, Django,React" into ["Python","Django","React"].
// Blank items are dropped, so an empty input yields an empty slice.
func SplitCommaList(value string) []string {
	out := make([]string, 0)

	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

func CloseWithLog(c io.Closer) {
	if c == nil {
		return
	}

	if err := c.Close(); err != nil {
		slog.Error("failed to close resource", "err", err)
	}
}

func Sha256Hex(b []byte) string {
	h := sha256.Sum256(b)

	return hex.EncodeToString(h[:])
}

// ParseClientIP returns the host of the connected peer. Forwarding headers
// are ignored; see ClientIPResolver.
func ParseClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}

	return strings.TrimSpace(r.RemoteAddr)
}

// ParseValidIP returns nil unless value is a literal IPv4/IPv6 address.
func ParseValidIP(value string) *string {
	ip := net.ParseIP(strings.TrimSpace(value))
	if ip == nil {
		return nil
	}

	normalised := ip.String()

	return &normalised
}

// ReadWithSizeLimit reads from reader, failing when the payload exceeds the
// limit (5MB unless overridden).
func ReadWithSizeLimit(reader io.Reader, maxSize ...int64) ([]byte, error) {
	if reader == nil {
		return nil, io.ErrUnexpectedEOF
	}

	const defaultMaxSize int64 = 5 * 1024 * 1024

	limit := defaultMaxSize
	if len(maxSize) > 0 && maxSize[0] > 0 {
		limit = maxSize[0]
	}

	data, err := io.ReadAll(&io.LimitedReader{R: reader, N: limit + 1})
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if int64(len(data)) > limit {
		return nil, fmt.Errorf("read exceeds size limit: %d", limit)
	}

	return data, nil
}
