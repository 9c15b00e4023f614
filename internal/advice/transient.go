package advice

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"
)

// classify maps a provider attempt error onto the outcome taxonomy.
// Missing credentials and auth/quota rejections are "unavailable": the
// provider cannot serve us right now. Everything else on a live attempt is
// a transport failure.
func classify(err error) Status {
	if errors.Is(err, ErrUnavailable) {
		return StatusUnavailable
	}
	if isAuthOrQuota(err) {
		return StatusUnavailable
	}
	return StatusTransport
}

// isAuthOrQuota sniffs HTTP status markers out of wrapped client errors.
// The hand-rolled clients embed "unexpected status <code>" in their error
// text.
func isAuthOrQuota(err error) bool {
	msg := err.Error()
	for _, marker := range []string{
		"unexpected status 401",
		"unexpected status 403",
		"unexpected status 429",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// isTransient reports whether the error looks like a transient network
// condition. Used only to annotate diagnostics; the chain moves on to the
// next provider either way.
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) {
		return true
	}

	// String-based heuristics for wrapped errors from HTTP clients.
	msg := strings.ToLower(err.Error())
	transientPatterns := []string{
		"connection reset by peer",
		"broken pipe",
		"temporary failure in name resolution",
		"no such host",
		"tls handshake timeout",
		"i/o timeout",
		"unexpected status 500",
		"unexpected status 502",
		"unexpected status 503",
		"unexpected status 504",
	}
	for _, p := range transientPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}

	return false
}
