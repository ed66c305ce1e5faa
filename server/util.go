package server

import (
	"fmt"
	"net"
	"strings"

	"github.com/teranos/milassist/am"
	"github.com/teranos/milassist/errors"
)

// originAllowed reports whether origin matches one of the allowed prefixes.
// Prefix matching lets any port through for a configured host.
func originAllowed(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" || strings.HasPrefix(origin, a) {
			return true
		}
	}
	return false
}

// isPortAvailable checks if a port is available for binding
func isPortAvailable(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	_ = listener.Close() // best-effort probe; the real bind reports errors
	return true
}

// findAvailablePort tries the requested port, then the fallback port, then
// ten ports above the requested one.
func findAvailablePort(requestedPort int) (int, error) {
	if isPortAvailable(requestedPort) {
		return requestedPort, nil
	}
	for _, port := range []int{am.DefaultServerPort, am.FallbackServerPort} {
		if port != requestedPort && isPortAvailable(port) {
			return port, nil
		}
	}
	for i := 1; i <= 10; i++ {
		if port := requestedPort + i; port <= 65535 && isPortAvailable(port) {
			return port, nil
		}
	}
	return 0, errors.Newf("no available ports found (tried %d, %d, %d and %d-%d)",
		requestedPort, am.DefaultServerPort, am.FallbackServerPort, requestedPort+1, requestedPort+10)
}
