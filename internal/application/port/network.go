// Package port defines interfaces for external dependencies.
package port

import "context"

// NetworkContextProvider reports the wireless network the host is joined to.
// Lookups are best-effort: any failure is reported as ok=false, never as an error.
type NetworkContextProvider interface {
	CurrentSSID(ctx context.Context) (ssid string, ok bool)
}
