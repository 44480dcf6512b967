package tele

import (
	"context"

	"github.com/temoto/paystation/log2"
)

// Transporter contract:
// - Init fails only with invalid config, ignores network errors
// - SendTelemetry delivers within timeout or returns false
// - application may start without network available
type Transporter interface {
	Init(ctx context.Context, log *log2.Log, teleConfig Config) error
	SendTelemetry(payload []byte) bool
	Close()
}
