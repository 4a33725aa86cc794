package services

import (
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/timex"
)

type options struct {
	clock         timex.Clock
	defaultTTL    time.Duration
	auditAttempts int
	auditBackoff  time.Duration
	syncAttempts  int
}

func defaultOptions() options {
	return options{
		clock:         timex.UTC,
		defaultTTL:    common.DefaultShareTTL,
		auditAttempts: 3,
		auditBackoff:  50 * time.Millisecond,
		syncAttempts:  5,
	}
}

// Option tunes a service.
type Option func(*options)

// WithClock pins the time source.
func WithClock(c timex.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithDefaultTTL sets the lifetime of shares created without one.
func WithDefaultTTL(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.defaultTTL = d
		}
	}
}

// WithAuditRetry sets how many times an audit append is tried and the
// backoff step between tries.
func WithAuditRetry(attempts int, backoff time.Duration) Option {
	return func(o *options) {
		if attempts > 0 {
			o.auditAttempts = attempts
		}
		o.auditBackoff = backoff
	}
}

// WithSyncAttempts bounds the compare-and-set retries of a vault sync.
func WithSyncAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.syncAttempts = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
