package metrics

import (
	"time"

	"github.com/useraccounts/user-management/internal/core/ports"
)

// InstrumentedHasher decorates a PasswordHasher with the
// PasswordHashDuration histogram.
type InstrumentedHasher struct {
	next ports.PasswordHasher
}

func NewInstrumentedHasher(next ports.PasswordHasher) *InstrumentedHasher {
	return &InstrumentedHasher{next: next}
}

func (h *InstrumentedHasher) Hash(plaintext string) (string, error) {
	start := time.Now()
	defer func() { PasswordHashDuration.Observe(time.Since(start).Seconds()) }()
	return h.next.Hash(plaintext)
}

func (h *InstrumentedHasher) Verify(plaintext, hashed string) bool {
	start := time.Now()
	defer func() { PasswordHashDuration.Observe(time.Since(start).Seconds()) }()
	return h.next.Verify(plaintext, hashed)
}
