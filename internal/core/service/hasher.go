package service

import (
	"runtime"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt at a configurable cost. The
// adaptive hash is CPU-heavy, so concurrent computations are capped by a
// semaphore sized to the worker count; requests beyond the cap queue on the
// channel instead of oversubscribing the CPU.
type BcryptHasher struct {
	cost int
	sem  chan struct{}
}

// NewBcryptHasher creates a hasher. A cost outside bcrypt's valid range
// falls back to bcrypt.DefaultCost; workers <= 0 falls back to GOMAXPROCS.
func NewBcryptHasher(cost, workers int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &BcryptHasher{cost: cost, sem: make(chan struct{}, workers)}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	h.sem <- struct{}{}
	defer func() { <-h.sem }()

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hashed. bcrypt compares in
// constant time; any mismatch or malformed hash yields false, never an error.
func (h *BcryptHasher) Verify(plaintext, hashed string) bool {
	h.sem <- struct{}{}
	defer func() { <-h.sem }()

	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
