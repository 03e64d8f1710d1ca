// Package security implements password hashing behind a bounded worker
// pool so a burst of expensive hashes cannot stall unrelated requests.
package security

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"github.com/dtroode/sociable-server/internal/model"
)

var _ model.PasswordHasher = (*Hasher)(nil)

// Hasher hashes and verifies passwords with bcrypt. Calls are safe for
// concurrent use; the hasher holds no mutable state beyond the semaphore.
type Hasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewHasher creates a Hasher with the given bcrypt cost and a bound on
// concurrently running hash computations.
func NewHasher(cost int, maxConcurrency int64) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &Hasher{
		cost: cost,
		sem:  semaphore.NewWeighted(maxConcurrency),
	}
}

// Hash computes a salted, adaptive-cost hash of the password. It waits
// for a hashing slot and honors context cancellation while waiting.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("failed to acquire hashing slot: %w", err)
	}
	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Compare verifies the password against the hash using the cost and salt
// embedded in the hash. The comparison is constant-time.
func (h *Hasher) Compare(ctx context.Context, password, hash string) error {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("failed to acquire hashing slot: %w", err)
	}
	defer h.sem.Release(1)

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
