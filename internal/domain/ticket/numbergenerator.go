package ticket

import (
	"context"

	"unibot/internal/shared/biztime"
	"unibot/internal/shared/id"
)

// NumberGenerator produces human-readable ticket numbers.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// RandomNumberGenerator generates "T<YYYYMM>-<NNNN>" numbers with a random
// digit suffix. Uniqueness is backed by the tickets table unique index; the
// create use case regenerates on a duplicate-key error.
type RandomNumberGenerator struct{}

func NewRandomNumberGenerator() *RandomNumberGenerator {
	return &RandomNumberGenerator{}
}

func (g *RandomNumberGenerator) Generate(ctx context.Context) (string, error) {
	return id.TicketNumber(biztime.NowUTC())
}
