// Package ident mints customer facing order tokens and payment references.
//
// Neither value is a security credential: tokens are short lookup handles and
// payment ids are display references that are never verified.
package ident

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/polkiloo/canteen/internal/domain/model"
)

const (
	tokenMin     = 100000
	tokenSpan    = 900000
	suffixLength = 4
	suffixAlpha  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Generator produces order tokens and payment ids.
type Generator interface {
	OrderToken() string
	PaymentID(method model.PaymentMethod) string
}

// RandomGenerator draws identifiers from a pseudo random source and a clock.
type RandomGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// NewRandomGenerator builds generator over provided source and clock. Nil clock means time.Now.
func NewRandomGenerator(src rand.Source, now func() time.Time) *RandomGenerator {
	if now == nil {
		now = time.Now
	}
	return &RandomGenerator{rnd: rand.New(src), now: now}
}

// NewDefault returns generator seeded from the wall clock.
func NewDefault() *RandomGenerator {
	seed := uint64(time.Now().UnixNano())
	return NewRandomGenerator(rand.NewPCG(seed, rand.Uint64()), time.Now)
}

// OrderToken returns six decimal digits in [100000, 999999].
func (g *RandomGenerator) OrderToken() string {
	g.mu.Lock()
	n := tokenMin + g.rnd.IntN(tokenSpan)
	g.mu.Unlock()
	return fmt.Sprintf("%06d", n)
}

// PaymentID returns CASH-dddddd for cash and PAYddddddXXXX otherwise,
// where dddddd are the last six digits of the epoch milliseconds.
func (g *RandomGenerator) PaymentID(method model.PaymentMethod) string {
	stamp := g.now().UnixMilli() % 1_000_000
	if method == model.PaymentMethodCash {
		return fmt.Sprintf("CASH-%06d", stamp)
	}

	suffix := make([]byte, suffixLength)
	g.mu.Lock()
	for i := range suffix {
		suffix[i] = suffixAlpha[g.rnd.IntN(len(suffixAlpha))]
	}
	g.mu.Unlock()
	return fmt.Sprintf("PAY%06d%s", stamp, suffix)
}
