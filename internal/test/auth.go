package test

import (
	"errors"
	"fmt"
	"sync"

	"github.com/polkiloo/canteen/internal/domain/model"
	pkgAuth "github.com/polkiloo/canteen/internal/pkg/auth"
	"github.com/polkiloo/canteen/internal/pkg/ident"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(subject string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(subject)
	}
	return "token-" + subject, nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	var subject string
	if _, err := fmt.Sscanf(token, "token-%s", &subject); err != nil {
		return "", pkgAuth.ErrInvalidToken
	}
	return subject, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	Subject string
	Err     error
	ParseFn func(string) (string, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Subject, nil
}

// GeneratorStub hands out queued order tokens and a fixed payment id.
type GeneratorStub struct {
	mu        sync.Mutex
	Tokens    []string
	Payment   string
	issued    int
	PaymentFn func(model.PaymentMethod) string
}

// OrderToken returns the next queued token, repeating the last one when exhausted.
func (g *GeneratorStub) OrderToken() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.Tokens) == 0 {
		return "123456"
	}
	idx := g.issued
	if idx >= len(g.Tokens) {
		idx = len(g.Tokens) - 1
	}
	g.issued++
	return g.Tokens[idx]
}

// Issued reports how many tokens were requested.
func (g *GeneratorStub) Issued() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.issued
}

// PaymentID returns configured payment reference.
func (g *GeneratorStub) PaymentID(method model.PaymentMethod) string {
	if g.PaymentFn != nil {
		return g.PaymentFn(method)
	}
	if g.Payment != "" {
		return g.Payment
	}
	if method == model.PaymentMethodCash {
		return "CASH-000001"
	}
	return "PAY000001ABCD"
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
var _ ident.Generator = (*GeneratorStub)(nil)
