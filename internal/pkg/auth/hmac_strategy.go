package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HMACStrategy implements compact auth tokens signed with HMAC-SHA256.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	return &HMACStrategy{secret: []byte(secret), ttl: opts.ttl()}
}

// IssueToken generates signed auth token for the subject.
func (s *HMACStrategy) IssueToken(subject string) (string, error) {
	if subject == "" {
		return "", ErrInvalidToken
	}
	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%s:%d", subject, expires)
	sig := s.sign(payload)
	token := fmt.Sprintf("%s:%s", payload, sig)
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates token and returns encoded subject.
func (s *HMACStrategy) ParseToken(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidToken
	}

	sigAt := strings.LastIndex(string(raw), ":")
	if sigAt <= 0 {
		return "", ErrInvalidToken
	}
	payload, sig := string(raw[:sigAt]), string(raw[sigAt+1:])

	expectedSig := s.sign(payload)
	if !hmac.Equal([]byte(expectedSig), []byte(sig)) {
		return "", ErrInvalidToken
	}

	expAt := strings.LastIndex(payload, ":")
	if expAt <= 0 {
		return "", ErrInvalidToken
	}
	subject := payload[:expAt]

	expires, err := strconv.ParseInt(payload[expAt+1:], 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return "", ErrInvalidToken
	}

	return subject, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
