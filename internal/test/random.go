package test

import "math/rand/v2"

const (
	alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits       = "0123456789"
)

// RandomASCIIString returns an alphanumeric string with length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	return randomFrom(alphanumeric, minLen+rand.IntN(maxLen-minLen+1))
}

// RandomOrderToken returns six random digits, the shape of a customer order token.
func RandomOrderToken() string {
	return randomFrom(digits, 6)
}

func randomFrom(alphabet string, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(buf)
}
