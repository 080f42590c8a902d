package model

// Admin is the single canteen operator account configured at startup.
type Admin struct {
	Username     string
	PasswordHash string
}
