package model

// TokenPayload is the identity carried by a verified session token.
type TokenPayload struct {
	UserID int64
	Email  string
}

// TokenManager issues and verifies signed session tokens.
// Verification is pure and performs no store lookups.
type TokenManager interface {
	Generate(userID int64, email string) (string, error)
	Parse(token string) (TokenPayload, error)
}
