package token

import (
	"errors"
	"time"

	"github.com/o1egl/paseto"

	"merobazar-backend/models"
)

// Duration is the fixed validity window of an access token. There is no
// refresh mechanism; expiry requires logging in again.
const Duration = time.Hour

const footer = "merobazar"

var (
	ErrInvalidKeySize = errors.New("secret key must be 32 bytes long")
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
)

// Maker issues and verifies PASETO v2 local access tokens carrying the
// subject's user id and role.
type Maker struct {
	key []byte
	v2  *paseto.V2

	// Validity overrides Duration; tests use it to mint expired tokens.
	Validity time.Duration
}

// Payload is the verified content of an access token.
type Payload struct {
	UserID    string
	Role      models.Role
	IssuedAt  time.Time
	ExpiredAt time.Time
}

// NewMaker returns a Maker for the given 32-byte symmetric key.
func NewMaker(key []byte) (*Maker, error) {
	if len(key) != 32 {
		return nil, ErrInvalidKeySize
	}
	return &Maker{key: key, v2: paseto.NewV2(), Validity: Duration}, nil
}

// CreateToken signs a time-boxed token for the given subject and role.
func (m *Maker) CreateToken(userID string, role models.Role) (string, error) {
	now := time.Now()
	jsonToken := paseto.JSONToken{
		Subject:    userID,
		IssuedAt:   now,
		Expiration: now.Add(m.Validity),
	}
	jsonToken.Set("role", string(role))
	return m.v2.Encrypt(m.key, jsonToken, footer)
}

// VerifyToken decrypts and validates a token, returning its payload.
// Tampered or undecryptable tokens fail with ErrInvalidToken, expired
// ones with ErrExpiredToken.
func (m *Maker) VerifyToken(tok string) (*Payload, error) {
	var jsonToken paseto.JSONToken
	var ft string
	if err := m.v2.Decrypt(tok, m.key, &jsonToken, &ft); err != nil {
		return nil, ErrInvalidToken
	}
	if time.Now().After(jsonToken.Expiration) {
		return nil, ErrExpiredToken
	}
	return &Payload{
		UserID:    jsonToken.Subject,
		Role:      models.Role(jsonToken.Get("role")),
		IssuedAt:  jsonToken.IssuedAt,
		ExpiredAt: jsonToken.Expiration,
	}, nil
}
