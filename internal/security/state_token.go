package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidStateToken = errors.New("invalid state token")

// StateTokenCodec signs the session identity into the payment
// callback URL. The hosted gateway redirect is the only channel that
// survives the trip; an HMAC-signed token keeps the session reference
// in that channel tamper-proof.
type StateTokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewStateTokenCodec(secret string, ttl time.Duration) *StateTokenCodec {
	return &StateTokenCodec{secret: []byte(secret), ttl: ttl}
}

func (c *StateTokenCodec) Encode(sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": sessionID,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(c.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

func (c *StateTokenCodec) Decode(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithLeeway(30*time.Second)) // small clock skew
	if err != nil || !parsed.Valid {
		return "", ErrInvalidStateToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidStateToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidStateToken
	}
	return sub, nil
}
