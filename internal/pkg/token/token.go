package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	// SessionTTL is the credential lifetime for a plain login.
	SessionTTL = 24 * time.Hour
	// RememberTTL is the credential lifetime when "remember me" is set.
	RememberTTL = 7 * 24 * time.Hour
)

var (
	// ErrTokenInvalid covers absent, malformed and forged credentials.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired means the credential was well-formed but has aged out.
	ErrTokenExpired = errors.New("token is expired")
)

// Claims is the JWT payload.
type Claims struct {
	UserID uint `json:"uid"`
	jwtlib.RegisteredClaims
}

// Issuer signs and validates session credentials with a process-wide
// secret. Construct once at startup and inject; read-only afterwards.
type Issuer struct {
	secret []byte
}

// NewIssuer builds an Issuer. An empty secret is a configuration error:
// there is deliberately no built-in fallback value.
func NewIssuer(secret string) (*Issuer, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	return &Issuer{secret: []byte(secret)}, nil
}

// Issue mints a signed HS256 credential bound to userID. The expiry is
// absolute: now + 24h, or now + 7 days when remember is set.
func (i *Issuer) Issue(userID uint, remember bool) (string, error) {
	ttl := SessionTTL
	if remember {
		ttl = RememberTTL
	}
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Parse validates a credential and returns the bound user id.
// Failure kinds are distinguished for observability: ErrTokenExpired
// for an aged-out credential, ErrTokenInvalid for everything else.
func (i *Issuer) Parse(tokenStr string) (uint, error) {
	t, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || claims.UserID == 0 {
		return 0, ErrTokenInvalid
	}
	return claims.UserID, nil
}
