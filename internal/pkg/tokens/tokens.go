package tokens

import (
	"errors"
	"fmt"
	"time"

	"freightforge/internal/entities"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "freightforge"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

type UserClaims struct {
	jwt.RegisteredClaims
	Role entities.AccountRole `json:"role"`
}

// Username is the subject the token was issued to.
func (c UserClaims) Username() string {
	return c.Subject
}

func (c UserClaims) IsAdmin() bool {
	return c.Role == entities.RoleAdmin
}

type Manager struct {
	key []byte
	ttl time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		key: []byte(secret),
		ttl: ttl,
	}
}

// Issue signs a session token for an approved account.
func (m *Manager) Issue(account entities.Account, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(m.ttl).UTC()
	claims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   account.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: account.Role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign jwt token: %w", err)
	}
	return token, expiresAt, nil
}

func (m *Manager) Validate(tokenString string) (*UserClaims, error) {
	claims := new(UserClaims)
	_, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	return claims, nil
}
