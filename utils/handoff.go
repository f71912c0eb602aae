package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yeremiapane/menu-app/models"
)

const snapshotIssuer = "menu-app"

var ErrInvalidSnapshot = errors.New("invalid or expired menu snapshot")

// SnapshotClaims carries a menu collection from one screen to the next.
type SnapshotClaims struct {
	Entries models.MenuCollection `json:"entries"`
	jwt.RegisteredClaims
}

// SnapshotSigner turns collections into signed handoff tokens and back.
// A token is a copy of the collection; nothing on the server refers to it afterwards.
type SnapshotSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSnapshotSigner creates a signer. A zero ttl produces tokens without expiry.
func NewSnapshotSigner(secret string, ttl time.Duration) *SnapshotSigner {
	return &SnapshotSigner{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *SnapshotSigner) Sign(entries models.MenuCollection) (string, error) {
	now := s.now()
	claims := &SnapshotClaims{
		Entries: entries.Clone(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   snapshotIssuer,
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign snapshot: %w", err)
	}
	return signed, nil
}

// Parse verifies a handoff token and returns its entries. Every entry must still
// be well formed, otherwise the whole snapshot is rejected.
func (s *SnapshotSigner) Parse(tokenString string) (models.MenuCollection, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}

	claims := &SnapshotClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(snapshotIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	for i, e := range claims.Entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidSnapshot, i, err)
		}
	}
	return claims.Entries.Clone(), nil
}
