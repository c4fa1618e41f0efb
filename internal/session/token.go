package session

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo describes claims peeked from the held access token without
// signature verification. Display use only; authorization decisions always
// go through the backend.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenInfo parses the held token's claims. Returns common.ErrNoSession when
// no token is held and common.ErrInvalidToken when the token is not a JWT.
func (s *Store) TokenInfo() (*TokenInfo, error) {
	tok := s.Token()
	if tok == "" {
		return nil, common.ErrNoSession
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
