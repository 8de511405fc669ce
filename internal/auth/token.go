package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for a missing, malformed, or expired token.
var ErrInvalidToken = errors.New("invalid or expired token")

// IssueToken signs an HS256 JWT carrying the user's identity.
func (s *Service) IssueToken(u *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"role":       string(u.Role),
		"partner_id": u.PartnerID,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses a bearer token and returns the request-scoped
// identity it carries.
func (s *Service) VerifyToken(tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	ident := Identity{}
	if v, ok := claims["user_id"].(string); ok {
		ident.UserID = v
	}
	if v, ok := claims["name"].(string); ok {
		ident.Name = v
	}
	if v, ok := claims["email"].(string); ok {
		ident.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		ident.Role = Role(v)
	}
	if v, ok := claims["partner_id"].(string); ok {
		ident.PartnerID = v
	}
	if ident.UserID == "" {
		return Identity{}, ErrInvalidToken
	}
	return ident, nil
}
