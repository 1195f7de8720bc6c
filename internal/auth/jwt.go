package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

// JWTVerifier validates HS256 tokens issued by the user service and reads
// the user straight from their claims, without a network round trip.
type JWTVerifier struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

// NewJWTVerifier creates a JWT verifier.
// secret must be at least 32 characters for HS256 security.
func NewJWTVerifier(secret string, issuer string) *JWTVerifier {
	return &JWTVerifier{
		secret: []byte(secret),
		issuer: issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

// userClaims carries the user fields next to the registered claims.
// Subject holds the decimal user id.
type userClaims struct {
	jwt.RegisteredClaims
	Name     string `json:"name"`
	UserType string `json:"user_type"`
	IsAdmin  bool   `json:"is_admin,omitempty"`
}

// Verify parses and validates the token and returns the user it names.
// Every failure is reported as domain.ErrUnauthorized.
func (v *JWTVerifier) Verify(_ context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, fmt.Errorf("token is empty: %w", domain.ErrUnauthorized)
	}

	claims := &userClaims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("parse token: %v: %w", err, domain.ErrUnauthorized)
	}
	if !parsed.Valid {
		return domain.User{}, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return domain.User{}, fmt.Errorf("invalid subject %q: %w", claims.Subject, domain.ErrUnauthorized)
	}

	userType := domain.UserType(claims.UserType)
	if !userType.IsValid() {
		userType = domain.UserTypeOther
	}

	return domain.User{
		ID:       id,
		FullName: claims.Name,
		UserType: userType,
		IsAdmin:  claims.IsAdmin,
	}, nil
}
