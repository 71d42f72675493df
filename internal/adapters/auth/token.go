package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"weeklyslots/internal/domain"
)

// ErrInvalidToken is returned by Verify for any token that fails parsing or validation.
var ErrInvalidToken = errors.New("invalid or expired token")

type jwtClaims struct {
	jwt.RegisteredClaims
}

type jwtIssuer struct {
	secret []byte
	issuer string
}

// NewJWTIssuer returns a TokenIssuer that signs JWTs with HS256 using the given secret.
// It is used for local tooling; production tokens come from the external auth service.
func NewJWTIssuer(secret, issuer string) domain.TokenIssuer {
	return &jwtIssuer{secret: []byte(secret), issuer: issuer}
}

func (i *jwtIssuer) Issue(userID string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

type jwtVerifier struct {
	secret []byte
	opts   []jwt.ParserOption
}

// NewJWTVerifier returns a TokenVerifier for HS256 tokens signed with secret. The subject
// claim is the user id. A non-empty issuer must match the iss claim.
func NewJWTVerifier(secret, issuer string) domain.TokenVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &jwtVerifier{secret: []byte(secret), opts: opts}
}

func (v *jwtVerifier) Verify(tokenString string) (string, error) {
	var claims jwtClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, v.opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}
