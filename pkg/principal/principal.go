package principal

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// The core never resolves sessions itself: an external authorizer
// issues a signed token carrying the authenticated principal, and this
// package only verifies it and exposes the claims.

const issuer = "hq-authorizer"

// Principal is what the core knows about the caller.
type Principal struct {
	ID       int
	Role     string
	BranchID int
}

type Claims struct {
	UserID   int    `json:"user_id"`
	Role     string `json:"role"`
	BranchID int    `json:"branch_id"`
	jwt.StandardClaims
}

type Verifier struct {
	key []byte
}

func NewVerifier(key string) *Verifier {
	return &Verifier{key: []byte(key)}
}

// Sign issues a principal token. The production issuer is the external
// authorizer; this exists for tooling and tests.
func (v *Verifier) Sign(p Principal, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID:   p.ID,
		Role:     p.Role,
		BranchID: p.BranchID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.key)
}

func (v *Verifier) Parse(tokenString string) (*Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return v.key, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Issuer != issuer {
		return nil, errors.New("invalid token claims")
	}

	return &Principal{
		ID:       claims.UserID,
		Role:     claims.Role,
		BranchID: claims.BranchID,
	}, nil
}
