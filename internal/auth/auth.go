package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadToken = errors.New("invalid token")

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = 7 * 24 * time.Hour

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

func MakeToken(uid, secret string) (string, error) {
	now := time.Now()
	c := Claims{
		UserID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// claim names other signers have used for the user id, in lookup order
var idClaims = []string{"id", "userId", "_id", "uid", "sub"}

// ParseToken verifies raw and returns its claims with UserID normalized.
// Every failure (expiry, bad signature, garbage, no id claim) is ErrBadToken.
func ParseToken(raw, secret string) (*Claims, error) {
	mc := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, mc, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return nil, ErrBadToken
	}

	uid := userID(mc)
	if uid == "" {
		return nil, ErrBadToken
	}

	c := &Claims{UserID: uid}
	if exp, err := mc.GetExpirationTime(); err == nil {
		c.ExpiresAt = exp
	}
	if iat, err := mc.GetIssuedAt(); err == nil {
		c.IssuedAt = iat
	}
	return c, nil
}

func userID(mc jwt.MapClaims) string {
	for _, k := range idClaims {
		switch v := mc[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
