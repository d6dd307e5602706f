// Package auth issues and verifies the HS256 session tokens handed out on login.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/gophproducts/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed payload: the standard registered claims plus the
// numeric id of the user the token was issued to.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// GenerateToken signs a token for userID that expires validityDuration from now.
func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	return generateTokenAt(userID, secretKey, validityDuration, time.Now())
}

func generateTokenAt(userID int64, secretKey []byte, validityDuration time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies tokenString and returns the embedded user id.
//
// The signature is checked before expiry, so a token signed with another
// key is common.ErrInvalidToken even when it is also expired. An intact but
// expired token is common.ErrTokenExpired.
func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrTokenExpired
		}
		return 0, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID <= 0 {
		return 0, common.ErrInvalidToken
	}

	return claims.UserID, nil
}
