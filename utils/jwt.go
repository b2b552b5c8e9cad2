package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the decoded authentication snapshot carried by each
// request: who is calling and whether they are the administrator.
type SessionClaims struct {
	UserID   string
	Username string
	IsAdmin  bool
}

func GenerateJWT(secret, userID, username string, isAdmin bool) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   userID,
		"username": username,
		"isAdmin":  isAdmin,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(secret))
}

func ParseJWT(secret, tokenString string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	out := &SessionClaims{}
	out.UserID, _ = claims["userId"].(string)
	out.Username, _ = claims["username"].(string)
	out.IsAdmin, _ = claims["isAdmin"].(bool)
	if out.Username == "" {
		return nil, errors.New("username claim missing")
	}
	return out, nil
}
