package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	SessionTTL  = 24 * time.Hour
	RememberTTL = 30 * 24 * time.Hour
)

func getSessionSecret() ([]byte, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, errors.New("SESSION_SECRET not set")
	}
	return []byte(secret), nil
}

func GenerateToken(userID int, username string, ttl time.Duration) (string, error) {
	if userID <= 0 {
		return "", errors.New("invalid userID passed to GenerateToken")
	}

	secret, err := getSessionSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"userID":   strconv.Itoa(userID),
		"username": username,
		"exp":      time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateToken(tokenString string) (int, string, error) {
	secret, err := getSessionSecret()
	if err != nil {
		return 0, "", err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid token claims")
	}

	rawID, _ := claims["userID"].(string)
	username, _ := claims["username"].(string)

	userID, err := strconv.Atoi(rawID)
	if err != nil || userID <= 0 {
		return 0, "", errors.New("invalid token claims")
	}

	return userID, username, nil
}
