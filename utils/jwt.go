package utils

import (
	"errors"
	"time"

	"github.com/Present111/Hotel-Booking/config"
	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingClaim = errors.New("token does not contain a valid 'userId' claim")
)

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// TokenClaims is the identity carried by an access token issued by the auth service.
type TokenClaims struct {
	UserID string
	Role   string
}

// GenerateToken creates a signed HS256 token carrying userId and role.
func GenerateToken(userID, role string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"iat":    now.Unix(),
		"exp":    now.Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ParseClaims validates the token and extracts userId and role. A missing role
// claim is returned empty; callers decide the default.
func ParseClaims(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return nil, ErrMissingClaim
	}
	role, _ := claims["role"].(string)

	return &TokenClaims{UserID: userID, Role: role}, nil
}
