package utils

import (
	"errors"
	"sync"
	"time"

	"kympulse/config"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var (
	fallbackSecret     []byte
	fallbackSecretOnce sync.Once
)

// secretKey returns JWT_SECRET, or a per-process random secret when it is unset.
// Tokens signed with the fallback do not survive a restart.
func secretKey() []byte {
	if config.AppConfig.JWTSecret != "" {
		return []byte(config.AppConfig.JWTSecret)
	}
	fallbackSecretOnce.Do(func() {
		fallbackSecret = []byte(uuid.NewString() + uuid.NewString())
	})
	return fallbackSecret
}

// CaptureClaims is the capture state carried by the survey form.
type CaptureClaims struct {
	RecordID       string
	ProfessionalID string
}

// GenerateCaptureToken signs the record ID (as subject) and the professional ID.
// The token expires after the specified duration.
func GenerateCaptureToken(recordID, professionalID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": recordID,
		"pid": professionalID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ParseCaptureToken validates a capture token and returns its claims.
func ParseCaptureToken(tokenString string) (*CaptureClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	pid, _ := claims["pid"].(string)

	return &CaptureClaims{RecordID: sub, ProfessionalID: pid}, nil
}
