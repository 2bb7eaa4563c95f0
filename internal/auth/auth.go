package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTClaims defines the payload for the admin session token.
type JWTClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Hashing
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CredentialVerifier checks a login attempt. The back-office has a single
// admin account today, but handlers only see this interface.
type CredentialVerifier interface {
	Verify(email, password string) bool
}

// ConfigVerifier verifies against the configured admin pair. When a bcrypt
// hash is configured it takes precedence over the plaintext password, which
// exists only as a development placeholder.
type ConfigVerifier struct {
	Email        string
	Password     string
	PasswordHash string
}

func (v ConfigVerifier) Verify(email, password string) bool {
	if !strings.EqualFold(email, v.Email) {
		return false
	}
	if v.PasswordHash != "" {
		return CheckPasswordHash(password, v.PasswordHash)
	}
	if v.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(v.Password)) == 1
}

// JWT issues and parses admin session tokens.
type JWT struct {
	Secret     []byte
	Expiration time.Duration
}

func NewJWT(secret string, expiration time.Duration) *JWT {
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return &JWT{Secret: []byte(secret), Expiration: expiration}
}

func (j *JWT) Generate(email, role string) (string, error) {
	claims := &JWTClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.Expiration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWT) Parse(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
