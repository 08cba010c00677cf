package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const issuer = "mi-portafolio-admin"

// JWTHandler signs and verifies admin session tokens.
type JWTHandler struct {
	SecretKey []byte
	TTL       time.Duration
	now       func() time.Time
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// MakeJWTHandler validates the provided secret and returns a configured handler.
func MakeJWTHandler(secret []byte, ttl time.Duration) (JWTHandler, error) {
	if len(secret) < 16 {
		return JWTHandler{}, errors.New("secret key too short")
	}

	if ttl <= 0 {
		return JWTHandler{}, errors.New("token ttl must be positive")
	}

	return JWTHandler{SecretKey: secret, TTL: ttl, now: time.Now}, nil
}

func (j JWTHandler) clock() time.Time {
	if j.now == nil {
		return time.Now()
	}

	return j.now()
}

// Generate returns a signed HS256 token and its expiry.
func (j JWTHandler) Generate(username string) (string, time.Time, error) {
	if username == "" {
		return "", time.Time{}, errors.New("username is required")
	}

	issuedAt := j.clock()
	expiresAt := issuedAt.Add(j.TTL)

	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(j.SecretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func (j JWTHandler) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}

			return j.SecretKey, nil
		},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(j.clock),
	)

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
