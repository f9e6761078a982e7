package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/imovelhub/imovelhub-backend/internal/infrastructure/config"
)

// AccessTokenClaims são as claims do access token. O Subject é o id do
// usuário em forma decimal canônica (ids largos não sobrevivem como
// número JSON).
type AccessTokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager assina e verifica access tokens HS256.
// É injetado em quem precisa dele; não há instância global.
type TokenManager struct {
	secret       []byte
	issuer       string
	accessExpiry time.Duration
}

// NewTokenManager cria um TokenManager a partir da configuração JWT
func NewTokenManager(cfg *config.JWTConfig) *TokenManager {
	return &TokenManager{
		secret:       []byte(cfg.Secret),
		issuer:       cfg.Issuer,
		accessExpiry: cfg.AccessExpiry,
	}
}

// GenerateAccessToken emite um token para o usuário informado
func (tm *TokenManager) GenerateAccessToken(subjectID, role string) (string, time.Time, error) {
	expirationTime := time.Now().UTC().Add(tm.accessExpiry)

	claims := &AccessTokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			Issuer:    tm.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("erro ao assinar o access token: %w", err)
	}

	return tokenString, expirationTime, nil
}

// ParseAccessToken verifica assinatura e expiração e retorna as claims
func (tm *TokenManager) ParseAccessToken(tokenString string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return tm.secret, nil
	}, jwt.WithIssuer(tm.issuer))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
