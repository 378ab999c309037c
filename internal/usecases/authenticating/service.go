package authenticating

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/flboutique/boutique-api/internal/config"
	"github.com/flboutique/boutique-api/internal/domain"
	"github.com/flboutique/boutique-api/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// Authenticator protege a API com a senha única da loja: não há contas
// de usuário, só um segredo compartilhado entre as sócias.
type Authenticator interface {
	Login(password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

// Login valida a senha compartilhada e devolve um JWT de 24h.
// Com hash bcrypt configurado a comparação usa o hash; sem hash, cai na
// comparação direta com a senha em texto do ambiente de desenvolvimento.
func (s *Service) Login(password string) (string, error) {
	if password == "" {
		return "", ErrMissingPassword
	}

	if err := s.checkPassword(password); err != nil {
		return "", err
	}

	sessionID, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	claims := domain.Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) checkPassword(password string) error {
	if s.cfg.Auth.SharedPasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.SharedPasswordHash), []byte(password)); err != nil {
			return ErrInvalidCredentials
		}
		return nil
	}

	if s.cfg.Auth.SharedPassword == "" {
		return ErrNoPasswordSet
	}

	if subtle.ConstantTimeCompare([]byte(s.cfg.Auth.SharedPassword), []byte(password)) != 1 {
		return ErrInvalidCredentials
	}

	return nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
