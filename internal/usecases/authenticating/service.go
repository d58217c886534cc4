package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/finance-dashboard-api/internal/config"
	"github.com/vfg2006/finance-dashboard-api/internal/domain"
	"github.com/vfg2006/finance-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/finance-dashboard-api/pkg/utils"
)

const issuer = "finance-dashboard-api"

var validRoles = map[string]bool{
	domain.RoleAdmin:  true,
	domain.RoleViewer: true,
}

//go:generate mockgen -source=service.go -destination=mocks/authenticator.go -package=mocks

type Authenticator interface {
	// GenerateToken emite um token de operador assinado com HS256. ttl zero usa o padrão configurado.
	GenerateToken(subject, role string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secretKey  []byte
	defaultTTL time.Duration
	now        func() time.Time
}

func NewService(cfg *config.Config, now func() time.Time) Authenticator {
	if now == nil {
		now = time.Now
	}

	return &Service{
		secretKey:  []byte(cfg.Auth.SecretKey),
		defaultTTL: cfg.Auth.TokenTTL,
		now:        now,
	}
}

func (s *Service) GenerateToken(subject, role string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "subject é obrigatório")
	}
	if !validRoles[role] {
		return "", NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, role)
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	issuedAt := s.now()
	tokenID, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	claims := domain.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("erro ao assinar token: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_subject": subject,
		"user_role":    role,
	}).Info("auth: operator token issued")

	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || !validRoles[claims.Role] {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "claims inválidas")
	}

	return claims, nil
}
