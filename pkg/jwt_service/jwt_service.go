package jwtservice

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/clover/internal/error_values"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

type Claims struct {
	jwt.RegisteredClaims
	MemberID string    `json:"member_id"`
	Type     TokenType `json:"typ"`
}

type JWTService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func New(secret string, accessTTL, refreshTTL time.Duration) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (s *JWTService) AccessTTL() time.Duration {
	return s.accessTTL
}

func (s *JWTService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *JWTService) GenerateAccessToken(memberID uuid.UUID) (string, error) {
	token, _, err := s.generate(memberID, AccessToken, s.accessTTL)
	return token, err
}

// GenerateRefreshToken returns signed token and its jti, which is what the token store keeps.
func (s *JWTService) GenerateRefreshToken(memberID uuid.UUID) (string, string, error) {
	return s.generate(memberID, RefreshToken, s.refreshTTL)
}

func (s *JWTService) generate(memberID uuid.UUID, typ TokenType, ttl time.Duration) (string, string, error) {
	now := s.now()
	tokenID := uuid.NewString()
	claims := &Claims{
		MemberID: memberID.String(),
		Type:     typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   memberID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", "", errors.New("token signing error: " + err.Error())
	}
	return signed, tokenID, nil
}

// ParseToken verifies signature, time claims and that the token is of the expected type.
// Every verification failure is reported as ErrInvalidToken.
func (s *JWTService) ParseToken(tokenString string, typ TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidToken, err.Error())
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	if claims.Type != typ {
		return nil, fmt.Errorf("%w: expected %s token", errorvalues.ErrInvalidToken, typ)
	}
	if _, err = uuid.Parse(claims.MemberID); err != nil {
		return nil, fmt.Errorf("%w: invalid member id", errorvalues.ErrInvalidToken)
	}
	return claims, nil
}
