package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/repository"
	"github.com/limbo/clover/pkg/entity"
	jwtservice "github.com/limbo/clover/pkg/jwt_service"
	"github.com/limbo/clover/pkg/metrics"
)

const defaultNickname = "clover"

type AuthService struct {
	members   repository.MembersRepositoryI
	tokens    repository.RefreshTokensRepositoryI
	providers ProviderRegistry
	issuer    TokenIssuer
}

func NewAuthService(members repository.MembersRepositoryI, tokens repository.RefreshTokensRepositoryI, providers ProviderRegistry, issuer TokenIssuer) *AuthService {
	if members == nil || tokens == nil {
		log.Fatal("on auth service provided nil repos")
	}
	if providers == nil || issuer == nil {
		log.Fatal("on auth service provided nil providers or token issuer")
	}
	return &AuthService{
		members:   members,
		tokens:    tokens,
		providers: providers,
		issuer:    issuer,
	}
}

func (as *AuthService) Login(ctx context.Context, req *LoginRequest) (*entity.TokenPair, *entity.Member, error) {
	if err := validateStruct(req); err != nil {
		return nil, nil, err
	}
	provider, err := as.providers.Get(req.Provider)
	if err != nil {
		return nil, nil, err
	}
	info, err := provider.Exchange(ctx, req.Code)
	if err != nil {
		return nil, nil, err
	}
	member, err := as.members.Upsert(ctx, &entity.Member{
		Provider:       provider.Name(),
		ProviderUserID: info.ProviderUserID,
		Nickname:       nicknameFrom(info.Nickname),
		Email:          info.Email,
	})
	if err != nil {
		return nil, nil, errors.New("members repository error: " + err.Error())
	}
	pair, err := as.issuePair(ctx, member.ID)
	if err != nil {
		return nil, nil, err
	}
	return pair, member, nil
}

func (as *AuthService) Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	claims, err := as.issuer.ParseToken(refreshToken, jwtservice.RefreshToken)
	if err != nil {
		return nil, err
	}
	memberID, err := uuid.Parse(claims.MemberID)
	if err != nil {
		return nil, errorvalues.ErrInvalidToken
	}
	current, err := as.tokens.Get(ctx, memberID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTokenRevoked) {
			return nil, err
		}
		return nil, errors.New("refresh tokens repository error: " + err.Error())
	}
	if current != claims.ID {
		// Rotated token came back, the session is compromised
		metrics.RefreshTokenReuse.Inc()
		slog.Default().Warn("refresh token reuse detected", slog.String("uid", memberID.String()))
		if err = as.tokens.Revoke(ctx, memberID); err != nil {
			return nil, errors.New("refresh tokens repository error: " + err.Error())
		}
		return nil, errorvalues.ErrTokenRevoked
	}
	return as.issuePair(ctx, memberID)
}

func (as *AuthService) Logout(ctx context.Context, memberID uuid.UUID) error {
	if err := as.tokens.Revoke(ctx, memberID); err != nil {
		return errors.New("refresh tokens repository error: " + err.Error())
	}
	return nil
}

func (as *AuthService) issuePair(ctx context.Context, memberID uuid.UUID) (*entity.TokenPair, error) {
	access, err := as.issuer.GenerateAccessToken(memberID)
	if err != nil {
		return nil, err
	}
	refresh, tokenID, err := as.issuer.GenerateRefreshToken(memberID)
	if err != nil {
		return nil, err
	}
	if err = as.tokens.Save(ctx, memberID, tokenID, as.issuer.RefreshTTL()); err != nil {
		return nil, errors.New("refresh tokens repository error: " + err.Error())
	}
	return &entity.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(as.issuer.AccessTTL().Seconds()),
	}, nil
}

// nicknameFrom keeps the provider nickname when it is usable as ours.
func nicknameFrom(providerNickname string) string {
	nickname := strings.Join(strings.Fields(providerNickname), "_")
	if runes := []rune(nickname); len(runes) > nicknameMaxLen {
		nickname = string(runes[:nicknameMaxLen])
	}
	if !validNickname(nickname) {
		return defaultNickname
	}
	return nickname
}
