package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/repository"
	"github.com/limbo/clover/pkg/entity"
)

type MembersService struct {
	repo   repository.MembersRepositoryI
	tokens repository.RefreshTokensRepositoryI
}

func NewMembersService(membersRepo repository.MembersRepositoryI, tokensRepo repository.RefreshTokensRepositoryI) *MembersService {
	if membersRepo == nil || tokensRepo == nil {
		log.Fatal("on members service provided nil repos")
	}
	return &MembersService{
		repo:   membersRepo,
		tokens: tokensRepo,
	}
}

func (ms *MembersService) GetProfile(ctx context.Context, memberID uuid.UUID) (*entity.Member, error) {
	member, err := ms.repo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMemberNotFound) {
			return nil, err
		}
		return nil, errors.New("members repository error: " + err.Error())
	}
	return member, nil
}

func (ms *MembersService) UpdateProfile(ctx context.Context, memberID uuid.UUID, req *UpdateProfileRequest) (*entity.Member, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	member, err := ms.GetProfile(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if req.Nickname != nil {
		member.Nickname = *req.Nickname
	}
	if req.ProfileImageKey != nil {
		member.ProfileImageKey = *req.ProfileImageKey
	}
	err = ms.repo.Update(ctx, member)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMemberNotFound) {
			return nil, err
		}
		return nil, errors.New("members repository error: " + err.Error())
	}
	return ms.GetProfile(ctx, memberID)
}

// DeleteAccount removes the member with everything it owns and ends its session.
func (ms *MembersService) DeleteAccount(ctx context.Context, memberID uuid.UUID) error {
	err := ms.repo.Delete(ctx, memberID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMemberNotFound) {
			return err
		}
		return errors.New("members repository error: " + err.Error())
	}
	if err = ms.tokens.Revoke(ctx, memberID); err != nil {
		return errors.New("refresh tokens repository error: " + err.Error())
	}
	return nil
}
