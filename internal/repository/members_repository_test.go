package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/repository"
	"github.com/limbo/clover/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memberRowColumns = []string{"id", "provider", "provider_user_id", "nickname", "email", "profile_image_key", "created_at", "updated_at"}

func memberRow(m *entity.Member) *pgxmock.Rows {
	return pgxmock.NewRows(memberRowColumns).
		AddRow(m.ID, m.Provider, m.ProviderUserID, m.Nickname, m.Email, m.ProfileImageKey, m.CreatedAt, m.UpdatedAt)
}

func TestUpsertMember(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMembersRepo(mock)
	now := time.Now()
	stored := entity.Member{
		ID:             uuid.New(),
		Provider:       "kakao",
		ProviderUserID: "123456",
		Nickname:       "clover_1",
		Email:          "one@example.com",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	query := regexp.QuoteMeta(`INSERT INTO members (provider, provider_user_id, nickname, email) VALUES ($1, $2, $3, $4)`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(stored.Provider, stored.ProviderUserID, stored.Nickname, stored.Email).
			WillReturnRows(memberRow(&stored))
		result, err := repo.Upsert(ctx, &entity.Member{
			Provider:       stored.Provider,
			ProviderUserID: stored.ProviderUserID,
			Nickname:       stored.Nickname,
			Email:          stored.Email,
		})
		assert.NoError(t, err)
		assert.Equal(t, stored, *result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(stored.Provider, stored.ProviderUserID, stored.Nickname, stored.Email).
			WillReturnError(errors.New("db error"))
		_, err := repo.Upsert(ctx, &stored)
		assert.EqualError(t, err, "upserting member db error: db error")
	})
	t.Run("nil member", func(t *testing.T) {
		_, err := repo.Upsert(ctx, nil)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindMemberByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMembersRepo(mock)
	member := entity.Member{
		ID:              uuid.New(),
		Provider:        "kakao",
		ProviderUserID:  "42",
		Nickname:        "tester",
		ProfileImageKey: "profiles/a.png",
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	query := regexp.QuoteMeta(`FROM members WHERE id = $1;`)
	ctx := context.Background()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(member.ID).WillReturnRows(memberRow(&member))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrMemberNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(member.ID).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("searching member by id error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(member.ID).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := repo.FindByID(ctx, member.ID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, member, *result)
		})
	}
}

func TestUpdateMember(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMembersRepo(mock)
	member := entity.Member{ID: uuid.New(), Nickname: "renamed", ProfileImageKey: "profiles/b.png"}
	query := regexp.QuoteMeta(`UPDATE members SET nickname = $1, profile_image_key = $2, updated_at = NOW() WHERE id = $3;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(member.Nickname, member.ProfileImageKey, member.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &member))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(member.Nickname, member.ProfileImageKey, member.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, &member), errorvalues.ErrMemberNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(member.Nickname, member.ProfileImageKey, member.ID).
			WillReturnError(errors.New("db error"))
		assert.EqualError(t, repo.Update(ctx, &member), "updating member error: db error")
	})
}

func TestDeleteMember(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMembersRepo(mock)
	id := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM members WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, id))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, id), errorvalues.ErrMemberNotFound)
	})
}
