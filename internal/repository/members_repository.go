package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/pkg/entity"
)

type MembersRepository struct {
	conn PgConnection
}

func NewMembersRepo(conn PgConnection) *MembersRepository {
	mustPing(conn, "membersRepo")
	return &MembersRepository{
		conn: conn,
	}
}

const memberColumns = `id, provider, provider_user_id, nickname, email, profile_image_key, created_at, updated_at`

func scanMember(row pgx.Row) (*entity.Member, error) {
	var m entity.Member
	err := row.Scan(&m.ID, &m.Provider, &m.ProviderUserID, &m.Nickname, &m.Email, &m.ProfileImageKey, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (mr *MembersRepository) Upsert(ctx context.Context, member *entity.Member) (*entity.Member, error) {
	if member == nil {
		return nil, errors.New("member is nil")
	}
	row := mr.conn.QueryRow(ctx, `INSERT INTO members (provider, provider_user_id, nickname, email) VALUES ($1, $2, $3, $4)
		ON CONFLICT (provider, provider_user_id) DO UPDATE SET email = EXCLUDED.email, updated_at = NOW()
		RETURNING `+memberColumns+`;`,
		member.Provider,
		member.ProviderUserID,
		member.Nickname,
		member.Email,
	)
	stored, err := scanMember(row)
	if err != nil {
		return nil, errors.New("upserting member db error: " + err.Error())
	}
	return stored, nil
}

func (mr *MembersRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	row := mr.conn.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1;`, id)
	member, err := scanMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMemberNotFound
		}
		return nil, errors.New("searching member by id error: " + err.Error())
	}
	return member, nil
}

func (mr *MembersRepository) Update(ctx context.Context, member *entity.Member) error {
	ct, err := mr.conn.Exec(ctx, `UPDATE members SET nickname = $1, profile_image_key = $2, updated_at = NOW() WHERE id = $3;`,
		member.Nickname,
		member.ProfileImageKey,
		member.ID,
	)
	if err != nil {
		return errors.New("updating member error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMemberNotFound
	}
	return nil
}

func (mr *MembersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM members WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting member error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMemberNotFound
	}
	return nil
}
