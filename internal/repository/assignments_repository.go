package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/pkg/entity"
)

type AssignmentsRepository struct {
	conn PgConnection
}

func NewAssignmentsRepo(conn PgConnection) *AssignmentsRepository {
	mustPing(conn, "assignmentsRepo")
	return &AssignmentsRepository{
		conn: conn,
	}
}

const assignmentColumns = `id, mission_id, member_id, assigned_date, status, completed_at, created_at`

func scanAssignment(row pgx.Row) (*entity.Assignment, error) {
	var a entity.Assignment
	err := row.Scan(&a.ID, &a.MissionID, &a.MemberID, &a.AssignedDate, &a.Status, &a.CompletedAt, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// buildBatchInsert renders one multi-row INSERT for assignments. Conflicts on the
// (member_id, mission_id, assigned_date) key are skipped.
func buildBatchInsert(assignments []*entity.Assignment) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO mission_assignments (mission_id, member_id, assigned_date, status) VALUES `)
	args := make([]any, 0, len(assignments)*4)
	for i, a := range assignments {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * 4
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args, a.MissionID, a.MemberID, a.AssignedDate, a.Status)
	}
	sb.WriteString(` ON CONFLICT (member_id, mission_id, assigned_date) DO NOTHING;`)
	return sb.String(), args
}

func (ar *AssignmentsRepository) CreateBatch(ctx context.Context, assignments []*entity.Assignment) (int64, error) {
	if len(assignments) == 0 {
		return 0, nil
	}
	query, args := buildBatchInsert(assignments)
	ct, err := ar.conn.Exec(ctx, query, args...)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return 0, errorvalues.ErrAssignmentExists
		case pgForeignKeyViolation:
			return 0, errorvalues.ErrMissionNotFound
		}
		return 0, errors.New("creating assignments error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}

func (ar *AssignmentsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Assignment, error) {
	row := ar.conn.QueryRow(ctx, `SELECT `+assignmentColumns+` FROM mission_assignments WHERE id = $1;`, id)
	a, err := scanAssignment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAssignmentNotFound
		}
		return nil, errors.New("getting assignment by id error: " + err.Error())
	}
	return a, nil
}

func (ar *AssignmentsRepository) GetByMemberAndDate(ctx context.Context, memberID uuid.UUID, date time.Time) ([]*entity.Assignment, error) {
	rows, err := ar.conn.Query(ctx, `SELECT `+assignmentColumns+`
		FROM mission_assignments WHERE member_id = $1 AND assigned_date = $2 ORDER BY created_at, id;`, memberID, date)
	if err != nil {
		return nil, errors.New("getting assignments for day error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, errors.New("assignment row parsing error: " + err.Error())
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected assignment rows error: " + err.Error())
	}
	return result, nil
}

func (ar *AssignmentsRepository) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	ct, err := ar.conn.Exec(ctx, `UPDATE mission_assignments SET status = 'COMPLETED', completed_at = $1
		WHERE id = $2 AND status = 'ASSIGNED';`, completedAt, id)
	if err != nil {
		return errors.New("completing assignment error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrAssignmentCompleted
	}
	return nil
}

func (ar *AssignmentsRepository) CountAssigned(ctx context.Context, memberID uuid.UUID, from, to time.Time) (int, error) {
	row := ar.conn.QueryRow(ctx, `SELECT COUNT(*) FROM mission_assignments
		WHERE member_id = $1 AND assigned_date >= $2 AND assigned_date <= $3;`, memberID, from, to)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting assignments: " + err.Error())
	}
	return count, nil
}

func (ar *AssignmentsRepository) CountCompleted(ctx context.Context, memberID uuid.UUID, from, to time.Time) (int, error) {
	row := ar.conn.QueryRow(ctx, `SELECT COUNT(*) FROM mission_assignments
		WHERE member_id = $1 AND status = 'COMPLETED' AND completed_at >= $2 AND completed_at <= $3;`, memberID, from, to)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting completions: " + err.Error())
	}
	return count, nil
}

func (ar *AssignmentsRepository) CountCompletedByCategory(ctx context.Context, memberID uuid.UUID, from, to time.Time) (map[entity.Category]int, error) {
	rows, err := ar.conn.Query(ctx, `SELECT m.category, COUNT(*) FROM mission_assignments a
		JOIN missions m ON m.id = a.mission_id
		WHERE a.member_id = $1 AND a.status = 'COMPLETED' AND a.completed_at >= $2 AND a.completed_at <= $3
		GROUP BY m.category;`, memberID, from, to)
	if err != nil {
		return nil, errors.New("error counting completions by category: " + err.Error())
	}
	defer rows.Close()
	counts := make(map[entity.Category]int)
	for rows.Next() {
		var (
			category entity.Category
			count    int
		)
		if err := rows.Scan(&category, &count); err != nil {
			return nil, errors.New("category count row parsing error: " + err.Error())
		}
		counts[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected category count rows error: " + err.Error())
	}
	return counts, nil
}

func (ar *AssignmentsRepository) ListCompleted(ctx context.Context, memberID uuid.UUID, from, to time.Time) ([]*entity.CompletedMission, error) {
	rows, err := ar.conn.Query(ctx, `SELECT a.id, a.mission_id, m.title, m.category, m.kind, a.assigned_date, a.completed_at
		FROM mission_assignments a JOIN missions m ON m.id = a.mission_id
		WHERE a.member_id = $1 AND a.status = 'COMPLETED' AND a.completed_at >= $2 AND a.completed_at <= $3
		ORDER BY a.completed_at;`, memberID, from, to)
	if err != nil {
		return nil, errors.New("listing completed missions error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.CompletedMission, 0)
	for rows.Next() {
		var c entity.CompletedMission
		if err := rows.Scan(&c.AssignmentID, &c.MissionID, &c.Title, &c.Category, &c.Kind, &c.AssignedDate, &c.CompletedAt); err != nil {
			return nil, errors.New("completed mission row parsing error: " + err.Error())
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected completed mission rows error: " + err.Error())
	}
	return result, nil
}
