package postgres

import (
	"database/sql"
	"fmt"

	"familiaconnect/internal/domain"

	"github.com/lib/pq"
)

const memberColumns = `id, user_id, name, role, points, created_at, parental_controls, notifications`

// settingColumns maps profile settings to their columns
var settingColumns = map[domain.Setting]string{
	domain.SettingParentalControls: "parental_controls",
	domain.SettingNotifications:    "notifications",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMember(row rowScanner, m *domain.Member) error {
	return row.Scan(&m.ID, &m.UserID, &m.Name, &m.Role, &m.Points, &m.CreatedAt, &m.ParentalControls, &m.Notifications)
}

// MemberRepo implements repository.MemberRepository
type MemberRepo struct {
	db *sql.DB
}

// NewMemberRepo creates a new member repository
func NewMemberRepo(db *sql.DB) *MemberRepo {
	return &MemberRepo{db: db}
}

// EnsureMemberExists creates member if not exists
func (r *MemberRepo) EnsureMemberExists(userID int64, name string) error {
	query := `
		INSERT INTO members (user_id, name)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, name)
	return err
}

// GetMember returns a member by Telegram user id
func (r *MemberRepo) GetMember(userID int64) (*domain.Member, error) {
	var m domain.Member
	query := `SELECT ` + memberColumns + ` FROM members WHERE user_id = $1`
	err := scanMember(r.db.QueryRow(query, userID), &m)

	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// ListMembers returns all family members in registration order
func (r *MemberRepo) ListMembers() ([]domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := scanMember(rows, &m); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// SetRole updates the family role of a member (Dad, Mom, Daughter...)
func (r *MemberRepo) SetRole(userID int64, role string) error {
	query := `UPDATE members SET role = $2 WHERE user_id = $1`
	res, err := r.db.Exec(query, userID, role)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetSetting switches a profile setting of a member
func (r *MemberRepo) SetSetting(userID int64, setting domain.Setting, enabled bool) error {
	column, ok := settingColumns[setting]
	if !ok {
		return domain.ErrUnknownSetting
	}

	query := fmt.Sprintf(`UPDATE members SET %s = $2 WHERE user_id = $1`, column)
	res, err := r.db.Exec(query, userID, enabled)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddPoints adds family points to the given members
func (r *MemberRepo) AddPoints(userIDs []int64, points int) error {
	query := `
		UPDATE members
		SET points = points + $2
		WHERE user_id = ANY($1)
	`
	_, err := r.db.Exec(query, pq.Array(userIDs), points)
	return err
}
