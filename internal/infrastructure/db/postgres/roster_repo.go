package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

// RosterRepo reads the institutional roster. Rows are ordered by id so the
// first match for a duplicated email is stable.
type RosterRepo struct {
	db *sql.DB
}

func NewRosterRepo(db *sql.DB) *RosterRepo {
	return &RosterRepo{db: db}
}

func (r *RosterRepo) MatchesEmailAndDNI(ctx context.Context, email, dni string) (bool, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || dni == "" {
		return false, nil
	}

	const q = `
SELECT EXISTS (
    SELECT 1 FROM roster
    WHERE lower(institutional_email) = $1 AND dni = $2
);`

	var ok bool
	if err := r.db.QueryRowContext(ctx, q, email, dni).Scan(&ok); err != nil {
		return false, domain.ErrDBUnavailable(err)
	}
	return ok, nil
}

func (r *RosterRepo) FindByInstitutionalEmail(ctx context.Context, email string) (domain.RosterEntry, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.RosterEntry{}, domain.ErrNotInRoster()
	}

	q := `SELECT ` + rosterCols + ` FROM roster WHERE lower(institutional_email) = $1 ORDER BY id LIMIT 1;`

	e, err := scanRosterEntry(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RosterEntry{}, domain.ErrNotInRoster()
		}
		return domain.RosterEntry{}, domain.ErrDBUnavailable(err)
	}
	return e, nil
}

// Insert adds a roster row; an existing (email, dni) pair is left untouched.
// Only used for local seeding, the roster is otherwise owned elsewhere.
func (r *RosterRepo) Insert(ctx context.Context, e domain.RosterEntry) error {
	const q = `
INSERT INTO roster (institutional_email, dni, name, admin,
    gender, age, birth_date, phone, mobile, personal_email, city, subregion,
    document_type_id, differential_focus, program, level)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
ON CONFLICT (institutional_email, dni) DO NOTHING;
`
	args := append([]any{domain.NormalizeEmail(e.InstitutionalEmail), e.DNI, e.Name, e.Admin},
		demographicArgs(e.Demographics)...)

	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return domain.ErrDBUnavailable(err)
	}
	return nil
}
