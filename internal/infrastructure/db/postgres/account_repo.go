package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

const pgUniqueViolation = "23505"

type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func (r *AccountRepo) FindByEmail(ctx context.Context, email string) (domain.Account, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.Account{}, domain.ErrMissingField("email")
	}

	q := `SELECT ` + accountCols + ` FROM accounts WHERE email = $1 LIMIT 1;`

	a, err := scanAccount(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrAccountNotFound()
		}
		return domain.Account{}, domain.ErrDBUnavailable(err)
	}
	return a, nil
}

func (r *AccountRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return false, domain.ErrMissingField("email")
	}

	const q = `SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1);`

	var ok bool
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&ok); err != nil {
		return false, domain.ErrDBUnavailable(err)
	}
	return ok, nil
}

// Save inserts when a.ID is zero and updates the row with that id otherwise.
func (r *AccountRepo) Save(ctx context.Context, a domain.Account) (domain.Account, error) {
	a.Email = domain.NormalizeEmail(a.Email)
	if a.Email == "" {
		return domain.Account{}, domain.ErrMissingField("email")
	}
	if strings.TrimSpace(a.PasswordHash) == "" {
		return domain.Account{}, domain.ErrMissingField("password_hash")
	}
	if a.Role == "" {
		a.Role = domain.RoleUser
	}
	if !domain.IsValidRole(string(a.Role)) {
		return domain.Account{}, domain.ErrInvalidField("role", "must be USER or ADMIN")
	}

	if a.ID == 0 {
		return r.insert(ctx, a)
	}
	return a, r.update(ctx, a)
}

func (r *AccountRepo) insert(ctx context.Context, a domain.Account) (domain.Account, error) {
	const q = `
INSERT INTO accounts (email, dni, name, enabled, password_hash, role, avatar_id,
    initial_test_done, exit_test_done,
    gender, age, birth_date, phone, mobile, personal_email, city, subregion,
    document_type_id, differential_focus, program, level)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
RETURNING id;
`
	args := append([]any{
		a.Email, a.DNI, a.Name, a.Enabled, a.PasswordHash, string(a.Role), a.AvatarID,
		a.InitialTestDone, a.ExitTestDone,
	}, demographicArgs(a.Demographics)...)

	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&a.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.Account{}, domain.ErrAccountAlreadyExists()
		}
		return domain.Account{}, domain.ErrDBUnavailable(err)
	}
	return a, nil
}

func (r *AccountRepo) update(ctx context.Context, a domain.Account) error {
	const q = `
UPDATE accounts
SET email = $2, dni = $3, name = $4, enabled = $5, password_hash = $6, role = $7,
    avatar_id = $8, initial_test_done = $9, exit_test_done = $10,
    gender = $11, age = $12, birth_date = $13, phone = $14, mobile = $15,
    personal_email = $16, city = $17, subregion = $18, document_type_id = $19,
    differential_focus = $20, program = $21, level = $22,
    updated_at = NOW()
WHERE id = $1;
`
	args := append([]any{
		a.ID, a.Email, a.DNI, a.Name, a.Enabled, a.PasswordHash, string(a.Role),
		a.AvatarID, a.InitialTestDone, a.ExitTestDone,
	}, demographicArgs(a.Demographics)...)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAccountAlreadyExists()
		}
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrAccountNotFound()
	}
	return nil
}
