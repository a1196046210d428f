package postgres

import "github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"

// demographic columns shared by accounts and roster, in scan order.
const demographicCols = `gender, age, birth_date, phone, mobile, personal_email, city, subregion,
document_type_id, differential_focus, program, level`

const accountCols = `id, email, dni, name, enabled, password_hash, role, avatar_id,
initial_test_done, exit_test_done, ` + demographicCols

const rosterCols = `institutional_email, dni, name, admin, ` + demographicCols

type scanner interface {
	Scan(dest ...any) error
}

func demographicDest(d *domain.Demographics) []any {
	return []any{
		&d.Gender, &d.Age, &d.BirthDate, &d.Phone, &d.Mobile, &d.PersonalEmail,
		&d.City, &d.Subregion, &d.DocumentTypeID, &d.DifferentialFocus, &d.Program, &d.Level,
	}
}

func demographicArgs(d domain.Demographics) []any {
	return []any{
		d.Gender, d.Age, d.BirthDate, d.Phone, d.Mobile, d.PersonalEmail,
		d.City, d.Subregion, d.DocumentTypeID, d.DifferentialFocus, d.Program, d.Level,
	}
}

func scanAccount(s scanner) (domain.Account, error) {
	var (
		a    domain.Account
		role string
	)
	dest := append([]any{
		&a.ID, &a.Email, &a.DNI, &a.Name, &a.Enabled, &a.PasswordHash, &role, &a.AvatarID,
		&a.InitialTestDone, &a.ExitTestDone,
	}, demographicDest(&a.Demographics)...)

	if err := s.Scan(dest...); err != nil {
		return domain.Account{}, err
	}
	a.Role = domain.Role(role)
	return a, nil
}

func scanRosterEntry(s scanner) (domain.RosterEntry, error) {
	var r domain.RosterEntry
	dest := append([]any{&r.InstitutionalEmail, &r.DNI, &r.Name, &r.Admin}, demographicDest(&r.Demographics)...)
	if err := s.Scan(dest...); err != nil {
		return domain.RosterEntry{}, err
	}
	return r, nil
}
