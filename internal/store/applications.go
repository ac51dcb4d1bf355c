package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mariohevia/JobVault-Libre/internal/domain"
	"github.com/mariohevia/JobVault-Libre/internal/errs"
)

const applicationColumns = `id, company, company_website, position, status, location,
	contact_name, contact_email, salary_range, job_url, description, notes,
	applied_on, follow_up_on, created_at, updated_at`

// CreateApplication validates and persists a new application, assigning its
// id and timestamps. The store is untouched on validation failure.
func (s *Store) CreateApplication(ctx context.Context, app *domain.JobApplication) error {
	const op = "store.CreateApplication"

	if strings.TrimSpace(app.Company) == "" {
		return errs.Validation(op, "company is required")
	}
	if strings.TrimSpace(app.Position) == "" {
		return errs.Validation(op, "position is required")
	}
	if !app.Status.Valid() {
		return errs.Validation(op, fmt.Sprintf("unknown status %q", app.Status))
	}

	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	normalizeDates(app)

	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO applications (
			company, company_website, position, status, location,
			contact_name, contact_email, salary_range, job_url, description, notes,
			applied_on, follow_up_on, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		app.Company,
		app.CompanyWebsite,
		app.Position,
		string(app.Status),
		app.Location,
		app.ContactName,
		app.ContactEmail,
		app.SalaryRange,
		app.JobURL,
		app.Description,
		app.Notes,
		app.AppliedOn,
		app.FollowUpOn,
		app.CreatedAt,
		app.UpdatedAt,
	)
	if err != nil {
		return errs.Internal(op, "insert application", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errs.Internal(op, "read inserted id", err)
	}
	app.ID = id
	return nil
}

func (s *Store) GetApplication(ctx context.Context, id int64) (*domain.JobApplication, error) {
	const op = "store.GetApplication"

	row := s.DB.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = ?`, id)
	app, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound(op, fmt.Sprintf("application %d not found", id))
	}
	if err != nil {
		return nil, errs.Internal(op, "scan application", err)
	}
	return app, nil
}

// UpdateApplication merges patch into the stored record. Unpatched fields
// are preserved; updated_at always advances.
func (s *Store) UpdateApplication(ctx context.Context, id int64, patch domain.ApplicationPatch) (*domain.JobApplication, error) {
	const op = "store.UpdateApplication"

	sets := []string{}
	args := []any{}
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if patch.Company != nil {
		if strings.TrimSpace(*patch.Company) == "" {
			return nil, errs.Validation(op, "company cannot be blank")
		}
		set("company", *patch.Company)
	}
	if patch.Position != nil {
		if strings.TrimSpace(*patch.Position) == "" {
			return nil, errs.Validation(op, "position cannot be blank")
		}
		set("position", *patch.Position)
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, errs.Validation(op, fmt.Sprintf("unknown status %q", *patch.Status))
		}
		set("status", string(*patch.Status))
	}
	if patch.CompanyWebsite != nil {
		set("company_website", *patch.CompanyWebsite)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	if patch.ContactName != nil {
		set("contact_name", *patch.ContactName)
	}
	if patch.ContactEmail != nil {
		set("contact_email", *patch.ContactEmail)
	}
	if patch.SalaryRange != nil {
		set("salary_range", *patch.SalaryRange)
	}
	if patch.JobURL != nil {
		set("job_url", *patch.JobURL)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Notes != nil {
		set("notes", *patch.Notes)
	}
	if patch.AppliedOn != nil {
		set("applied_on", patch.AppliedOn.UTC())
	}
	if patch.FollowUpOn != nil {
		set("follow_up_on", patch.FollowUpOn.UTC())
	}

	set("updated_at", time.Now().UTC())
	args = append(args, id)

	res, err := s.DB.ExecContext(ctx,
		`UPDATE applications SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, errs.Internal(op, "update application", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errs.Internal(op, "read rows affected", err)
	}
	if n == 0 {
		return nil, errs.NotFound(op, fmt.Sprintf("application %d not found", id))
	}

	return s.GetApplication(ctx, id)
}

// DeleteApplication removes the record and, through the schema cascade, its
// attachments. Deleting an absent id is a not-found error.
func (s *Store) DeleteApplication(ctx context.Context, id int64) error {
	const op = "store.DeleteApplication"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM applications WHERE id = ?`, id)
	if err != nil {
		return errs.Internal(op, "delete application", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errs.Internal(op, "read rows affected", err)
	}
	if n == 0 {
		return errs.NotFound(op, fmt.Sprintf("application %d not found", id))
	}
	return nil
}

// ListApplications returns every record in creation order.
func (s *Store) ListApplications(ctx context.Context) ([]domain.JobApplication, error) {
	return s.listApplications(ctx,
		`SELECT `+applicationColumns+` FROM applications ORDER BY id`)
}

// ListRecent returns up to limit records, most recently updated first. This
// is the tracker UI's default listing.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]domain.JobApplication, error) {
	if limit <= 0 {
		limit = 1000
	}
	return s.listApplications(ctx,
		`SELECT `+applicationColumns+` FROM applications ORDER BY updated_at DESC, id DESC LIMIT ?`, limit)
}

func (s *Store) CountApplications(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications`).Scan(&n)
	if err != nil {
		return 0, errs.Internal("store.CountApplications", "count applications", err)
	}
	return n, nil
}

func (s *Store) listApplications(ctx context.Context, query string, args ...any) ([]domain.JobApplication, error) {
	const op = "store.listApplications"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errs.Internal(op, "query applications", err)
	}
	defer rows.Close()

	var out []domain.JobApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, errs.Internal(op, "scan application", err)
		}
		out = append(out, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Internal(op, "iterate applications", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*domain.JobApplication, error) {
	var (
		app        domain.JobApplication
		status     string
		appliedOn  sql.NullTime
		followUpOn sql.NullTime
	)
	err := row.Scan(
		&app.ID,
		&app.Company,
		&app.CompanyWebsite,
		&app.Position,
		&status,
		&app.Location,
		&app.ContactName,
		&app.ContactEmail,
		&app.SalaryRange,
		&app.JobURL,
		&app.Description,
		&app.Notes,
		&appliedOn,
		&followUpOn,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	app.Status = domain.Status(status)
	if appliedOn.Valid {
		t := appliedOn.Time.UTC()
		app.AppliedOn = &t
	}
	if followUpOn.Valid {
		t := followUpOn.Time.UTC()
		app.FollowUpOn = &t
	}
	app.CreatedAt = app.CreatedAt.UTC()
	app.UpdatedAt = app.UpdatedAt.UTC()
	return &app, nil
}

// normalizeDates pins nullable dates to UTC so stored values compare
// consistently.
func normalizeDates(app *domain.JobApplication) {
	if app.AppliedOn != nil {
		t := app.AppliedOn.UTC()
		app.AppliedOn = &t
	}
	if app.FollowUpOn != nil {
		t := app.FollowUpOn.UTC()
		app.FollowUpOn = &t
	}
}
