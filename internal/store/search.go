package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mariohevia/JobVault-Libre/internal/domain"
	"github.com/mariohevia/JobVault-Libre/internal/errs"
)

// Queries is the read-only view over the store. No method mutates state and
// every method tolerates an empty store.
type Queries struct {
	store *Store
}

func (s *Store) Queries() *Queries { return &Queries{store: s} }

// ByStatus returns all records in the given status, creation order.
func (q *Queries) ByStatus(ctx context.Context, status domain.Status) ([]domain.JobApplication, error) {
	if !status.Valid() {
		return nil, errs.Validation("store.ByStatus", fmt.Sprintf("unknown status %q", status))
	}
	return q.store.listApplications(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE status = ? ORDER BY id`,
		string(status))
}

// SearchText does a case-insensitive substring match over company, position,
// location and notes, the same fields the tracker UI searches.
func (q *Queries) SearchText(ctx context.Context, query string) ([]domain.JobApplication, error) {
	apps, err := q.store.ListApplications(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return apps, nil
	}

	var out []domain.JobApplication
	for _, app := range apps {
		if containsFold(app.Company, needle) ||
			containsFold(app.Position, needle) ||
			containsFold(app.Location, needle) ||
			containsFold(app.Notes, needle) {
			out = append(out, app)
		}
	}
	return out, nil
}

// ByDateRange returns records whose named date falls within [start, end].
// Records without that date are excluded.
func (q *Queries) ByDateRange(ctx context.Context, field domain.DateField, start, end time.Time) ([]domain.JobApplication, error) {
	pick, err := datePicker(field)
	if err != nil {
		return nil, err
	}

	apps, err := q.store.ListApplications(ctx)
	if err != nil {
		return nil, err
	}

	start, end = start.UTC(), end.UTC()
	var out []domain.JobApplication
	for _, app := range apps {
		t := pick(&app)
		if t == nil {
			continue
		}
		if t.Before(start) || t.After(end) {
			continue
		}
		out = append(out, app)
	}
	return out, nil
}

func datePicker(field domain.DateField) (func(*domain.JobApplication) *time.Time, error) {
	switch field {
	case domain.DateApplied:
		return func(a *domain.JobApplication) *time.Time { return a.AppliedOn }, nil
	case domain.DateFollowUp:
		return func(a *domain.JobApplication) *time.Time { return a.FollowUpOn }, nil
	case domain.DateCreated:
		return func(a *domain.JobApplication) *time.Time { return &a.CreatedAt }, nil
	case domain.DateUpdated:
		return func(a *domain.JobApplication) *time.Time { return &a.UpdatedAt }, nil
	default:
		return nil, errs.Validation("store.ByDateRange", fmt.Sprintf("unknown date field %q", field))
	}
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
