package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mariohevia/JobVault-Libre/internal/domain"
	"github.com/mariohevia/JobVault-Libre/internal/errs"
)

func TestByStatus(t *testing.T) {
	s := newTestStore(t)
	q := s.Queries()
	ctx := context.Background()

	a := sampleApplication()
	require.NoError(t, s.CreateApplication(ctx, &a))

	b := sampleApplication()
	b.Company = "Globex"
	b.Status = domain.StatusOffer
	require.NoError(t, s.CreateApplication(ctx, &b))

	offers, err := q.ByStatus(ctx, domain.StatusOffer)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	require.Equal(t, "Globex", offers[0].Company)

	rejected, err := q.ByStatus(ctx, domain.StatusRejected)
	require.NoError(t, err)
	require.Empty(t, rejected)

	_, err = q.ByStatus(ctx, "Ghosted")
	require.True(t, errs.IsValidation(err))
}

func TestSearchText(t *testing.T) {
	s := newTestStore(t)
	q := s.Queries()
	ctx := context.Background()

	a := sampleApplication() // company "Acme Corp"
	require.NoError(t, s.CreateApplication(ctx, &a))

	b := sampleApplication()
	b.Company = "Globex"
	b.Position = "Data Engineer"
	b.Notes = "Sent follow-up to Acme contact by mistake"
	require.NoError(t, s.CreateApplication(ctx, &b))

	c := sampleApplication()
	c.Company = "Initech"
	c.Position = "SRE"
	c.Notes = ""
	c.Location = "Remote"
	require.NoError(t, s.CreateApplication(ctx, &c))

	// Case-insensitive substring over company and notes.
	got, err := q.SearchText(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Position match.
	got, err = q.SearchText(ctx, "data eng")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Globex", got[0].Company)

	// Location match.
	got, err = q.SearchText(ctx, "remote")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Initech", got[0].Company)

	// No match.
	got, err = q.SearchText(ctx, "umbrella")
	require.NoError(t, err)
	require.Empty(t, got)

	// Blank query returns everything.
	got, err = q.SearchText(ctx, "  ")
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestSearchEmptyStore(t *testing.T) {
	s := newTestStore(t)
	q := s.Queries()
	ctx := context.Background()

	got, err := q.SearchText(ctx, "anything")
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = q.ByStatus(ctx, domain.StatusApplied)
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = q.ByDateRange(ctx, domain.DateApplied, time.Now().AddDate(0, -1, 0), time.Now())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestByDateRange(t *testing.T) {
	s := newTestStore(t)
	q := s.Queries()
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
	}

	inRange := sampleApplication()
	applied := day(10)
	inRange.AppliedOn = &applied
	require.NoError(t, s.CreateApplication(ctx, &inRange))

	outOfRange := sampleApplication()
	outOfRange.Company = "Globex"
	early := day(1)
	outOfRange.AppliedOn = &early
	require.NoError(t, s.CreateApplication(ctx, &outOfRange))

	noDate := sampleApplication()
	noDate.Company = "Initech"
	require.NoError(t, s.CreateApplication(ctx, &noDate))

	got, err := q.ByDateRange(ctx, domain.DateApplied, day(5), day(15))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Acme Corp", got[0].Company)

	// Bounds are inclusive.
	got, err = q.ByDateRange(ctx, domain.DateApplied, day(10), day(10))
	require.NoError(t, err)
	require.Len(t, got, 1)

	// created_at is never null, so all three match a wide window.
	got, err = q.ByDateRange(ctx, domain.DateCreated, time.Now().UTC().Add(-time.Hour), time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 3)

	_, err = q.ByDateRange(ctx, "birthday", day(1), day(30))
	require.True(t, errs.IsValidation(err))
}
