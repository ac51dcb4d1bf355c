package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mariohevia/JobVault-Libre/internal/domain"
	"github.com/mariohevia/JobVault-Libre/internal/errs"
)

func TestAttachmentRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	app := sampleApplication()
	require.NoError(t, s.CreateApplication(ctx, &app))

	att := domain.Attachment{
		ApplicationID: app.ID,
		Kind:          domain.AttachmentCV,
		Filename:      "cv.pdf",
		Content:       []byte("%PDF-1.7 fake"),
		ExtractedText: "Experienced engineer",
	}
	require.NoError(t, s.SaveAttachment(ctx, &att))
	require.NotEmpty(t, att.ID)

	got, err := s.GetAttachment(ctx, app.ID, domain.AttachmentCV)
	require.NoError(t, err)
	require.Equal(t, att.ID, got.ID)
	require.Equal(t, "cv.pdf", got.Filename)
	require.Equal(t, att.Content, got.Content)
	require.Equal(t, "Experienced engineer", got.ExtractedText)

	// The other slot stays empty.
	_, err = s.GetAttachment(ctx, app.ID, domain.AttachmentCoverLetter)
	require.True(t, errs.IsNotFound(err))
}

func TestAttachmentReplacePerKind(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	app := sampleApplication()
	require.NoError(t, s.CreateApplication(ctx, &app))

	first := domain.Attachment{
		ApplicationID: app.ID,
		Kind:          domain.AttachmentCV,
		Content:       []byte("v1"),
	}
	require.NoError(t, s.SaveAttachment(ctx, &first))

	second := domain.Attachment{
		ApplicationID: app.ID,
		Kind:          domain.AttachmentCV,
		Filename:      "cv-v2.pdf",
		Content:       []byte("v2"),
	}
	require.NoError(t, s.SaveAttachment(ctx, &second))

	got, err := s.GetAttachment(ctx, app.ID, domain.AttachmentCV)
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), got.Content)
	require.Equal(t, second.ID, got.ID)
	require.NotEqual(t, first.ID, got.ID)
}

func TestAttachmentValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	app := sampleApplication()
	require.NoError(t, s.CreateApplication(ctx, &app))

	err := s.SaveAttachment(ctx, &domain.Attachment{
		ApplicationID: app.ID,
		Kind:          "transcript",
		Content:       []byte("x"),
	})
	require.True(t, errs.IsValidation(err))

	err = s.SaveAttachment(ctx, &domain.Attachment{
		ApplicationID: app.ID,
		Kind:          domain.AttachmentCV,
	})
	require.True(t, errs.IsValidation(err))

	// Attaching to a nonexistent application fails up front.
	err = s.SaveAttachment(ctx, &domain.Attachment{
		ApplicationID: app.ID + 99,
		Kind:          domain.AttachmentCV,
		Content:       []byte("x"),
	})
	require.True(t, errs.IsNotFound(err))
}

func TestAttachmentCascadeOnDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	app := sampleApplication()
	require.NoError(t, s.CreateApplication(ctx, &app))

	require.NoError(t, s.SaveAttachment(ctx, &domain.Attachment{
		ApplicationID: app.ID,
		Kind:          domain.AttachmentCoverLetter,
		Content:       []byte("Dear hiring manager"),
	}))

	require.NoError(t, s.DeleteApplication(ctx, app.ID))

	_, err := s.GetAttachment(ctx, app.ID, domain.AttachmentCoverLetter)
	require.True(t, errs.IsNotFound(err))
}

func TestDeleteAttachment(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	app := sampleApplication()
	require.NoError(t, s.CreateApplication(ctx, &app))

	require.NoError(t, s.SaveAttachment(ctx, &domain.Attachment{
		ApplicationID: app.ID,
		Kind:          domain.AttachmentCV,
		Content:       []byte("x"),
	}))

	require.NoError(t, s.DeleteAttachment(ctx, app.ID, domain.AttachmentCV))
	err := s.DeleteAttachment(ctx, app.ID, domain.AttachmentCV)
	require.True(t, errs.IsNotFound(err))
}
