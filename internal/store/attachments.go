package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mariohevia/JobVault-Libre/internal/domain"
	"github.com/mariohevia/JobVault-Libre/internal/errs"
)

// SaveAttachment stores a CV or cover letter for an application, replacing
// any previous attachment of the same kind. Assigns att.ID when empty.
func (s *Store) SaveAttachment(ctx context.Context, att *domain.Attachment) error {
	const op = "store.SaveAttachment"

	if !att.Kind.Valid() {
		return errs.Validation(op, fmt.Sprintf("unknown attachment kind %q", att.Kind))
	}
	if len(att.Content) == 0 {
		return errs.Validation(op, "attachment content is empty")
	}

	if _, err := s.GetApplication(ctx, att.ApplicationID); err != nil {
		return err
	}

	if att.ID == "" {
		att.ID = uuid.NewString()
	}
	att.CreatedAt = time.Now().UTC()

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO attachments (id, application_id, kind, filename, content, extracted_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(application_id, kind) DO UPDATE SET
			id = excluded.id,
			filename = excluded.filename,
			content = excluded.content,
			extracted_text = excluded.extracted_text,
			created_at = excluded.created_at`,
		att.ID,
		att.ApplicationID,
		string(att.Kind),
		att.Filename,
		att.Content,
		att.ExtractedText,
		att.CreatedAt,
	)
	if err != nil {
		return errs.Internal(op, "upsert attachment", err)
	}
	return nil
}

func (s *Store) GetAttachment(ctx context.Context, appID int64, kind domain.AttachmentKind) (*domain.Attachment, error) {
	const op = "store.GetAttachment"

	var att domain.Attachment
	var k string
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, application_id, kind, filename, content, extracted_text, created_at
		FROM attachments WHERE application_id = ? AND kind = ?`,
		appID, string(kind))
	err := row.Scan(&att.ID, &att.ApplicationID, &k, &att.Filename, &att.Content, &att.ExtractedText, &att.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound(op, fmt.Sprintf("no %s attachment for application %d", kind, appID))
	}
	if err != nil {
		return nil, errs.Internal(op, "scan attachment", err)
	}
	att.Kind = domain.AttachmentKind(k)
	att.CreatedAt = att.CreatedAt.UTC()
	return &att, nil
}

func (s *Store) DeleteAttachment(ctx context.Context, appID int64, kind domain.AttachmentKind) error {
	const op = "store.DeleteAttachment"

	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM attachments WHERE application_id = ? AND kind = ?`,
		appID, string(kind))
	if err != nil {
		return errs.Internal(op, "delete attachment", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errs.Internal(op, "read rows affected", err)
	}
	if n == 0 {
		return errs.NotFound(op, fmt.Sprintf("no %s attachment for application %d", kind, appID))
	}
	return nil
}
