package store

import (
	"context"
	"database/sql"
)

type Store struct {
	DB *sql.DB
}

func New(db *sql.DB) *Store { return &Store{DB: db} }

func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS applications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	company TEXT NOT NULL,
	company_website TEXT NOT NULL DEFAULT '',
	position TEXT NOT NULL,
	status TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	contact_name TEXT NOT NULL DEFAULT '',
	contact_email TEXT NOT NULL DEFAULT '',
	salary_range TEXT NOT NULL DEFAULT '',
	job_url TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	applied_on TIMESTAMP NULL,
	follow_up_on TIMESTAMP NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS attachments (
	id TEXT PRIMARY KEY,
	application_id INTEGER NOT NULL,
	kind TEXT NOT NULL,
	filename TEXT NOT NULL DEFAULT '',
	content BLOB,
	extracted_text TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	UNIQUE(application_id, kind),
	FOREIGN KEY(application_id) REFERENCES applications(id) ON DELETE CASCADE
);
`)
	return err
}
