package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/mariohevia/JobVault-Libre/internal/domain"
	"github.com/mariohevia/JobVault-Libre/internal/errs"
)

func pathKind(r *http.Request) (domain.AttachmentKind, error) {
	kind := domain.AttachmentKind(r.PathValue("kind"))
	if !kind.Valid() {
		return "", errs.Validation("api.pathKind", "unknown attachment kind "+strconv.Quote(string(kind)))
	}
	return kind, nil
}

// handlePutAttachment stores the raw request body as the CV or cover letter.
// Filename and extracted text ride in headers so the body stays opaque.
func (s *Server) handlePutAttachment(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	kind, err := pathKind(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	content, err := io.ReadAll(r.Body)
	if err != nil {
		s.respondError(w, errs.Internal("api.handlePutAttachment", "read body", err))
		return
	}

	att := domain.Attachment{
		ApplicationID: id,
		Kind:          kind,
		Filename:      r.Header.Get("X-Filename"),
		Content:       content,
		ExtractedText: r.Header.Get("X-Extracted-Text"),
	}

	ctx, cancel := s.requestCtx(r)
	defer cancel()

	if err := s.store.SaveAttachment(ctx, &att); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]any{
		"ok":             true,
		"attachment_id":  att.ID,
		"application_id": id,
		"kind":           string(kind),
	})
}

func (s *Server) handleGetAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	kind, err := pathKind(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	ctx, cancel := s.requestCtx(r)
	defer cancel()

	att, err := s.store.GetAttachment(ctx, id, kind)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeCORSHeaders(w)
	w.Header().Set("Content-Type", "application/octet-stream")
	if att.Filename != "" {
		w.Header().Set("X-Filename", att.Filename)
		w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(att.Filename))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(att.Content)
}

func (s *Server) handleDeleteAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	kind, err := pathKind(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	ctx, cancel := s.requestCtx(r)
	defer cancel()

	if err := s.store.DeleteAttachment(ctx, id, kind); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}
