package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/mariohevia/JobVault-Libre/internal/domain"
	"github.com/mariohevia/JobVault-Libre/internal/errs"
)

// JSON payload for create and patch. Pointers distinguish "absent" from
// "set to empty" so PATCH preserves unspecified fields.
type applicationRequest struct {
	Company        *string `json:"company"`
	CompanyWebsite *string `json:"company_website"`
	Position       *string `json:"position"`
	Status         *string `json:"status"`
	Location       *string `json:"location"`
	ContactName    *string `json:"contact_name"`
	ContactEmail   *string `json:"contact_email"`
	SalaryRange    *string `json:"salary_range"`
	JobURL         *string `json:"job_url"`
	Description    *string `json:"description"`
	Notes          *string `json:"notes"`
	AppliedOn      *string `json:"applied_on"`   // RFC3339 or YYYY-MM-DD
	FollowUpOn     *string `json:"follow_up_on"` // RFC3339 or YYYY-MM-DD
}

type applicationResponse struct {
	ID             int64   `json:"id"`
	Company        string  `json:"company"`
	CompanyWebsite string  `json:"company_website,omitempty"`
	Position       string  `json:"position"`
	Status         string  `json:"status"`
	Location       string  `json:"location,omitempty"`
	ContactName    string  `json:"contact_name,omitempty"`
	ContactEmail   string  `json:"contact_email,omitempty"`
	SalaryRange    string  `json:"salary_range,omitempty"`
	JobURL         string  `json:"job_url,omitempty"`
	Description    string  `json:"description,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	AppliedOn      *string `json:"applied_on,omitempty"`
	FollowUpOn     *string `json:"follow_up_on,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func toResponse(app *domain.JobApplication) applicationResponse {
	resp := applicationResponse{
		ID:             app.ID,
		Company:        app.Company,
		CompanyWebsite: app.CompanyWebsite,
		Position:       app.Position,
		Status:         string(app.Status),
		Location:       app.Location,
		ContactName:    app.ContactName,
		ContactEmail:   app.ContactEmail,
		SalaryRange:    app.SalaryRange,
		JobURL:         app.JobURL,
		Description:    app.Description,
		Notes:          app.Notes,
		CreatedAt:      app.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      app.UpdatedAt.Format(time.RFC3339),
	}
	if app.AppliedOn != nil {
		v := app.AppliedOn.Format(time.RFC3339)
		resp.AppliedOn = &v
	}
	if app.FollowUpOn != nil {
		v := app.FollowUpOn.Format(time.RFC3339)
		resp.FollowUpOn = &v
	}
	return resp
}

func toResponses(apps []domain.JobApplication) []applicationResponse {
	out := make([]applicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, toResponse(&apps[i]))
	}
	return out
}

func parseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	return nil, errs.Validation("api.parseDate",
		"invalid "+field+" (expected RFC3339 or YYYY-MM-DD)")
}

func (s *Server) requestCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.timeout)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, errs.Validation("api.pathID", "invalid application id")
	}
	return id, nil
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req applicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errs.Validation("api.handleCreate", "invalid JSON"))
		return
	}

	status := s.profile.DefaultStatus
	if req.Status != nil && *req.Status != "" {
		status = domain.Status(*req.Status)
	}

	app := domain.JobApplication{
		Company:        str(req.Company),
		CompanyWebsite: str(req.CompanyWebsite),
		Position:       str(req.Position),
		Status:         status,
		Location:       str(req.Location),
		ContactName:    str(req.ContactName),
		ContactEmail:   str(req.ContactEmail),
		SalaryRange:    str(req.SalaryRange),
		JobURL:         str(req.JobURL),
		Description:    str(req.Description),
		Notes:          str(req.Notes),
	}

	var err error
	if app.AppliedOn, err = parseDate("applied_on", str(req.AppliedOn)); err != nil {
		s.respondError(w, err)
		return
	}
	if app.FollowUpOn, err = parseDate("follow_up_on", str(req.FollowUpOn)); err != nil {
		s.respondError(w, err)
		return
	}

	ctx, cancel := s.requestCtx(r)
	defer cancel()

	if err := s.store.CreateApplication(ctx, &app); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, toResponse(&app))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	ctx, cancel := s.requestCtx(r)
	defer cancel()

	app, err := s.store.GetApplication(ctx, id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toResponse(app))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	var req applicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errs.Validation("api.handleUpdate", "invalid JSON"))
		return
	}

	patch := domain.ApplicationPatch{
		Company:        req.Company,
		CompanyWebsite: req.CompanyWebsite,
		Position:       req.Position,
		Location:       req.Location,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		SalaryRange:    req.SalaryRange,
		JobURL:         req.JobURL,
		Description:    req.Description,
		Notes:          req.Notes,
	}
	if req.Status != nil {
		st := domain.Status(*req.Status)
		patch.Status = &st
	}
	if patch.AppliedOn, err = parseDate("applied_on", str(req.AppliedOn)); err != nil {
		s.respondError(w, err)
		return
	}
	if patch.FollowUpOn, err = parseDate("follow_up_on", str(req.FollowUpOn)); err != nil {
		s.respondError(w, err)
		return
	}

	ctx, cancel := s.requestCtx(r)
	defer cancel()

	app, err := s.store.UpdateApplication(ctx, id, patch)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toResponse(app))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	ctx, cancel := s.requestCtx(r)
	defer cancel()

	if err := s.store.DeleteApplication(ctx, id); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}

// handleList serves the default recency listing and, when filter params are
// present, the query layer's views.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.requestCtx(r)
	defer cancel()

	q := r.URL.Query()

	var (
		apps []domain.JobApplication
		err  error
	)
	switch {
	case q.Get("q") != "":
		apps, err = s.queries.SearchText(ctx, q.Get("q"))
	case q.Get("status") != "":
		apps, err = s.queries.ByStatus(ctx, domain.Status(q.Get("status")))
	case q.Get("date_field") != "":
		var from, to *time.Time
		if from, err = parseDate("from", q.Get("from")); err != nil {
			s.respondError(w, err)
			return
		}
		if to, err = parseDate("to", q.Get("to")); err != nil {
			s.respondError(w, err)
			return
		}
		if from == nil || to == nil {
			s.respondError(w, errs.Validation("api.handleList", "from and to are required with date_field"))
			return
		}
		end := *to
		if len(q.Get("to")) == len("2006-01-02") {
			// A date-only "to" bound means the whole day.
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		apps, err = s.queries.ByDateRange(ctx, domain.DateField(q.Get("date_field")), *from, end)
	default:
		apps, err = s.store.ListRecent(ctx, s.listLimit)
	}
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"count":        len(apps),
		"applications": toResponses(apps),
	})
}
