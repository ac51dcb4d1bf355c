package domain

import "time"

// Status is the lifecycle stage of a job application.
type Status string

const (
	StatusApplied            Status = "Applied"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusInterviewed        Status = "Interviewed"
	StatusOffer              Status = "Offer"
	StatusRejected           Status = "Rejected"
	StatusWithdrawn          Status = "Withdrawn"
)

// Statuses returns all valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{
		StatusApplied,
		StatusInterviewScheduled,
		StatusInterviewed,
		StatusOffer,
		StatusRejected,
		StatusWithdrawn,
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInterviewScheduled, StatusInterviewed,
		StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

type JobApplication struct {
	ID             int64
	Company        string
	CompanyWebsite string
	Position       string
	Status         Status
	Location       string
	ContactName    string
	ContactEmail   string
	SalaryRange    string
	JobURL         string
	Description    string
	Notes          string
	AppliedOn      *time.Time
	FollowUpOn     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ApplicationPatch is a partial update. Nil fields are left unchanged.
// Dates can be set but not cleared through a patch.
type ApplicationPatch struct {
	Company        *string
	CompanyWebsite *string
	Position       *string
	Status         *Status
	Location       *string
	ContactName    *string
	ContactEmail   *string
	SalaryRange    *string
	JobURL         *string
	Description    *string
	Notes          *string
	AppliedOn      *time.Time
	FollowUpOn     *time.Time
}

// AttachmentKind names a submitted-materials slot. Each application holds at
// most one attachment per kind.
type AttachmentKind string

const (
	AttachmentCV          AttachmentKind = "cv"
	AttachmentCoverLetter AttachmentKind = "cover_letter"
)

func (k AttachmentKind) Valid() bool {
	return k == AttachmentCV || k == AttachmentCoverLetter
}

type Attachment struct {
	ID            string
	ApplicationID int64
	Kind          AttachmentKind
	Filename      string
	Content       []byte
	ExtractedText string
	CreatedAt     time.Time
}

// DateField names a date column usable in range queries.
type DateField string

const (
	DateApplied  DateField = "applied"
	DateFollowUp DateField = "follow_up"
	DateCreated  DateField = "created"
	DateUpdated  DateField = "updated"
)
