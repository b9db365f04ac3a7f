package domain

import "time"

type ApplicationStatus string

const (
	ApplicationSubmitted          ApplicationStatus = "submitted"
	ApplicationUnderReview        ApplicationStatus = "under-review"
	ApplicationShortlisted        ApplicationStatus = "shortlisted"
	ApplicationInterviewScheduled ApplicationStatus = "interview-scheduled"
	ApplicationRejected           ApplicationStatus = "rejected"
	ApplicationSelected           ApplicationStatus = "selected"
)

// JobApplication tracks a student's application to a placement opening.
type JobApplication struct {
	Base          `bson:",inline"`
	JobID         string            `json:"job_id" bson:"job_id" validate:"required"`
	JobTitle      string            `json:"job_title" bson:"job_title" validate:"required"`
	Company       string            `json:"company" bson:"company" validate:"required"`
	ApplicantID   string            `json:"applicant_id" bson:"applicant_id"`
	Status        ApplicationStatus `json:"status" bson:"status" validate:"oneof=submitted under-review shortlisted interview-scheduled rejected selected"`
	Resume        string            `json:"resume,omitempty" bson:"resume,omitempty"`
	CoverLetter   string            `json:"cover_letter,omitempty" bson:"cover_letter,omitempty"`
	InterviewDate *time.Time        `json:"interview_date,omitempty" bson:"interview_date,omitempty"`
	Feedback      string            `json:"feedback,omitempty" bson:"feedback,omitempty"`
}

func (JobApplication) RecordKind() Kind { return KindApplication }

func (a *JobApplication) ApplyDefaults() {
	if a.Status == "" {
		a.Status = ApplicationSubmitted
	}
}

// Active reports whether the application is still moving through the pipeline.
func (a JobApplication) Active() bool {
	switch a.Status {
	case ApplicationSubmitted, ApplicationUnderReview, ApplicationShortlisted:
		return true
	}
	return false
}
