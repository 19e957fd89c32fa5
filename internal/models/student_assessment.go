package models

import (
	"encoding/json"
	"time"
)

// StudentAssessment is one student's attempt at an assessment.
type StudentAssessment struct {
	ID           int             `json:"id"`
	StudentID    int             `json:"studentId"`
	AssessmentID int             `json:"assessmentId"`
	Score        *int            `json:"score"`
	MaxScore     *int            `json:"maxScore"`
	Answers      json.RawMessage `json:"answers"`
	StartedAt    time.Time       `json:"startedAt"`
	CompletedAt  *time.Time      `json:"completedAt"`
}

// CreateStudentAssessmentRequest is the payload of POST /student-assessments.
type CreateStudentAssessmentRequest struct {
	StudentID    int             `json:"studentId" validate:"required"`
	AssessmentID int             `json:"assessmentId" validate:"required"`
	Score        *int            `json:"score" validate:"omitempty,min=0"`
	MaxScore     *int            `json:"maxScore" validate:"omitempty,min=0"`
	Answers      json.RawMessage `json:"answers"`
	CompletedAt  *time.Time      `json:"completedAt"`
}

// StudentAssessmentPatch lists the mutable fields of an attempt.
type StudentAssessmentPatch struct {
	Score       *int            `json:"score" validate:"omitempty,min=0"`
	MaxScore    *int            `json:"maxScore" validate:"omitempty,min=0"`
	Answers     json.RawMessage `json:"answers"`
	CompletedAt *time.Time      `json:"completedAt"`
}

// Apply overlays the non-nil fields of p onto sa.
func (p StudentAssessmentPatch) Apply(sa StudentAssessment) StudentAssessment {
	if p.Score != nil {
		v := *p.Score
		sa.Score = &v
	}
	if p.MaxScore != nil {
		v := *p.MaxScore
		sa.MaxScore = &v
	}
	if HasJSON(p.Answers) {
		sa.Answers = append(json.RawMessage(nil), p.Answers...)
	}
	if p.CompletedAt != nil {
		v := *p.CompletedAt
		sa.CompletedAt = &v
	}
	return sa
}
