package models

import "time"

// RiskLevel is a coarse flag stored with progress data.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// StudentProgress tracks one student's progress in one subject.
type StudentProgress struct {
	ID              int       `json:"id"`
	StudentID       int       `json:"studentId"`
	Subject         string    `json:"subject"`
	Progress        int       `json:"progress"`
	LastActivity    time.Time `json:"lastActivity"`
	EngagementScore int       `json:"engagementScore"`
	RiskLevel       RiskLevel `json:"riskLevel"`
}

// CreateStudentProgressRequest is the payload of POST /student-progress.
type CreateStudentProgressRequest struct {
	StudentID       int       `json:"studentId" validate:"required"`
	Subject         string    `json:"subject" validate:"required,max=64"`
	Progress        *int      `json:"progress" validate:"omitempty,min=0,max=100"`
	EngagementScore *int      `json:"engagementScore" validate:"omitempty,min=0,max=100"`
	RiskLevel       RiskLevel `json:"riskLevel" validate:"omitempty,oneof=low medium high"`
}

// StudentProgressPatch lists the mutable fields of a progress record.
type StudentProgressPatch struct {
	Progress        *int       `json:"progress" validate:"omitempty,min=0,max=100"`
	EngagementScore *int       `json:"engagementScore" validate:"omitempty,min=0,max=100"`
	RiskLevel       *RiskLevel `json:"riskLevel" validate:"omitempty,oneof=low medium high"`
}

// Apply overlays the non-nil fields of p onto sp.
func (p StudentProgressPatch) Apply(sp StudentProgress) StudentProgress {
	if p.Progress != nil {
		sp.Progress = *p.Progress
	}
	if p.EngagementScore != nil {
		sp.EngagementScore = *p.EngagementScore
	}
	if p.RiskLevel != nil {
		sp.RiskLevel = *p.RiskLevel
	}
	return sp
}
