package models

import "time"

// InterventionType classifies an educator action.
type InterventionType string

const (
	InterventionTutoring       InterventionType = "tutoring"
	InterventionPaceAdjustment InterventionType = "pace_adjustment"
	InterventionEngagement     InterventionType = "engagement"
)

// InterventionStatus tracks an intervention through its lifecycle.
type InterventionStatus string

const (
	InterventionPending    InterventionStatus = "pending"
	InterventionInProgress InterventionStatus = "in_progress"
	InterventionCompleted  InterventionStatus = "completed"
)

// Intervention is an action an educator takes for a student.
type Intervention struct {
	ID          int                `json:"id"`
	StudentID   int                `json:"studentId"`
	EducatorID  int                `json:"educatorId"`
	Type        InterventionType   `json:"type"`
	Description string             `json:"description"`
	Status      InterventionStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// InterventionFilter narrows intervention listings. Nil fields are ignored.
type InterventionFilter struct {
	StudentID  *int
	EducatorID *int
}

// CreateInterventionRequest is the payload of POST /interventions.
type CreateInterventionRequest struct {
	StudentID   int                `json:"studentId" validate:"required"`
	EducatorID  int                `json:"educatorId" validate:"required"`
	Type        InterventionType   `json:"type" validate:"required,oneof=tutoring pace_adjustment engagement"`
	Description string             `json:"description" validate:"required,max=2000"`
	Status      InterventionStatus `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
}

// InterventionPatch lists the mutable fields of an intervention.
type InterventionPatch struct {
	Type        *InterventionType   `json:"type" validate:"omitempty,oneof=tutoring pace_adjustment engagement"`
	Description *string             `json:"description" validate:"omitempty,min=1,max=2000"`
	Status      *InterventionStatus `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
}

// Apply overlays the non-nil fields of p onto i.
func (p InterventionPatch) Apply(i Intervention) Intervention {
	if p.Type != nil {
		i.Type = *p.Type
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.Status != nil {
		i.Status = *p.Status
	}
	return i
}
