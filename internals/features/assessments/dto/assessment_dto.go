// file: internals/features/assessments/dto/assessment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"discprofile_backend/internals/features/assessments/model"
	"discprofile_backend/internals/features/assessments/progression"
)

/* =========================================================
   Requests
========================================================= */

type CreateAssessmentRequest struct {
	CampaignID     uuid.UUID `json:"campaign_id" validate:"required"`
	CandidateName  string    `json:"candidate_name" validate:"required,min=2,max=120"`
	CandidateEmail string    `json:"candidate_email" validate:"required,email,max=160"`
}

type PromoteRequest struct {
	ItemText string `json:"item_text" validate:"required"`
}

type DemoteRequest struct {
	ItemText string `json:"item_text" validate:"required"`
}

type ReorderRequest struct {
	ItemText       string `json:"item_text" validate:"required"`
	TargetPosition *int   `json:"target_position" validate:"required,min=0"`
}

/* =========================================================
   Responses
========================================================= */

type AssessmentResponse struct {
	AssessmentID   uuid.UUID          `json:"assessment_id"`
	CampaignID     uuid.UUID          `json:"campaign_id"`
	CandidateName  string             `json:"candidate_name"`
	CandidateEmail string             `json:"candidate_email"`
	Status         progression.Status `json:"status"`
	StartedAt      *time.Time         `json:"started_at,omitempty"`
	CompletedAt    *time.Time         `json:"completed_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

func ToAssessmentResponse(m *model.AssessmentModel) AssessmentResponse {
	return AssessmentResponse{
		AssessmentID:   m.AssessmentID,
		CampaignID:     m.AssessmentCampaignID,
		CandidateName:  m.AssessmentCandidateName,
		CandidateEmail: m.AssessmentCandidateEmail,
		Status:         m.AssessmentStatus,
		StartedAt:      m.AssessmentStartedAt,
		CompletedAt:    m.AssessmentCompletedAt,
		CreatedAt:      m.AssessmentCreatedAt,
	}
}

func ToAssessmentResponses(rows []model.AssessmentModel) []AssessmentResponse {
	out := make([]AssessmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToAssessmentResponse(&rows[i]))
	}
	return out
}
