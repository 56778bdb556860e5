// file: internals/features/campaigns/dto/campaign_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"discprofile_backend/internals/features/campaigns/model"
)

/* =========================================================
   Requests
========================================================= */

type CreateCampaignRequest struct {
	OwnerID     uuid.UUID      `json:"owner_id" validate:"required"`
	Name        string         `json:"name" validate:"required,min=2,max=120"`
	Company     string         `json:"company" validate:"required,min=2,max=120"`
	Description *string        `json:"description,omitempty"`
	StartsAt    *time.Time     `json:"starts_at,omitempty"`
	EndsAt      *time.Time     `json:"ends_at,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type UpdateCampaignRequest struct {
	Name        *string        `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Company     *string        `json:"company,omitempty" validate:"omitempty,min=2,max=120"`
	Description *string        `json:"description,omitempty"`
	StartsAt    *time.Time     `json:"starts_at,omitempty"`
	EndsAt      *time.Time     `json:"ends_at,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type InviteCandidateRequest struct {
	CandidateName  string `json:"candidate_name" validate:"required,min=2,max=120"`
	CandidateEmail string `json:"candidate_email" validate:"required,email,max=160"`
}

/* =========================================================
   Responses
========================================================= */

type CampaignResponse struct {
	CampaignID  uuid.UUID      `json:"campaign_id"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Name        string         `json:"name"`
	Company     string         `json:"company"`
	Description *string        `json:"description,omitempty"`
	StartsAt    *time.Time     `json:"starts_at,omitempty"`
	EndsAt      *time.Time     `json:"ends_at,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func ToCampaignResponse(m *model.CampaignModel) CampaignResponse {
	return CampaignResponse{
		CampaignID:  m.CampaignID,
		OwnerID:     m.CampaignOwnerID,
		Name:        m.CampaignName,
		Company:     m.CampaignCompany,
		Description: m.CampaignDescription,
		StartsAt:    m.CampaignStartsAt,
		EndsAt:      m.CampaignEndsAt,
		Metadata:    map[string]any(m.CampaignMetadata),
		CreatedAt:   m.CampaignCreatedAt,
	}
}

func ToCampaignResponses(rows []model.CampaignModel) []CampaignResponse {
	out := make([]CampaignResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToCampaignResponse(&rows[i]))
	}
	return out
}

func (r CreateCampaignRequest) ToModel() model.CampaignModel {
	return model.CampaignModel{
		CampaignOwnerID:     r.OwnerID,
		CampaignName:        r.Name,
		CampaignCompany:     r.Company,
		CampaignDescription: r.Description,
		CampaignStartsAt:    r.StartsAt,
		CampaignEndsAt:      r.EndsAt,
		CampaignMetadata:    datatypes.JSONMap(r.Metadata),
	}
}

type InviteCandidateResponse struct {
	AssessmentID   uuid.UUID `json:"assessment_id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	InviteToken    string    `json:"invite_token"`
	ExpiresAt      time.Time `json:"expires_at"`
}
