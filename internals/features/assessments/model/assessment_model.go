// file: internals/features/assessments/model/assessment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"discprofile_backend/internals/features/assessments/progression"
)

/* =============================================================================
   MODEL: assessments
   Uma linha por candidato convidado. Status segue o ciclo
   pending → in_progress → completed (progression.Status).
============================================================================= */

type AssessmentModel struct {
	// PK
	AssessmentID uuid.UUID `json:"assessment_id" gorm:"column:assessment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	AssessmentCampaignID uuid.UUID `json:"assessment_campaign_id" gorm:"column:assessment_campaign_id;type:uuid;not null;index:idx_assessment_campaign"`

	// Candidato
	AssessmentCandidateName  string `json:"assessment_candidate_name" gorm:"column:assessment_candidate_name;type:varchar(120);not null"`
	AssessmentCandidateEmail string `json:"assessment_candidate_email" gorm:"column:assessment_candidate_email;type:varchar(160);not null;index:idx_assessment_candidate_email"`

	// Status
	AssessmentStatus progression.Status `json:"assessment_status" gorm:"column:assessment_status;type:varchar(16);not null;default:'pending';index:idx_assessment_status"`

	// Tempo
	AssessmentStartedAt   *time.Time `json:"assessment_started_at,omitempty" gorm:"column:assessment_started_at;type:timestamptz"`
	AssessmentCompletedAt *time.Time `json:"assessment_completed_at,omitempty" gorm:"column:assessment_completed_at;type:timestamptz"`

	// Audit
	AssessmentCreatedAt time.Time `json:"assessment_created_at" gorm:"column:assessment_created_at;type:timestamptz;not null;default:now()"`
	AssessmentUpdatedAt time.Time `json:"assessment_updated_at" gorm:"column:assessment_updated_at;type:timestamptz;not null;default:now()"`
}

func (AssessmentModel) TableName() string { return "assessments" }

func (m *AssessmentModel) BeforeSave(_ *gorm.DB) error {
	m.AssessmentUpdatedAt = time.Now()
	return nil
}

func (m *AssessmentModel) IsCompleted() bool {
	return m.AssessmentStatus == progression.StatusCompleted
}
