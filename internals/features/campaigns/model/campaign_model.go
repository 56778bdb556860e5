// file: internals/features/campaigns/model/campaign_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: campaigns
   Uma campanha agrupa os candidatos convidados por uma empresa/processo.
============================================================================= */

type CampaignModel struct {
	// PK
	CampaignID uuid.UUID `json:"campaign_id" gorm:"column:campaign_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Dono (usuário administrador)
	CampaignOwnerID uuid.UUID `json:"campaign_owner_id" gorm:"column:campaign_owner_id;type:uuid;not null;index:idx_campaign_owner"`

	// Dados
	CampaignName        string  `json:"campaign_name" gorm:"column:campaign_name;type:varchar(120);not null"`
	CampaignCompany     string  `json:"campaign_company" gorm:"column:campaign_company;type:varchar(120);not null"`
	CampaignDescription *string `json:"campaign_description,omitempty" gorm:"column:campaign_description;type:text"`

	// Janela de aplicação
	CampaignStartsAt *time.Time `json:"campaign_starts_at,omitempty" gorm:"column:campaign_starts_at;type:timestamptz"`
	CampaignEndsAt   *time.Time `json:"campaign_ends_at,omitempty" gorm:"column:campaign_ends_at;type:timestamptz"`

	// Metadados livres (cargo, área, tags do processo seletivo)
	CampaignMetadata datatypes.JSONMap `json:"campaign_metadata,omitempty" gorm:"column:campaign_metadata;type:jsonb"`

	// Audit
	CampaignCreatedAt time.Time `json:"campaign_created_at" gorm:"column:campaign_created_at;type:timestamptz;not null;default:now()"`
	CampaignUpdatedAt time.Time `json:"campaign_updated_at" gorm:"column:campaign_updated_at;type:timestamptz;not null;default:now()"`
}

func (CampaignModel) TableName() string { return "campaigns" }

func (m *CampaignModel) BeforeSave(_ *gorm.DB) error {
	m.CampaignUpdatedAt = time.Now()
	return nil
}

// IsOpen indica se a campanha aceita novas sessões no instante dado.
func (m *CampaignModel) IsOpen(at time.Time) bool {
	if m.CampaignStartsAt != nil && at.Before(*m.CampaignStartsAt) {
		return false
	}
	if m.CampaignEndsAt != nil && at.After(*m.CampaignEndsAt) {
		return false
	}
	return true
}
