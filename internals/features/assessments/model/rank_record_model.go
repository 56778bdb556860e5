// file: internals/features/assessments/model/rank_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"discprofile_backend/internals/features/assessments/catalog"
	"discprofile_backend/internals/features/assessments/scoring"
)

/* =============================================================================
   MODEL: assessment_rank_records
   Log de respostas: um registro por item ranqueado de um grupo submetido.
   Invariante: dentro de (assessment, stage, group) os ranks formam uma
   permutação de 1..max_rank: garantida pelo replace-por-grupo no service
   e pelos índices únicos abaixo.
============================================================================= */

type RankRecordModel struct {
	// PK
	RankRecordID uuid.UUID `json:"rank_record_id" gorm:"column:rank_record_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	RankRecordAssessmentID uuid.UUID `json:"rank_record_assessment_id" gorm:"column:rank_record_assessment_id;type:uuid;not null;index:idx_rank_record_assessment;uniqueIndex:uq_rank_record_slot,priority:1;uniqueIndex:uq_rank_record_item,priority:1"`

	// Posição no questionário
	RankRecordStage       catalog.Stage `json:"rank_record_stage" gorm:"column:rank_record_stage;type:varchar(16);not null;uniqueIndex:uq_rank_record_slot,priority:2;uniqueIndex:uq_rank_record_item,priority:2"`
	RankRecordGroupNumber int           `json:"rank_record_group_number" gorm:"column:rank_record_group_number;type:smallint;not null;uniqueIndex:uq_rank_record_slot,priority:3;uniqueIndex:uq_rank_record_item,priority:3"`

	// Item + rank
	RankRecordItemText   string         `json:"rank_record_item_text" gorm:"column:rank_record_item_text;type:varchar(160);not null;uniqueIndex:uq_rank_record_item,priority:4"`
	RankRecordItemFactor catalog.Factor `json:"rank_record_item_factor" gorm:"column:rank_record_item_factor;type:varchar(16);not null"`
	RankRecordRank       int            `json:"rank_record_rank" gorm:"column:rank_record_rank;type:smallint;not null;uniqueIndex:uq_rank_record_slot,priority:4"`

	// Audit
	RankRecordCreatedAt time.Time `json:"rank_record_created_at" gorm:"column:rank_record_created_at;type:timestamptz;not null;default:now()"`
}

func (RankRecordModel) TableName() string { return "assessment_rank_records" }

/* =============================================================================
   Conversões de/para o tipo puro do engine
============================================================================= */

func NewRankRecordModel(r scoring.RankRecord) RankRecordModel {
	return RankRecordModel{
		RankRecordAssessmentID: r.AssessmentID,
		RankRecordStage:        r.Stage,
		RankRecordGroupNumber:  r.GroupNumber,
		RankRecordItemText:     r.ItemText,
		RankRecordItemFactor:   r.ItemFactor,
		RankRecordRank:         r.Rank,
	}
}

func (m *RankRecordModel) ToRankRecord() scoring.RankRecord {
	return scoring.RankRecord{
		AssessmentID: m.RankRecordAssessmentID,
		Stage:        m.RankRecordStage,
		GroupNumber:  m.RankRecordGroupNumber,
		ItemText:     m.RankRecordItemText,
		ItemFactor:   m.RankRecordItemFactor,
		Rank:         m.RankRecordRank,
	}
}
