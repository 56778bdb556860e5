// file: internals/features/assessments/service/store.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"discprofile_backend/internals/features/assessments/model"
	"discprofile_backend/internals/features/assessments/progression"
	"discprofile_backend/internals/features/assessments/scoring"
)

/* =========================================================
   ResponseStore (GORM): log de respostas
========================================================= */

type GormResponseStore struct {
	DB *gorm.DB
}

func NewGormResponseStore(db *gorm.DB) *GormResponseStore {
	return &GormResponseStore{DB: db}
}

// Append grava os registros de um grupo com semântica de substituição:
// regravar um grupo já respondido (navegação para trás + novo submit) troca
// os registros antigos daquele (assessment, stage, group) na mesma transação.
func (s *GormResponseStore) Append(ctx context.Context, records []scoring.RankRecord) error {
	if len(records) == 0 {
		return errors.New("no records to append")
	}

	head := records[0]
	rows := make([]model.RankRecordModel, 0, len(records))
	for _, r := range records {
		rows = append(rows, model.NewRankRecordModel(r))
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("rank_record_assessment_id = ? AND rank_record_stage = ? AND rank_record_group_number = ?",
				head.AssessmentID, head.Stage, head.GroupNumber).
			Delete(&model.RankRecordModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
}

func (s *GormResponseStore) ReadAll(ctx context.Context, assessmentID uuid.UUID) ([]scoring.RankRecord, error) {
	var rows []model.RankRecordModel
	if err := s.DB.WithContext(ctx).
		Where("rank_record_assessment_id = ?", assessmentID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	records := make([]scoring.RankRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToRankRecord())
	}
	return records, nil
}

/* =========================================================
   StatusStore (GORM): status + timestamps da avaliação
========================================================= */

type GormStatusStore struct {
	DB *gorm.DB
}

func NewGormStatusStore(db *gorm.DB) *GormStatusStore {
	return &GormStatusStore{DB: db}
}

func (s *GormStatusStore) SetStatus(ctx context.Context, assessmentID uuid.UUID, status progression.Status) error {
	now := time.Now().UTC()
	updates := map[string]any{
		"assessment_status":     status,
		"assessment_updated_at": now,
	}
	switch status {
	case progression.StatusInProgress:
		updates["assessment_started_at"] = now
	case progression.StatusCompleted:
		updates["assessment_completed_at"] = now
	}

	res := s.DB.WithContext(ctx).
		Model(&model.AssessmentModel{}).
		Where("assessment_id = ?", assessmentID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* =========================================================
   ResultStore (GORM): upsert do ScoreVector (replace, nunca duplica)
========================================================= */

type GormResultStore struct {
	DB *gorm.DB
}

func NewGormResultStore(db *gorm.DB) *GormResultStore {
	return &GormResultStore{DB: db}
}

func (s *GormResultStore) Upsert(ctx context.Context, vector *scoring.ScoreVector) error {
	row, err := model.NewScoreVectorModel(vector)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "score_vector_assessment_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"score_vector_natural_d", "score_vector_natural_i",
				"score_vector_natural_s", "score_vector_natural_c",
				"score_vector_adapted_d", "score_vector_adapted_i",
				"score_vector_adapted_s", "score_vector_adapted_c",
				"score_vector_values",
				"score_vector_total_tension", "score_vector_tension_level",
				"score_vector_primary_profile", "score_vector_secondary_profile",
				"score_vector_jung_code", "score_vector_jung_scores",
				"score_vector_leadership", "score_vector_competencies",
				"score_vector_sales_profile", "score_vector_sales_strengths",
				"score_vector_sales_weaknesses", "score_vector_sales_ideal_customer",
				"score_vector_sales_approach",
				"score_vector_updated_at",
			}),
		}).
		Create(row).Error
}

func (s *GormResultStore) Get(ctx context.Context, assessmentID uuid.UUID) (*scoring.ScoreVector, error) {
	var row model.ScoreVectorModel
	if err := s.DB.WithContext(ctx).
		Where("score_vector_assessment_id = ?", assessmentID).
		First(&row).Error; err != nil {
		return nil, err
	}
	return row.ToScoreVector()
}
