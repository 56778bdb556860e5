// file: internals/features/assessments/model/score_vector_model.go
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"discprofile_backend/internals/features/assessments/scoring"
)

/* =============================================================================
   MODEL: assessment_score_vectors
   Um por avaliação (unique em assessment_id). Gravado via upsert: a
   regeneração substitui a linha, nunca duplica. Vetores aninhados (jung,
   liderança, competências) vão em colunas JSONB; listas de insight em
   text[] (pq.StringArray).
============================================================================= */

type ScoreVectorModel struct {
	// PK
	ScoreVectorID uuid.UUID `json:"score_vector_id" gorm:"column:score_vector_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK (1:1 com a avaliação)
	ScoreVectorAssessmentID uuid.UUID `json:"score_vector_assessment_id" gorm:"column:score_vector_assessment_id;type:uuid;not null;uniqueIndex:uq_score_vector_assessment"`

	// DISC natural (0–40)
	ScoreVectorNaturalD int `json:"score_vector_natural_d" gorm:"column:score_vector_natural_d;type:smallint;not null"`
	ScoreVectorNaturalI int `json:"score_vector_natural_i" gorm:"column:score_vector_natural_i;type:smallint;not null"`
	ScoreVectorNaturalS int `json:"score_vector_natural_s" gorm:"column:score_vector_natural_s;type:smallint;not null"`
	ScoreVectorNaturalC int `json:"score_vector_natural_c" gorm:"column:score_vector_natural_c;type:smallint;not null"`

	// DISC adaptado (0–40)
	ScoreVectorAdaptedD int `json:"score_vector_adapted_d" gorm:"column:score_vector_adapted_d;type:smallint;not null"`
	ScoreVectorAdaptedI int `json:"score_vector_adapted_i" gorm:"column:score_vector_adapted_i;type:smallint;not null"`
	ScoreVectorAdaptedS int `json:"score_vector_adapted_s" gorm:"column:score_vector_adapted_s;type:smallint;not null"`
	ScoreVectorAdaptedC int `json:"score_vector_adapted_c" gorm:"column:score_vector_adapted_c;type:smallint;not null"`

	// Valores motivacionais (0–60): JSONB com as seis chaves
	ScoreVectorValues datatypes.JSON `json:"score_vector_values" gorm:"column:score_vector_values;type:jsonb;not null"`

	// Tensão
	ScoreVectorTotalTension int    `json:"score_vector_total_tension" gorm:"column:score_vector_total_tension;type:smallint;not null"`
	ScoreVectorTensionLevel string `json:"score_vector_tension_level" gorm:"column:score_vector_tension_level;type:varchar(16);not null"`

	// Perfis
	ScoreVectorPrimaryProfile   string  `json:"score_vector_primary_profile" gorm:"column:score_vector_primary_profile;type:varchar(32);not null"`
	ScoreVectorSecondaryProfile *string `json:"score_vector_secondary_profile,omitempty" gorm:"column:score_vector_secondary_profile;type:varchar(32)"`

	// Tipo junguiano
	ScoreVectorJungCode   string         `json:"score_vector_jung_code" gorm:"column:score_vector_jung_code;type:varchar(4);not null"`
	ScoreVectorJungScores datatypes.JSON `json:"score_vector_jung_scores" gorm:"column:score_vector_jung_scores;type:jsonb;not null"`

	// Liderança + competências
	ScoreVectorLeadership   datatypes.JSON `json:"score_vector_leadership" gorm:"column:score_vector_leadership;type:jsonb;not null"`
	ScoreVectorCompetencies datatypes.JSON `json:"score_vector_competencies" gorm:"column:score_vector_competencies;type:jsonb;not null"`

	// Insights de vendas
	ScoreVectorSalesProfile       string         `json:"score_vector_sales_profile" gorm:"column:score_vector_sales_profile;type:varchar(32);not null"`
	ScoreVectorSalesStrengths     pq.StringArray `json:"score_vector_sales_strengths" gorm:"column:score_vector_sales_strengths;type:text[]"`
	ScoreVectorSalesWeaknesses    pq.StringArray `json:"score_vector_sales_weaknesses" gorm:"column:score_vector_sales_weaknesses;type:text[]"`
	ScoreVectorSalesIdealCustomer string         `json:"score_vector_sales_ideal_customer" gorm:"column:score_vector_sales_ideal_customer;type:text;not null"`
	ScoreVectorSalesApproach      string         `json:"score_vector_sales_approach" gorm:"column:score_vector_sales_approach;type:text;not null"`

	// Audit
	ScoreVectorCreatedAt time.Time `json:"score_vector_created_at" gorm:"column:score_vector_created_at;type:timestamptz;not null;default:now()"`
	ScoreVectorUpdatedAt time.Time `json:"score_vector_updated_at" gorm:"column:score_vector_updated_at;type:timestamptz;not null;default:now()"`
}

func (ScoreVectorModel) TableName() string { return "assessment_score_vectors" }

func (m *ScoreVectorModel) BeforeSave(_ *gorm.DB) error {
	m.ScoreVectorUpdatedAt = time.Now()
	return nil
}

/* =============================================================================
   Conversões de/para scoring.ScoreVector
============================================================================= */

func NewScoreVectorModel(v *scoring.ScoreVector) (*ScoreVectorModel, error) {
	valuesJSON, err := json.Marshal(v.Values)
	if err != nil {
		return nil, fmt.Errorf("marshal values vector: %w", err)
	}
	jungJSON, err := json.Marshal(v.Jung)
	if err != nil {
		return nil, fmt.Errorf("marshal jung scores: %w", err)
	}
	leadershipJSON, err := json.Marshal(v.Leadership)
	if err != nil {
		return nil, fmt.Errorf("marshal leadership: %w", err)
	}
	competenciesJSON, err := json.Marshal(v.Competencies)
	if err != nil {
		return nil, fmt.Errorf("marshal competencies: %w", err)
	}

	return &ScoreVectorModel{
		ScoreVectorAssessmentID: v.AssessmentID,

		ScoreVectorNaturalD: v.Natural.D,
		ScoreVectorNaturalI: v.Natural.I,
		ScoreVectorNaturalS: v.Natural.S,
		ScoreVectorNaturalC: v.Natural.C,

		ScoreVectorAdaptedD: v.Adapted.D,
		ScoreVectorAdaptedI: v.Adapted.I,
		ScoreVectorAdaptedS: v.Adapted.S,
		ScoreVectorAdaptedC: v.Adapted.C,

		ScoreVectorValues: datatypes.JSON(valuesJSON),

		ScoreVectorTotalTension: v.TotalTension,
		ScoreVectorTensionLevel: string(v.TensionLevel),

		ScoreVectorPrimaryProfile:   v.PrimaryProfile,
		ScoreVectorSecondaryProfile: v.SecondaryProfile,

		ScoreVectorJungCode:   v.Jung.Code,
		ScoreVectorJungScores: datatypes.JSON(jungJSON),

		ScoreVectorLeadership:   datatypes.JSON(leadershipJSON),
		ScoreVectorCompetencies: datatypes.JSON(competenciesJSON),

		ScoreVectorSalesProfile:       v.Sales.Profile,
		ScoreVectorSalesStrengths:     pq.StringArray(v.Sales.Strengths),
		ScoreVectorSalesWeaknesses:    pq.StringArray(v.Sales.Weaknesses),
		ScoreVectorSalesIdealCustomer: v.Sales.IdealCustomer,
		ScoreVectorSalesApproach:      v.Sales.SalesApproach,
	}, nil
}

func (m *ScoreVectorModel) ToScoreVector() (*scoring.ScoreVector, error) {
	v := &scoring.ScoreVector{
		AssessmentID: m.ScoreVectorAssessmentID,
		Natural: scoring.DiscVector{
			D: m.ScoreVectorNaturalD, I: m.ScoreVectorNaturalI,
			S: m.ScoreVectorNaturalS, C: m.ScoreVectorNaturalC,
		},
		Adapted: scoring.DiscVector{
			D: m.ScoreVectorAdaptedD, I: m.ScoreVectorAdaptedI,
			S: m.ScoreVectorAdaptedS, C: m.ScoreVectorAdaptedC,
		},
		TotalTension:     m.ScoreVectorTotalTension,
		TensionLevel:     scoring.TensionLevel(m.ScoreVectorTensionLevel),
		PrimaryProfile:   m.ScoreVectorPrimaryProfile,
		SecondaryProfile: m.ScoreVectorSecondaryProfile,
		Sales: scoring.SalesInsights{
			Profile:       m.ScoreVectorSalesProfile,
			Strengths:     []string(m.ScoreVectorSalesStrengths),
			Weaknesses:    []string(m.ScoreVectorSalesWeaknesses),
			IdealCustomer: m.ScoreVectorSalesIdealCustomer,
			SalesApproach: m.ScoreVectorSalesApproach,
		},
	}

	if err := json.Unmarshal(m.ScoreVectorValues, &v.Values); err != nil {
		return nil, fmt.Errorf("unmarshal values vector: %w", err)
	}
	if err := json.Unmarshal(m.ScoreVectorJungScores, &v.Jung); err != nil {
		return nil, fmt.Errorf("unmarshal jung scores: %w", err)
	}
	v.Jung.Code = m.ScoreVectorJungCode
	if err := json.Unmarshal(m.ScoreVectorLeadership, &v.Leadership); err != nil {
		return nil, fmt.Errorf("unmarshal leadership: %w", err)
	}
	if err := json.Unmarshal(m.ScoreVectorCompetencies, &v.Competencies); err != nil {
		return nil, fmt.Errorf("unmarshal competencies: %w", err)
	}
	return v, nil
}
