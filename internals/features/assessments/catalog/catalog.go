// file: internals/features/assessments/catalog/catalog.go
package catalog

import (
	"database/sql/driver"
	"fmt"
)

/* =============================================================================
   ENUM-like: Stage ('natural','adapted','values')
============================================================================= */

type Stage string

const (
	StageNatural Stage = "natural"
	StageAdapted Stage = "adapted"
	StageValues  Stage = "values"
)

// Stages in questionnaire order.
var StageOrder = []Stage{StageNatural, StageAdapted, StageValues}

func (s Stage) String() string { return string(s) }

func (s Stage) Valid() bool {
	switch s {
	case StageNatural, StageAdapted, StageValues:
		return true
	default:
		return false
	}
}

// MaxRank = quantos itens precisam ser ranqueados por grupo:
// 4 nos estágios DISC, 6 no estágio de valores.
func (s Stage) MaxRank() int {
	if s == StageValues {
		return ValuesGroupSize
	}
	return DiscGroupSize
}

// sql.Scanner + driver.Valuer (seguro ao fazer scan para o enum)
func (s *Stage) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = Stage(v)
	case []byte:
		*s = Stage(string(v))
	default:
		return fmt.Errorf("unsupported type for Stage: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid Stage: %q", *s)
	}
	return nil
}

func (s Stage) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid Stage: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   ENUM-like: Factor (DISC + valores motivacionais)
============================================================================= */

type Factor string

const (
	FactorD Factor = "D"
	FactorI Factor = "I"
	FactorS Factor = "S"
	FactorC Factor = "C"

	FactorTheoretical Factor = "theoretical"
	FactorEconomic    Factor = "economic"
	FactorAesthetic   Factor = "aesthetic"
	FactorSocial      Factor = "social"
	FactorPolitical   Factor = "political"
	FactorSpiritual   Factor = "spiritual"
)

// DiscFactors em ordem fixa D, I, S, C: a precedência usada em
// classificação de perfil e no cascade de insights.
var DiscFactors = []Factor{FactorD, FactorI, FactorS, FactorC}

var ValueFactors = []Factor{
	FactorTheoretical, FactorEconomic, FactorAesthetic,
	FactorSocial, FactorPolitical, FactorSpiritual,
}

func (f Factor) String() string { return string(f) }

func (f Factor) IsDisc() bool {
	switch f {
	case FactorD, FactorI, FactorS, FactorC:
		return true
	default:
		return false
	}
}

func (f Factor) IsValue() bool {
	switch f {
	case FactorTheoretical, FactorEconomic, FactorAesthetic,
		FactorSocial, FactorPolitical, FactorSpiritual:
		return true
	default:
		return false
	}
}

// ValidFor verifica se o fator pertence ao domínio do estágio.
func (f Factor) ValidFor(stage Stage) bool {
	if stage == StageValues {
		return f.IsValue()
	}
	return f.IsDisc()
}

/* =============================================================================
   Item & Group (dados estáticos, read-only)
============================================================================= */

const (
	GroupsPerStage  = 10
	DiscGroupSize   = 4
	ValuesGroupSize = 6
)

type Item struct {
	Text   string `json:"text"`
	Factor Factor `json:"factor"`
}

type Group struct {
	Stage  Stage  `json:"stage"`
	Number int    `json:"number"` // 1..10
	Items  []Item `json:"items"`
}

// Groups devolve os 10 grupos do estágio. Os estágios natural e adapted
// compartilham o mesmo catálogo de adjetivos DISC.
func Groups(stage Stage) ([]Group, error) {
	if !stage.Valid() {
		return nil, fmt.Errorf("invalid stage: %q", stage)
	}
	if stage == StageValues {
		return buildGroups(stage, valuesGroups[:]), nil
	}
	return buildGroups(stage, discGroups[:]), nil
}

// GroupAt devolve um grupo específico (number em 1..10).
func GroupAt(stage Stage, number int) (Group, error) {
	if number < 1 || number > GroupsPerStage {
		return Group{}, fmt.Errorf("group number out of range: %d", number)
	}
	groups, err := Groups(stage)
	if err != nil {
		return Group{}, err
	}
	return groups[number-1], nil
}

func buildGroups(stage Stage, source [][]Item) []Group {
	groups := make([]Group, 0, len(source))
	for i, items := range source {
		// cópia defensiva: o chamador não pode mutar o catálogo
		copied := make([]Item, len(items))
		copy(copied, items)
		groups = append(groups, Group{Stage: stage, Number: i + 1, Items: copied})
	}
	return groups
}
