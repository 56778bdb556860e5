// file: internals/features/assessments/scoring/engine.go
package scoring

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"discprofile_backend/internals/features/assessments/catalog"
)

/* =============================================================================
   Entrada: registros de rank persistidos de uma avaliação completa
============================================================================= */

type RankRecord struct {
	AssessmentID uuid.UUID      `json:"assessment_id"`
	Stage        catalog.Stage  `json:"stage"`
	GroupNumber  int            `json:"group_number"` // 1..10
	ItemText     string         `json:"item_text"`
	ItemFactor   catalog.Factor `json:"item_factor"`
	Rank         int            `json:"rank"` // 1 = mais característico/importante
}

// IncompleteDataError: conjunto de respostas incompleto ou malformado.
// Fatal para a tentativa de cálculo: nunca é remendado com defaults.
type IncompleteDataError struct {
	Stage       catalog.Stage
	GroupNumber int
	Reason      string
}

func (e *IncompleteDataError) Error() string {
	return fmt.Sprintf("incomplete response set: stage=%s group=%d: %s", e.Stage, e.GroupNumber, e.Reason)
}

/* =============================================================================
   Saída: ScoreVector
============================================================================= */

type DiscVector struct {
	D int `json:"d"`
	I int `json:"i"`
	S int `json:"s"`
	C int `json:"c"`
}

func (v DiscVector) Get(f catalog.Factor) int {
	switch f {
	case catalog.FactorD:
		return v.D
	case catalog.FactorI:
		return v.I
	case catalog.FactorS:
		return v.S
	default:
		return v.C
	}
}

type ValuesVector struct {
	Theoretical int `json:"theoretical"`
	Economic    int `json:"economic"`
	Aesthetic   int `json:"aesthetic"`
	Social      int `json:"social"`
	Political   int `json:"political"`
	Spiritual   int `json:"spiritual"`
}

type TensionLevel string

const (
	TensionLow      TensionLevel = "low"
	TensionModerate TensionLevel = "moderate"
	TensionHigh     TensionLevel = "high"
)

// Limiares fixos de tensão: política, não estatística.
const (
	tensionModerateFrom = 8
	tensionHighFrom     = 16
)

// Limiar para perfil secundário (metade da escala 0–40) e para o
// cascade de insights de vendas.
const (
	secondaryProfileMin   = 20
	salesInsightThreshold = 24
)

type JungType struct {
	Code string `json:"code"` // ex.: "ENTJ"

	// Sub-scores em percentual da escala 0–40.
	Extroversion int `json:"extroversion"`
	Introversion int `json:"introversion"`
	Intuition    int `json:"intuition"`
	Sensation    int `json:"sensation"`
	Thinking     int `json:"thinking"`
	Feeling      int `json:"feeling"`
}

// LeadershipStyle: vetor natural relabelado em percentual: não é um
// cálculo independente.
type LeadershipStyle struct {
	Executive  int `json:"executive"`  // D
	Motivator  int `json:"motivator"`  // I
	Systematic int `json:"systematic"` // S
	Methodical int `json:"methodical"` // C
}

type CompetencyVector struct {
	Execution     int `json:"execution"`     // D
	Communication int `json:"communication"` // I
	Planning      int `json:"planning"`      // S
	Analysis      int `json:"analysis"`      // C
	Negotiation   int `json:"negotiation"`   // (D+I)/2
	Organization  int `json:"organization"`  // (S+C)/2
}

type SalesInsights struct {
	Profile       string   `json:"profile"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	IdealCustomer string   `json:"ideal_customer"`
	SalesApproach string   `json:"sales_approach"`
}

type ScoreVector struct {
	AssessmentID uuid.UUID `json:"assessment_id"`

	Natural DiscVector   `json:"natural"` // 0–40 por fator
	Adapted DiscVector   `json:"adapted"` // 0–40 por fator
	Values  ValuesVector `json:"values"`  // 0–60 por fator

	TotalTension int          `json:"total_tension"`
	TensionLevel TensionLevel `json:"tension_level"`

	PrimaryProfile   string  `json:"primary_profile"`
	SecondaryProfile *string `json:"secondary_profile,omitempty"`

	Jung         JungType         `json:"jung"`
	Leadership   LeadershipStyle  `json:"leadership"`
	Competencies CompetencyVector `json:"competencies"`
	Sales        SalesInsights    `json:"sales"`
}

// Rótulos de perfil por fator DISC.
var ProfileLabels = map[catalog.Factor]string{
	catalog.FactorD: "Diretor",
	catalog.FactorI: "Comunicador",
	catalog.FactorS: "Planejador",
	catalog.FactorC: "Analista",
}

/* =============================================================================
   Engine
============================================================================= */

// Compute transforma o conjunto completo de RankRecords de uma avaliação no
// ScoreVector. Puro e determinístico: mesma entrada → mesma saída, sem efeitos
// colaterais (persistência é responsabilidade do chamador).
func Compute(assessmentID uuid.UUID, records []RankRecord) (*ScoreVector, error) {
	byStage := splitByStage(records)

	for _, stage := range catalog.StageOrder {
		if err := validateStage(stage, byStage[stage]); err != nil {
			return nil, err
		}
	}

	natural := discSum(byStage[catalog.StageNatural])
	adapted := discSum(byStage[catalog.StageAdapted])
	values := valuesSum(byStage[catalog.StageValues])

	total := tensionTotal(natural, adapted)

	primary, secondary := classifyProfile(natural)

	sv := &ScoreVector{
		AssessmentID:     assessmentID,
		Natural:          natural,
		Adapted:          adapted,
		Values:           values,
		TotalTension:     total,
		TensionLevel:     tensionLevel(total),
		PrimaryProfile:   primary,
		SecondaryProfile: secondary,
		Jung:             jungType(natural),
		Leadership:       leadershipStyle(natural),
		Competencies:     competencyVector(natural),
		Sales:            salesInsights(natural),
	}
	return sv, nil
}

func splitByStage(records []RankRecord) map[catalog.Stage][]RankRecord {
	out := make(map[catalog.Stage][]RankRecord, 3)
	for _, r := range records {
		out[r.Stage] = append(out[r.Stage], r)
	}
	return out
}

// validateStage exige, para cada grupo 1..10, exatamente maxRank registros
// cujos ranks formam uma permutação de 1..maxRank e cujos fatores pertencem
// ao domínio do estágio.
func validateStage(stage catalog.Stage, records []RankRecord) error {
	maxRank := stage.MaxRank()

	ranksByGroup := make(map[int][]int, catalog.GroupsPerStage)
	for _, r := range records {
		if r.GroupNumber < 1 || r.GroupNumber > catalog.GroupsPerStage {
			return &IncompleteDataError{Stage: stage, GroupNumber: r.GroupNumber, Reason: "group number out of range"}
		}
		if !r.ItemFactor.ValidFor(stage) {
			return &IncompleteDataError{Stage: stage, GroupNumber: r.GroupNumber,
				Reason: fmt.Sprintf("factor %q does not belong to stage", r.ItemFactor)}
		}
		ranksByGroup[r.GroupNumber] = append(ranksByGroup[r.GroupNumber], r.Rank)
	}

	for group := 1; group <= catalog.GroupsPerStage; group++ {
		ranks := ranksByGroup[group]
		if len(ranks) == 0 {
			return &IncompleteDataError{Stage: stage, GroupNumber: group, Reason: "group has no records"}
		}
		if len(ranks) != maxRank {
			return &IncompleteDataError{Stage: stage, GroupNumber: group,
				Reason: fmt.Sprintf("expected %d records, got %d", maxRank, len(ranks))}
		}
		seen := make(map[int]bool, maxRank)
		for _, rank := range ranks {
			if rank < 1 || rank > maxRank {
				return &IncompleteDataError{Stage: stage, GroupNumber: group,
					Reason: fmt.Sprintf("rank %d out of range 1..%d", rank, maxRank)}
			}
			if seen[rank] {
				return &IncompleteDataError{Stage: stage, GroupNumber: group,
					Reason: fmt.Sprintf("duplicate rank %d", rank)}
			}
			seen[rank] = true
		}
	}
	return nil
}

/* =============================================================================
   Somatórios: points = (maxRank + 1) − rank, acumulado no fator do item
============================================================================= */

func discSum(records []RankRecord) DiscVector {
	var v DiscVector
	for _, r := range records {
		points := (catalog.DiscGroupSize + 1) - r.Rank
		switch r.ItemFactor {
		case catalog.FactorD:
			v.D += points
		case catalog.FactorI:
			v.I += points
		case catalog.FactorS:
			v.S += points
		case catalog.FactorC:
			v.C += points
		}
	}
	return v
}

func valuesSum(records []RankRecord) ValuesVector {
	var v ValuesVector
	for _, r := range records {
		points := (catalog.ValuesGroupSize + 1) - r.Rank
		switch r.ItemFactor {
		case catalog.FactorTheoretical:
			v.Theoretical += points
		case catalog.FactorEconomic:
			v.Economic += points
		case catalog.FactorAesthetic:
			v.Aesthetic += points
		case catalog.FactorSocial:
			v.Social += points
		case catalog.FactorPolitical:
			v.Political += points
		case catalog.FactorSpiritual:
			v.Spiritual += points
		}
	}
	return v
}

/* =============================================================================
   Tensão
============================================================================= */

func tensionTotal(natural, adapted DiscVector) int {
	total := 0
	for _, f := range catalog.DiscFactors {
		total += abs(natural.Get(f) - adapted.Get(f))
	}
	return total
}

func tensionLevel(total int) TensionLevel {
	switch {
	case total < tensionModerateFrom:
		return TensionLow
	case total < tensionHighFrom:
		return TensionModerate
	default:
		return TensionHigh
	}
}

/* =============================================================================
   Classificação de perfil
   Ordena os quatro fatores naturais em ordem decrescente; empates preservam
   a precedência fixa D, I, S, C (sort estável). Secundário só existe com
   score ≥ 20.
============================================================================= */

func classifyProfile(natural DiscVector) (primary string, secondary *string) {
	ordered := make([]catalog.Factor, len(catalog.DiscFactors))
	copy(ordered, catalog.DiscFactors)
	sort.SliceStable(ordered, func(i, j int) bool {
		return natural.Get(ordered[i]) > natural.Get(ordered[j])
	})

	primary = ProfileLabels[ordered[0]]
	if natural.Get(ordered[1]) >= secondaryProfileMin {
		label := ProfileLabels[ordered[1]]
		secondary = &label
	}
	return primary, secondary
}

/* =============================================================================
   Tipo junguiano
   Comparações com `>` estrito; empate cai na segunda opção. Letra 4: "J"
   exatamente quando C natural > 20.
============================================================================= */

func jungType(natural DiscVector) JungType {
	extroversion := roundHalf(natural.D + natural.I)
	introversion := roundHalf(natural.S + natural.C)
	intuition := roundHalf(natural.D + natural.I)
	sensation := roundHalf(natural.S + natural.C)
	thinking := roundHalf(natural.D + natural.C)
	feeling := roundHalf(natural.I + natural.S)

	code := ""
	if extroversion > introversion {
		code += "E"
	} else {
		code += "I"
	}
	if intuition > sensation {
		code += "N"
	} else {
		code += "S"
	}
	if thinking > feeling {
		code += "T"
	} else {
		code += "F"
	}
	if natural.C > secondaryProfileMin {
		code += "J"
	} else {
		code += "P"
	}

	return JungType{
		Code:         code,
		Extroversion: toPercent(extroversion),
		Introversion: toPercent(introversion),
		Intuition:    toPercent(intuition),
		Sensation:    toPercent(sensation),
		Thinking:     toPercent(thinking),
		Feeling:      toPercent(feeling),
	}
}

/* =============================================================================
   Estilo de liderança e competências (derivados do vetor natural)
============================================================================= */

func leadershipStyle(natural DiscVector) LeadershipStyle {
	return LeadershipStyle{
		Executive:  toPercent(natural.D),
		Motivator:  toPercent(natural.I),
		Systematic: toPercent(natural.S),
		Methodical: toPercent(natural.C),
	}
}

func competencyVector(natural DiscVector) CompetencyVector {
	return CompetencyVector{
		Execution:     toPercent(natural.D),
		Communication: toPercent(natural.I),
		Planning:      toPercent(natural.S),
		Analysis:      toPercent(natural.C),
		Negotiation:   toPercent(roundHalf(natural.D + natural.I)),
		Organization:  toPercent(roundHalf(natural.S + natural.C)),
	}
}

/* =============================================================================
   Helpers
============================================================================= */

// roundHalf(x+y) = round((x+y)/2) com .5 arredondando para cima.
func roundHalf(sum int) int { return (sum + 1) / 2 }

// toPercent converte um score na escala 0–40 para percentual inteiro.
func toPercent(score int) int { return (score*100 + 20) / 40 }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
