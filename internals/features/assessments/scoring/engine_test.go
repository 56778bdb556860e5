// file: internals/features/assessments/scoring/engine_test.go
package scoring

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discprofile_backend/internals/features/assessments/catalog"
)

/* =============================================================================
   Construção de conjuntos completos de registros
============================================================================= */

// discStage gera os 40 registros de um estágio DISC. orderFor devolve os
// fatores na ordem de rank (posição 0 = rank 1) para cada grupo.
func discStage(id uuid.UUID, stage catalog.Stage, orderFor func(group int) []catalog.Factor) []RankRecord {
	out := make([]RankRecord, 0, catalog.GroupsPerStage*catalog.DiscGroupSize)
	for g := 1; g <= catalog.GroupsPerStage; g++ {
		for pos, f := range orderFor(g) {
			out = append(out, RankRecord{
				AssessmentID: id,
				Stage:        stage,
				GroupNumber:  g,
				ItemText:     fmt.Sprintf("%s-%d-%s", stage, g, f),
				ItemFactor:   f,
				Rank:         pos + 1,
			})
		}
	}
	return out
}

func valuesStage(id uuid.UUID) []RankRecord {
	out := make([]RankRecord, 0, catalog.GroupsPerStage*catalog.ValuesGroupSize)
	for g := 1; g <= catalog.GroupsPerStage; g++ {
		for pos, f := range catalog.ValueFactors {
			out = append(out, RankRecord{
				AssessmentID: id,
				Stage:        catalog.StageValues,
				GroupNumber:  g,
				ItemText:     fmt.Sprintf("values-%d-%s", g, f),
				ItemFactor:   f,
				Rank:         pos + 1,
			})
		}
	}
	return out
}

func fixedOrder(int) []catalog.Factor { return catalog.DiscFactors }

// fullRecords: D sempre rank 1, I rank 2, S rank 3, C rank 4 nos dois
// estágios DISC, valores na ordem do catálogo.
func fullRecords(id uuid.UUID) []RankRecord {
	records := discStage(id, catalog.StageNatural, fixedOrder)
	records = append(records, discStage(id, catalog.StageAdapted, fixedOrder)...)
	records = append(records, valuesStage(id)...)
	return records
}

/* =============================================================================
   Compute
============================================================================= */

func TestComputeKnownSums(t *testing.T) {
	id := uuid.New()
	sv, err := Compute(id, fullRecords(id))
	require.NoError(t, err)

	assert.Equal(t, id, sv.AssessmentID)
	assert.Equal(t, DiscVector{D: 40, I: 30, S: 20, C: 10}, sv.Natural)
	assert.Equal(t, DiscVector{D: 40, I: 30, S: 20, C: 10}, sv.Adapted)
	assert.Equal(t, ValuesVector{
		Theoretical: 60, Economic: 50, Aesthetic: 40,
		Social: 30, Political: 20, Spiritual: 10,
	}, sv.Values)

	assert.Equal(t, 0, sv.TotalTension)
	assert.Equal(t, TensionLow, sv.TensionLevel)

	assert.Equal(t, "Diretor", sv.PrimaryProfile)
	require.NotNil(t, sv.SecondaryProfile)
	assert.Equal(t, "Comunicador", *sv.SecondaryProfile)
}

func TestComputeDeterministic(t *testing.T) {
	id := uuid.New()
	records := fullRecords(id)

	first, err := Compute(id, records)
	require.NoError(t, err)

	// ordem dos registros não interfere
	reversed := make([]RankRecord, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}
	second, err := Compute(id, reversed)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeTension(t *testing.T) {
	// troca D<->I em k grupos do estágio adaptado: cada troca soma 2 de tensão
	swapped := []catalog.Factor{catalog.FactorI, catalog.FactorD, catalog.FactorS, catalog.FactorC}
	build := func(k int) []RankRecord {
		id := uuid.Nil
		records := discStage(id, catalog.StageNatural, fixedOrder)
		records = append(records, discStage(id, catalog.StageAdapted, func(g int) []catalog.Factor {
			if g <= k {
				return swapped
			}
			return catalog.DiscFactors
		})...)
		return append(records, valuesStage(id)...)
	}

	cases := []struct {
		k     int
		total int
		level TensionLevel
	}{
		{k: 0, total: 0, level: TensionLow},
		{k: 3, total: 6, level: TensionLow},
		{k: 4, total: 8, level: TensionModerate},
		{k: 7, total: 14, level: TensionModerate},
		{k: 8, total: 16, level: TensionHigh},
	}
	for _, tc := range cases {
		sv, err := Compute(uuid.Nil, build(tc.k))
		require.NoError(t, err, "k=%d", tc.k)
		assert.Equal(t, tc.total, sv.TotalTension, "k=%d", tc.k)
		assert.Equal(t, tc.level, sv.TensionLevel, "k=%d", tc.k)
	}
}

func TestComputeIncompleteData(t *testing.T) {
	id := uuid.New()

	t.Run("grupo ausente", func(t *testing.T) {
		records := fullRecords(id)
		kept := records[:0:0]
		for _, r := range records {
			if r.Stage == catalog.StageAdapted && r.GroupNumber == 10 {
				continue
			}
			kept = append(kept, r)
		}
		_, err := Compute(id, kept)
		var ide *IncompleteDataError
		require.ErrorAs(t, err, &ide)
		assert.Equal(t, catalog.StageAdapted, ide.Stage)
		assert.Equal(t, 10, ide.GroupNumber)
	})

	t.Run("rank duplicado", func(t *testing.T) {
		records := fullRecords(id)
		records[1].Rank = records[0].Rank
		_, err := Compute(id, records)
		var ide *IncompleteDataError
		require.ErrorAs(t, err, &ide)
	})

	t.Run("rank fora da faixa", func(t *testing.T) {
		records := fullRecords(id)
		records[0].Rank = 5
		_, err := Compute(id, records)
		var ide *IncompleteDataError
		require.ErrorAs(t, err, &ide)
	})

	t.Run("fator fora do domínio do estágio", func(t *testing.T) {
		records := fullRecords(id)
		records[0].ItemFactor = catalog.FactorSpiritual
		_, err := Compute(id, records)
		var ide *IncompleteDataError
		require.ErrorAs(t, err, &ide)
	})

	t.Run("número de grupo fora da faixa", func(t *testing.T) {
		records := fullRecords(id)
		records[0].GroupNumber = 11
		_, err := Compute(id, records)
		var ide *IncompleteDataError
		require.ErrorAs(t, err, &ide)
	})

	t.Run("conjunto vazio", func(t *testing.T) {
		_, err := Compute(id, nil)
		var ide *IncompleteDataError
		require.ErrorAs(t, err, &ide)
		assert.Equal(t, catalog.StageNatural, ide.Stage)
		assert.Equal(t, 1, ide.GroupNumber)
	})
}

/* =============================================================================
   Classificação de perfil
============================================================================= */

func TestClassifyProfile(t *testing.T) {
	cases := []struct {
		name      string
		natural   DiscVector
		primary   string
		secondary string // "" = nil
	}{
		{"dominante isolado", DiscVector{D: 30, I: 18, S: 10, C: 5}, "Diretor", ""},
		{"secundário acima do limiar", DiscVector{D: 28, I: 22, S: 10, C: 5}, "Diretor", "Comunicador"},
		{"secundário exatamente no limiar", DiscVector{D: 28, I: 20, S: 10, C: 5}, "Diretor", "Comunicador"},
		{"empate preserva precedência D,I", DiscVector{D: 25, I: 25, S: 10, C: 5}, "Diretor", "Comunicador"},
		{"empate preserva precedência S,C", DiscVector{D: 10, I: 10, S: 25, C: 25}, "Planejador", "Analista"},
		{"tudo zerado", DiscVector{}, "Diretor", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			primary, secondary := classifyProfile(tc.natural)
			assert.Equal(t, tc.primary, primary)
			if tc.secondary == "" {
				assert.Nil(t, secondary)
			} else {
				require.NotNil(t, secondary)
				assert.Equal(t, tc.secondary, *secondary)
			}
		})
	}
}

/* =============================================================================
   Tipo junguiano
============================================================================= */

func TestJungTypeCode(t *testing.T) {
	cases := []struct {
		name    string
		natural DiscVector
		code    string
	}{
		{"extrovertido intuitivo", DiscVector{D: 22, I: 20, S: 10, C: 8}, "ENFP"},
		{"introvertido julgador", DiscVector{D: 5, I: 5, S: 5, C: 21}, "ISTJ"},
		{"C no limiar fica perceptivo", DiscVector{D: 10, I: 10, S: 10, C: 20}, "ISTP"},
		{"empate cai na segunda opção", DiscVector{D: 10, I: 10, S: 10, C: 10}, "ISFP"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, jungType(tc.natural).Code)
		})
	}
}

func TestJungTypePercents(t *testing.T) {
	jt := jungType(DiscVector{D: 22, I: 20, S: 10, C: 8})
	assert.Equal(t, 53, jt.Extroversion) // roundHalf(42)=21 -> 53%
	assert.Equal(t, 23, jt.Introversion) // roundHalf(18)=9 -> 23%
	assert.Equal(t, 53, jt.Intuition)
	assert.Equal(t, 23, jt.Sensation)
	assert.Equal(t, 38, jt.Thinking) // roundHalf(30)=15 -> 38%
	assert.Equal(t, 38, jt.Feeling)
}

/* =============================================================================
   Liderança, competências e insights de vendas
============================================================================= */

func TestLeadershipAndCompetencies(t *testing.T) {
	natural := DiscVector{D: 40, I: 30, S: 20, C: 10}

	ls := leadershipStyle(natural)
	assert.Equal(t, LeadershipStyle{Executive: 100, Motivator: 75, Systematic: 50, Methodical: 25}, ls)

	cv := competencyVector(natural)
	assert.Equal(t, 100, cv.Execution)
	assert.Equal(t, 75, cv.Communication)
	assert.Equal(t, 50, cv.Planning)
	assert.Equal(t, 25, cv.Analysis)
	assert.Equal(t, 88, cv.Negotiation)  // roundHalf(70)=35 -> 88%
	assert.Equal(t, 38, cv.Organization) // roundHalf(30)=15 -> 38%
}

func TestSalesInsightsCascade(t *testing.T) {
	assert.Equal(t, "Diretor", salesInsights(DiscVector{D: 24}).Profile)
	assert.Equal(t, "Comunicador", salesInsights(DiscVector{D: 23, I: 24}).Profile)
	assert.Equal(t, "Planejador", salesInsights(DiscVector{S: 30}).Profile)
	assert.Equal(t, "Analista", salesInsights(DiscVector{C: 24}).Profile)

	// D é checado primeiro mesmo com outro fator mais alto
	assert.Equal(t, "Diretor", salesInsights(DiscVector{D: 24, C: 40}).Profile)

	generic := salesInsights(DiscVector{D: 23, I: 23, S: 23, C: 23})
	assert.Equal(t, "Versátil", generic.Profile)
	assert.NotEmpty(t, generic.Strengths)
}

/* =============================================================================
   Helpers
============================================================================= */

func TestTensionLevelBoundaries(t *testing.T) {
	assert.Equal(t, TensionLow, tensionLevel(0))
	assert.Equal(t, TensionLow, tensionLevel(7))
	assert.Equal(t, TensionModerate, tensionLevel(8))
	assert.Equal(t, TensionModerate, tensionLevel(15))
	assert.Equal(t, TensionHigh, tensionLevel(16))
	assert.Equal(t, TensionHigh, tensionLevel(80))
}

func TestRoundHalf(t *testing.T) {
	assert.Equal(t, 0, roundHalf(0))
	assert.Equal(t, 3, roundHalf(5)) // .5 arredonda para cima
	assert.Equal(t, 3, roundHalf(6))
	assert.Equal(t, 40, roundHalf(80))
}

func TestToPercent(t *testing.T) {
	assert.Equal(t, 0, toPercent(0))
	assert.Equal(t, 25, toPercent(10))
	assert.Equal(t, 50, toPercent(20))
	assert.Equal(t, 100, toPercent(40))
}
