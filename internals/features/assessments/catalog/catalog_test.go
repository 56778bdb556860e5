// file: internals/features/assessments/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsShape(t *testing.T) {
	for _, stage := range StageOrder {
		groups, err := Groups(stage)
		require.NoError(t, err)
		require.Len(t, groups, GroupsPerStage)

		for i, g := range groups {
			assert.Equal(t, stage, g.Stage)
			assert.Equal(t, i+1, g.Number)
			assert.Len(t, g.Items, stage.MaxRank())
		}
	}
}

func TestDiscGroupsCoverAllFactors(t *testing.T) {
	for _, stage := range []Stage{StageNatural, StageAdapted} {
		groups, err := Groups(stage)
		require.NoError(t, err)

		for _, g := range groups {
			seen := map[Factor]bool{}
			for _, it := range g.Items {
				require.True(t, it.Factor.IsDisc(), "group %d item %q", g.Number, it.Text)
				assert.False(t, seen[it.Factor], "group %d repete o fator %s", g.Number, it.Factor)
				seen[it.Factor] = true
			}
			assert.Len(t, seen, DiscGroupSize)
		}
	}
}

func TestValuesGroupsCoverAllFactors(t *testing.T) {
	groups, err := Groups(StageValues)
	require.NoError(t, err)

	for _, g := range groups {
		seen := map[Factor]bool{}
		for _, it := range g.Items {
			require.True(t, it.Factor.IsValue(), "group %d item %q", g.Number, it.Text)
			seen[it.Factor] = true
		}
		assert.Len(t, seen, ValuesGroupSize)
	}
}

func TestDiscStagesShareCatalog(t *testing.T) {
	natural, err := Groups(StageNatural)
	require.NoError(t, err)
	adapted, err := Groups(StageAdapted)
	require.NoError(t, err)

	for i := range natural {
		assert.Equal(t, natural[i].Items, adapted[i].Items)
	}
}

func TestGroupsDefensiveCopy(t *testing.T) {
	first, err := GroupAt(StageNatural, 1)
	require.NoError(t, err)

	original := first.Items[0].Text
	first.Items[0].Text = "mutado"

	again, err := GroupAt(StageNatural, 1)
	require.NoError(t, err)
	assert.Equal(t, original, again.Items[0].Text)
}

func TestGroupAtRange(t *testing.T) {
	_, err := GroupAt(StageNatural, 0)
	assert.Error(t, err)

	_, err = GroupAt(StageNatural, GroupsPerStage+1)
	assert.Error(t, err)

	_, err = GroupAt(Stage("invalid"), 1)
	assert.Error(t, err)
}

func TestStageMaxRank(t *testing.T) {
	assert.Equal(t, DiscGroupSize, StageNatural.MaxRank())
	assert.Equal(t, DiscGroupSize, StageAdapted.MaxRank())
	assert.Equal(t, ValuesGroupSize, StageValues.MaxRank())
}

func TestStageScanValue(t *testing.T) {
	var s Stage
	require.NoError(t, s.Scan("adapted"))
	assert.Equal(t, StageAdapted, s)

	require.NoError(t, s.Scan([]byte("values")))
	assert.Equal(t, StageValues, s)

	assert.Error(t, s.Scan("unknown"))

	v, err := StageNatural.Value()
	require.NoError(t, err)
	assert.Equal(t, "natural", v)

	_, err = Stage("bogus").Value()
	assert.Error(t, err)
}

func TestFactorDomains(t *testing.T) {
	assert.True(t, FactorD.ValidFor(StageNatural))
	assert.True(t, FactorC.ValidFor(StageAdapted))
	assert.False(t, FactorD.ValidFor(StageValues))
	assert.True(t, FactorSpiritual.ValidFor(StageValues))
	assert.False(t, FactorSpiritual.ValidFor(StageNatural))
}
