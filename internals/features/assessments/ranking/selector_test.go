// file: internals/features/assessments/ranking/selector_test.go
package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discprofile_backend/internals/features/assessments/catalog"
)

func testItems() []catalog.Item {
	return []catalog.Item{
		{Text: "Decidido", Factor: catalog.FactorD},
		{Text: "Comunicativo", Factor: catalog.FactorI},
		{Text: "Paciente", Factor: catalog.FactorS},
		{Text: "Preciso", Factor: catalog.FactorC},
	}
}

func newTestSelector(t *testing.T) *Selector {
	t.Helper()
	s, err := NewSelector(testItems(), 4)
	require.NoError(t, err)
	return s
}

func texts(items []catalog.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Text)
	}
	return out
}

func TestNewSelectorValidation(t *testing.T) {
	_, err := NewSelector(testItems(), 0)
	assert.Error(t, err)

	_, err = NewSelector(testItems()[:2], 4)
	assert.Error(t, err)

	dup := append(testItems(), catalog.Item{Text: "Decidido", Factor: catalog.FactorS})
	_, err = NewSelector(dup, 4)
	assert.Error(t, err)
}

func TestPromoteMovesBetweenSets(t *testing.T) {
	s := newTestSelector(t)

	require.NoError(t, s.Promote("Paciente"))
	assert.Equal(t, []string{"Paciente"}, texts(s.Ranked()))
	assert.Len(t, s.Unranked(), 3)

	// toda partição soma o grupo inteiro
	assert.Len(t, append(s.Ranked(), s.Unranked()...), 4)

	assert.ErrorIs(t, s.Promote("Paciente"), ErrItemNotUnranked)
	assert.ErrorIs(t, s.Promote("Inexistente"), ErrItemNotFound)
}

func TestPromoteCapacity(t *testing.T) {
	s, err := NewSelector(testItems(), 2)
	require.NoError(t, err)

	require.NoError(t, s.Promote("Decidido"))
	require.NoError(t, s.Promote("Comunicativo"))
	assert.ErrorIs(t, s.Promote("Paciente"), ErrCapacityFull)
	assert.True(t, s.Complete())
}

func TestDemoteCompactsOrder(t *testing.T) {
	s := newTestSelector(t)
	for _, text := range []string{"Decidido", "Comunicativo", "Paciente"} {
		require.NoError(t, s.Promote(text))
	}

	require.NoError(t, s.Demote("Comunicativo"))
	assert.Equal(t, []string{"Decidido", "Paciente"}, texts(s.Ranked()))

	assert.ErrorIs(t, s.Demote("Preciso"), ErrItemNotRanked)
	assert.ErrorIs(t, s.Demote("Inexistente"), ErrItemNotFound)
}

func TestReorderRankedItem(t *testing.T) {
	s := newTestSelector(t)
	for _, text := range []string{"Decidido", "Comunicativo", "Paciente"} {
		require.NoError(t, s.Promote(text))
	}

	require.NoError(t, s.Reorder("Paciente", 0))
	assert.Equal(t, []string{"Paciente", "Decidido", "Comunicativo"}, texts(s.Ranked()))

	assert.ErrorIs(t, s.Reorder("Paciente", 3), ErrPositionRange)
	assert.ErrorIs(t, s.Reorder("Paciente", -1), ErrPositionRange)
}

func TestReorderUnrankedInsertsAtPosition(t *testing.T) {
	s := newTestSelector(t)
	require.NoError(t, s.Promote("Decidido"))
	require.NoError(t, s.Promote("Comunicativo"))

	require.NoError(t, s.Reorder("Preciso", 1))
	assert.Equal(t, []string{"Decidido", "Preciso", "Comunicativo"}, texts(s.Ranked()))
}

func TestReorderOverflowEvictsLast(t *testing.T) {
	s, err := NewSelector(testItems(), 3)
	require.NoError(t, err)
	for _, text := range []string{"Decidido", "Comunicativo", "Paciente"} {
		require.NoError(t, s.Promote(text))
	}
	require.True(t, s.Complete())

	// lista cheia: inserir um unranked rebaixa o último ranqueado
	require.NoError(t, s.Reorder("Preciso", 1))
	assert.Equal(t, []string{"Decidido", "Preciso", "Comunicativo"}, texts(s.Ranked()))
	assert.Equal(t, []string{"Paciente"}, texts(s.Unranked()))
	assert.True(t, s.Complete())
}

func TestReorderUnrankedPositionRange(t *testing.T) {
	s, err := NewSelector(testItems(), 3)
	require.NoError(t, err)
	for _, text := range []string{"Decidido", "Comunicativo", "Paciente"} {
		require.NoError(t, s.Promote(text))
	}

	// posição além da capacidade nunca é aceita, mesmo com lista cheia
	assert.ErrorIs(t, s.Reorder("Preciso", 3), ErrPositionRange)
	assert.ErrorIs(t, s.Reorder("Preciso", -1), ErrPositionRange)
	assert.Equal(t, []string{"Decidido", "Comunicativo", "Paciente"}, texts(s.Ranked()))
}

func TestSubmitBijection(t *testing.T) {
	s := newTestSelector(t)
	order := []string{"Paciente", "Decidido", "Preciso", "Comunicativo"}
	for _, text := range order {
		require.NoError(t, s.Promote(text))
	}

	ranks, err := s.Submit()
	require.NoError(t, err)
	require.Len(t, ranks, 4)
	for pos, text := range order {
		assert.Equal(t, pos+1, ranks[text])
	}

	items, err := s.RankedItems()
	require.NoError(t, err)
	for pos, ri := range items {
		assert.Equal(t, order[pos], ri.Item.Text)
		assert.Equal(t, pos+1, ri.Rank)
	}
}

func TestSubmitIncomplete(t *testing.T) {
	s := newTestSelector(t)
	require.NoError(t, s.Promote("Decidido"))

	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrIncomplete)

	_, err = s.RankedItems()
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestFailedOperationKeepsState(t *testing.T) {
	s := newTestSelector(t)
	require.NoError(t, s.Promote("Decidido"))
	before := texts(s.Ranked())

	assert.Error(t, s.Promote("Inexistente"))
	assert.Error(t, s.Demote("Comunicativo"))
	assert.Error(t, s.Reorder("Decidido", 5))

	assert.Equal(t, before, texts(s.Ranked()))
	assert.Len(t, s.Unranked(), 3)
}

func TestNewSelectorForGroup(t *testing.T) {
	group, err := catalog.GroupAt(catalog.StageValues, 1)
	require.NoError(t, err)

	s, err := NewSelectorForGroup(group)
	require.NoError(t, err)
	assert.Equal(t, catalog.ValuesGroupSize, s.MaxRank())
	assert.Len(t, s.Unranked(), catalog.ValuesGroupSize)
}
