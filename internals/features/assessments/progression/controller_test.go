// file: internals/features/assessments/progression/controller_test.go
package progression

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discprofile_backend/internals/features/assessments/catalog"
	"discprofile_backend/internals/features/assessments/scoring"
)

/* =============================================================================
   Fakes em memória com a mesma semântica dos stores reais
============================================================================= */

type memStores struct {
	records map[uuid.UUID][]scoring.RankRecord
	status  map[uuid.UUID]Status
	results map[uuid.UUID]*scoring.ScoreVector

	failAppend    error
	failSetStatus error
	failUpsert    error

	appendCalls int
	upsertCalls int
}

func newMemStores() *memStores {
	return &memStores{
		records: make(map[uuid.UUID][]scoring.RankRecord),
		status:  make(map[uuid.UUID]Status),
		results: make(map[uuid.UUID]*scoring.ScoreVector),
	}
}

// Append replica a semântica de substituição por grupo do store real.
func (m *memStores) Append(_ context.Context, records []scoring.RankRecord) error {
	m.appendCalls++
	if m.failAppend != nil {
		return m.failAppend
	}
	if len(records) == 0 {
		return nil
	}
	head := records[0]
	kept := m.records[head.AssessmentID][:0:0]
	for _, r := range m.records[head.AssessmentID] {
		if r.Stage == head.Stage && r.GroupNumber == head.GroupNumber {
			continue
		}
		kept = append(kept, r)
	}
	m.records[head.AssessmentID] = append(kept, records...)
	return nil
}

func (m *memStores) ReadAll(_ context.Context, assessmentID uuid.UUID) ([]scoring.RankRecord, error) {
	return m.records[assessmentID], nil
}

func (m *memStores) SetStatus(_ context.Context, assessmentID uuid.UUID, status Status) error {
	if m.failSetStatus != nil {
		return m.failSetStatus
	}
	m.status[assessmentID] = status
	return nil
}

func (m *memStores) Upsert(_ context.Context, vector *scoring.ScoreVector) error {
	m.upsertCalls++
	if m.failUpsert != nil {
		return m.failUpsert
	}
	m.results[vector.AssessmentID] = vector
	return nil
}

func newTestController(stores *memStores) *Controller {
	return NewController(stores, stores, stores)
}

/* =============================================================================
   Helpers de condução da sessão
============================================================================= */

// fillGroup promove todos os itens do grupo corrente, na ordem do catálogo.
func fillGroup(t *testing.T, sess *Session) {
	t.Helper()
	view := sess.Snapshot()
	for _, item := range view.Unranked {
		require.NoError(t, sess.Promote(item.Text))
	}
}

func submitFilled(t *testing.T, c *Controller, sess *Session) *scoring.ScoreVector {
	t.Helper()
	fillGroup(t, sess)
	vector, err := c.SubmitGroup(context.Background(), sess)
	require.NoError(t, err)
	return vector
}

/* =============================================================================
   Testes
============================================================================= */

func TestStartSession(t *testing.T) {
	stores := newMemStores()
	c := newTestController(stores)
	id := uuid.New()

	sess, err := c.StartSession(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, sess.AssessmentID())
	assert.Equal(t, catalog.StageNatural, sess.Stage())
	assert.Equal(t, 1, sess.CurrentGroup())
	assert.Equal(t, StatusInProgress, stores.status[id])

	view := sess.Snapshot()
	assert.Equal(t, catalog.DiscGroupSize, view.MaxRank)
	assert.Len(t, view.Unranked, catalog.DiscGroupSize)
	assert.Empty(t, view.Ranked)
	assert.False(t, view.CanSubmit)
}

func TestSubmitGroupRequiresFullRanking(t *testing.T) {
	stores := newMemStores()
	c := newTestController(stores)

	sess, err := c.StartSession(context.Background(), uuid.New())
	require.NoError(t, err)

	_, err = c.SubmitGroup(context.Background(), sess)
	assert.Error(t, err)
	assert.Equal(t, 1, sess.CurrentGroup())
	assert.Zero(t, stores.appendCalls)
}

func TestFullWalkThroughAllStages(t *testing.T) {
	stores := newMemStores()
	c := newTestController(stores)
	id := uuid.New()

	sess, err := c.StartSession(context.Background(), id)
	require.NoError(t, err)

	var vector *scoring.ScoreVector
	for step := 0; step < 3*catalog.GroupsPerStage; step++ {
		require.False(t, sess.Completed(), "step %d", step)
		vector = submitFilled(t, c, sess)
	}

	require.NotNil(t, vector)
	assert.True(t, sess.Completed())
	assert.Equal(t, StatusCompleted, stores.status[id])
	assert.Equal(t, vector, stores.results[id])

	// 20 grupos DISC de 4 registros + 10 grupos de valores de 6
	assert.Len(t, stores.records[id], 2*catalog.GroupsPerStage*catalog.DiscGroupSize+
		catalog.GroupsPerStage*catalog.ValuesGroupSize)

	// sessão completa não aceita mais mutações
	assert.ErrorIs(t, sess.Promote("qualquer"), ErrSessionCompleted)
	_, err = c.SubmitGroup(context.Background(), sess)
	assert.ErrorIs(t, err, ErrSessionCompleted)
	assert.ErrorIs(t, c.GoBack(sess), ErrSessionCompleted)
}

func TestStageTransitions(t *testing.T) {
	stores := newMemStores()
	c := newTestController(stores)

	sess, err := c.StartSession(context.Background(), uuid.New())
	require.NoError(t, err)

	for g := 0; g < catalog.GroupsPerStage; g++ {
		submitFilled(t, c, sess)
	}
	assert.Equal(t, catalog.StageAdapted, sess.Stage())
	assert.Equal(t, 1, sess.CurrentGroup())

	for g := 0; g < catalog.GroupsPerStage; g++ {
		submitFilled(t, c, sess)
	}
	assert.Equal(t, catalog.StageValues, sess.Stage())
	assert.Equal(t, 1, sess.CurrentGroup())
	assert.Equal(t, catalog.ValuesGroupSize, sess.Snapshot().MaxRank)
}

func TestGoBack(t *testing.T) {
	stores := newMemStores()
	c := newTestController(stores)

	sess, err := c.StartSession(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.ErrorIs(t, c.GoBack(sess), ErrAtStart)

	submitFilled(t, c, sess)
	require.Equal(t, 2, sess.CurrentGroup())

	require.NoError(t, c.GoBack(sess))
	assert.Equal(t, 1, sess.CurrentGroup())

	// o grupo revisitado começa do zero
	view := sess.Snapshot()
	assert.Empty(t, view.Ranked)
	assert.Len(t, view.Unranked, catalog.DiscGroupSize)
}

func TestGoBackAcrossStageBoundary(t *testing.T) {
	stores := newMemStores()
	c := newTestController(stores)

	sess, err := c.StartSession(context.Background(), uuid.New())
	require.NoError(t, err)

	for g := 0; g < catalog.GroupsPerStage; g++ {
		submitFilled(t, c, sess)
	}
	require.Equal(t, catalog.StageAdapted, sess.Stage())

	require.NoError(t, c.GoBack(sess))
	assert.Equal(t, catalog.StageNatural, sess.Stage())
	assert.Equal(t, catalog.GroupsPerStage, sess.CurrentGroup())
}

func TestResubmitReplacesGroup(t *testing.T) {
	stores := newMemStores()
	c := newTestController(stores)
	id := uuid.New()

	sess, err := c.StartSession(context.Background(), id)
	require.NoError(t, err)

	submitFilled(t, c, sess)
	require.Len(t, stores.records[id], catalog.DiscGroupSize)

	require.NoError(t, c.GoBack(sess))
	submitFilled(t, c, sess)

	// reenvio substitui, nunca acumula
	assert.Len(t, stores.records[id], catalog.DiscGroupSize)
	assert.Equal(t, 2, sess.CurrentGroup())
}

func TestPersistenceFailureKeepsState(t *testing.T) {
	stores := newMemStores()
	c := newTestController(stores)

	sess, err := c.StartSession(context.Background(), uuid.New())
	require.NoError(t, err)

	fillGroup(t, sess)
	stores.failAppend = errors.New("db down")

	_, err = c.SubmitGroup(context.Background(), sess)
	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "responses.Append", pe.Op)

	// estado intacto: mesma operação pode ser reenviada
	assert.Equal(t, 1, sess.CurrentGroup())
	assert.True(t, sess.Snapshot().CanSubmit)

	stores.failAppend = nil
	_, err = c.SubmitGroup(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, 2, sess.CurrentGroup())
}

func TestFinalizationFailureKeepsSessionOpen(t *testing.T) {
	stores := newMemStores()
	c := newTestController(stores)
	id := uuid.New()

	sess, err := c.StartSession(context.Background(), id)
	require.NoError(t, err)

	for step := 0; step < 3*catalog.GroupsPerStage-1; step++ {
		submitFilled(t, c, sess)
	}
	require.Equal(t, catalog.StageValues, sess.Stage())
	require.Equal(t, catalog.GroupsPerStage, sess.CurrentGroup())

	stores.failUpsert = errors.New("db down")
	fillGroup(t, sess)
	_, err = c.SubmitGroup(context.Background(), sess)
	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.False(t, sess.Completed())
	assert.NotEqual(t, StatusCompleted, stores.status[id])

	// depois que o store volta, o reenvio do mesmo grupo conclui
	stores.failUpsert = nil
	vector := submitFilled(t, c, sess)
	require.NotNil(t, vector)
	assert.True(t, sess.Completed())
	assert.Equal(t, StatusCompleted, stores.status[id])
}

func TestRegenerate(t *testing.T) {
	stores := newMemStores()
	c := newTestController(stores)
	id := uuid.New()

	sess, err := c.StartSession(context.Background(), id)
	require.NoError(t, err)
	var vector *scoring.ScoreVector
	for step := 0; step < 3*catalog.GroupsPerStage; step++ {
		vector = submitFilled(t, c, sess)
	}
	require.NotNil(t, vector)
	upsertsAfterWalk := stores.upsertCalls

	regenerated, err := c.Regenerate(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, vector, regenerated)
	assert.Equal(t, upsertsAfterWalk+1, stores.upsertCalls)
	assert.Equal(t, regenerated, stores.results[id])
}

func TestRegenerateIncompleteLog(t *testing.T) {
	stores := newMemStores()
	c := newTestController(stores)
	id := uuid.New()

	sess, err := c.StartSession(context.Background(), id)
	require.NoError(t, err)
	submitFilled(t, c, sess) // só um grupo persistido

	_, err = c.Regenerate(context.Background(), id)
	var ide *scoring.IncompleteDataError
	require.ErrorAs(t, err, &ide)
	assert.Empty(t, stores.results[id])
}

func TestFinalizationGuard(t *testing.T) {
	stores := newMemStores()
	c := newTestController(stores)
	id := uuid.New()

	c.finalizeMu.Lock()
	c.finalizing[id] = struct{}{}
	c.finalizeMu.Unlock()

	_, err := c.finalize(context.Background(), id)
	assert.ErrorIs(t, err, ErrFinalizationInFlight)
}
