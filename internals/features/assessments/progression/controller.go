// file: internals/features/assessments/progression/controller.go
package progression

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"discprofile_backend/internals/features/assessments/catalog"
	"discprofile_backend/internals/features/assessments/scoring"
)

/* =============================================================================
   ENUM-like: Status da avaliação ('pending','in_progress','completed')
============================================================================= */

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string { return string(s) }

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

/* =============================================================================
   Contratos estreitos com os colaboradores externos (§ stores)
============================================================================= */

// ResponseStore persiste e relê o log de respostas de uma avaliação.
// Append tem semântica de substituição por grupo: regravar um grupo já
// respondido troca os registros daquele (stage, group), preservando a
// invariante de exatamente um ranking por grupo.
type ResponseStore interface {
	Append(ctx context.Context, records []scoring.RankRecord) error
	ReadAll(ctx context.Context, assessmentID uuid.UUID) ([]scoring.RankRecord, error)
}

type StatusStore interface {
	SetStatus(ctx context.Context, assessmentID uuid.UUID, status Status) error
}

// ResultStore grava o ScoreVector com semântica de replace: chamar de novo
// para a mesma avaliação nunca cria linha duplicada.
type ResultStore interface {
	Upsert(ctx context.Context, vector *scoring.ScoreVector) error
}

/* =============================================================================
   Erros
============================================================================= */

var (
	ErrSessionCompleted = errors.New("assessment session already completed")
	ErrAtStart          = errors.New("no backward transition from natural.1")

	// ErrFinalizationInFlight: gatilho de conclusão duplicado enquanto outro
	// está em andamento. Absorvido pelo chamador, não é falha de usuário.
	ErrFinalizationInFlight = errors.New("finalization already in flight for this assessment")
)

// PersistenceError: falha de um store externo. Recuperável: o estado da
// progressão não avança e o chamador pode repetir a mesma operação.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("persistence failure in %s: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

/* =============================================================================
   Controller: máquina de estados (stage, current_group)

   natural.1..10 → adapted.1..10 → values.1..10 → completed
============================================================================= */

type Controller struct {
	responses ResponseStore
	status    StatusStore
	results   ResultStore

	finalizeMu sync.Mutex
	finalizing map[uuid.UUID]struct{}
}

func NewController(responses ResponseStore, status StatusStore, results ResultStore) *Controller {
	return &Controller{
		responses:  responses,
		status:     status,
		results:    results,
		finalizing: make(map[uuid.UUID]struct{}),
	}
}

// StartSession cria a sessão em natural.1 e marca a avaliação como
// in_progress (uma única vez, no início).
func (c *Controller) StartSession(ctx context.Context, assessmentID uuid.UUID) (*Session, error) {
	sess, err := newSession(assessmentID)
	if err != nil {
		return nil, err
	}
	if err := c.status.SetStatus(ctx, assessmentID, StatusInProgress); err != nil {
		return nil, &PersistenceError{Op: "status.SetStatus", Err: err}
	}
	log.Printf("[ProgressionController] session started. assessment_id=%s stage=%s group=%d",
		assessmentID, sess.stage, sess.currentGroup)
	return sess, nil
}

// SubmitGroup persiste o ranking do grupo corrente e avança a máquina de
// estados. No último grupo do estágio de valores dispara a finalização e
// devolve o ScoreVector calculado; nos demais devolve nil.
//
// Falha de persistência mantém a sessão no estado corrente: o usuário pode
// reenviar a mesma operação.
func (c *Controller) SubmitGroup(ctx context.Context, sess *Session) (*scoring.ScoreVector, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.completed {
		return nil, ErrSessionCompleted
	}

	ranked, err := sess.selector.RankedItems()
	if err != nil {
		return nil, err // ranking.ErrIncomplete: rejeitado, estado intacto
	}

	records := make([]scoring.RankRecord, 0, len(ranked))
	for _, ri := range ranked {
		records = append(records, scoring.RankRecord{
			AssessmentID: sess.assessmentID,
			Stage:        sess.stage,
			GroupNumber:  sess.currentGroup,
			ItemText:     ri.Item.Text,
			ItemFactor:   ri.Item.Factor,
			Rank:         ri.Rank,
		})
	}

	if err := c.responses.Append(ctx, records); err != nil {
		return nil, &PersistenceError{Op: "responses.Append", Err: err}
	}

	// transição
	if sess.currentGroup < catalog.GroupsPerStage {
		sess.currentGroup++
		if err := sess.resetSelector(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	switch sess.stage {
	case catalog.StageNatural:
		sess.stage = catalog.StageAdapted
	case catalog.StageAdapted:
		sess.stage = catalog.StageValues
	case catalog.StageValues:
		// terminal: completed. A finalização é idempotente; se falhar, a
		// sessão permanece em values.10 e o reenvio apenas regrava o grupo.
		vector, err := c.finalize(ctx, sess.assessmentID)
		if err != nil {
			return nil, err
		}
		sess.completed = true
		sess.selector = nil
		log.Printf("[ProgressionController] assessment completed. assessment_id=%s", sess.assessmentID)
		return vector, nil
	}

	sess.currentGroup = 1
	if err := sess.resetSelector(); err != nil {
		return nil, err
	}
	return nil, nil
}

// GoBack navega para o grupo anterior sem descartar dados já persistidos.
// O grupo revisitado recebe um seletor novo, semeado do catálogo: voltar
// não restaura o ranking anterior.
func (c *Controller) GoBack(sess *Session) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.completed {
		return ErrSessionCompleted
	}

	switch {
	case sess.currentGroup > 1:
		sess.currentGroup--
	case sess.stage == catalog.StageAdapted:
		sess.stage = catalog.StageNatural
		sess.currentGroup = catalog.GroupsPerStage
	case sess.stage == catalog.StageValues:
		sess.stage = catalog.StageAdapted
		sess.currentGroup = catalog.GroupsPerStage
	default:
		return ErrAtStart
	}
	return sess.resetSelector()
}

/* =============================================================================
   Finalização: efeito colateral at-most-once por avaliação
============================================================================= */

// finalize lê o log completo, calcula o ScoreVector, grava o resultado e
// marca a avaliação como completed. Guardado por avaliação: um segundo
// gatilho concorrente recebe ErrFinalizationInFlight; repetir depois de um
// sucesso é inócuo porque o ResultStore tem semântica de replace.
func (c *Controller) finalize(ctx context.Context, assessmentID uuid.UUID) (*scoring.ScoreVector, error) {
	c.finalizeMu.Lock()
	if _, busy := c.finalizing[assessmentID]; busy {
		c.finalizeMu.Unlock()
		return nil, ErrFinalizationInFlight
	}
	c.finalizing[assessmentID] = struct{}{}
	c.finalizeMu.Unlock()

	defer func() {
		c.finalizeMu.Lock()
		delete(c.finalizing, assessmentID)
		c.finalizeMu.Unlock()
	}()

	records, err := c.responses.ReadAll(ctx, assessmentID)
	if err != nil {
		return nil, &PersistenceError{Op: "responses.ReadAll", Err: err}
	}

	vector, err := scoring.Compute(assessmentID, records)
	if err != nil {
		return nil, err // IncompleteDataError: nunca grava score parcial
	}

	if err := c.results.Upsert(ctx, vector); err != nil {
		return nil, &PersistenceError{Op: "results.Upsert", Err: err}
	}
	if err := c.status.SetStatus(ctx, assessmentID, StatusCompleted); err != nil {
		return nil, &PersistenceError{Op: "status.SetStatus", Err: err}
	}
	return vector, nil
}

// Regenerate recalcula o ScoreVector do zero a partir do log persistido e
// regrava o resultado (replace, nunca duplica). Usado pelo fluxo explícito
// de regeneração: não há recálculo incremental.
func (c *Controller) Regenerate(ctx context.Context, assessmentID uuid.UUID) (*scoring.ScoreVector, error) {
	records, err := c.responses.ReadAll(ctx, assessmentID)
	if err != nil {
		return nil, &PersistenceError{Op: "responses.ReadAll", Err: err}
	}
	vector, err := scoring.Compute(assessmentID, records)
	if err != nil {
		return nil, err
	}
	if err := c.results.Upsert(ctx, vector); err != nil {
		return nil, &PersistenceError{Op: "results.Upsert", Err: err}
	}
	return vector, nil
}
