// file: internals/features/assessments/progression/session.go
package progression

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"discprofile_backend/internals/features/assessments/catalog"
	"discprofile_backend/internals/features/assessments/ranking"
)

/* =============================================================================
   Session: estado transitório de um questionário em andamento.
   Criada no início da sessão, descartada quando a avaliação completa.
   As mutações do seletor são serializadas pelo mutex da própria sessão:
   nunca há duas mutações em voo para o mesmo grupo.
============================================================================= */

type Session struct {
	mu sync.Mutex

	assessmentID uuid.UUID
	stage        catalog.Stage
	currentGroup int // 1..10
	selector     *ranking.Selector
	completed    bool
	startedAt    time.Time
}

func newSession(assessmentID uuid.UUID) (*Session, error) {
	sess := &Session{
		assessmentID: assessmentID,
		stage:        catalog.StageNatural,
		currentGroup: 1,
		startedAt:    time.Now().UTC(),
	}
	if err := sess.resetSelector(); err != nil {
		return nil, err
	}
	return sess, nil
}

// resetSelector monta um seletor novo para (stage, currentGroup), sempre
// semeado do catálogo: revisitar um grupo é uma tentativa do zero.
func (s *Session) resetSelector() error {
	group, err := catalog.GroupAt(s.stage, s.currentGroup)
	if err != nil {
		return err
	}
	selector, err := ranking.NewSelectorForGroup(group)
	if err != nil {
		return err
	}
	s.selector = selector
	return nil
}

func (s *Session) AssessmentID() uuid.UUID { return s.assessmentID }
func (s *Session) StartedAt() time.Time    { return s.startedAt }

func (s *Session) Stage() catalog.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

func (s *Session) CurrentGroup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentGroup
}

func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

/* =============================================================================
   Operações de ranking (proxy atômico para o seletor do grupo corrente)
============================================================================= */

func (s *Session) Promote(itemText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrSessionCompleted
	}
	return s.selector.Promote(itemText)
}

func (s *Session) Demote(itemText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrSessionCompleted
	}
	return s.selector.Demote(itemText)
}

func (s *Session) Reorder(itemText string, targetPos int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return ErrSessionCompleted
	}
	return s.selector.Reorder(itemText, targetPos)
}

/* =============================================================================
   View: snapshot do estado corrente para a camada de apresentação
============================================================================= */

type View struct {
	AssessmentID uuid.UUID      `json:"assessment_id"`
	Stage        catalog.Stage  `json:"stage"`
	CurrentGroup int            `json:"current_group"`
	MaxRank      int            `json:"max_rank"`
	Ranked       []catalog.Item `json:"ranked"`
	Unranked     []catalog.Item `json:"unranked"`
	CanSubmit    bool           `json:"can_submit"`
	Completed    bool           `json:"completed"`
}

func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		AssessmentID: s.assessmentID,
		Stage:        s.stage,
		CurrentGroup: s.currentGroup,
		Completed:    s.completed,
	}
	if s.selector != nil {
		v.MaxRank = s.selector.MaxRank()
		v.Ranked = s.selector.Ranked()
		v.Unranked = s.selector.Unranked()
		v.CanSubmit = s.selector.Complete()
	}
	return v
}
