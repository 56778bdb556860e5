// file: internals/features/assessments/service/assessment_service.go
package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"discprofile_backend/internals/features/assessments/model"
	"discprofile_backend/internals/features/assessments/progression"
	"discprofile_backend/internals/features/assessments/scoring"
)

var (
	ErrAssessmentNotFound  = errors.New("assessment não encontrada")
	ErrAssessmentCompleted = errors.New("assessment já foi concluída")
	ErrNoActiveSession     = errors.New("nenhuma sessão ativa para esta assessment")
)

/* =========================================================
   SERVICE
   Junta o controlador de progressão (puro) com os stores GORM
   e mantém o registro em memória de sessões ativas.
========================================================= */

type AssessmentService struct {
	DB *gorm.DB

	ctrl    *progression.Controller
	results *GormResultStore

	sessMu   sync.Mutex
	sessions map[uuid.UUID]*progression.Session
}

func NewAssessmentService(db *gorm.DB) *AssessmentService {
	results := NewGormResultStore(db)
	return &AssessmentService{
		DB:       db,
		ctrl:     progression.NewController(NewGormResponseStore(db), NewGormStatusStore(db), results),
		results:  results,
		sessions: make(map[uuid.UUID]*progression.Session),
	}
}

/* =========================================================
   Sessões
========================================================= */

// StartSession abre (ou retoma do zero) a sessão de questionário de uma
// avaliação pendente ou em andamento. Avaliações concluídas não reabrem.
func (s *AssessmentService) StartSession(ctx context.Context, assessmentID uuid.UUID) (*progression.Session, error) {
	var assessment model.AssessmentModel
	if err := s.DB.WithContext(ctx).
		First(&assessment, "assessment_id = ?", assessmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	if assessment.IsCompleted() {
		return nil, ErrAssessmentCompleted
	}

	s.sessMu.Lock()
	if existing, ok := s.sessions[assessmentID]; ok {
		s.sessMu.Unlock()
		log.Printf("[AssessmentService] session resumed. assessment_id=%s", assessmentID)
		return existing, nil
	}
	s.sessMu.Unlock()

	sess, err := s.ctrl.StartSession(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	s.sessMu.Lock()
	s.sessions[assessmentID] = sess
	s.sessMu.Unlock()
	return sess, nil
}

func (s *AssessmentService) Session(assessmentID uuid.UUID) (*progression.Session, error) {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()
	sess, ok := s.sessions[assessmentID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return sess, nil
}

// SubmitGroup delega para a máquina de estados; quando a submissão fecha o
// estágio de valores, a sessão sai do registro (estado de progressão deixa
// de existir) e o ScoreVector calculado é devolvido.
func (s *AssessmentService) SubmitGroup(ctx context.Context, assessmentID uuid.UUID) (*scoring.ScoreVector, error) {
	sess, err := s.Session(assessmentID)
	if err != nil {
		return nil, err
	}

	vector, err := s.ctrl.SubmitGroup(ctx, sess)
	if err != nil {
		return nil, err
	}

	if vector != nil {
		s.sessMu.Lock()
		delete(s.sessions, assessmentID)
		s.sessMu.Unlock()
	}
	return vector, nil
}

func (s *AssessmentService) GoBack(assessmentID uuid.UUID) (*progression.Session, error) {
	sess, err := s.Session(assessmentID)
	if err != nil {
		return nil, err
	}
	if err := s.ctrl.GoBack(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

/* =========================================================
   Resultados
========================================================= */

func (s *AssessmentService) Result(ctx context.Context, assessmentID uuid.UUID) (*scoring.ScoreVector, error) {
	vector, err := s.results.Get(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	return vector, nil
}

// Regenerate recalcula o resultado do zero a partir do log persistido.
// Só faz sentido para avaliações concluídas; o upsert substitui a linha.
func (s *AssessmentService) Regenerate(ctx context.Context, assessmentID uuid.UUID) (*scoring.ScoreVector, error) {
	var assessment model.AssessmentModel
	if err := s.DB.WithContext(ctx).
		First(&assessment, "assessment_id = ?", assessmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	if !assessment.IsCompleted() {
		return nil, errors.New("assessment ainda não foi concluída")
	}

	log.Printf("[AssessmentService] regenerating score vector. assessment_id=%s", assessmentID)
	return s.ctrl.Regenerate(ctx, assessmentID)
}
