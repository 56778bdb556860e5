// file: internals/features/assessments/controller/session_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"discprofile_backend/internals/features/assessments/dto"
	"discprofile_backend/internals/features/assessments/progression"
	"discprofile_backend/internals/features/assessments/ranking"
	"discprofile_backend/internals/features/assessments/scoring"
	"discprofile_backend/internals/features/assessments/service"
	helper "discprofile_backend/internals/helpers"
)

/* =========================================================
   Controller do fluxo do candidato.
   O assessment_id vem do token de convite (middleware), nunca do path.
========================================================= */

type SessionController struct {
	Service *service.AssessmentService
}

func NewSessionController(svc *service.AssessmentService) *SessionController {
	return &SessionController{Service: svc}
}

// POST /session/start: abre (ou retoma) a sessão e marca in_progress.
func (ctrl *SessionController) Start(c *fiber.Ctx) error {
	assessmentID, ok := helper.GetAssessmentIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Convite inválido")
	}

	sess, err := ctrl.Service.StartSession(c.UserContext(), assessmentID)
	if err != nil {
		return ctrl.translateError(c, err)
	}
	return helper.JsonOK(c, "Sessão iniciada", sess.Snapshot())
}

// GET /session: snapshot do grupo corrente (itens ranqueados e restantes).
func (ctrl *SessionController) View(c *fiber.Ctx) error {
	sess, err := ctrl.session(c)
	if err != nil {
		return ctrl.translateError(c, err)
	}
	return helper.JsonOK(c, "", sess.Snapshot())
}

// POST /session/promote: move item para o fim da lista ranqueada.
func (ctrl *SessionController) Promote(c *fiber.Ctx) error {
	var req dto.PromoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if handled, err := helper.ValidateStruct(c, &req); handled {
		return err
	}

	sess, err := ctrl.session(c)
	if err != nil {
		return ctrl.translateError(c, err)
	}
	if err := sess.Promote(req.ItemText); err != nil {
		return ctrl.translateError(c, err)
	}
	return helper.JsonOK(c, "", sess.Snapshot())
}

// POST /session/demote: devolve item ranqueado para o conjunto restante.
func (ctrl *SessionController) Demote(c *fiber.Ctx) error {
	var req dto.DemoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if handled, err := helper.ValidateStruct(c, &req); handled {
		return err
	}

	sess, err := ctrl.session(c)
	if err != nil {
		return ctrl.translateError(c, err)
	}
	if err := sess.Demote(req.ItemText); err != nil {
		return ctrl.translateError(c, err)
	}
	return helper.JsonOK(c, "", sess.Snapshot())
}

// POST /session/reorder: movimento posicional (ou promote com deslocamento).
func (ctrl *SessionController) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if handled, err := helper.ValidateStruct(c, &req); handled {
		return err
	}

	sess, err := ctrl.session(c)
	if err != nil {
		return ctrl.translateError(c, err)
	}
	if err := sess.Reorder(req.ItemText, *req.TargetPosition); err != nil {
		return ctrl.translateError(c, err)
	}
	return helper.JsonOK(c, "", sess.Snapshot())
}

// POST /session/submit: persiste o grupo e avança; na última submissão
// devolve o resultado calculado.
func (ctrl *SessionController) Submit(c *fiber.Ctx) error {
	assessmentID, ok := helper.GetAssessmentIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Convite inválido")
	}

	vector, err := ctrl.Service.SubmitGroup(c.UserContext(), assessmentID)
	if err != nil {
		return ctrl.translateError(c, err)
	}

	if vector != nil {
		return helper.JsonOK(c, "Avaliação concluída", vector)
	}

	sess, err := ctrl.Service.Session(assessmentID)
	if err != nil {
		return ctrl.translateError(c, err)
	}
	return helper.JsonOK(c, "Grupo registrado", sess.Snapshot())
}

// POST /session/back: navega para o grupo anterior (tentativa do zero).
func (ctrl *SessionController) Back(c *fiber.Ctx) error {
	assessmentID, ok := helper.GetAssessmentIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Convite inválido")
	}

	sess, err := ctrl.Service.GoBack(assessmentID)
	if err != nil {
		return ctrl.translateError(c, err)
	}
	return helper.JsonOK(c, "", sess.Snapshot())
}

// GET /session/result: resultado da avaliação concluída do próprio candidato.
func (ctrl *SessionController) Result(c *fiber.Ctx) error {
	assessmentID, ok := helper.GetAssessmentIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Convite inválido")
	}

	vector, err := ctrl.Service.Result(c.UserContext(), assessmentID)
	if err != nil {
		return ctrl.translateError(c, err)
	}
	return helper.JsonOK(c, "", vector)
}

func (ctrl *SessionController) session(c *fiber.Ctx) (*progression.Session, error) {
	assessmentID, ok := helper.GetAssessmentIDFromLocals(c)
	if !ok {
		return nil, service.ErrNoActiveSession
	}
	return ctrl.Service.Session(assessmentID)
}

/* =========================================================
   Tradução de erros do core para o formato HTTP
========================================================= */

func (ctrl *SessionController) translateError(c *fiber.Ctx, err error) error {
	var incomplete *scoring.IncompleteDataError
	var persistence *progression.PersistenceError

	switch {
	// validação do seletor: rejeitada, estado intacto, usuário tenta de novo
	case errors.Is(err, ranking.ErrCapacityFull),
		errors.Is(err, ranking.ErrItemNotFound),
		errors.Is(err, ranking.ErrItemNotRanked),
		errors.Is(err, ranking.ErrItemNotUnranked),
		errors.Is(err, ranking.ErrPositionRange),
		errors.Is(err, ranking.ErrIncomplete):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())

	case errors.Is(err, progression.ErrAtStart):
		return helper.JsonError(c, fiber.StatusBadRequest, "Não há grupo anterior")

	case errors.Is(err, progression.ErrSessionCompleted),
		errors.Is(err, service.ErrAssessmentCompleted):
		return helper.JsonError(c, fiber.StatusConflict, "Avaliação já concluída")

	// gatilho de conclusão duplicado: absorvido, não é falha de usuário
	case errors.Is(err, progression.ErrFinalizationInFlight):
		return helper.JsonOK(c, "Finalização já em andamento", nil)

	case errors.Is(err, service.ErrAssessmentNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Avaliação não encontrada")

	case errors.Is(err, service.ErrNoActiveSession):
		return helper.JsonError(c, fiber.StatusConflict, "Nenhuma sessão ativa: inicie a sessão primeiro")

	case errors.As(err, &incomplete):
		log.Printf("[SessionController] incomplete response set: %v", err)
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Respostas incompletas: não é possível calcular o resultado")

	case errors.As(err, &persistence):
		log.Printf("[SessionController] persistence failure: %v", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable,
			"Falha ao salvar: tente novamente")

	default:
		log.Printf("[SessionController] unexpected error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno")
	}
}
