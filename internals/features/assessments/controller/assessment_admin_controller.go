// file: internals/features/assessments/controller/assessment_admin_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"discprofile_backend/internals/features/assessments/dto"
	"discprofile_backend/internals/features/assessments/model"
	"discprofile_backend/internals/features/assessments/service"
	helper "discprofile_backend/internals/helpers"
)

/* =========================================================
   Controller administrativo (gestão de avaliações e resultados)
========================================================= */

type AssessmentAdminController struct {
	DB      *gorm.DB
	Service *service.AssessmentService
}

func NewAssessmentAdminController(db *gorm.DB, svc *service.AssessmentService) *AssessmentAdminController {
	return &AssessmentAdminController{DB: db, Service: svc}
}

// POST /assessments: cria avaliação pendente para um candidato.
func (ctrl *AssessmentAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if handled, err := helper.ValidateStruct(c, &req); handled {
		return err
	}

	row := model.AssessmentModel{
		AssessmentCampaignID:     req.CampaignID,
		AssessmentCandidateName:  req.CandidateName,
		AssessmentCandidateEmail: req.CandidateEmail,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		log.Printf("[AssessmentAdminController] create failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar avaliação")
	}
	return helper.JsonCreated(c, "Avaliação criada", dto.ToAssessmentResponse(&row))
}

// GET /assessments?campaign_id=&page=&per_page=: lista paginada.
func (ctrl *AssessmentAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.AssessmentModel{})
	if raw := c.Query("campaign_id"); raw != "" {
		campaignID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "campaign_id inválido")
		}
		q = q.Where("assessment_campaign_id = ?", campaignID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("assessment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar avaliações")
	}

	var rows []model.AssessmentModel
	if err := q.
		Order("assessment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar avaliações")
	}

	return helper.JsonList(c, "", dto.ToAssessmentResponses(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /assessments/:id
func (ctrl *AssessmentAdminController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var row model.AssessmentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "assessment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Avaliação não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar avaliação")
	}
	return helper.JsonOK(c, "", dto.ToAssessmentResponse(&row))
}

// GET /assessments/:id/result: ScoreVector persistido.
func (ctrl *AssessmentAdminController) Result(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	vector, err := ctrl.Service.Result(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Resultado não encontrado")
		}
		log.Printf("[AssessmentAdminController] result lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar resultado")
	}
	return helper.JsonOK(c, "", vector)
}

// POST /assessments/:id/result/regenerate: recálculo completo (replace).
func (ctrl *AssessmentAdminController) RegenerateResult(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	vector, err := ctrl.Service.Regenerate(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Avaliação não encontrada")
		}
		log.Printf("[AssessmentAdminController] regenerate failed: %v", err)
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return helper.JsonUpdated(c, "Resultado regenerado", vector)
}

// DELETE /assessments/:id: remove avaliação, respostas e resultado.
func (ctrl *AssessmentAdminController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rank_record_assessment_id = ?", id).
			Delete(&model.RankRecordModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("score_vector_assessment_id = ?", id).
			Delete(&model.ScoreVectorModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("assessment_id = ?", id).Delete(&model.AssessmentModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Avaliação não encontrada")
		}
		log.Printf("[AssessmentAdminController] delete failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir avaliação")
	}
	return helper.JsonDeleted(c, "Avaliação excluída", fiber.Map{"assessment_id": id})
}
