// file: internals/features/campaigns/controller/campaign_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"discprofile_backend/internals/features/campaigns/dto"
	"discprofile_backend/internals/features/campaigns/model"
	"discprofile_backend/internals/features/campaigns/service"
	helper "discprofile_backend/internals/helpers"
)

type CampaignController struct {
	DB          *gorm.DB
	Invitations *service.InvitationService
}

func NewCampaignController(db *gorm.DB, invitations *service.InvitationService) *CampaignController {
	return &CampaignController{DB: db, Invitations: invitations}
}

// POST /campaigns
func (ctrl *CampaignController) Create(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if handled, err := helper.ValidateStruct(c, &req); handled {
		return err
	}

	row := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		log.Printf("[CampaignController] create failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar campanha")
	}
	return helper.JsonCreated(c, "Campanha criada", dto.ToCampaignResponse(&row))
}

// GET /campaigns?page=&per_page=
func (ctrl *CampaignController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.CampaignModel{})
	if raw := c.Query("owner_id"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "owner_id inválido")
		}
		q = q.Where("campaign_owner_id = ?", ownerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar campanhas")
	}

	var rows []model.CampaignModel
	if err := q.
		Order("campaign_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar campanhas")
	}

	return helper.JsonList(c, "", dto.ToCampaignResponses(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /campaigns/:id
func (ctrl *CampaignController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var row model.CampaignModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "campaign_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Campanha não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar campanha")
	}
	return helper.JsonOK(c, "", dto.ToCampaignResponse(&row))
}

// PATCH /campaigns/:id
func (ctrl *CampaignController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if handled, err := helper.ValidateStruct(c, &req); handled {
		return err
	}

	var row model.CampaignModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "campaign_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Campanha não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar campanha")
	}

	if req.Name != nil {
		row.CampaignName = *req.Name
	}
	if req.Company != nil {
		row.CampaignCompany = *req.Company
	}
	if req.Description != nil {
		row.CampaignDescription = req.Description
	}
	if req.StartsAt != nil {
		row.CampaignStartsAt = req.StartsAt
	}
	if req.EndsAt != nil {
		row.CampaignEndsAt = req.EndsAt
	}
	if req.Metadata != nil {
		row.CampaignMetadata = datatypes.JSONMap(req.Metadata)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		log.Printf("[CampaignController] update failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar campanha")
	}
	return helper.JsonUpdated(c, "Campanha atualizada", dto.ToCampaignResponse(&row))
}

// DELETE /campaigns/:id
func (ctrl *CampaignController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("campaign_id = ?", id).Delete(&model.CampaignModel{})
	if res.Error != nil {
		log.Printf("[CampaignController] delete failed: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir campanha")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Campanha não encontrada")
	}
	return helper.JsonDeleted(c, "Campanha excluída", fiber.Map{"campaign_id": id})
}

// POST /campaigns/:id/invite: cria avaliação pendente + token de convite.
func (ctrl *CampaignController) Invite(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.InviteCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if handled, err := helper.ValidateStruct(c, &req); handled {
		return err
	}

	result, err := ctrl.Invitations.Invite(c.UserContext(), id, req.CandidateName, req.CandidateEmail)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampaignNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Campanha não encontrada")
		case errors.Is(err, service.ErrCampaignClosed):
			return helper.JsonError(c, fiber.StatusConflict, "Campanha fora da janela de aplicação")
		default:
			log.Printf("[CampaignController] invite failed: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao convidar candidato")
		}
	}

	return helper.JsonCreated(c, "Candidato convidado", dto.InviteCandidateResponse{
		AssessmentID:   result.Assessment.AssessmentID,
		CandidateName:  result.Assessment.AssessmentCandidateName,
		CandidateEmail: result.Assessment.AssessmentCandidateEmail,
		InviteToken:    result.Token,
		ExpiresAt:      result.ExpiresAt,
	})
}
