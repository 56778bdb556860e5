// file: internals/features/users/controller/user_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"discprofile_backend/internals/features/users/dto"
	"discprofile_backend/internals/features/users/model"
	helper "discprofile_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// POST /users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if handled, err := helper.ValidateStruct(c, &req); handled {
		return err
	}

	row := model.UserModel{
		UserName:  strings.TrimSpace(req.Name),
		UserEmail: strings.ToLower(strings.TrimSpace(req.Email)),
		UserRole:  req.Role,
	}
	if err := row.SetPassword(req.Password); err != nil {
		log.Printf("[UserController] password hash failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar usuário")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "uq_user_email") {
			return helper.JsonError(c, fiber.StatusConflict, "E-mail já cadastrado")
		}
		log.Printf("[UserController] create failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar usuário")
	}
	return helper.JsonCreated(c, "Usuário criado", dto.ToUserResponse(&row))
}

// GET /users
func (ctrl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar usuários")
	}

	var rows []model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("user_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar usuários")
	}

	return helper.JsonList(c, "", dto.ToUserResponses(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /users/:id
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var row model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar usuário")
	}
	return helper.JsonOK(c, "", dto.ToUserResponse(&row))
}

// DELETE /users/:id
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", id).Delete(&model.UserModel{})
	if res.Error != nil {
		log.Printf("[UserController] delete failed: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir usuário")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}
	return helper.JsonDeleted(c, "Usuário excluído", fiber.Map{"user_id": id})
}
