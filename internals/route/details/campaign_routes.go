// file: internals/route/details/campaign_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"discprofile_backend/internals/features/campaigns/controller"
	"discprofile_backend/internals/features/campaigns/service"
	middlewares "discprofile_backend/internals/middlewares"
)

// CampaignRoutes registra o CRUD de campanhas e o convite de candidatos.
func CampaignRoutes(router fiber.Router, db *gorm.DB, invitations *service.InvitationService) {
	ctrl := controller.NewCampaignController(db, invitations)

	router.Post("/campaigns", ctrl.Create)
	router.Get("/campaigns", ctrl.List)
	router.Get("/campaigns/:id", ctrl.GetByID)
	router.Patch("/campaigns/:id", ctrl.Update)
	router.Delete("/campaigns/:id", ctrl.Delete)
	router.Post("/campaigns/:id/invite", middlewares.InviteRateLimiter(), ctrl.Invite)
}
