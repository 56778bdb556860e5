// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"discprofile_backend/internals/configs"
	aservice "discprofile_backend/internals/features/assessments/service"
	cservice "discprofile_backend/internals/features/campaigns/service"
	middlewares "discprofile_backend/internals/middlewares"
	routeDetails "discprofile_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// serviços compartilhados entre grupos de rotas (o registro de sessões
	// em memória precisa ser um só)
	assessments := aservice.NewAssessmentService(db)
	invitations := cservice.NewInvitationService(db, cservice.LogMailer{},
		configs.InviteTokenSecret, configs.InviteBaseURL)

	// ===================== CANDIDATO (token de convite) =====================
	log.Println("[INFO] Setting up SESSION group...")
	session := app.Group("/api/v1/session",
		middlewares.SessionRateLimiter(),
		middlewares.InviteTokenMiddleware(configs.InviteTokenSecret),
	)
	routeDetails.SessionRoutes(session, assessments)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/v1/admin")
	routeDetails.AssessmentAdminRoutes(admin, db, assessments)
	routeDetails.CampaignRoutes(admin, db, invitations)
	routeDetails.UserRoutes(admin, db)
}
