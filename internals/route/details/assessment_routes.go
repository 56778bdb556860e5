// file: internals/route/details/assessment_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"discprofile_backend/internals/features/assessments/controller"
	"discprofile_backend/internals/features/assessments/service"
)

// AssessmentAdminRoutes registra a gestão de avaliações e resultados.
func AssessmentAdminRoutes(router fiber.Router, db *gorm.DB, svc *service.AssessmentService) {
	ctrl := controller.NewAssessmentAdminController(db, svc)

	router.Post("/assessments", ctrl.Create)
	router.Get("/assessments", ctrl.List)
	router.Get("/assessments/:id", ctrl.GetByID)
	router.Delete("/assessments/:id", ctrl.Delete)
	router.Get("/assessments/:id/result", ctrl.Result)
	router.Post("/assessments/:id/result/regenerate", ctrl.RegenerateResult)
}
