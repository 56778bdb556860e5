// file: internals/route/details/session_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"

	"discprofile_backend/internals/features/assessments/controller"
	"discprofile_backend/internals/features/assessments/service"
)

// SessionRoutes registra o fluxo do candidato, guardado pelo token de convite.
func SessionRoutes(router fiber.Router, svc *service.AssessmentService) {
	ctrl := controller.NewSessionController(svc)

	router.Post("/start", ctrl.Start)
	router.Get("/", ctrl.View)
	router.Post("/promote", ctrl.Promote)
	router.Post("/demote", ctrl.Demote)
	router.Post("/reorder", ctrl.Reorder)
	router.Post("/submit", ctrl.Submit)
	router.Post("/back", ctrl.Back)
	router.Get("/result", ctrl.Result)
}
