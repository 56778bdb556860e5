// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"discprofile_backend/internals/features/users/controller"
)

// UserRoutes registra a gestão de usuários administradores.
func UserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	router.Post("/users", ctrl.Create)
	router.Get("/users", ctrl.List)
	router.Get("/users/:id", ctrl.GetByID)
	router.Delete("/users/:id", ctrl.Delete)
}
