// file: internals/middlewares/invite_middleware.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"

	helper "discprofile_backend/internals/helpers"
)

// InviteTokenMiddleware valida o token de convite do candidato e coloca o
// assessment_id em Locals. Não é autenticação de plataforma: o token só
// abre a sessão da avaliação para a qual foi emitido.
func InviteTokenMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawInviteToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token de convite ausente")
		}
		assessmentID, err := helper.ParseInviteToken(secret, raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token de convite inválido ou expirado")
		}
		c.Locals(helper.LocAssessmentID, assessmentID)
		return c.Next()
	}
}
