// file: internals/helpers/invite_token.go
package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

/* ===============================
   Token de convite do candidato
   Assinado no envio do convite; dá acesso à sessão de uma única avaliação.
   Não é autenticação de plataforma: só o vínculo convite → assessment.
=================================*/

const LocAssessmentID = "assessment_id"

type InviteClaims struct {
	AssessmentID string `json:"assessment_id"`
	jwt.RegisteredClaims
}

var ErrInvalidInviteToken = errors.New("invalid invite token")

// SignInviteToken emite o token do convite com validade fornecida.
func SignInviteToken(secret string, assessmentID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := InviteClaims{
		AssessmentID: assessmentID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   assessmentID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseInviteToken valida assinatura/expiração e devolve o assessment_id.
func ParseInviteToken(secret, raw string) (uuid.UUID, error) {
	claims := &InviteClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidInviteToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidInviteToken
	}
	id, err := uuid.Parse(claims.AssessmentID)
	if err != nil {
		return uuid.Nil, ErrInvalidInviteToken
	}
	return id, nil
}

// GetRawInviteToken lê o token do header "Authorization: Bearer <token>"
// ou do query ?token= (link do e-mail de convite).
func GetRawInviteToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return strings.TrimSpace(c.Query("token"))
}

// GetAssessmentIDFromLocals lê o assessment_id colocado pelo middleware de convite.
func GetAssessmentIDFromLocals(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(LocAssessmentID).(uuid.UUID)
	return id, ok
}
