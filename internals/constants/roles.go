// file: internals/constants/roles.go
package constants

import "errors"

// Papéis dos usuários administradores da plataforma.
// Candidatos não têm conta: entram só pelo token de convite.
const (
	RoleAdmin     = "admin"     // acesso total, inclusive gestão de usuários
	RoleRecruiter = "recruiter" // campanhas, convites e leitura de resultados
	RoleViewer    = "viewer"    // somente leitura de resultados
)

var AllRoles = []string{RoleAdmin, RoleRecruiter, RoleViewer}

var ErrUnknownRole = errors.New("unknown user role")

func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
