package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Bodega-api/internal/application/auth"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// LocalPrincipal key del usuario autenticado en c.Locals.
const LocalPrincipal = "principal"

// AuthMiddleware valida el Bearer Token y resuelve el principal contra la DB.
// Un token estructuralmente válido cuyo usuario ya no existe se rechaza igual
// que uno inválido; la causa no se distingue en la respuesta.
func AuthMiddleware(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		user, err := authUC.Authenticate(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalPrincipal, user)
		return c.Next()
	}
}

// RequireAdmin autoriza solo a principales con IsAdmin. Usar después de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetPrincipal(c)
		if err := auth.RequireAdmin(user); err != nil {
			if user == nil {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol admin"})
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el usuario autenticado del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
