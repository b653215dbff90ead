package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DarkIsCool10/Glitter-class-back/internal/response"
	"github.com/DarkIsCool10/Glitter-class-back/internal/service"
)

// CheckSesionUnica validates the JWT's jti against the active session
// in Redis. A token displaced by a newer login on another device is
// rejected here.
func CheckSesionUnica(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequerido)
			return
		}

		if err := authService.ValidarSesion(c.Request.Context(), claims.IDUsuario, claims.ID); err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrSesionActiva)
			return
		}

		c.Next()
	}
}
