package http

import (
	"errors"
	"net/http"
	"strings"

	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// AuthMiddleware validates the Bearer token and resolves the calling actor
// from the "sub" and "role" claims. Unknown roles pass through: the command
// layer rejects them per operation, so the API answers 403 rather than 401
// for a valid token with insufficient rights.
func AuthMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token format")
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid claims")
			}

			subject, ok := claims["sub"].(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "subject not found in token")
			}

			actorID, err := kernel.UUIDFromString(subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "subject is not a valid identifier")
			}

			roleLabel, _ := claims["role"].(string)

			caller, err := actor.NewActor(actorID, actor.RoleFromString(roleLabel))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "actor could not be resolved")
			}

			ctx.Set(actorContextKey, caller)
			return next(ctx)
		}
	}
}

func callingActor(ctx echo.Context) (actor.Actor, error) {
	caller, ok := ctx.Get(actorContextKey).(actor.Actor)
	if !ok {
		return actor.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "no actor in request context")
	}
	return caller, nil
}
