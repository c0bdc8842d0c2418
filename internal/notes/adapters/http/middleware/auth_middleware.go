// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/notes/ports/services"
	"notekeep/pkg/logger"
)

// UserIDKey - ключ locals, под которым хранится ID аутентифицированного владельца.
const UserIDKey = "userID"

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
)

const bearerPrefix = "Bearer "

// NewAuthMiddleware создает промежуточное ПО, проверяющее JWT и кладущее
// ID владельца в locals запроса.
func NewAuthMiddleware(tokenService services.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			}); err != nil {
				return fmt.Errorf("failed to send unauthorized response: %w", err)
			}
			return nil
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			}); err != nil {
				return fmt.Errorf("failed to send unauthorized response: %w", err)
			}
			return nil
		}

		ownerID, err := tokenService.ValidateAccessToken(requestCtx, strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidToken,
			}); err != nil {
				return fmt.Errorf("failed to send unauthorized response: %w", err)
			}
			return nil
		}

		ctx.Locals(UserIDKey, ownerID)

		return ctx.Next()
	}
}
