// Package services defines service interfaces for the note service.
package services

import (
	"context"
	"errors"
)

// TokenService определяет интерфейс для проверки JWT токенов.
type TokenService interface {
	ValidateAccessToken(ctx context.Context, token string) (int64, error)
}

// JWTErrors содержит ошибки, связанные с JWT токенами.
var (
	ErrInvalidJWTToken = errors.New("invalid JWT token")
	ErrExpiredJWTToken = errors.New("JWT token has expired")
)
