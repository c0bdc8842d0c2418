package logger

import (
	"context"

	"github.com/google/uuid"
)

// requestIDKey - ключ контекста для идентификатора запроса.
type requestIDKey struct{}

// NewRequestIDContext кладет идентификатор запроса в контекст.
// Пустой идентификатор заменяется свежим UUID.
func NewRequestIDContext(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID извлекает идентификатор запроса из контекста.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
