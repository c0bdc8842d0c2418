// Package shutdown координирует корректную остановку сервиса по сигналам ОС.
package shutdown

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

// Hook - шаг остановки, выполняемый в пределах общего таймаута.
type Hook func(context.Context) error

// Wait блокируется до получения SIGINT или SIGTERM, затем параллельно
// выполняет хуки под общим таймаутом и возвращает первую ошибку хука.
// Хук, не уложившийся в таймаут, получает отмену через контекст.
func Wait(timeout time.Duration, hooks ...Hook) error {
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var group errgroup.Group
	for _, hook := range hooks {
		group.Go(func() error {
			return hook(ctx)
		})
	}
	return group.Wait()
}
