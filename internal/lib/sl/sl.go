// Package sl — короткие помощники для структурированного логирования
// через slog.
package sl

import "log/slog"

// Err оборачивает ошибку в атрибут с ключом "error", чтобы все
// сообщения об ошибках в логах имели одинаковое поле:
//
//	log.Error("failed to resolve statuses", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.String("error", err.Error())
}
