package dllist

import "log"

// Logger абстракция логирования ситуаций, которые список не передаёт вызывающему через ошибку.
// Реализация делается пользователями библиотеки.
type Logger interface {
	// RemoveAtFailed удаление по индексу не состоялось, RemoveAt вернул false.
	RemoveAtFailed(index int, err error)
}

// NopLogger логгер ничего не делающий.
type NopLogger struct{}

// RemoveAtFailed для реализации Logger.
func (NopLogger) RemoveAtFailed(int, error) {}

type stdLogger struct{}

func (stdLogger) RemoveAtFailed(index int, err error) {
	log.Printf("remove node at %d: %s", index, err)
}

var (
	_ Logger = NopLogger{}
	_ Logger = stdLogger{}
)
