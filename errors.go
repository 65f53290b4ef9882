package dllist

import "github.com/sirkon/errors"

const (
	// ErrorIndexOutOfRange возвращается операциями с индексом за пределами допустимого диапазона.
	ErrorIndexOutOfRange errors.Const = "index out of range"

	// ErrorInvalidHandle возвращается когда переданный узел не принадлежит списку:
	// он из другого списка или уже был из него удалён.
	ErrorInvalidHandle errors.Const = "node does not belong to the list"
)

func errIndexOutOfRange(index, size int) error {
	return errors.Wrap(ErrorIndexOutOfRange, "check index").
		Int("index", index).
		Int("size", size)
}
