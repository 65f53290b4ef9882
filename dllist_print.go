package dllist

import (
	"fmt"
	"io"

	"github.com/sirkon/errors"
)

// PrintForward вывод значений от головы к хвосту, каждое на своей строке.
func (l *DLList[T]) PrintForward(w io.Writer) error {
	var pos int
	for n := l.head; n != nil; n = n.next {
		if _, err := fmt.Fprintln(w, n.value); err != nil {
			return errors.Wrap(err, "print value").Int("position", pos)
		}
		pos++
	}

	return nil
}

// PrintReverse вывод значений от хвоста к голове, каждое на своей строке.
func (l *DLList[T]) PrintReverse(w io.Writer) error {
	pos := l.size - 1
	for n := l.tail; n != nil; n = n.prev {
		if _, err := fmt.Fprintln(w, n.value); err != nil {
			return errors.Wrap(err, "print value").Int("position", pos)
		}
		pos--
	}

	return nil
}

// PrintForwardRecursive рекурсивный вывод значений начиная с узла from в сторону хвоста.
// nil from ничего не выводит. Глубина рекурсии ограничена длиной списка.
func (l *DLList[T]) PrintForwardRecursive(w io.Writer, from *Node[T]) error {
	if from == nil {
		return nil
	}
	if !l.owns(from) {
		return errors.Wrap(ErrorInvalidHandle, "check node to print from")
	}

	return printRecursive(w, from, l.position(from), l.size, true)
}

// PrintReverseRecursive рекурсивный вывод значений начиная с узла from в сторону головы.
func (l *DLList[T]) PrintReverseRecursive(w io.Writer, from *Node[T]) error {
	if from == nil {
		return nil
	}
	if !l.owns(from) {
		return errors.Wrap(ErrorInvalidHandle, "check node to print from")
	}

	return printRecursive(w, from, l.position(from), l.size, false)
}

func printRecursive[T comparable](w io.Writer, n *Node[T], pos, depth int, forward bool) error {
	if n == nil || depth == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, n.value); err != nil {
		return errors.Wrap(err, "print value").Int("position", pos)
	}

	if forward {
		return printRecursive(w, n.next, pos+1, depth-1, forward)
	}

	return printRecursive(w, n.prev, pos-1, depth-1, forward)
}
