package dllist

import "github.com/sirkon/errors"

// AddHead добавление нового значения в начало списка с возвратом созданного узла.
func (l *DLList[T]) AddHead(v T) *Node[T] {
	n := &Node[T]{
		next:  l.head,
		list:  l,
		value: v,
	}

	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++

	return n
}

// AddTail добавление нового значения в конец списка с возвратом созданного узла.
func (l *DLList[T]) AddTail(v T) *Node[T] {
	n := &Node[T]{
		prev:  l.tail,
		list:  l,
		value: v,
	}

	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++

	return n
}

// AddNodesHead добавление значений в начало списка с сохранением их порядка:
// после вызова список начинается с vs[0], vs[1], …
func (l *DLList[T]) AddNodesHead(vs ...T) {
	for i := len(vs) - 1; i >= 0; i-- {
		l.AddHead(vs[i])
	}
}

// AddNodesTail добавление значений в конец списка в данном порядке.
func (l *DLList[T]) AddNodesTail(vs ...T) {
	for _, v := range vs {
		l.AddTail(v)
	}
}

// InsertAfter вставка значения сразу за данным узлом.
func (l *DLList[T]) InsertAfter(n *Node[T], v T) (*Node[T], error) {
	if !l.owns(n) {
		return nil, errors.Wrap(ErrorInvalidHandle, "check node to insert after")
	}

	if n == l.tail {
		return l.AddTail(v), nil
	}

	res := &Node[T]{
		prev:  n,
		next:  n.next,
		list:  l,
		value: v,
	}
	n.next.prev = res
	n.next = res
	l.size++

	return res, nil
}

// InsertBefore вставка значения прямо перед данным узлом.
func (l *DLList[T]) InsertBefore(n *Node[T], v T) (*Node[T], error) {
	if !l.owns(n) {
		return nil, errors.Wrap(ErrorInvalidHandle, "check node to insert before")
	}

	return l.insertBefore(n, v), nil
}

// InsertAt вставка значения так, чтобы оно оказалось на позиции index.
// Допустимы индексы от 0 до NodeCount() включительно, последний означает
// добавление в конец.
func (l *DLList[T]) InsertAt(v T, index int) (*Node[T], error) {
	switch {
	case index < 0 || index > l.size:
		return nil, errIndexOutOfRange(index, l.size)
	case index == 0:
		return l.AddHead(v), nil
	case index == l.size:
		return l.AddTail(v), nil
	default:
		return l.insertBefore(l.nodeAt(index), v), nil
	}
}

func (l *DLList[T]) insertBefore(n *Node[T], v T) *Node[T] {
	if n == l.head {
		return l.AddHead(v)
	}

	res := &Node[T]{
		prev:  n.prev,
		next:  n,
		list:  l,
		value: v,
	}
	n.prev.next = res
	n.prev = res
	l.size++

	return res
}
