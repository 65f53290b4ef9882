package dllist

import "github.com/sirkon/errors"

// RemoveHead удаление первого узла. Возвращает false для пустого списка.
func (l *DLList[T]) RemoveHead() bool {
	if l.head == nil {
		return false
	}

	h := l.head
	l.head = h.next
	if l.head == nil {
		// в списке был только один элемент
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	h.cleanup()
	l.size--

	return true
}

// RemoveTail удаление последнего узла. Возвращает false для пустого списка.
func (l *DLList[T]) RemoveTail() bool {
	if l.tail == nil {
		return false
	}

	t := l.tail
	l.tail = t.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	t.cleanup()
	l.size--

	return true
}

// Remove удаление всех узлов с данным значением, возвращает число удалённых.
func (l *DLList[T]) Remove(v T) int {
	// Узлы собираются до начала удаления: соседние совпадения не
	// должны зависеть от ссылок, которые меняются по ходу.
	nodes := l.FindAll(v)
	for _, n := range nodes {
		l.removeNode(n)
	}

	return len(nodes)
}

// RemoveAt удаление узла на позиции index. Индекс за пределами списка
// не является ошибкой вызывающего: передаётся логгеру и даёт false.
func (l *DLList[T]) RemoveAt(index int) bool {
	n, err := l.GetNode(index)
	if err != nil {
		l.log().RemoveAtFailed(index, err)
		return false
	}

	l.removeNode(n)
	return true
}

// Delete удаление данного узла из списка.
func (l *DLList[T]) Delete(n *Node[T]) error {
	if !l.owns(n) {
		return errors.Wrap(ErrorInvalidHandle, "check node to delete")
	}

	l.removeNode(n)
	return nil
}

func (l *DLList[T]) removeNode(n *Node[T]) {
	switch n {
	case l.head:
		l.RemoveHead()
	case l.tail:
		l.RemoveTail()
	default:
		l.unlink(n)
	}
}

// unlink удаление узла, который не является ни головой, ни хвостом.
func (l *DLList[T]) unlink(n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.cleanup()
	l.size--
}
