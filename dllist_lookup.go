package dllist

// GetNode узел на позиции index считая от головы.
func (l *DLList[T]) GetNode(index int) (*Node[T], error) {
	if index < 0 || index >= l.size {
		return nil, errIndexOutOfRange(index, l.size)
	}

	return l.nodeAt(index), nil
}

// At значение на позиции index.
func (l *DLList[T]) At(index int) (T, error) {
	n, err := l.GetNode(index)
	if err != nil {
		var zero T
		return zero, err
	}

	return n.value, nil
}

// Set замена значения на позиции index.
func (l *DLList[T]) Set(index int, v T) error {
	n, err := l.GetNode(index)
	if err != nil {
		return err
	}

	n.value = v
	return nil
}

// Find первый от головы узел с данным значением или nil, если такого нет.
func (l *DLList[T]) Find(v T) *Node[T] {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return n
		}
	}

	return nil
}

// FindAll все узлы с данным значением в порядке от головы к хвосту.
func (l *DLList[T]) FindAll(v T) []*Node[T] {
	var res []*Node[T]
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			res = append(res, n)
		}
	}

	return res
}

// nodeAt проход к узлу с ближайшего конца, индекс должен быть проверен.
func (l *DLList[T]) nodeAt(index int) *Node[T] {
	if index < l.size/2 {
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}

	n := l.tail
	for i := l.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// position индекс узла принадлежащего списку.
func (l *DLList[T]) position(n *Node[T]) int {
	var pos int
	for p := l.head; p != n; p = p.next {
		pos++
	}

	return pos
}
