package dllist

// Node узел содержащий данное значение в связанном списке.
// Указатель на узел является ручкой, которая действительна только до
// следующей изменяющей операции над списком.
type Node[T comparable] struct {
	prev *Node[T]
	next *Node[T]
	list *DLList[T]

	value T
}

// Value возврат значения лежащего в узле.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue замена значения лежащего в узле.
func (n *Node[T]) SetValue(v T) {
	n.value = v
}

// Next следующий узел или nil, если это хвост или узел уже отсоединён.
func (n *Node[T]) Next() *Node[T] {
	if n.list == nil {
		return nil
	}

	return n.next
}

// Prev предыдущий узел или nil, если это голова или узел уже отсоединён.
func (n *Node[T]) Prev() *Node[T] {
	if n.list == nil {
		return nil
	}

	return n.prev
}

func (n *Node[T]) cleanup() {
	n.prev = nil
	n.next = nil
	n.list = nil // ручка становится недействительной
}
