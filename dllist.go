package dllist

// New конструктор пустого двусвязного списка с опциями по умолчанию.
func New[T comparable]() *DLList[T] {
	return NewWithOptions[T](Options{})
}

// NewWithOptions конструктор пустого двусвязного списка с данными опциями.
// Незаданные поля опций заменяются значениями по умолчанию.
func NewWithOptions[T comparable](opts Options) *DLList[T] {
	opts = opts.withDefaults()
	return &DLList[T]{
		logger: opts.Logger,
	}
}

// DLList двусвязный список значений.
// Нулевое значение DLList является готовым к использованию пустым списком.
//
// Список владеет своими узлами. Узлы, которые отдаются наружу операциями поиска
// и вставки, являются ручками действительными только до следующей изменяющей
// операции: после удаления узел отсоединяется от списка и операции, принимающие
// ручку, возвращают для него ErrorInvalidHandle.
//
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе, синхронизация изменений лежит на пользователе.
type DLList[T comparable] struct {
	head *Node[T]
	tail *Node[T]
	size int

	logger Logger
}

// NodeCount количество узлов в списке.
func (l *DLList[T]) NodeCount() int {
	return l.size
}

// Len то же самое, что и NodeCount.
func (l *DLList[T]) Len() int {
	return l.size
}

// Head первый узел списка или nil для пустого списка.
func (l *DLList[T]) Head() *Node[T] {
	return l.head
}

// Tail последний узел списка или nil для пустого списка.
func (l *DLList[T]) Tail() *Node[T] {
	return l.tail
}

// Clone создание нового списка с копиями значений данного в том же порядке.
// Новый список не разделяет с исходным ни одного узла.
func (l *DLList[T]) Clone() *DLList[T] {
	res := &DLList[T]{
		logger: l.logger,
	}
	res.Assign(l)

	return res
}

// Assign замена содержимого списка копией содержимого src.
// Новая цепочка узлов строится до того, как отсоединяется текущая,
// так что присваивание самому себе ничего не меняет.
// nil src даёт пустой список.
func (l *DLList[T]) Assign(src *DLList[T]) {
	if src == l {
		return
	}

	var head, tail *Node[T]
	var size int
	if src != nil {
		for n := src.head; n != nil; n = n.next {
			node := &Node[T]{
				prev:  tail,
				list:  l,
				value: n.value,
			}
			if tail == nil {
				head = node
			} else {
				tail.next = node
			}
			tail = node
			size++
		}
	}

	l.detachAll()
	l.head = head
	l.tail = tail
	l.size = size
}

// Clear удаление всех узлов списка.
func (l *DLList[T]) Clear() {
	l.detachAll()
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Equal проверка на равенство: списки равны если у них одинаковая длина и
// равные значения на одинаковых позициях. nil считается пустым списком.
func (l *DLList[T]) Equal(other *DLList[T]) bool {
	if l == nil {
		return other == nil || other.size == 0
	}
	if other == nil {
		return l.size == 0
	}
	if l == other {
		return true
	}
	if l.size != other.size {
		return false
	}

	for a, b := l.head, other.head; a != nil; a, b = a.next, b.next {
		if a.value != b.value {
			return false
		}
	}

	return true
}

// Values значения списка от головы к хвосту.
func (l *DLList[T]) Values() []T {
	res := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		res = append(res, n.value)
	}

	return res
}

// detachAll отсоединяет каждый узел ровно один раз, проходя от головы.
// Ссылки на голову и хвост не трогает.
func (l *DLList[T]) detachAll() {
	n := l.head
	for n != nil {
		next := n.next
		n.cleanup()
		n = next
	}
}

func (l *DLList[T]) owns(n *Node[T]) bool {
	return n != nil && n.list == l
}

func (l *DLList[T]) log() Logger {
	if l.logger == nil {
		return DefaultLogger
	}

	return l.logger
}
