// Package dllist обычный двусвязный список с явными ссылками на соседей.
// Служит эталонной моделью порядка элементов при проверке списка с упакованными связями.
package dllist

// New конструктор пустого двусвязного списка.
func New[T any]() *DLList[T] {
	return &DLList[T]{}
}

// DLList двусвязный список.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type DLList[T any] struct {
	first *Node[T]
	last  *Node[T]
}

// Push добавление нового значения в конец списка с возвратом созданного узла.
func (l *DLList[T]) Push(v T) *Node[T] {
	return l.link(l.last, nil, v)
}

// First получение первого элемента списка.
func (l *DLList[T]) First() *Node[T] {
	return l.first
}

// Values значения списка от начала к концу.
func (l *DLList[T]) Values() []T {
	res := []T{}
	for n := l.first; n != nil; n = n.next {
		res = append(res, n.value)
	}

	return res
}

// Delete удаление данного узла из списка.
func (l *DLList[T]) Delete(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	}

	if l.first == n {
		l.first = n.next
	}

	if l.last == n {
		l.last = n.prev
	}

	n.cleanup()
}

// link размещение нового узла между соседними узлами prev и next.
func (l *DLList[T]) link(prev, next *Node[T], v T) *Node[T] {
	n := &Node[T]{
		prev:  prev,
		next:  next,
		value: v,
	}

	if prev != nil {
		prev.next = n
	} else {
		l.first = n
	}

	if next != nil {
		next.prev = n
	} else {
		l.last = n
	}

	return n
}
