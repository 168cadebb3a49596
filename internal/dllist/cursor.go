package dllist

// Cursor позиция между соседними узлами prev и next.
type Cursor[T any] struct {
	prev *Node[T]
	next *Node[T]
	list *DLList[T]
}

// Front курсор перед первым элементом.
func (l *DLList[T]) Front() *Cursor[T] {
	return &Cursor[T]{
		next: l.first,
		list: l,
	}
}

// Back курсор после последнего элемента.
func (l *DLList[T]) Back() *Cursor[T] {
	return &Cursor[T]{
		prev: l.last,
		list: l,
	}
}

// StepForward переход через следующий элемент.
func (c *Cursor[T]) StepForward() (v T, ok bool) {
	if c.next == nil {
		return v, false
	}

	n := c.next
	c.prev, c.next = n, n.next
	return n.value, true
}

// StepBackward переход через предыдущий элемент.
func (c *Cursor[T]) StepBackward() (v T, ok bool) {
	if c.prev == nil {
		return v, false
	}

	n := c.prev
	c.prev, c.next = n.prev, n
	return n.value, true
}

// InsertAfter вставка значения за курсором.
func (c *Cursor[T]) InsertAfter(v T) {
	c.next = c.list.link(c.prev, c.next, v)
}

// InsertBefore вставка значения перед курсором.
func (c *Cursor[T]) InsertBefore(v T) {
	c.prev = c.list.link(c.prev, c.next, v)
}

// RemoveAfter удаление элемента за курсором.
func (c *Cursor[T]) RemoveAfter() (v T, ok bool) {
	if c.next == nil {
		return v, false
	}

	n := c.next
	c.next = n.next
	c.list.Delete(n)
	return n.value, true
}

// RemoveBefore удаление элемента перед курсором.
func (c *Cursor[T]) RemoveBefore() (v T, ok bool) {
	if c.prev == nil {
		return v, false
	}

	n := c.prev
	c.prev = n.prev
	c.list.Delete(n)
	return n.value, true
}

// SplitBefore отделение элементов перед курсором в новый список.
func (c *Cursor[T]) SplitBefore() *DLList[T] {
	if c.prev == nil {
		return New[T]()
	}

	res := &DLList[T]{
		first: c.list.first,
		last:  c.prev,
	}
	c.prev.next = nil
	if c.next != nil {
		c.next.prev = nil
	} else {
		c.list.last = nil
	}
	c.list.first = c.next
	c.prev = nil

	return res
}

// SplitAfter отделение элементов после курсора в новый список.
func (c *Cursor[T]) SplitAfter() *DLList[T] {
	if c.next == nil {
		return New[T]()
	}

	res := &DLList[T]{
		first: c.next,
		last:  c.list.last,
	}
	c.next.prev = nil
	if c.prev != nil {
		c.prev.next = nil
	} else {
		c.list.first = nil
	}
	c.list.last = c.prev
	c.next = nil

	return res
}
