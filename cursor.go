package xorlist

import (
	"github.com/sirkon/errors"
	"github.com/sirkon/xorlist/internal/arena"
)

// Cursor позиция в промежутке между двумя соседними элементами списка.
// Пока курсор открыт, он единолично владеет списком: другой курсор для
// этого списка получить нельзя. Close возвращает список в распоряжение
// пользователя, после чего любая операция с курсором приводит к панике.
type Cursor[T any] struct {
	before Identity
	after  Identity
	list   *List[T]
}

// Close закрытие курсора. Повторный вызов ничего не делает.
func (c *Cursor[T]) Close() {
	if c.list == nil {
		return
	}

	if c.list.cursor == c {
		c.list.cursor = nil
	}
	c.list = nil
}

// AtFront курсор стоит перед первым элементом.
func (c *Cursor[T]) AtFront() bool {
	c.owner()
	return c.before == arena.Nil
}

// AtBack курсор стоит после последнего элемента.
func (c *Cursor[T]) AtBack() bool {
	c.owner()
	return c.after == arena.Nil
}

// StepForward перемещение курсора на один элемент вперёд с возвратом
// указателя на значение пройденного элемента. Возвращает nil, если курсор
// уже стоит в конце списка.
func (c *Cursor[T]) StepForward() *T {
	l := c.owner()
	if c.after == arena.Nil {
		return nil
	}

	n := l.nodes.Get(c.after)
	c.before, c.after = c.after, n.link^c.before
	return &n.value
}

// StepBackward перемещение курсора на один элемент назад с возвратом
// указателя на значение пройденного элемента. Возвращает nil, если курсор
// уже стоит в начале списка.
func (c *Cursor[T]) StepBackward() *T {
	l := c.owner()
	if c.before == arena.Nil {
		return nil
	}

	n := l.nodes.Get(c.before)
	c.after, c.before = c.before, n.link^c.after
	return &n.value
}

// InsertAfter вставка значения сразу за курсором.
// Следующий StepForward вернёт вставленное значение.
func (c *Cursor[T]) InsertAfter(v T) {
	c.after = c.insert(v)
}

// InsertBefore вставка значения сразу перед курсором.
// Следующий StepBackward вернёт вставленное значение.
func (c *Cursor[T]) InsertBefore(v T) {
	c.before = c.insert(v)
}

// RemoveAfter удаление элемента, стоящего сразу за курсором.
// Возвращает false, если курсор стоит в конце списка.
func (c *Cursor[T]) RemoveAfter() (v T, ok bool) {
	l := c.owner()
	if c.after == arena.Nil {
		return v, false
	}

	id := c.after
	c.after = l.nodes.Get(id).link ^ c.before
	return c.remove(id), true
}

// RemoveBefore удаление элемента, стоящего сразу перед курсором.
// Возвращает false, если курсор стоит в начале списка.
func (c *Cursor[T]) RemoveBefore() (v T, ok bool) {
	l := c.owner()
	if c.before == arena.Nil {
		return v, false
	}

	id := c.before
	c.before = l.nodes.Get(id).link ^ c.after
	return c.remove(id), true
}

// insert размещение нового узла между before и after.
func (c *Cursor[T]) insert(v T) Identity {
	l := c.owner()
	id := l.nodes.Alloc(node[T]{
		link:  c.before ^ c.after,
		value: v,
	})

	if c.before != arena.Nil {
		l.nodes.Get(c.before).link ^= c.after ^ id
	} else {
		l.head = id
	}

	if c.after != arena.Nil {
		l.nodes.Get(c.after).link ^= c.before ^ id
	} else {
		l.tail = id
	}

	l.logger.NodeAllocated(id)
	return id
}

// remove изъятие узла id, который к этому моменту уже стоит вне
// промежутка курсора, то есть его соседями являются before и after.
func (c *Cursor[T]) remove(id Identity) T {
	l := c.list

	if c.after != arena.Nil {
		l.nodes.Get(c.after).link ^= id ^ c.before
	} else {
		l.tail = c.before
	}

	if c.before != arena.Nil {
		l.nodes.Get(c.before).link ^= id ^ c.after
	} else {
		l.head = c.after
	}

	n := l.nodes.Free(id)
	l.logger.NodeReleased(id)
	return n.value
}

func (c *Cursor[T]) owner() *List[T] {
	if c.list == nil {
		panic(errors.New("use of closed cursor"))
	}

	return c.list
}
