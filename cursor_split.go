package xorlist

import "github.com/sirkon/xorlist/internal/arena"

// SplitBefore отделение всех элементов перед курсором в новый список.
// В исходном списке остаются элементы после курсора, сам курсор
// оказывается в его начале.
func (c *Cursor[T]) SplitBefore() *List[T] {
	l := c.owner()
	if c.before == arena.Nil {
		return l.split(arena.Nil, arena.Nil)
	}

	c.detach()
	res := l.split(l.head, c.before)
	l.head = c.after
	if c.after == arena.Nil {
		l.tail = arena.Nil
	}
	c.before = arena.Nil

	return res
}

// SplitAfter отделение всех элементов после курсора в новый список.
// В исходном списке остаются элементы перед курсором, сам курсор
// оказывается в его конце.
func (c *Cursor[T]) SplitAfter() *List[T] {
	l := c.owner()
	if c.after == arena.Nil {
		return l.split(arena.Nil, arena.Nil)
	}

	c.detach()
	res := l.split(c.after, l.tail)
	l.tail = c.before
	if c.before == arena.Nil {
		l.head = arena.Nil
	}
	c.after = arena.Nil

	return res
}

// detach разрыв связи между before и after: каждый из граничных узлов
// забывает соседа по другую сторону курсора.
func (c *Cursor[T]) detach() {
	l := c.list
	if c.before != arena.Nil {
		l.nodes.Get(c.before).link ^= c.after
	}
	if c.after != arena.Nil {
		l.nodes.Get(c.after).link ^= c.before
	}
}
