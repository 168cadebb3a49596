package xorlist

import (
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/xorlist/internal/tlog"
)

// fromValues список из данных значений.
func fromValues[T any](vs ...T) *List[T] {
	l := New[T]()
	c := l.Back()
	defer c.Close()

	for _, v := range vs {
		c.InsertBefore(v)
	}

	return l
}

// forward значения списка при проходе от начала.
func forward[T any](l *List[T]) []T {
	c := l.Front()
	defer c.Close()

	res := []T{}
	for v := c.StepForward(); v != nil; v = c.StepForward() {
		res = append(res, *v)
	}

	return res
}

// backward значения списка при проходе от конца.
func backward[T any](l *List[T]) []T {
	c := l.Back()
	defer c.Close()

	res := []T{}
	for v := c.StepBackward(); v != nil; v = c.StepBackward() {
		res = append(res, *v)
	}

	return res
}

func reversed[T any](vs []T) []T {
	res := make([]T, len(vs))
	for i, v := range vs {
		res[len(vs)-1-i] = v
	}

	return res
}

// checkList проверка содержимого списка в обоих направлениях и согласованности связей.
func checkList[T any](t *testing.T, name string, l *List[T], exp []T) {
	t.Helper()

	tlog.Check(t, l.Validate())

	if got := forward(l); !deepequal.Equal(exp, got) {
		t.Errorf("%s: unexpected forward traversal", name)
		deepequal.SideBySide(t, name, exp, got)
	}

	if got := backward(l); !deepequal.Equal(reversed(exp), got) {
		t.Errorf("%s: unexpected backward traversal", name)
		deepequal.SideBySide(t, name, reversed(exp), got)
	}

	if l.IsEmpty() != (len(exp) == 0) {
		t.Errorf("%s: IsEmpty must be %t", name, len(exp) == 0)
	}
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: panic expected", name)
		}
	}()

	f()
}
