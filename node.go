package xorlist

import "github.com/sirkon/xorlist/internal/arena"

// Identity идентификатор узла списка. Нулевое значение означает отсутствие узла.
type Identity = arena.Identity

// node узел списка. Поле link хранит XOR идентификаторов соседей.
type node[T any] struct {
	link  Identity
	value T
}
