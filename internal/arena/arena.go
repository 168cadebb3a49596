package arena

import "github.com/sirkon/errors"

// Arena хранилище значений по идентификаторам.
// Значения лежат в блоках фиксированного размера, поэтому указатель,
// полученный через Get, остаётся валидным до освобождения ячейки.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Arena[V any] struct {
	chunkSize int
	chunks    [][]slot[V]
	free      []uint32
	used      uint32
	live      int
}

type slot[V any] struct {
	gen   uint32
	busy  bool
	value V
}

// New конструктор арены с заданным размером блока.
func New[V any](chunkSize int) *Arena[V] {
	if chunkSize <= 0 {
		panic(errors.New("chunk size must be positive").Int("invalid-chunk-size", chunkSize))
	}

	return &Arena[V]{
		chunkSize: chunkSize,
	}
}

// Alloc размещение значения в свободной ячейке.
func (a *Arena[V]) Alloc(v V) Identity {
	var index uint32
	if l := len(a.free); l > 0 {
		index = a.free[l-1]
		a.free = a.free[:l-1]
	} else {
		if int(a.used) == len(a.chunks)*a.chunkSize {
			a.chunks = append(a.chunks, make([]slot[V], a.chunkSize))
		}
		index = a.used
		a.used++
	}

	s := a.slot(index)
	s.busy = true
	s.value = v
	a.live++

	return makeIdentity(index, s.gen)
}

// Get получение указателя на значение живой ячейки.
// Паникует, если идентификатор не соответствует живой ячейке.
func (a *Arena[V]) Get(id Identity) *V {
	v, ok := a.Lookup(id)
	if !ok {
		panic(errors.New("invalid identity").Uint64("invalid-identity", uint64(id)))
	}

	return v
}

// Lookup то же что и Get, но вместо паники возвращает false.
func (a *Arena[V]) Lookup(id Identity) (*V, bool) {
	if id == Nil || id.index() >= a.used {
		return nil, false
	}

	s := a.slot(id.index())
	if !s.busy || s.gen != id.gen() {
		return nil, false
	}

	return &s.value, true
}

// Free освобождение ячейки с возвратом лежавшего в ней значения.
// Идентификатор после этого становится недействительным.
func (a *Arena[V]) Free(id Identity) V {
	v := *a.Get(id)

	s := a.slot(id.index())
	var zero V
	s.value = zero // для упрощения работы GC
	s.busy = false
	s.gen++
	a.free = append(a.free, id.index())
	a.live--

	return v
}

// Live количество занятых ячеек.
func (a *Arena[V]) Live() int {
	return a.live
}

func (a *Arena[V]) slot(index uint32) *slot[V] {
	return &a.chunks[int(index)/a.chunkSize][int(index)%a.chunkSize]
}
