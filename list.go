// Package xorlist двусвязный список, узлы которого хранят единственное поле
// связи: XOR идентификаторов соседних узлов. Доступ к элементам возможен только
// через курсор, стоящий в промежутке между двумя соседними элементами.
package xorlist

import (
	"github.com/sirkon/errors"
	"github.com/sirkon/xorlist/internal/arena"
)

// List двусвязный список с упакованными связями.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	head Identity
	tail Identity

	nodes  *arena.Arena[node[T]]
	logger Logger

	cursor *Cursor[T]
}

// New конструктор пустого списка с настройками по умолчанию.
func New[T any]() *List[T] {
	l, err := NewWithOptions[T]()
	if err != nil {
		panic(errors.Wrap(err, "create list with default options"))
	}

	return l
}

// NewWithOptions конструктор пустого списка с заданными опциями.
func NewWithOptions[T any](opts ...Option) (*List[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt.apply(&cfg); err != nil {
			return nil, errors.Wrap(err, "apply option").Str("option", opt.String())
		}
	}

	return &List[T]{
		nodes:  arena.New[node[T]](cfg.chunkSize),
		logger: cfg.logger,
	}, nil
}

// IsEmpty проверка на пустоту.
func (l *List[T]) IsEmpty() bool {
	return l.head == arena.Nil
}

// Front курсор перед первым элементом списка.
// Паникует если у списка уже есть открытый курсор.
func (l *List[T]) Front() *Cursor[T] {
	return l.checkout(arena.Nil, l.head)
}

// Back курсор после последнего элемента списка.
// Паникует если у списка уже есть открытый курсор.
func (l *List[T]) Back() *Cursor[T] {
	return l.checkout(l.tail, arena.Nil)
}

func (l *List[T]) checkout(before, after Identity) *Cursor[T] {
	if l.cursor != nil {
		panic(errors.New("list already has an open cursor"))
	}

	l.cursor = &Cursor[T]{
		before: before,
		after:  after,
		list:   l,
	}
	return l.cursor
}

// split отделяет от списка новый список с тем же хранилищем узлов.
func (l *List[T]) split(head, tail Identity) *List[T] {
	if head != arena.Nil {
		l.logger.ListSplit(head, tail)
	}

	return &List[T]{
		head:   head,
		tail:   tail,
		nodes:  l.nodes,
		logger: l.logger,
	}
}
