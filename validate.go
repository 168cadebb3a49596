package xorlist

import (
	"github.com/sirkon/errors"
	"github.com/sirkon/xorlist/internal/arena"
	"golang.org/x/exp/slices"
)

// Validate проверка согласованности связей списка: цепочка, раскодированная
// от начала, должна совпасть с обращённой цепочкой, раскодированной от конца,
// а поле связи каждого узла должно быть равно XOR его соседей.
func (l *List[T]) Validate() error {
	if (l.head == arena.Nil) != (l.tail == arena.Nil) {
		return errors.New("list anchors disagree on emptiness").
			Uint64("list-head", uint64(l.head)).
			Uint64("list-tail", uint64(l.tail))
	}

	forward, err := l.chain(l.head, l.tail)
	if err != nil {
		return errors.Wrap(err, "decode chain from head")
	}

	backward, err := l.chain(l.tail, l.head)
	if err != nil {
		return errors.Wrap(err, "decode chain from tail")
	}

	for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
		backward[i], backward[j] = backward[j], backward[i]
	}
	if !slices.Equal(forward, backward) {
		pos := 0
		for pos < len(forward) && pos < len(backward) && forward[pos] == backward[pos] {
			pos++
		}

		return errors.New("forward and backward chains differ").
			Int("forward-length", len(forward)).
			Int("backward-length", len(backward)).
			Int("first-mismatch-position", pos)
	}

	return nil
}

// chain раскодирование цепочки узлов начиная с from, которая должна
// закончиться на to.
func (l *List[T]) chain(from, to Identity) ([]Identity, error) {
	var res []Identity
	seen := map[Identity]struct{}{}

	var prev Identity
	for cur := from; cur != arena.Nil; {
		n, ok := l.nodes.Lookup(cur)
		if !ok {
			return nil, errors.New("chain refers to a missing node").
				Uint64("missing-identity", uint64(cur)).
				Int("position", len(res))
		}

		if _, ok := seen[cur]; ok {
			return nil, errors.New("chain loops").
				Uint64("repeated-identity", uint64(cur)).
				Int("position", len(res))
		}
		seen[cur] = struct{}{}

		res = append(res, cur)
		prev, cur = cur, n.link^prev
	}

	var last Identity
	if len(res) > 0 {
		last = res[len(res)-1]
	}
	if last != to {
		return nil, errors.New("chain does not end at the list anchor").
			Uint64("chain-end", uint64(last)).
			Uint64("anchor", uint64(to))
	}

	return res, nil
}

// Disjoint проверка того, что ни один узел не достижим из двух списков сразу.
// Каждый из списков также проверяется на согласованность связей.
func Disjoint[T any](lists ...*List[T]) error {
	type owned struct {
		nodes *arena.Arena[node[T]]
		id    Identity
	}

	owners := map[owned]int{}
	for i, l := range lists {
		if err := l.Validate(); err != nil {
			return errors.Wrap(err, "validate list").Int("list-index", i)
		}

		ids, _ := l.chain(l.head, l.tail)
		for _, id := range ids {
			key := owned{
				nodes: l.nodes,
				id:    id,
			}
			if j, ok := owners[key]; ok {
				return errors.New("node is reachable from two lists").
					Uint64("shared-identity", uint64(id)).
					Int("first-list-index", j).
					Int("second-list-index", i)
			}
			owners[key] = i
		}
	}

	return nil
}
