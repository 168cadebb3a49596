package xorlist

import (
	"math/rand"
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/xorlist/internal/dllist"
	"github.com/sirkon/xorlist/internal/tlog"
	"golang.org/x/exp/slices"
)

// TestAgainstModel случайная последовательность операций над списком
// и над эталонным двусвязным списком должна давать одинаковые результаты.
func TestAgainstModel(t *testing.T) {
	rnd := rand.New(rand.NewSource(20261017))

	type pair struct {
		list  *List[int]
		model *dllist.DLList[int]
	}

	lists := []pair{{list: New[int](), model: dllist.New[int]()}}
	var next int

	for round := 0; round < 200; round++ {
		i := rnd.Intn(len(lists))
		p := lists[i]

		var c *Cursor[int]
		var m *dllist.Cursor[int]
		if rnd.Intn(2) == 0 {
			c, m = p.list.Front(), p.model.Front()
		} else {
			c, m = p.list.Back(), p.model.Back()
		}

		for op := 0; op < 50; op++ {
			switch k := rnd.Intn(100); {
			case k < 25:
				got, want := c.StepForward(), -1
				if v, ok := m.StepForward(); ok {
					want = v
				}
				compareStep(t, "step forward", got, want)
			case k < 45:
				got, want := c.StepBackward(), -1
				if v, ok := m.StepBackward(); ok {
					want = v
				}
				compareStep(t, "step backward", got, want)
			case k < 60:
				next++
				c.InsertAfter(next)
				m.InsertAfter(next)
			case k < 75:
				next++
				c.InsertBefore(next)
				m.InsertBefore(next)
			case k < 84:
				got, gok := c.RemoveAfter()
				want, wok := m.RemoveAfter()
				if got != want || gok != wok {
					t.Fatalf("remove after: expected %d (%t), got %d (%t)", want, wok, got, gok)
				}
			case k < 93:
				got, gok := c.RemoveBefore()
				want, wok := m.RemoveBefore()
				if got != want || gok != wok {
					t.Fatalf("remove before: expected %d (%t), got %d (%t)", want, wok, got, gok)
				}
			case k < 96:
				lists = append(lists, pair{list: c.SplitBefore(), model: m.SplitBefore()})
			default:
				lists = append(lists, pair{list: c.SplitAfter(), model: m.SplitAfter()})
			}
		}
		c.Close()

		all := make([]*List[int], 0, len(lists))
		for _, p := range lists {
			compareWithModel(t, p.list, p.model)
			all = append(all, p.list)
		}
		if tlog.Check(t, Disjoint(all...)) {
			t.FailNow()
		}
	}
}

func compareStep(t *testing.T, name string, got *int, want int) {
	t.Helper()

	switch {
	case got == nil && want == -1:
	case got == nil:
		t.Fatalf("%s: expected %d, got nothing", name, want)
	case *got != want:
		t.Fatalf("%s: expected %d, got %d", name, want, *got)
	}
}

func compareWithModel(t *testing.T, l *List[int], m *dllist.DLList[int]) {
	t.Helper()

	if tlog.Check(t, l.Validate()) {
		t.FailNow()
	}

	exp := m.Values()
	got := forward(l)
	if !slices.Equal(exp, got) {
		deepequal.SideBySide(t, "values", exp, got)
		t.FailNow()
	}
}
