package collections

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"gonum.org/v1/gonum/stat/combin"
)

// checkInvariants walks the list front to back, checking every prev link on the way, and
// verifies size, back and the middle position.
func checkInvariants[T any](t *testing.T, l *middleList[T]) {
	t.Helper()
	if l.size == 0 {
		if l.front != nil || l.back != nil || l.middle != nil {
			t.Fatalf("empty list has dangling pointers: front=%p back=%p middle=%p", l.front, l.back, l.middle)
		}
		return
	}

	var nodes []*node[T]
	var prev *node[T]
	for n := l.front; n != nil; n = n.next {
		if n.prev != prev {
			t.Fatalf("node at position %d has a broken prev link", len(nodes)+1)
		}
		nodes = append(nodes, n)
		if len(nodes) > l.size {
			t.Fatalf("more than %d nodes reachable from front", l.size)
		}
		prev = n
	}
	if len(nodes) != l.size {
		t.Fatalf("size is %d but %d nodes are reachable", l.size, len(nodes))
	}
	if prev != l.back {
		t.Fatalf("back is not the last reachable node")
	}

	want := l.size/2 + 1
	if nodes[want-1] != l.middle {
		got := slices.Index(nodes, l.middle) + 1
		t.Fatalf("size %d: middle at position %d, want %d", l.size, got, want)
	}
}

func valuesOf[T any](l *middleList[T]) []T {
	var out []T
	for n := l.front; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

type coreOp int

const (
	opAddFirst coreOp = iota
	opRemoveFirst
	opRemoveLast
	opInsertMiddle
	opRemoveMiddle
	numCoreOps
)

func (op coreOp) String() string {
	return [...]string{"addFirst", "removeFirst", "removeLast", "insertMiddle", "removeMiddle"}[op]
}

// Every sequence of six operations, starting from an empty list, is checked against a slice.
func TestMiddleListAllSequences(t *testing.T) {
	const depth = 6
	lens := make([]int, depth)
	for i := range lens {
		lens[i] = int(numCoreOps)
	}

	for _, seq := range combin.Cartesian(lens) {
		l := &middleList[int]{}
		var model []int
		var trace []coreOp

		for step, raw := range seq {
			op := coreOp(raw)
			trace = append(trace, op)
			v := step + 1

			switch op {
			case opAddFirst:
				if err := l.addFirst(v); err != nil {
					t.Fatalf("%v: %v", trace, err)
				}
				model = slices.Insert(model, 0, v)
			case opRemoveFirst, opRemoveLast:
				var got int
				var err error
				idx := 0
				if op == opRemoveFirst {
					got, err = l.removeFirst()
				} else {
					got, err = l.removeLast()
					idx = len(model) - 1
				}
				if len(model) == 0 {
					if !errors.Is(err, ErrEmptyStructure) {
						t.Fatalf("%v: expected ErrEmptyStructure, got %v", trace, err)
					}
					break
				}
				if err != nil || got != model[idx] {
					t.Fatalf("%v: got (%d, %v), want %d", trace, got, err, model[idx])
				}
				model = slices.Delete(model, idx, idx+1)
			case opInsertMiddle:
				if err := l.InsertMiddle(v); err != nil {
					t.Fatalf("%v: %v", trace, err)
				}
				model = slices.Insert(model, (len(model)+1)/2, v)
			case opRemoveMiddle:
				got, ok := l.RemoveMiddle()
				if len(model) == 0 {
					if ok {
						t.Fatalf("%v: RemoveMiddle on empty list returned %d", trace, got)
					}
					break
				}
				idx := len(model) / 2
				if !ok || got != model[idx] {
					t.Fatalf("%v: got (%d, %t), want %d", trace, got, ok, model[idx])
				}
				model = slices.Delete(model, idx, idx+1)
			}

			checkInvariants(t, l)
			if got := valuesOf(l); !slices.Equal(got, model) {
				t.Fatalf("%v: values %v, want %v", trace, got, model)
			}
			if len(model) > 0 {
				if m, _ := l.Middle(); m != model[len(model)/2] {
					t.Fatalf("%v: middle %d, want %d", trace, m, model[len(model)/2])
				}
			}
		}
	}
}

func TestRebalance(t *testing.T) {
	var tests = []struct {
		name string
		size int
		at   end
		grew bool
		move int
	}{
		{name: "front grow to odd", size: 3, at: frontEnd, grew: true, move: -1},
		{name: "front grow to even", size: 4, at: frontEnd, grew: true, move: 0},
		{name: "front shrink to even", size: 2, at: frontEnd, grew: false, move: 1},
		{name: "front shrink to odd", size: 3, at: frontEnd, grew: false, move: 0},
		{name: "back shrink to odd", size: 3, at: backEnd, grew: false, move: -1},
		{name: "back shrink to even", size: 2, at: backEnd, grew: false, move: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, c := &node[int]{value: 1}, &node[int]{value: 2}, &node[int]{value: 3}
			a.next, b.prev, b.next, c.prev = b, a, c, b
			l := &middleList[int]{front: a, back: c, middle: b, size: tt.size}

			l.rebalance(tt.at, tt.grew)

			want := map[int]*node[int]{-1: a, 0: b, 1: c}[tt.move]
			if l.middle != want {
				t.Errorf("Expected middle to hold %d, got %d", want.value, l.middle.value)
			}
		})
	}
}

func TestMiddleListEdgeCases(t *testing.T) {
	t.Run("removeLast from two nodes", func(t *testing.T) {
		l := &middleList[string]{}
		l.addFirst("b")
		l.addFirst("a")
		if v, err := l.removeLast(); v != "b" || err != nil {
			t.Fatalf("Expected removeLast() to return b, got %q %v", v, err)
		}
		checkInvariants(t, l)
		if m, _ := l.Middle(); m != "a" {
			t.Errorf("Expected middle to be a, got %q", m)
		}
	})

	t.Run("insertMiddle into single node", func(t *testing.T) {
		l := &middleList[string]{}
		l.addFirst("a")
		l.InsertMiddle("b")
		checkInvariants(t, l)
		if got := valuesOf(l); !slices.Equal(got, []string{"a", "b"}) {
			t.Errorf("Expected [a b], got %v", got)
		}
		if b, _ := l.Back(); b != "b" {
			t.Errorf("Expected back to be b, got %q", b)
		}
	})

	t.Run("insertMiddle into empty list", func(t *testing.T) {
		l := &middleList[string]{}
		l.InsertMiddle("a")
		checkInvariants(t, l)
		if l.front != l.middle || l.back != l.middle {
			t.Error("Expected front, back and middle to be the same node")
		}
	})

	t.Run("removeMiddle down to empty", func(t *testing.T) {
		l := &middleList[int]{}
		for i := 0; i < 5; i++ {
			l.addFirst(i)
		}
		var got []int
		for !l.IsEmpty() {
			v, ok := l.RemoveMiddle()
			if !ok {
				t.Fatal("Expected RemoveMiddle() to succeed")
			}
			got = append(got, v)
			checkInvariants(t, l)
		}
		// list is 4 3 2 1 0
		if want := []int{2, 1, 3, 0, 4}; !slices.Equal(got, want) {
			t.Errorf("Expected removal order %v, got %v", want, got)
		}
	})

	t.Run("removed nodes are detached", func(t *testing.T) {
		l := &middleList[int]{}
		for i := 0; i < 4; i++ {
			l.addFirst(i)
		}
		first, last, mid := l.front, l.back, l.middle
		l.removeFirst()
		l.removeLast()
		l.RemoveMiddle()
		for _, n := range []*node[int]{first, last, mid} {
			if n.next != nil || n.prev != nil {
				t.Errorf("Expected removed node %d to have no links", n.value)
			}
		}
	})
}

func TestIsNil(t *testing.T) {
	var p *int
	var m map[string]int
	var s []int
	var f func()
	var c chan int
	var e error

	var tests = []struct {
		value any
		isNil bool
	}{
		{nil, true},
		{p, true},
		{m, true},
		{s, true},
		{f, true},
		{c, true},
		{e, true},
		{0, false},
		{"", false},
		{[]int{}, false},
		{struct{}{}, false},
		{new(int), false},
	}

	for i, tt := range tests {
		if got := isNil(tt.value); got != tt.isNil {
			t.Errorf("case %d (%T): isNil = %t, want %t", i, tt.value, got, tt.isNil)
		}
	}
}

func TestMiddleListClear(t *testing.T) {
	l := &middleList[int]{}
	for i := 0; i < 3; i++ {
		l.addFirst(i)
	}
	n := l.middle
	l.Clear()
	checkInvariants(t, l)
	if n.next != nil || n.prev != nil {
		t.Error("Expected Clear() to detach nodes")
	}
	if !l.Empty() {
		t.Error("Expected Empty() to be true after Clear()")
	}
	l.addFirst(7)
	checkInvariants(t, l)
}

func BenchmarkAddRemoveFirst(b *testing.B) {
	l := &middleList[int]{}
	for i := 0; i < 1024; i++ {
		l.addFirst(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.addFirst(i)
		l.removeFirst()
	}
}

func BenchmarkInsertRemoveMiddle(b *testing.B) {
	l := &middleList[int]{}
	for i := 0; i < 1024; i++ {
		l.addFirst(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.InsertMiddle(i)
		l.RemoveMiddle()
	}
}

func ExampleMiddleList() {
	l, _ := New[int]("stack")
	for i := 1; i <= 5; i++ {
		l.Push(i)
	}
	m, _ := l.Middle()
	fmt.Println(l, m)
	// Output: MiddleList[stack] [5 -> 4 -> 3 -> 2 -> 1] 3
}
