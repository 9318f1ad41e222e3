package collections

import (
	"reflect"
	"strings"

	"github.com/emirpasic/gods/utils"
)

type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

type end int

const (
	frontEnd end = iota
	backEnd
)

// middleList is the doubly linked core shared by MiddleList, Stack and Queue.
// For size > 0, middle is the node at 1-based position size/2+1 counted from front.
type middleList[T any] struct {
	front  *node[T]
	back   *node[T]
	middle *node[T]
	size   int
}

// isNil reports whether v is an absent value: a nil interface, pointer, map, slice, func or chan.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func (l *middleList[T]) reset() {
	l.front, l.back, l.middle = nil, nil, nil
	l.size = 0
}

// rebalance restores the middle position after a node was added (grew) or removed at one end.
// It must run once size holds the new length and before the removed node's links are cleared.
func (l *middleList[T]) rebalance(at end, grew bool) {
	odd := l.size%2 != 0
	switch {
	case at == frontEnd && grew && odd:
		l.middle = l.middle.prev
	case at == frontEnd && !grew && !odd:
		l.middle = l.middle.next
	case at == backEnd && !grew && odd:
		l.middle = l.middle.prev
	}
}

func (l *middleList[T]) addFirst(v T) error {
	if isNil(v) {
		return errNilValue("add first")
	}

	n := &node[T]{value: v}
	if l.size == 0 {
		l.front, l.back, l.middle = n, n, n
		l.size = 1
		return nil
	}

	n.next = l.front
	l.front.prev = n
	l.front = n
	l.size++
	l.rebalance(frontEnd, true)
	return nil
}

func (l *middleList[T]) removeFirst() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyStructure
	}

	old := l.front
	if l.size == 1 {
		l.reset()
		return old.value, nil
	}

	l.front = old.next
	l.front.prev = nil
	l.size--
	l.rebalance(frontEnd, false)
	old.next = nil
	return old.value, nil
}

func (l *middleList[T]) removeLast() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyStructure
	}

	old := l.back
	if l.size == 1 {
		l.reset()
		return old.value, nil
	}

	l.back = old.prev
	l.back.next = nil
	l.size--
	// with two nodes the middle is the old back, so its prev link is still needed here
	l.rebalance(backEnd, false)
	old.prev = nil
	return old.value, nil
}

// InsertMiddle links v next to the middle so that it becomes the new middle. On an even-sized
// list it goes before the current middle, on an odd-sized one after it.
func (l *middleList[T]) InsertMiddle(v T) error {
	if isNil(v) {
		return errNilValue("insert middle")
	}

	n := &node[T]{value: v}
	m := l.middle
	switch {
	case l.size == 0:
		l.front, l.back = n, n
	case l.size%2 == 0:
		n.prev, n.next = m.prev, m
		m.prev.next = n
		m.prev = n
	default:
		n.prev, n.next = m, m.next
		if m.next == nil {
			l.back = n
		} else {
			m.next.prev = n
		}
		m.next = n
	}

	l.middle = n
	l.size++
	return nil
}

// RemoveMiddle unlinks the middle node and returns its value. It reports false on an empty list
// instead of failing.
func (l *middleList[T]) RemoveMiddle() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}

	m := l.middle
	if l.size == 1 {
		l.reset()
		return m.value, true
	}

	prev, next := m.prev, m.next
	prev.next = next
	if next == nil {
		l.back = prev
	} else {
		next.prev = prev
	}
	l.size--

	if l.size%2 == 0 {
		l.middle = next
	} else {
		l.middle = prev
	}
	m.prev, m.next = nil, nil
	return m.value, true
}

// Middle returns the value of the middle node.
func (l *middleList[T]) Middle() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyStructure
	}
	return l.middle.value, nil
}

func (l *middleList[T]) Front() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyStructure
	}
	return l.front.value, nil
}

func (l *middleList[T]) Back() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyStructure
	}
	return l.back.value, nil
}

func (l *middleList[T]) Size() int {
	return l.size
}

func (l *middleList[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *middleList[T]) Empty() bool {
	return l.IsEmpty()
}

// Clear unlinks every node.
func (l *middleList[T]) Clear() {
	for n := l.front; n != nil; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}
	l.reset()
}

// Values returns the stored values from front to back.
func (l *middleList[T]) Values() []interface{} {
	values := make([]interface{}, 0, l.size)
	for n := l.front; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

func (l *middleList[T]) format(name string) string {
	s := new(strings.Builder)
	s.WriteString(name)
	s.WriteString(" [")
	for n := l.front; n != nil; n = n.next {
		s.WriteString(utils.ToString(n.value))
		if n.next != nil {
			s.WriteString(" -> ")
		}
	}
	s.WriteString("]")
	return s.String()
}
