package collections

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

var _ containers.Container = (*LinkedList[int])(nil)

type sNode[T comparable] struct {
	value T
	next  *sNode[T]
}

// LinkedList is a singly linked list with a tail pointer. The zero value is an empty list.
//
// Values are matched with == and counted in a map, so when T is an interface type every stored
// value must be comparable at run time; inserts reject slices, maps and funcs with
// ErrInvalidArgument.
type LinkedList[T comparable] struct {
	head *sNode[T]
	tail *sNode[T]
	size int
}

func NewLinkedList[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

func checkValue[T comparable](op string, v T) error {
	if isNil(v) {
		return errNilValue(op)
	}
	if !reflect.ValueOf(v).Comparable() {
		return fmt.Errorf("%s: uncomparable value of type %T: %w", op, v, ErrInvalidArgument)
	}
	return nil
}

// Add appends v.
func (l *LinkedList[T]) Add(v T) error {
	if err := checkValue("add", v); err != nil {
		return err
	}

	n := &sNode[T]{value: v}
	if l.size == 0 {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
	return nil
}

func (l *LinkedList[T]) AddFirst(v T) error {
	if err := checkValue("add first", v); err != nil {
		return err
	}

	n := &sNode[T]{value: v, next: l.head}
	l.head = n
	if l.size == 0 {
		l.tail = n
	}
	l.size++
	return nil
}

// AddAll appends every value, or none of them if any is rejected.
func (l *LinkedList[T]) AddAll(values ...T) error {
	for i, v := range values {
		if err := checkValue(fmt.Sprintf("add all: index %d", i), v); err != nil {
			return err
		}
	}
	for _, v := range values {
		_ = l.Add(v)
	}
	return nil
}

// unlink removes n, whose predecessor is prev (nil when n is the head).
func (l *LinkedList[T]) unlink(prev, n *sNode[T]) {
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	if n == l.tail {
		l.tail = prev
	}
	n.next = nil
	l.size--
}

func (l *LinkedList[T]) RemoveFirst() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyStructure
	}
	n := l.head
	l.unlink(nil, n)
	return n.value, nil
}

// RemoveLast walks the list to find the new tail, so it is O(n).
func (l *LinkedList[T]) RemoveLast() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyStructure
	}

	var prev *sNode[T]
	for n := l.head; n != l.tail; n = n.next {
		prev = n
	}
	n := l.tail
	l.unlink(prev, n)
	return n.value, nil
}

func (l *LinkedList[T]) RemoveFirstOccurrence(v T) error {
	if l.size == 0 {
		return ErrEmptyStructure
	}

	var prev *sNode[T]
	for n := l.head; n != nil; prev, n = n, n.next {
		if n.value == v {
			l.unlink(prev, n)
			return nil
		}
	}
	return fmt.Errorf("remove first occurrence of %v: %w", v, ErrNotFound)
}

func (l *LinkedList[T]) RemoveLastOccurrence(v T) error {
	if l.size == 0 {
		return ErrEmptyStructure
	}

	var prev, lastPrev, last *sNode[T]
	for n := l.head; n != nil; prev, n = n, n.next {
		if n.value == v {
			lastPrev, last = prev, n
		}
	}
	if last == nil {
		return fmt.Errorf("remove last occurrence of %v: %w", v, ErrNotFound)
	}
	l.unlink(lastPrev, last)
	return nil
}

// RemoveKthOccurrence removes the k-th (1-based) node holding v.
func (l *LinkedList[T]) RemoveKthOccurrence(k int, v T) error {
	if l.size == 0 {
		return ErrEmptyStructure
	}
	if k < 1 {
		return fmt.Errorf("occurrence %d: %w", k, ErrInvalidArgument)
	}

	seen := 0
	var prev *sNode[T]
	for n := l.head; n != nil; prev, n = n, n.next {
		if n.value != v {
			continue
		}
		seen++
		if seen == k {
			l.unlink(prev, n)
			return nil
		}
	}

	if seen == 0 {
		return fmt.Errorf("remove occurrence %d of %v: %w", k, v, ErrNotFound)
	}
	return fmt.Errorf("remove occurrence %d of %v: only %d found: %w", k, v, seen, ErrInvalidArgument)
}

// KthFromLast returns the value k positions before the tail; k = 0 is the last value.
func (l *LinkedList[T]) KthFromLast(k int) (T, error) {
	var zero T
	if l.size == 0 {
		return zero, ErrEmptyStructure
	}
	if k < 0 || k >= l.size {
		return zero, fmt.Errorf("position %d from last in list of %d: %w", k, l.size, ErrInvalidArgument)
	}

	lead := l.head
	for i := 0; i < k; i++ {
		lead = lead.next
	}
	trail := l.head
	for lead.next != nil {
		lead, trail = lead.next, trail.next
	}
	return trail.value, nil
}

// Deduplicate keeps only the first occurrence of every value.
func (l *LinkedList[T]) Deduplicate() error {
	return l.DeduplicateN(0)
}

// DeduplicateN keeps the first occurrence of every value plus at most n repeats of it.
func (l *LinkedList[T]) DeduplicateN(n int) error {
	if l.size == 0 {
		return ErrEmptyStructure
	}
	if n < 0 {
		return fmt.Errorf("allowed duplicates %d: %w", n, ErrInvalidArgument)
	}

	counts := make(map[T]int)
	var prev *sNode[T]
	for cur := l.head; cur != nil; {
		next := cur.next
		counts[cur.value]++
		if counts[cur.value] > n+1 {
			l.unlink(prev, cur)
		} else {
			prev = cur
		}
		cur = next
	}
	return nil
}

func (l *LinkedList[T]) Reverse() {
	var prev *sNode[T]
	l.tail = l.head
	for n := l.head; n != nil; {
		next := n.next
		n.next = prev
		prev, n = n, next
	}
	l.head = prev
}

func (l *LinkedList[T]) ReverseRecursive() {
	l.tail = l.head
	l.head = reverseFrom(l.head)
}

func reverseFrom[T comparable](n *sNode[T]) *sNode[T] {
	if n == nil || n.next == nil {
		return n
	}
	head := reverseFrom(n.next)
	n.next.next = n
	n.next = nil
	return head
}

// ReverseRange reverses the nodes between the 0-based positions from and to, both inclusive.
func (l *LinkedList[T]) ReverseRange(from, to int) error {
	if from < 0 || to >= l.size || from > to {
		return fmt.Errorf("range [%d, %d] in list of %d: %w", from, to, l.size, ErrInvalidArgument)
	}
	if from == to {
		return nil
	}

	var before *sNode[T]
	first := l.head
	for i := 0; i < from; i++ {
		before, first = first, first.next
	}

	var prev *sNode[T]
	cur := first
	for i, n := 0, to-from+1; i < n; i++ {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}

	first.next = cur
	if before == nil {
		l.head = prev
	} else {
		before.next = prev
	}
	if cur == nil {
		l.tail = first
	}
	return nil
}

func (l *LinkedList[T]) Push(v T) error {
	return l.AddFirst(v)
}

func (l *LinkedList[T]) Pop() (T, error) {
	return l.RemoveFirst()
}

func (l *LinkedList[T]) Size() int {
	return l.size
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *LinkedList[T]) Empty() bool {
	return l.IsEmpty()
}

func (l *LinkedList[T]) Clear() {
	l.head, l.tail = nil, nil
	l.size = 0
}

func (l *LinkedList[T]) Values() []interface{} {
	values := make([]interface{}, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

func (l *LinkedList[T]) String() string {
	s := new(strings.Builder)
	s.WriteString("LinkedList [")
	for n := l.head; n != nil; n = n.next {
		s.WriteString(utils.ToString(n.value))
		if n.next != nil {
			s.WriteString(" -> ")
		}
	}
	s.WriteString("]")
	return s.String()
}
