// Package collections provides linked list containers: a stack-or-queue list that tracks its
// middle element in constant time, typed Stack and Queue views over the same structure, and a
// plain singly linked list.
package collections

import "github.com/emirpasic/gods/containers"

var (
	_ Deque[int]           = (*Stack[int])(nil)
	_ Deque[int]           = (*Queue[int])(nil)
	_ containers.Container = (*Stack[int])(nil)
	_ containers.Container = (*Queue[int])(nil)
)

type Deque[T any] interface {
	Push(v T) error
	Pop() (T, error)
	Size() int
}

// Stack is a LIFO view of the middle-tracking list. The zero value is an empty stack.
type Stack[T any] struct {
	middleList[T]
}

// Queue is a FIFO view of the middle-tracking list: values enter at the front and leave from
// the back. The zero value is an empty queue.
type Queue[T any] struct {
	middleList[T]
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Push(v T) error {
	return s.addFirst(v)
}

func (s *Stack[T]) Pop() (T, error) {
	return s.removeFirst()
}

func (s *Stack[T]) Peek() (T, error) {
	return s.Front()
}

func (s *Stack[T]) String() string {
	return s.format("Stack")
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Push(v T) error {
	return q.addFirst(v)
}

func (q *Queue[T]) Pop() (T, error) {
	return q.removeLast()
}

// Peek returns the value the next Pop would remove.
func (q *Queue[T]) Peek() (T, error) {
	return q.Back()
}

func (q *Queue[T]) String() string {
	return q.format("Queue")
}
