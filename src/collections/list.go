package collections

import (
	"fmt"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*MiddleList[int])(nil)

// MiddleList is a doubly linked list that keeps track of its middle node in O(1) and works either
// as a stack or as a queue, depending on the mode it was created with. Both modes insert at the
// front; a stack pops from the front and a queue dequeues from the back.
//
// A MiddleList must be created with New or NewWithMode and is not safe for concurrent use.
type MiddleList[T any] struct {
	middleList[T]
	mode Mode
}

func New[T any](mode string) (*MiddleList[T], error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	return NewWithMode[T](m)
}

func NewWithMode[T any](m Mode) (*MiddleList[T], error) {
	if !m.valid() {
		return nil, fmt.Errorf("unknown mode %v: %w", m, ErrInvalidConfiguration)
	}
	return &MiddleList[T]{mode: m}, nil
}

func (l *MiddleList[T]) Mode() Mode {
	return l.mode
}

func (l *MiddleList[T]) Push(v T) error {
	if l.mode != StackMode {
		return wrongMode(l.mode, "Enqueue")
	}
	return l.addFirst(v)
}

func (l *MiddleList[T]) Pop() (T, error) {
	if l.mode != StackMode {
		var zero T
		return zero, wrongMode(l.mode, "Dequeue")
	}
	return l.removeFirst()
}

func (l *MiddleList[T]) Enqueue(v T) error {
	if l.mode != QueueMode {
		return wrongMode(l.mode, "Push")
	}
	return l.addFirst(v)
}

func (l *MiddleList[T]) Dequeue() (T, error) {
	if l.mode != QueueMode {
		var zero T
		return zero, wrongMode(l.mode, "Pop")
	}
	return l.removeLast()
}

// AddFirst inserts v at the front regardless of mode.
func (l *MiddleList[T]) AddFirst(v T) error {
	return l.addFirst(v)
}

func (l *MiddleList[T]) String() string {
	return l.format(fmt.Sprintf("MiddleList[%v]", l.mode))
}
