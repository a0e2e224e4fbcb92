package polish_go

import (
	"errors"
	"fmt"
	"strings"

	"github.com/edwingeng/deque"
)

var ErrEmptyStack = errors.New("stack is empty")

// / Stack is a last-in-first-out container. The top of the stack lives at the
// / front of the underlying deque, so walking the deque from index 0 visits
// / the elements top-to-bottom.
type Stack[T any] struct {
	items_ deque.Deque
}

func NewStack[T any]() *Stack[T] {
	ret := Stack[T]{}
	ret.items_ = deque.NewDeque()
	return &ret
}

func (this *Stack[T]) Push(elem T) {
	this.items_.PushFront(elem)
}

func (this *Stack[T]) Empty() bool {
	return this.items_.Empty()
}

func (this *Stack[T]) Len() int {
	return this.items_.Len()
}

// / Top returns the most recently pushed element without removing it.
func (this *Stack[T]) Top() (T, error) {
	if this.items_.Empty() {
		var zero T
		return zero, ErrEmptyStack
	}
	return this.items_.Front().(T), nil
}

func (this *Stack[T]) Pop() (T, error) {
	if this.items_.Empty() {
		var zero T
		return zero, ErrEmptyStack
	}
	return this.items_.PopFront().(T), nil
}

// / Items returns a copy of the elements, top first.
func (this *Stack[T]) Items() []T {
	ret := make([]T, 0, this.items_.Len())
	for i := 0; i < this.items_.Len(); i++ {
		ret = append(ret, this.items_.Peek(i).(T))
	}
	return ret
}

// / String renders the elements top-to-bottom separated by single spaces.
func (this *Stack[T]) String() string {
	var sb strings.Builder
	for i, item := range this.Items() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, item)
	}
	return sb.String()
}
