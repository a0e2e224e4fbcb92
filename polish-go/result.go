package polish_go

import "errors"

// Result holds either a value or a non-empty list of errors, never both.
type Result[T any] struct {
	value_  T
	errors_ []error
}

func Success[T any](value T) Result[T] {
	return Result[T]{value_: value}
}

// / Failure needs at least one error; a nil list is turned into a generic
// / failure so the result can never read as success.
func Failure[T any](errs ...error) Result[T] {
	ret := Result[T]{}
	for _, err := range errs {
		if err != nil {
			ret.errors_ = append(ret.errors_, err)
		}
	}
	if len(ret.errors_) == 0 {
		ret.errors_ = []error{errors.New("unknown failure")}
	}
	return ret
}

func (this Result[T]) IsSuccess() bool { return len(this.errors_) == 0 }

func (this Result[T]) Value() T { return this.value_ }

func (this Result[T]) Errors() []error { return this.errors_ }

func (this Result[T]) Messages() []string {
	ret := make([]string, 0, len(this.errors_))
	for _, err := range this.errors_ {
		ret = append(ret, err.Error())
	}
	return ret
}

// / Err joins all errors, or returns nil on success.
func (this Result[T]) Err() error {
	if this.IsSuccess() {
		return nil
	}
	return errors.Join(this.errors_...)
}
