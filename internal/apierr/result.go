package apierr

import (
	"encoding/json"
	"errors"
)

// Result is either a success payload or a structured error, never both.
// The zero value is a failure so that an unset Result cannot read as ok.
type Result[T any] struct {
	ok   bool
	data T
	err  *Error
}

// Ok wraps a success payload
func Ok[T any](data T) Result[T] {
	return Result[T]{ok: true, data: data}
}

// Fail wraps an error. A nil error still yields a failure.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = New(CodeUnknown, WithMessage("failure without error"))
	}
	return Result[T]{err: err}
}

// OK reports which variant the result holds
func (r Result[T]) OK() bool {
	return r.ok
}

// Value returns the payload and true on success
func (r Result[T]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.data, true
}

// Err returns the error on failure and nil on success
func (r Result[T]) Err() *Error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return New(CodeUnknown, WithMessage("failure without error"))
	}
	return r.err
}

// Match calls exactly one of the two handlers
func (r Result[T]) Match(onOK func(T), onErr func(*Error)) {
	if r.ok {
		onOK(r.data)
		return
	}
	onErr(r.Err())
}

type resultJSON[T any] struct {
	OK    bool   `json:"ok"`
	Data  *T     `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.ok {
		data := r.data
		return json.Marshal(resultJSON[T]{OK: true, Data: &data})
	}
	return json.Marshal(resultJSON[T]{OK: false, Error: r.Err()})
}

func (r *Result[T]) UnmarshalJSON(b []byte) error {
	var raw resultJSON[T]
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch {
	case raw.OK && raw.Data != nil && raw.Error == nil:
		*r = Ok(*raw.Data)
	case !raw.OK && raw.Error != nil && raw.Data == nil:
		*r = Fail[T](raw.Error)
	default:
		return errors.New("apierr: result must hold exactly one of data or error")
	}
	return nil
}
