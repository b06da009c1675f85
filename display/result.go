// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package display

import "io"

// Result holds either a success value or a failure value, never both.
type Result[O, E any] struct {
	value  O
	err    E
	failed bool
}

// Ok returns a successful Result holding v.
func Ok[O, E any](v O) Result[O, E] {
	return Result[O, E]{value: v}
}

// Err returns a failed Result holding e.
func Err[O, E any](e E) Result[O, E] {
	return Result[O, E]{err: e, failed: true}
}

// IsOk reports whether r holds a success value.
func (r Result[O, E]) IsOk() bool {
	return !r.failed
}

// Success returns the success value and true, or the zero value and false.
func (r Result[O, E]) Success() (O, bool) {
	return r.value, !r.failed
}

// Failure returns the failure value and true, or the zero value and false.
func (r Result[O, E]) Failure() (E, bool) {
	return r.err, r.failed
}

// Default markers written before a Result's value.
const (
	DefaultOkPrefix  = "✅ "
	DefaultErrPrefix = "❌ "
)

// ResultFormat renders the prefix of whichever variant r holds, followed by
// the held value rendered with the matching descriptor.
type ResultFormat[O, E any, OF Element[O, OF], EF Element[E, EF]] struct {
	OkPrefix  string
	Ok        OF
	ErrPrefix string
	Err       EF
}

// Render implements Format.
func (f ResultFormat[O, E, OF, EF]) Render(w io.Writer, r Result[O, E]) error {
	if e, failed := r.Failure(); failed {
		if err := writeString(w, f.ErrPrefix); err != nil {
			return err
		}
		return f.Err.Render(w, e)
	}
	if err := writeString(w, f.OkPrefix); err != nil {
		return err
	}
	return f.Ok.Render(w, r.value)
}

// Colored implements Preset.
func (ResultFormat[O, E, OF, EF]) Colored(indent uint16) ResultFormat[O, E, OF, EF] {
	return ResultFormat[O, E, OF, EF]{
		OkPrefix:  DefaultOkPrefix,
		Ok:        Colored[OF](indent),
		ErrPrefix: DefaultErrPrefix,
		Err:       Colored[EF](indent),
	}
}

// Monochrome implements Preset.
func (ResultFormat[O, E, OF, EF]) Monochrome(indent uint16) ResultFormat[O, E, OF, EF] {
	return ResultFormat[O, E, OF, EF]{
		OkPrefix:  DefaultOkPrefix,
		Ok:        Monochrome[OF](indent),
		ErrPrefix: DefaultErrPrefix,
		Err:       Monochrome[EF](indent),
	}
}
