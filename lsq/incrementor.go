// SPDX-License-Identifier: MIT

package lsq

// Incrementor is a mutable counter with a hard budget.  Once the count
// would exceed the maximum, Increment returns the configured overflow
// sentinel on that call and every later one.
//
// Not safe for concurrent use.
type Incrementor struct {
	count    int
	max      int
	overflow error
}

// NewIncrementor returns a counter that allows max increments and then
// fails with overflow (typically ErrTooManyEvaluations or
// ErrTooManyIterations).  Panics if max is negative or overflow is nil.
func NewIncrementor(max int, overflow error) *Incrementor {
	if max < 0 {
		panic("lsq: negative incrementor budget")
	}
	if overflow == nil {
		panic("lsq: nil incrementor overflow sentinel")
	}
	return &Incrementor{max: max, overflow: overflow}
}

// Increment advances the counter by one.  The increment is recorded even
// when the budget is exceeded, so Count reports attempted work.
func (i *Incrementor) Increment() error {
	i.count++
	if i.count > i.max {
		return i.overflow
	}
	return nil
}

// Count returns the number of increments recorded so far.
func (i *Incrementor) Count() int { return i.count }

// Max returns the budget.
func (i *Incrementor) Max() int { return i.max }

// Reset rewinds the counter to zero, keeping the budget.
func (i *Incrementor) Reset() { i.count = 0 }
