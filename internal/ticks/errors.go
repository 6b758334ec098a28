package ticks

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMultiples is returned when an explicit multiples table is empty or holds
	// a value that is not a positive finite number.
	ErrEmptyMultiples = errors.New("ticks: empty or invalid multiples")

	// ErrInvalidUnitTable is returned when a caller-supplied unit table is not ordered
	// by ascending duration or does not end with Year.
	ErrInvalidUnitTable = errors.New("ticks: invalid unit table")
)

// InvalidRangeError reports an axis range that cannot hold ticks.
type InvalidRangeError struct {
	Min float64
	Max float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("ticks: invalid range [%v, %v]", e.Min, e.Max)
}

// InvalidIntervalError reports a non-positive or non-finite interval, magnitude or multitude.
type InvalidIntervalError struct {
	Name  string
	Value float64
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("ticks: invalid %s %v", e.Name, e.Value)
}
