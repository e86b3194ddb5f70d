package depscan

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func ExampleError() {
	fmt.Println(&Error{
		Inner:   nil,
		Kind:    ErrFatal,
		Message: "test",
		Op:      "ExampleError",
	})

	fmt.Println(&Error{
		Inner:   sql.ErrNoRows,
		Kind:    ErrIntegrity,
		Message: "cache record missing",
		Op:      "Lookup",
	})
	err := &Error{
		Inner: &Error{
			Inner:   sql.ErrNoRows,
			Kind:    ErrIntegrity,
			Message: "cache record missing",
			Op:      "Lookup",
		},
		Kind: ErrFeedUnavailable,
	}
	fmt.Println(err)
	fmt.Println(fmt.Errorf("vulnfeed: oops: %w", &Error{
		Inner:   sql.ErrNoRows,
		Kind:    ErrIntegrity,
		Message: "cache record missing",
		Op:      "Lookup",
	}))

	// Output:
	// ExampleError [fatal]: test
	// Lookup [integrity]: cache record missing: sql: no rows in result set
	// Lookup [integrity]: cache record missing: sql: no rows in result set
	// vulnfeed: oops: Lookup [integrity]: cache record missing: sql: no rows in result set
}

type kindTestcase struct {
	Err  error
	Kind ErrorKind
	Want bool
}

func (tc kindTestcase) Run(t *testing.T) {
	t.Log(tc.Err)
	if got := errors.Is(tc.Err, tc.Kind); got != tc.Want {
		t.Errorf("%v: got: %v, want: %v", tc.Kind, got, tc.Want)
	}
}

func TestErrorIs(t *testing.T) {
	tt := []kindTestcase{
		// 0: matches its own kind
		{
			Err:  &Error{Inner: errors.New("bad flag"), Kind: ErrValidation},
			Kind: ErrValidation,
			Want: true,
		},
		// 1: does not match an unrelated kind
		{
			Err:  &Error{Inner: errors.New("bad flag"), Kind: ErrValidation},
			Kind: ErrFatal,
			Want: false,
		},
		// 2: wrapped error matches through Unwrap
		{
			Err: fmt.Errorf("wrapping: %w", &Error{
				Inner: errors.New("timeout"),
				Kind:  ErrFeedUnavailable,
			}),
			Kind: ErrFeedUnavailable,
			Want: true,
		},
	}

	for i, tc := range tt {
		t.Run(strconv.Itoa(i), tc.Run)
	}
}
