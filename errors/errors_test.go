package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		Kind  *Error
		Err   error
		Match bool
	}{
		"instance of the same root": {
			Kind:  ErrNotFound,
			Err:   ErrNotFound,
			Match: true,
		},
		"wrapped instance": {
			Kind:  ErrNotFound,
			Err:   Wrap(ErrNotFound, "payout"),
			Match: true,
		},
		"double wrapped instance": {
			Kind:  ErrNotFound,
			Err:   Wrap(Wrap(ErrNotFound, "payout"), "handler"),
			Match: true,
		},
		"different root": {
			Kind:  ErrNotFound,
			Err:   ErrDuplicate,
			Match: false,
		},
		"wrapped different root": {
			Kind:  ErrNotFound,
			Err:   Wrap(ErrDuplicate, "committee member"),
			Match: false,
		},
		"stdlib error": {
			Kind:  ErrNotFound,
			Err:   fmt.Errorf("not found"),
			Match: false,
		},
		"nil does not match a root": {
			Kind:  ErrNotFound,
			Err:   nil,
			Match: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.Match, tc.Kind.Is(tc.Err))
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "whatever"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrappedCode(t *testing.T) {
	cases := map[string]struct {
		Err      error
		WantCode uint32
	}{
		"root":           {Err: ErrUnauthorized, WantCode: 2},
		"wrapped":        {Err: Wrap(ErrUnauthorized, "admin only"), WantCode: 2},
		"double wrapped": {Err: Wrap(Wrap(ErrState, "a"), "b"), WantCode: 10},
		"stdlib wrapped": {Err: Wrap(fmt.Errorf("io failure"), "load"), WantCode: 1},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			c, ok := tc.Err.(interface{ Code() uint32 })
			if !ok {
				t.Fatalf("error %T does not provide a code", tc.Err)
			}
			assert.Equal(t, tc.WantCode, c.Code())
		})
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(2, "conflicting with unauthorized")
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("blown fuse")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %+v", err)
	}
}

func TestWrapKeepsStackTrace(t *testing.T) {
	err := Wrap(ErrEmpty, "first")
	if stackTrace(err) == nil {
		t.Fatal("first wrap must attach a stack trace")
	}
	// A second wrap must not overwrite the original trace.
	again := Wrap(err, "second")
	assert.Equal(t, fmt.Sprintf("%v", stackTrace(err)), fmt.Sprintf("%v", stackTrace(again)))
}
