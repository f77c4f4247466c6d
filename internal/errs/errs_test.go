package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghsnake/routesolver/internal/errs"
)

func TestWrapAndIs(t *testing.T) {
	testCases := []struct {
		Description string
		Kind        errs.Kind
		CheckKind   errs.Kind
		WantMatch   bool
	}{
		{"bounds matches bounds", errs.KindBounds, errs.KindBounds, true},
		{"unreachable does not match no_return", errs.KindUnreachable, errs.KindNoReturn, false},
		{"cancelled matches cancelled", errs.KindCancelled, errs.KindCancelled, true},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			cause := errors.New("boom")
			wrapped := errs.Wrap("search.AStar", tc.Kind, cause, map[string]any{"x": 1})
			assert.ErrorIs(t, wrapped, cause)
			assert.Equal(t, tc.WantMatch, errs.Is(wrapped, tc.CheckKind))
		})
	}
}

func TestNewHasNoCause(t *testing.T) {
	e := errs.New("grid.At", errs.KindBounds, nil)
	assert.Nil(t, e.Unwrap())
	assert.Contains(t, e.Error(), "bounds")
}
