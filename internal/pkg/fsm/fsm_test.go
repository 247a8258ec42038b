//go:build unit

package fsm_test

import (
	"testing"

	"preloved-market/internal/pkg/errs"
	"preloved-market/internal/pkg/fsm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type light string

const (
	red    light = "red"
	green  light = "green"
	yellow light = "yellow"
	off    light = "off"
)

func TestTable(t *testing.T) {
	table := fsm.New("light", map[light][]light{
		red:    {green},
		green:  {yellow},
		yellow: {red, off},
	})

	t.Run("listed transitions are allowed", func(t *testing.T) {
		assert.True(t, table.Allows(red, green))
		assert.True(t, table.Allows(yellow, off))
		require.NoError(t, table.Check(green, yellow))
	})

	t.Run("unlisted transitions are rejected with a detail", func(t *testing.T) {
		err := table.Check(red, yellow)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, []string{"light: red -> yellow"}, errs.Details(err))
	})

	t.Run("self loops are not implied", func(t *testing.T) {
		assert.False(t, table.Allows(red, red))
	})

	t.Run("states without outgoing edges are terminal", func(t *testing.T) {
		assert.True(t, table.IsTerminal(off))
		assert.False(t, table.IsTerminal(yellow))
	})
}
