package commands_test

import (
	"testing"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelStaleDraftsCommand(t *testing.T) {
	cmd, err := commands.NewCancelStaleDraftsCommand(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cmd.OlderThan())

	_, err = commands.NewCancelStaleDraftsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero commands.CancelStaleDraftsCommand
	assert.Equal(t, commands.ErrCancelStaleDraftsCommandIsNotConstructed, zero.Validate())
}
