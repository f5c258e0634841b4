package commands_test

import (
	"testing"

	"comandas/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdmitPendingOrdersCommand(t *testing.T) {
	cmd := commands.NewAdmitPendingOrdersCommand()
	require.NoError(t, cmd.Validate())
}

func TestAdmitPendingOrdersCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.AdmitPendingOrdersCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAdmitPendingOrdersCommandIsNotConstructed)
}

func TestNewRecomputeOccupancyCommand(t *testing.T) {
	cmd := commands.NewRecomputeOccupancyCommand()
	require.NoError(t, cmd.Validate())
}

func TestRecomputeOccupancyCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.RecomputeOccupancyCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRecomputeOccupancyCommandIsNotConstructed)
}
