package protocol_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyForking/halite3-bot-1/internal/adapters/protocol"
	"github.com/MyForking/halite3-bot-1/internal/domain/grid"
	"github.com/MyForking/halite3-bot-1/internal/domain/shared"
	"github.com/MyForking/halite3-bot-1/internal/domain/solver"
	"github.com/MyForking/halite3-bot-1/internal/domain/world"
)

func TestReadConstantsParsesAnnouncedValues(t *testing.T) {
	input := `{"MAX_TURNS":400,"EXTRACT_RATIO":4,"MOVE_COST_RATIO":10,"DROPOFF_COST":4000,"SHIP_COST":1000,"MAX_ENERGY":1000,"INSPIRATION_RADIUS":4,"INSPIRATION_SHIP_COUNT":2,"INSPIRED_BONUS_MULTIPLIER":3}` + "\n"
	r := protocol.NewReader(strings.NewReader(input))

	constants, err := r.ReadConstants()

	require.NoError(t, err)
	assert.Equal(t, 400, constants.MaxTurns)
	assert.Equal(t, 4, constants.ExtractRatio)
	assert.Equal(t, 1000, constants.MaxHalite)
}

func TestReadConstantsRejectsMalformedJSON(t *testing.T) {
	r := protocol.NewReader(strings.NewReader("not json\n"))

	_, err := r.ReadConstants()

	require.Error(t, err)
	var malformed *shared.MalformedInputError
	assert.ErrorAs(t, err, &malformed)
}

func TestReadInitParsesHeadersAndHaliteGrid(t *testing.T) {
	input := "{}\n" + "2 0\n" + "0 0 0\n" + "1 3 3\n" + "4 4\n" + strings.Repeat("0 ", 16) + "\n"
	r := protocol.NewReader(strings.NewReader(input))
	_, err := r.ReadConstants()
	require.NoError(t, err)

	w, err := r.ReadInit()

	require.NoError(t, err)
	assert.Equal(t, 0, w.Me)
	require.Len(t, w.Players, 2)
	assert.Equal(t, grid.Position{X: 0, Y: 0}, w.Players[0].ShipyardPos)
	assert.Equal(t, grid.Position{X: 3, Y: 3}, w.Players[1].ShipyardPos)
	assert.Equal(t, 4, w.Map.Size.Width)
	assert.Equal(t, 4, w.Map.Size.Height)
	assert.True(t, w.Map.IsOwnedStructure(grid.Position{X: 3, Y: 3}, 1))
}

func TestReadTurnParsesShipsDropoffsAndCellUpdates(t *testing.T) {
	initInput := "{}\n" + "1 0\n" + "0 0 0\n" + "4 4\n" + strings.Repeat("0 ", 16) + "\n"
	turnInput := "1\n" + "0 1 0 300\n" + "5 2 2 0\n" + "1\n" + "1 1 777\n"

	r := protocol.NewReader(strings.NewReader(initInput + turnInput))
	_, err := r.ReadConstants()
	require.NoError(t, err)
	w, err := r.ReadInit()
	require.NoError(t, err)
	w.Constants = world.Constants{MaxHalite: 1000}

	err = r.ReadTurn(w)

	require.NoError(t, err)
	assert.Equal(t, 1, w.Turn)
	assert.Equal(t, 300, w.Players[0].Halite)
	require.Contains(t, w.Ships, world.ShipID(5))
	assert.Equal(t, grid.Position{X: 2, Y: 2}, w.Ships[5].Position())
	assert.Equal(t, 777, w.Map.Halite(grid.Position{X: 1, Y: 1}))
}

func TestReadTurnSurfacesEOFOnCleanStreamEnd(t *testing.T) {
	initInput := "{}\n" + "1 0\n" + "0 0 0\n" + "2 2\n" + "0 0 0 0\n"
	r := protocol.NewReader(strings.NewReader(initInput))
	_, err := r.ReadConstants()
	require.NoError(t, err)
	w, err := r.ReadInit()
	require.NoError(t, err)

	err = r.ReadTurn(w)

	assert.ErrorIs(t, err, io.EOF)
}

func TestReadTurnRejectsUnknownPlayerID(t *testing.T) {
	initInput := "{}\n" + "1 0\n" + "0 0 0\n" + "2 2\n" + "0 0 0 0\n"
	r := protocol.NewReader(strings.NewReader(initInput + "1\n" + "9 0 0 0\n" + "0\n"))
	_, err := r.ReadConstants()
	require.NoError(t, err)
	w, err := r.ReadInit()
	require.NoError(t, err)

	err = r.ReadTurn(w)

	require.Error(t, err)
	var malformed *shared.MalformedInputError
	assert.ErrorAs(t, err, &malformed)
}

func TestWriteCommandsFormatsMoveSpawnAndConvert(t *testing.T) {
	var buf bytes.Buffer
	w := protocol.NewWriter(&buf)

	err := w.WriteCommands([]solver.Command{
		{Kind: solver.CommandMove, ShipID: 1, Direction: grid.North},
		{Kind: solver.CommandSpawn},
		{Kind: solver.CommandConvert, ShipID: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, "m 1 n g c 2\n", buf.String())
}

func TestWriteReadyFlushesNameLine(t *testing.T) {
	var buf bytes.Buffer
	w := protocol.NewWriter(&buf)

	err := w.WriteReady("halite3-bot-1")

	require.NoError(t, err)
	assert.Equal(t, "halite3-bot-1\n", buf.String())
}
