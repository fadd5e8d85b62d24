package commands

import (
	"bytes"
	"testing"

	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Command{
		Place(7, structures.KindFurnace, core.Position{X: -3, Y: 12}, core.Bottom),
		Remove(8, core.Id{Index: 4, Gen: 2}),
		Rotate(9, core.Id{Index: 1}),
		SelectRecipe(10, core.Id{Index: 2}, 3),
		MoveItemCmd(11, core.Id{Index: 1}, core.Id{Index: 2}, core.ItemIronPlate, 5),
		AddWireCmd(12, core.Id{Index: 1}, core.Id{Index: 2}),
		RemoveWireCmd(13, core.Id{Index: 1}, core.Id{Index: 2}),
	}

	for _, want := range cases {
		var buf bytes.Buffer
		require.NoError(t, want.Encode(&buf))

		var got Command
		require.NoError(t, got.Decode(&buf))
		assert.Equal(t, want, got)
	}
}

func TestLogForTickFiltersByTick(t *testing.T) {
	log := &Log{}
	log.Commands = []Command{
		Rotate(1, core.Id{Index: 1}),
		Rotate(2, core.Id{Index: 2}),
		Rotate(2, core.Id{Index: 3}),
	}

	got := log.ForTick(2)
	require.Len(t, got, 2)
	assert.Equal(t, core.Id{Index: 2}, got[0].ID)
	assert.Equal(t, core.Id{Index: 3}, got[1].ID)
}
