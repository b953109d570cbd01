package ui

import (
	"testing"

	"github.com/faiface/pixel"
	"github.com/stretchr/testify/assert"

	"github.com/vzhuk/gomines/game"
)

func TestScreenToCell(t *testing.T) {
	view := newBoardView(game.New(10, 10, 15))

	tests := []struct {
		name string
		pos  pixel.Vec
		r, c int
	}{
		{"bottom left corner", pixel.V(1, 1), 9, 0},
		{"top left cell", pixel.V(1, 319), 0, 0},
		{"mid board", pixel.V(160, 160), 4, 5},
		{"header is out of bounds", pixel.V(1, 330), -1, 0},
		{"left of the board", pixel.V(-3, 1), 9, -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, c := view.screenToCell(test.pos)
			assert.Equal(t, test.r, r)
			assert.Equal(t, test.c, c)
		})
	}
}

func TestCellRectInvertsRows(t *testing.T) {
	view := newBoardView(game.New(10, 10, 15))

	assert.Equal(t, pixel.R(0, 288, 32, 320), view.cellRect(0, 0), "row 0 sits at the top")
	assert.Equal(t, pixel.R(288, 0, 320, 32), view.cellRect(9, 9))
}

func TestNarrowBoardsGetMinimumWindowWidth(t *testing.T) {
	view := newBoardView(game.New(5, 5, 4))
	assert.Equal(t, float64(minWindowWidth), view.windowWidth())

	wide := newBoardView(game.New(5, 20, 4))
	assert.Equal(t, float64(20*cellWidth), wide.windowWidth())
}

func TestStatusFace(t *testing.T) {
	assert.Equal(t, ":)", statusFace(game.Playing))
	assert.Equal(t, "B)", statusFace(game.Won))
	assert.Equal(t, "X(", statusFace(game.Lost))
}
