// Package ui is the windowed front end. It owns no game rules: clicks
// are forwarded to the engine and the whole board is redrawn from the
// engine's accessors every frame.
package ui

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"

	"github.com/vzhuk/gomines/game"
)

// Log is the package logger, configured by the command layer.
var Log = logrus.StandardLogger()

const (
	cellWidth      = 32
	headerHeight   = 50
	minWindowWidth = 260
)

// Config describes the game the window should run.
type Config struct {
	Rows, Cols, Mines int

	// Seed for mine placement; 0 draws from entropy.
	Seed uint64

	// Snapshot, when set, replaces the random board with a fixed
	// layout. Rows, Cols, Mines and Seed are ignored.
	Snapshot *game.BoardSnapshot
}

func NewConfig() Config {
	return Config{
		Rows:  game.DefaultRows,
		Cols:  game.DefaultCols,
		Mines: game.DefaultMines,
	}
}

func (config Config) newGame() (*game.Game, error) {
	if config.Snapshot != nil {
		return config.Snapshot.Game()
	}
	if config.Seed != 0 {
		rng := rand.New(rand.NewPCG(config.Seed, 0))
		return game.NewWithRand(config.Rows, config.Cols, config.Mines, rng), nil
	}
	return game.New(config.Rows, config.Cols, config.Mines), nil
}

// Run opens the window and drives the event loop until it is closed.
// It must run on the main thread, so callers wrap it in pixelgl.Run.
func Run(config Config) {
	g, err := config.newGame()
	if err != nil {
		Log.Fatal(err)
	}

	view := newBoardView(g)

	cfg := pixelgl.WindowConfig{
		Title: "gomines",
		Bounds: pixel.R(
			0, 0,
			math.Max(float64(g.Cols()*cellWidth), minWindowWidth),
			float64(g.Rows()*cellWidth+headerHeight),
		),
		VSync: true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		Log.Fatal(err)
	}

	Log.WithFields(logrus.Fields{
		"rows":  g.Rows(),
		"cols":  g.Cols(),
		"mines": g.NumMines(),
	}).Info("new game")

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	for !win.Closed() {
		win.Clear(colornames.Gainsboro)

		view.handleInput(win)
		view.draw(win)

		win.Update()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}
	}
}

func (view *boardView) handleInput(win *pixelgl.Window) {
	if win.JustPressed(pixelgl.KeyR) || win.JustPressed(pixelgl.KeyEnter) {
		view.resetGame()
		return
	}

	leftClick := win.JustPressed(pixelgl.MouseButtonLeft)
	rightClick := win.JustPressed(pixelgl.MouseButtonRight)
	if !leftClick && !rightClick {
		return
	}
	pos := win.MousePosition()

	if leftClick && view.resetButtonRect().Contains(pos) {
		view.resetGame()
		return
	}

	// Out-of-board positions map to out-of-bounds coordinates, which
	// the engine ignores.
	r, c := view.screenToCell(pos)

	if leftClick && view.game.RevealCell(r, c) {
		switch view.game.Status() {
		case game.Lost:
			view.game.RevealAllMines()
			Log.WithFields(logrus.Fields{"r": r, "c": c}).Info("stepped on a mine")
		case game.Won:
			Log.Info("board cleared")
		}
	}
	if rightClick {
		view.game.ToggleFlag(r, c)
	}
}

func (view *boardView) resetGame() {
	view.game.Reset()
	Log.Info("new game")
}
