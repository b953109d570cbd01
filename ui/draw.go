package ui

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vzhuk/gomines/game"
)

// digitColors is the classic palette for adjacency numbers, indexed by
// the number itself.
var digitColors = [9]color.RGBA{
	colornames.Black, // unused, blanks draw no digit
	colornames.Blue,
	colornames.Green,
	colornames.Red,
	colornames.Darkblue,
	colornames.Brown,
	colornames.Cyan,
	colornames.Black,
	colornames.Gray,
}

// boardView draws one Game into a window and translates screen
// positions back to board coordinates. Everything is redrawn from the
// engine's accessors each frame; the view keeps no cell state of its
// own.
type boardView struct {
	game *game.Game

	imd *imdraw.IMDraw

	// boardText collects cell digits and the reset face, drawn once
	// per frame at scale 2 around the origin. The others are drawn
	// with their own matrices.
	boardText  *text.Text
	headerText *text.Text
	statusText *text.Text
	hoverText  *text.Text
}

func newBoardView(g *game.Game) *boardView {
	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	return &boardView{
		game:       g,
		imd:        imdraw.New(nil),
		boardText:  text.New(pixel.ZV, atlas),
		headerText: text.New(pixel.ZV, atlas),
		statusText: text.New(pixel.ZV, atlas),
		hoverText:  text.New(pixel.ZV, atlas),
	}
}

func (view *boardView) windowWidth() float64 {
	return math.Max(float64(view.game.Cols()*cellWidth), minWindowWidth)
}

func (view *boardView) boardHeight() float64 {
	return float64(view.game.Rows() * cellWidth)
}

// cellRect is the screen rectangle of the cell at (r, c). Row 0 sits
// at the top of the board, just under the header.
func (view *boardView) cellRect(r, c int) pixel.Rect {
	top := float64((view.game.Rows() - r) * cellWidth)
	left := float64(c * cellWidth)
	return pixel.R(left, top-cellWidth, left+cellWidth, top)
}

func (view *boardView) screenToCell(pos pixel.Vec) (r, c int) {
	c = int(math.Floor(pos.X / cellWidth))
	r = view.game.Rows() - 1 - int(math.Floor(pos.Y/cellWidth))
	return r, c
}

func (view *boardView) resetButtonRect() pixel.Rect {
	cx := view.windowWidth() / 2
	bottom := view.boardHeight() + (headerHeight-36)/2
	return pixel.R(cx-18, bottom, cx+18, bottom+36)
}

func (view *boardView) draw(win *pixelgl.Window) {
	view.imd.Clear()
	view.boardText.Clear()

	view.drawBoard()
	view.drawResetButton()

	view.imd.Draw(win)
	view.boardText.Draw(win, pixel.IM.Scaled(pixel.ZV, 2))

	view.drawCounter(win)
	view.drawStatus(win)
	view.drawHover(win)
}

func (view *boardView) drawBoard() {
	imd := view.imd
	board := view.game.Board()

	// Backdrop shows through the 1px gaps between cells as grid lines.
	imd.Color = colornames.Darkgray
	imd.Push(pixel.ZV, pixel.V(float64(board.Cols()*cellWidth), view.boardHeight()))
	imd.Rectangle(0) // 0 = filled

	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			cell := board.CellAt(r, c)
			rect := view.cellRect(r, c)
			inner := pixel.R(rect.Min.X+1, rect.Min.Y+1, rect.Max.X-1, rect.Max.Y-1)
			center := rect.Center()

			switch {
			case cell.IsRevealed() && cell.IsMine():
				imd.Color = colornames.Red
				imd.Push(inner.Min, inner.Max)
				imd.Rectangle(0)
				view.drawMine(center)

			case cell.IsRevealed():
				imd.Color = colornames.Lightgray
				imd.Push(inner.Min, inner.Max)
				imd.Rectangle(0)
				if n := cell.AdjacentMines(); n > 0 {
					view.writeGlyph(strconv.Itoa(n), digitColors[n], center)
				}

			default:
				imd.Color = colornames.Silver
				imd.Push(inner.Min, inner.Max)
				imd.Rectangle(0)
				view.bevel(inner)
				if cell.IsFlagged() {
					view.drawFlag(center)
				}
			}
		}
	}
}

// bevel gives a rect the raised-button look: light along the top and
// left edges, dark along the bottom and right.
func (view *boardView) bevel(rect pixel.Rect) {
	imd := view.imd

	imd.Color = colornames.White
	imd.Push(pixel.V(rect.Min.X, rect.Max.Y), rect.Max)
	imd.Line(2)
	imd.Push(rect.Min, pixel.V(rect.Min.X, rect.Max.Y))
	imd.Line(2)

	imd.Color = colornames.Gray
	imd.Push(rect.Min, pixel.V(rect.Max.X, rect.Min.Y))
	imd.Line(2)
	imd.Push(pixel.V(rect.Max.X, rect.Min.Y), rect.Max)
	imd.Line(2)
}

func (view *boardView) drawFlag(center pixel.Vec) {
	imd := view.imd

	imd.Color = colornames.Black
	imd.Push(center.Add(pixel.V(3, -9)), center.Add(pixel.V(3, 9)))
	imd.Line(2)

	imd.Color = colornames.Red
	imd.Push(
		center.Add(pixel.V(3, 9)),
		center.Add(pixel.V(3, 1)),
		center.Add(pixel.V(-7, 5)),
	)
	imd.Polygon(0)
}

func (view *boardView) drawMine(center pixel.Vec) {
	imd := view.imd

	imd.Color = colornames.Black
	imd.Push(center)
	imd.Circle(9, 0)
	imd.Push(center.Add(pixel.V(-13, 0)), center.Add(pixel.V(13, 0)))
	imd.Line(2)
	imd.Push(center.Add(pixel.V(0, -13)), center.Add(pixel.V(0, 13)))
	imd.Line(2)
}

func (view *boardView) drawResetButton() {
	rect := view.resetButtonRect()

	view.imd.Color = colornames.Silver
	view.imd.Push(rect.Min, rect.Max)
	view.imd.Rectangle(0)
	view.bevel(rect)

	view.writeGlyph(statusFace(view.game.Status()), colornames.Black, rect.Center())
}

func statusFace(status game.Status) string {
	switch status {
	case game.Won:
		return "B)"
	case game.Lost:
		return "X("
	default:
		return ":)"
	}
}

func (view *boardView) drawCounter(win *pixelgl.Window) {
	view.headerText.Clear()
	view.headerText.Color = colornames.Black
	fmt.Fprintf(view.headerText, "%03d", view.game.MinesRemaining())
	view.headerText.Draw(win, pixel.IM.Scaled(pixel.ZV, 2).Moved(pixel.V(16, view.boardHeight()+18)))
}

func (view *boardView) drawStatus(win *pixelgl.Window) {
	var (
		label string
		clr   color.RGBA
	)
	switch view.game.Status() {
	case game.Won:
		label, clr = "WIN!", colornames.Green
	case game.Lost:
		label, clr = "LOSE :(", colornames.Red
	default:
		return
	}

	view.statusText.Clear()
	view.statusText.Color = clr
	view.statusText.WriteString(label)

	x := view.windowWidth() - 16 - 2*view.statusText.BoundsOf(label).W()
	view.statusText.Draw(win, pixel.IM.Scaled(pixel.ZV, 2).Moved(pixel.V(x, view.boardHeight()+18)))
}

func (view *boardView) drawHover(win *pixelgl.Window) {
	if view.game.IsOver() || !win.MouseInsideWindow() {
		return
	}
	r, c := view.screenToCell(win.MousePosition())
	if view.game.Board().CellAt(r, c) == nil {
		return
	}

	label := fmt.Sprintf("(%d, %d)", r, c)
	view.hoverText.Clear()
	view.hoverText.Color = colornames.Darkcyan
	view.hoverText.WriteString(label)

	x := view.windowWidth() - 8 - view.hoverText.BoundsOf(label).W()
	view.hoverText.Draw(win, pixel.IM.Moved(pixel.V(x, view.boardHeight()+22)))
}

// writeGlyph appends s to the board text so its box lands centered on
// the given screen point. Dot coordinates are halved because the board
// text is drawn at scale 2 around the origin; Face7x13 digits stand
// 9px above the baseline.
func (view *boardView) writeGlyph(s string, clr color.RGBA, center pixel.Vec) {
	bounds := view.boardText.BoundsOf(s)
	view.boardText.Color = clr
	view.boardText.Dot = pixel.V(center.X/2-bounds.W()/2, center.Y/2-4.5)
	view.boardText.WriteString(s)
}
