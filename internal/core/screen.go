package core

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrSurfaceUnavailable is returned by frame-buffer reads and writes when the
// surface cannot be accessed (detached, zero-sized, or the region lies
// outside it). Effects that get it skip themselves for the current frame.
var ErrSurfaceUnavailable = errors.New("core: render surface unavailable")

// Cell is one character position of the frame buffer.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// blank is the cleared cell.
var blank = Cell{Rune: ' '}

// Surface is raw pixel-level access to a rendered frame.
// Post-processing effects use it instead of the drawing helpers.
type Surface interface {
	Bounds() Rect
	ReadRegion(r Rect) ([]Cell, error)
	WriteRegion(r Rect, cells []Cell) error
}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the host, allowing games to draw
// using simple rune and color operations while the platform handles display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := range copyH {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Fill fills the entire screen with the given rune, keeping colors.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x].Rune = r
		}
	}
}

// FillBackground paints the background color of every cell.
func (s *Screen) FillBackground(c Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x].BG = c
		}
	}
}

// Set places a rune at the given position, keeping the cell's colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = s.clip(x, r)
}

// clip blanks a wide rune that would hang off the right edge.
func (s *Screen) clip(x int, r rune) rune {
	if x+runeCells(r) > s.width {
		return ' '
	}
	return r
}

// SetColored places a rune with a foreground color, keeping the background.
func (s *Screen) SetColored(x, y int, r rune, fg Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = s.clip(x, r)
	s.cells[y][x].FG = fg
}

// SetBackground changes only the background color of a cell.
func (s *Screen) SetBackground(x, y int, bg Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].BG = bg
}

// SetCell replaces a whole cell.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	c.Rune = s.clip(x, c.Rune)
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Wide runes occupy two cells. Characters beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	for _, r := range text {
		s.Set(x, y, r)
		x += runeCells(r)
	}
}

// DrawTextColored writes a string with a foreground color.
func (s *Screen) DrawTextColored(x, y int, text string, fg Color) {
	for _, r := range text {
		s.SetColored(x, y, r, fg)
		x += runeCells(r)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - TextWidth(text)) / 2
	s.DrawText(x, y, text)
}

// DrawTextCenteredColored draws colored text centered horizontally.
func (s *Screen) DrawTextCenteredColored(y int, text string, fg Color) {
	x := (s.width - TextWidth(text)) / 2
	s.DrawTextColored(x, y, text, fg)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	s.Set(r.X, r.Y, '┌')
	s.Set(r.Right()-1, r.Y, '┐')
	s.Set(r.X, r.Bottom()-1, '└')
	s.Set(r.Right()-1, r.Bottom()-1, '┘')

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, r.Bottom()-1, '─')
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│')
		s.Set(r.Right()-1, y, '│')
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := range length {
		s.Set(x+i, y, r)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune) {
	for i := range length {
		s.Set(x, y+i, r)
	}
}

// Bounds returns the full screen rectangle.
func (s *Screen) Bounds() Rect {
	return Rect{W: s.width, H: s.height}
}

// ReadRegion copies the cells of r in row-major order.
func (s *Screen) ReadRegion(r Rect) ([]Cell, error) {
	if !s.regionOK(r) {
		return nil, ErrSurfaceUnavailable
	}
	out := make([]Cell, 0, r.W*r.H)
	for y := r.Y; y < r.Bottom(); y++ {
		out = append(out, s.cells[y][r.X:r.Right()]...)
	}
	return out, nil
}

// WriteRegion stores cells (row-major, len W*H) into r.
func (s *Screen) WriteRegion(r Rect, cells []Cell) error {
	if !s.regionOK(r) || len(cells) != r.W*r.H {
		return ErrSurfaceUnavailable
	}
	for row := range r.H {
		copy(s.cells[r.Y+row][r.X:r.Right()], cells[row*r.W:(row+1)*r.W])
	}
	return nil
}

// regionOK reports whether r is a non-empty region fully inside the screen.
func (s *Screen) regionOK(r Rect) bool {
	if s.width == 0 || s.height == 0 || r.Empty() {
		return false
	}
	return r.X >= 0 && r.Y >= 0 && r.Right() <= s.width && r.Bottom() <= s.height
}

// String converts the screen buffer to a plain string without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string, skipping the cells covered by
// the right half of wide runes. A wide rune in the last column, which a
// region copy can leave behind, reads as a space.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for x := 0; x < s.width; {
		r := s.cells[y][x].Rune
		n := runeCells(r)
		if x+n > s.width {
			r, n = ' ', 1
		}
		sb.WriteRune(r)
		x += n
	}
	return sb.String()
}

// TextWidth returns the number of cells text occupies.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

// RuneCells returns how many cells a rune occupies (1 or 2).
func RuneCells(r rune) int {
	return runeCells(r)
}

func runeCells(r rune) int {
	if w := runewidth.RuneWidth(r); w > 1 {
		return w
	}
	return 1
}
