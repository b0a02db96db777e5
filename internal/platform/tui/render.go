package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fifteen/internal/core"
	"github.com/vovakirdan/fifteen/internal/puzzle"
)

const (
	cellWidth  = 6 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border

	boardW    = puzzle.Side*cellWidth + 1
	boardH    = puzzle.Side*cellHeight + 1
	hudHeight = 3
	boardTop  = hudHeight + 1

	// screenRows is the height of the drawn area; help is appended below it.
	screenRows = boardTop + boardH + 1
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorTileLight: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("223")).Bold(true),
	core.ColorTileDark:  lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("130")).Bold(true),
	core.ColorFrame:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
}

// boardLayout positions the board on the screen.
type boardLayout struct {
	X, Y int
}

// layoutFor centers the board horizontally for a screen width.
func layoutFor(screenW int) boardLayout {
	return boardLayout{
		X: core.Max((screenW-boardW)/2, 0),
		Y: boardTop,
	}
}

// fits reports whether the board fits a screen of the given width.
func fits(screenW int) bool {
	return screenW >= boardW
}

// cellRect returns the inner area of the cell at board index i.
func (l boardLayout) cellRect(i int) core.Rect {
	return core.NewRect(
		l.X+puzzle.Col(i)*cellWidth+1,
		l.Y+puzzle.Row(i)*cellHeight+1,
		cellWidth-1,
		cellHeight-1,
	)
}

// IndexAt maps a screen position to a board index, or -1 for positions
// outside the tiles (including the grid lines).
func (l boardLayout) IndexAt(x, y int) int {
	for i := 0; i < puzzle.Cells; i++ {
		if l.cellRect(i).Contains(x, y) {
			return i
		}
	}
	return -1
}

// tileColor gives tiles a checkerboard shade based on their home position,
// so a solved board shows an even pattern.
func tileColor(v puzzle.Cell) core.Color {
	homeRowOdd := (int(v)-1)/puzzle.Side%2 == 1
	valueOdd := int(v)%2 == 1
	if homeRowOdd == valueOdd {
		return core.ColorTileLight
	}
	return core.ColorTileDark
}

// drawGame renders the HUD and the board for a snapshot.
func drawGame(dst *core.Screen, snap puzzle.Snapshot, unit time.Duration) {
	dst.Clear()

	if !fits(dst.Width()) {
		dst.DrawTextCentered(screenRows/2, "Window too small")
		dst.DrawTextCentered(screenRows/2+1, "Please resize terminal")
		return
	}

	l := layoutFor(dst.Width())
	drawHUD(dst, snap, unit, l)
	drawBoard(dst, snap.Board, l)
}

func drawHUD(dst *core.Screen, snap puzzle.Snapshot, unit time.Duration, l boardLayout) {
	dst.DrawTextCentered(0, "F I F T E E N")

	msgColor := core.ColorDefault
	if snap.Status == puzzle.StatusVictory {
		msgColor = core.ColorHighlight
	}
	msg := statusMessage(snap.Status)
	dst.DrawTextColored((dst.Width()-len([]rune(msg)))/2, 1, msg, msgColor)

	if snap.Status == puzzle.StatusIdle && snap.Moves == 0 && !snap.TimerRunning {
		return
	}

	timeStr := "Time: " + formatElapsed(snap.Elapsed, unit)
	movesStr := "Moves: " + strconv.Itoa(snap.Moves)
	dst.DrawText(l.X, 2, timeStr)
	dst.DrawText(l.X+boardW-len(movesStr), 2, movesStr)
}

func drawBoard(dst *core.Screen, b puzzle.Board, l boardLayout) {
	// Grid lines
	for y := 0; y <= puzzle.Side; y++ {
		for x := 0; x <= puzzle.Side; x++ {
			px := l.X + x*cellWidth
			py := l.Y + y*cellHeight
			dst.SetColored(px, py, gridCorner(x, y), core.ColorFrame)

			if x < puzzle.Side {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorFrame)
				}
			}
			if y < puzzle.Side {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorFrame)
				}
			}
		}
	}

	// Tiles
	for i, v := range b {
		if v == puzzle.Empty {
			continue
		}
		r := l.cellRect(i)
		c := tileColor(v)
		dst.FillRect(r, ' ', c)

		label := strconv.Itoa(int(v))
		pad := (r.W - len(label) + 1) / 2
		dst.DrawTextColored(r.X+pad, r.Y, label, c)
	}
}

// gridCorner picks the box-drawing rune for a grid intersection.
func gridCorner(x, y int) rune {
	last := puzzle.Side
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == last:
		return '┐'
	case y == last && x == 0:
		return '└'
	case y == last && x == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

// statusMessage is the line shown under the title for each phase.
func statusMessage(s puzzle.Status) string {
	switch s {
	case puzzle.StatusInGame:
		return "Slide the tiles with the arrow keys or a click."
	case puzzle.StatusVictory:
		return "Congratulations, you solved it!"
	default:
		return "Put the tiles in order from 1 to 15."
	}
}

// formatElapsed renders elapsed ticks as "Xm Ys".
func formatElapsed(elapsed int, unit time.Duration) string {
	d := time.Duration(elapsed) * unit
	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
