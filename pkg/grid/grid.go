// pkg/grid/grid.go
package grid

import "math"

// Grid is a fixed size x size matrix of cells, row-major.
type Grid struct {
	Size     int
	CellSize int
	Start    Coord
	Exit     Coord
	cells    [][]Cell
}

// New builds and initializes a grid. Dimensions never change afterwards.
func New(size, cellSize int) *Grid {
	g := &Grid{
		Size:     size,
		CellSize: cellSize,
		Start:    Coord{Row: 0, Col: 0},
		Exit:     Coord{Row: size - 1, Col: size - 1},
	}
	g.Initialize()
	return g
}

// Initialize lays out the serpentine path: every even row is path, four
// patch cells join the rows alternately on the right and left edge.
func (g *Grid) Initialize() {
	g.cells = make([][]Cell, g.Size)
	for row := 0; row < g.Size; row++ {
		g.cells[row] = make([]Cell, g.Size)
		for col := 0; col < g.Size; col++ {
			g.cells[row][col] = EmptyCell(row, col)
			if row%2 == 0 {
				g.cells[row][col].Type = Path
			}
		}
	}

	last := g.Size - 1
	for _, c := range []Coord{{1, last}, {3, 0}, {5, last}, {7, 0}} {
		if g.InBounds(c.Row, c.Col) {
			g.cells[c.Row][c.Col].Type = Path
		}
	}

	g.cells[g.Start.Row][g.Start.Col].Type = Start
	g.cells[g.Exit.Row][g.Exit.Col].Type = Exit
}

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Size && col >= 0 && col < g.Size
}

// Cell returns a copy of the cell at (row, col).
func (g *Grid) Cell(row, col int) (Cell, bool) {
	if !g.InBounds(row, col) {
		return Cell{}, false
	}
	return g.cells[row][col], true
}

// SetCell replaces the cell at (cell.Row, cell.Col). Out-of-range cells are ignored.
func (g *Grid) SetCell(cell Cell) bool {
	if !g.InBounds(cell.Row, cell.Col) {
		return false
	}
	g.cells[cell.Row][cell.Col] = cell
	return true
}

// IsEmptyCell reports whether a tower (or a ghost tower) may occupy the cell.
func (g *Grid) IsEmptyCell(row, col int) bool {
	c, ok := g.Cell(row, col)
	return ok && c.Type == Empty
}

// CellAt maps a pixel coordinate to a cell coordinate. Negative values clamp
// to zero; values past the far edge stay out of bounds.
func (g *Grid) CellAt(x, y float64) Coord {
	col := int(math.Floor(x / float64(g.CellSize)))
	row := int(math.Floor(y / float64(g.CellSize)))
	return Coord{Row: max(0, row), Col: max(0, col)}
}

// Count returns how many cells carry the given type.
func (g *Grid) Count(t CellType) int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c.Type == t {
				n++
			}
		}
	}
	return n
}

// RenderOrder lists every non-tower cell first and the tower cells last, so
// range circles are painted over neighbouring fills and never under them.
func (g *Grid) RenderOrder() []Cell {
	out := make([]Cell, 0, g.Size*g.Size)
	var towers []Cell
	for _, row := range g.cells {
		for _, c := range row {
			if c.Type == Tower {
				towers = append(towers, c)
				continue
			}
			out = append(out, c)
		}
	}
	return append(out, towers...)
}
