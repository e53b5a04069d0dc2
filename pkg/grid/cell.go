// pkg/grid/cell.go
package grid

// CellType is the tag of a cell. Tower cells additionally carry a TowerSpec.
type CellType int

const (
	Empty CellType = iota
	Path
	Start
	Exit
	Tower
)

func (t CellType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Path:
		return "path"
	case Start:
		return "start"
	case Exit:
		return "exit"
	case Tower:
		return "tower"
	}
	return "unknown"
}

// TowerSpec - параметры башни, стоящей в клетке
type TowerSpec struct {
	Kind  string
	Range float64
	Power int
	Cost  int
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Cell is one square of the grid.
type Cell struct {
	Row, Col int
	Type     CellType
	Tower    *TowerSpec // only for Type == Tower
	Hovered  bool       // ghost tower following the pointer, not yet bought
}

// EmptyCell returns a plain buildable cell at (row, col).
func EmptyCell(row, col int) Cell {
	return Cell{Row: row, Col: col, Type: Empty}
}

// TowerCell returns a tower cell at (row, col) carrying a copy of spec.
func TowerCell(row, col int, spec TowerSpec) Cell {
	return Cell{Row: row, Col: col, Type: Tower, Tower: &spec}
}

// Origin is the top-left pixel of the cell.
func (c Cell) Origin(cellSize int) Point {
	return Point{X: float64(c.Col * cellSize), Y: float64(c.Row * cellSize)}
}

// Center is the pixel center of the cell.
func (c Cell) Center(cellSize int) Point {
	half := float64(cellSize) / 2
	o := c.Origin(cellSize)
	return Point{X: o.X + half, Y: o.Y + half}
}

// IsWalkable reports whether monsters may route through the cell.
func (c Cell) IsWalkable() bool {
	return c.Type == Path || c.Type == Start || c.Type == Exit
}
