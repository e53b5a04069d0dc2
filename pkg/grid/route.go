// pkg/grid/route.go
package grid

var directions = []Coord{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Route находит путь по клеткам дороги от Start до Exit (поиск в ширину).
// Returns nil when the exit cannot be reached.
func (g *Grid) Route() []Coord {
	parent := map[Coord]Coord{}
	visited := map[Coord]bool{g.Start: true}
	queue := []Coord{g.Start}

	for head := 0; head < len(queue); head++ {
		current := queue[head]
		if current == g.Exit {
			return g.reconstruct(parent, current)
		}
		for _, d := range directions {
			next := Coord{Row: current.Row + d.Row, Col: current.Col + d.Col}
			if visited[next] {
				continue
			}
			c, ok := g.Cell(next.Row, next.Col)
			if !ok || !c.IsWalkable() {
				continue
			}
			visited[next] = true
			parent[next] = current
			queue = append(queue, next)
		}
	}
	return nil
}

func (g *Grid) reconstruct(parent map[Coord]Coord, end Coord) []Coord {
	path := []Coord{end}
	for cur := end; cur != g.Start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Waypoints compresses the route to its turning cells plus the exit, in pixel
// space. offset is added to both axes of each cell origin, so a monster drawn
// from its top-left corner lines up with the cell center.
func (g *Grid) Waypoints(offset float64) []Point {
	route := g.Route()
	if len(route) < 2 {
		return nil
	}

	var corners []Coord
	for i := 1; i < len(route)-1; i++ {
		in := Coord{Row: route[i].Row - route[i-1].Row, Col: route[i].Col - route[i-1].Col}
		out := Coord{Row: route[i+1].Row - route[i].Row, Col: route[i+1].Col - route[i].Col}
		if in != out {
			corners = append(corners, route[i])
		}
	}
	corners = append(corners, route[len(route)-1])

	points := make([]Point, len(corners))
	for i, c := range corners {
		points[i] = Point{
			X: float64(c.Col*g.CellSize) + offset,
			Y: float64(c.Row*g.CellSize) + offset,
		}
	}
	return points
}
