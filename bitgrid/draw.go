package bitgrid

import "strings"

// Draw renders p inside the frame, one line per row, marked cells as 'X'
// and empty cells as '.', separated by single spaces.
func (g Geometry) Draw(p Pattern) string {
	var sb strings.Builder
	sb.Grow(g.size * 2 * g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if p.Has(r, c) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads a drawing produced by Draw (or any grid of 'X'/'.' rows,
// spaces ignored) back into a Pattern. Unknown runes are treated as empty.
func Parse(drawing string) Pattern {
	var p Pattern
	row := 0
	for _, line := range strings.Split(strings.TrimSpace(drawing), "\n") {
		col := 0
		for _, ch := range line {
			switch ch {
			case ' ', '\t', '\r':
				continue
			case 'X', 'x', '#':
				if row < MaxSize && col < MaxSize {
					p = p.With(row, col)
				}
			}
			col++
		}
		row++
	}
	return p
}
