package level

import (
	"bufio"
	"fmt"
	"io"
)

// MarkerMovable marks a movable block in the .map format.
const MarkerMovable = '#'

// ParseMap reads the line-oriented map format. Only characters at odd
// column indices are significant; '#' places a movable block at
// x = column/2, y = row. Anything else is spacing or empty floor.
func ParseMap(r io.Reader) (Level, error) {
	var lvl Level

	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		col := 0
		for _, ch := range sc.Text() {
			if col%2 == 1 && ch == MarkerMovable {
				lvl.Movable = append(lvl.Movable, Cell{X: col / 2, Y: row})
			}
			col++
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return Level{}, fmt.Errorf("reading map row %d: %w", row, err)
	}

	return lvl, nil
}
