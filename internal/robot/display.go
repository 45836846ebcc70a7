package robot

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var arrows = map[Orientation]string{
	North: "^",
	South: "v",
	East:  ">",
	West:  "<",
}

var marker = color.New(color.FgGreen, color.Bold)

// Render draws the room with the robot as an arrow. The top row is
// y = Height-1 so north points up.
func Render(w io.Writer, r *Robot) error {
	bw := bufio.NewWriter(w)
	b := r.Bounds()
	x0, y0 := r.Position()

	for y := b.Height - 1; y >= 0; y-- {
		for x := 0; x < b.Width; x++ {
			if x == x0 && y == y0 {
				fmt.Fprint(bw, marker.Sprint(arrows[r.Orientation()]))
			} else {
				fmt.Fprint(bw, ".")
			}
			if x < b.Width-1 {
				fmt.Fprint(bw, " ")
			}
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintf(bw, "%s\n", r)
	return bw.Flush()
}
