package terminal

import (
	"bufio"
	"fmt"
	"io"

	"github.com/battlesnakeio/termsnake/rules"
)

// WriteFrame prints a frame as plain text: the numeric grid followed by the
// status lines. It is used when no full-screen terminal is available.
func WriteFrame(w io.Writer, frame rules.Frame) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Turn %d\n", frame.Turn)
	for _, row := range frame.Rows {
		for _, cell := range row {
			fmt.Fprintf(bw, "%d ", cell)
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "Moving in direction: %s\n", frame.Input)
	fmt.Fprintf(bw, "Score: %d\n\n", frame.Score())
	return bw.Flush()
}
