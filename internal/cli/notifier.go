package cli

import (
	"fmt"
	"io"
)

// ConsoleNotifier prints user-facing notifications to the terminal, standing
// in for the toast messages a graphical client would show.
type ConsoleNotifier struct {
	w io.Writer
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) Notify(msg string) {
	fmt.Fprintf(n.w, "! %s\n", msg)
}
