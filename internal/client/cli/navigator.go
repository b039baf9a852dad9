package cli

import (
	"fmt"
	"io"
	"sync"
)

// Navigator records the current route; the CLI has no pages, so a
// redirect is printed and changes the available commands.
type Navigator struct {
	mu    sync.Mutex
	route string
	out   io.Writer
}

func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out}
}

func (n *Navigator) Navigate(route string) {
	n.mu.Lock()
	n.route = route
	n.mu.Unlock()
	fmt.Fprintf(n.out, "-> %s\n", route)
}

func (n *Navigator) Route() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.route
}
