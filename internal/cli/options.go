package cli

import (
	"fmt"
	"strings"

	"github.com/wolfman30/slot-booking/internal/cancellation"
)

// OptionsCmd prints the selectable cancellation start times.
type OptionsCmd struct {
	Columns int `help:"Times per line." default:"8"`
}

func (c *OptionsCmd) Run(ctx *Context) error {
	opts := cancellation.TimeOptions()
	cols := c.Columns
	if cols <= 0 {
		cols = len(opts)
	}

	w := ctx.out()
	fmt.Fprintln(w, headerStyle.Render("Start times"))
	for i := 0; i < len(opts); i += cols {
		end := min(i+cols, len(opts))
		fmt.Fprintln(w, "  "+strings.Join(opts[i:end], "  "))
	}
	return nil
}
