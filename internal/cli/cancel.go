package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/wolfman30/slot-booking/internal/cancellation"
)

// ErrNotAccepted is returned when the endpoint reply is anything but success.
var ErrNotAccepted = errors.New("request not accepted")

// CancelCmd requests cancellation of one half-hour slot.
type CancelCmd struct {
	Date string `help:"Reservation date (YYYY-MM-DD, YYYY/MM/DD or YYYY年M月D日)." required:""`
	Time string `name:"time" help:"Slot start time (HH:MM, see 'options')." required:""`
	Name string `help:"Name the reservation was made under." required:""`
}

func (c *CancelCmd) Run(ctx *Context) error {
	f := cancellation.NewForm(ctx.Client, ctx.location(), ctx.Logger, ctx.Metrics)
	notice, err := f.Submit(context.Background(), cancellation.Input{
		Date:      c.Date,
		StartTime: c.Time,
		Name:      c.Name,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.out(), renderNotice(notice))
	if !notice.OK() {
		return ErrNotAccepted
	}
	return nil
}
