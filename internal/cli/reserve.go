package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/wolfman30/slot-booking/internal/booking"
	"github.com/wolfman30/slot-booking/internal/calendar"
)

// ReserveCmd books one slot range through the same guard and modal the web
// page uses.
type ReserveCmd struct {
	Date  string `help:"Reservation date (YYYY-MM-DD)." required:""`
	Start string `help:"Start time (HH:MM)." required:""`
	End   string `help:"End time (HH:MM)." required:""`
	Name  string `help:"Your name." required:""`
	Email string `help:"Contact email." required:""`
	Phone string `help:"Contact phone number." required:""`
}

func (c *ReserveCmd) Run(ctx *Context) error {
	loc := ctx.location()
	r, err := c.timeRange(loc)
	if err != nil {
		return err
	}

	page := booking.NewPage(booking.PageConfig{
		Sender:   ctx.Sender,
		Location: loc,
		Now:      ctx.Now,
		Logger:   ctx.Logger,
		Metrics:  ctx.Metrics,
	})
	state, err := page.Select(r)
	if err != nil {
		return fmt.Errorf("slot not selectable: %w", err)
	}

	w := ctx.out()
	fmt.Fprintln(w, headerStyle.Render(state.Datetime))

	res, err := page.Modal.Submit(context.Background(), booking.ContactDetails{
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(w, renderNotice(res.Notice))
	if !res.Notice.OK() {
		return ErrNotAccepted
	}
	if conf := res.Confirmation; conf != nil {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%s %s 〜 %s  %s", conf.Date, conf.StartTime, conf.EndTime, conf.Name)))
	}
	return nil
}

func (c *ReserveCmd) timeRange(loc *time.Location) (calendar.TimeRange, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", c.Date+" "+c.Start, loc)
	if err != nil {
		return calendar.TimeRange{}, fmt.Errorf("invalid start, use --date YYYY-MM-DD --start HH:MM: %w", err)
	}
	end, err := time.ParseInLocation("2006-01-02 15:04", c.Date+" "+c.End, loc)
	if err != nil {
		return calendar.TimeRange{}, fmt.Errorf("invalid end, use --end HH:MM: %w", err)
	}
	return calendar.TimeRange{Start: start, End: end}, nil
}
