// Package cli implements the bookingctl commands.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/wolfman30/slot-booking/internal/booking"
	"github.com/wolfman30/slot-booking/internal/cancellation"
	"github.com/wolfman30/slot-booking/internal/observability/metrics"
	"github.com/wolfman30/slot-booking/pkg/logging"
)

// Context is shared by every command.
type Context struct {
	Sender   booking.Sender
	Client   cancellation.Client
	Location *time.Location
	Logger   *logging.Logger
	Metrics  *metrics.BookingMetrics
	Out      io.Writer
	Now      func() time.Time
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}
