package booking

import (
	"fmt"
	"time"

	"github.com/wolfman30/slot-booking/internal/calendar"
)

var shortWeekdays = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// FormatLongDate renders t as a Japanese long date with a short weekday,
// e.g. 2024年6月10日(月).
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d年%d月%d日(%s)", t.Year(), int(t.Month()), t.Day(), shortWeekdays[t.Weekday()])
}

// FormatRange renders the pending range shown at the top of the modal.
func FormatRange(r calendar.TimeRange, loc *time.Location) string {
	r = r.In(loc)
	return fmt.Sprintf("%s %s 〜 %s", FormatLongDate(r.Start), r.Start.Format("15:04"), r.End.Format("15:04"))
}

// EventTitle is the title of the local event added after a booking.
func EventTitle(name string) string {
	return "予約：" + name
}
