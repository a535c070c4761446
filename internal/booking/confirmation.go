package booking

import "fmt"

// Confirmation replaces the modal form once a reservation has been sent.
type Confirmation struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Name      string `json:"name"`
	Message   string `json:"message"`
}

func newConfirmation(req ReservationRequest) *Confirmation {
	return &Confirmation{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Name:      req.Name,
		Message: fmt.Sprintf("予約が完了しました。\n日付：%s\n時間：%s 〜 %s\nお名前：%s",
			req.Date, req.StartTime, req.EndTime, req.Name),
	}
}
