package cancellation

import (
	"encoding/json"
	"fmt"

	"github.com/wolfman30/slot-booking/internal/form"
)

const (
	maxErrorBodyChars = 300

	statusSuccess = "success"
	noDetailText  = "エラー内容なし"
)

// Response is the raw reply of the cancellation endpoint.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Result is the JSON body of a 2xx reply.
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Interpret turns an endpoint reply into the notice shown to the visitor.
func Interpret(resp *Response) form.Notice {
	if !resp.OK() {
		return form.Notice{
			Kind: form.NoticeHTTPError,
			Text: fmt.Sprintf("キャンセル受付からエラーが返されました。\nステータス: %d\n内容:\n%s",
				resp.StatusCode, truncate(string(resp.Body), maxErrorBodyChars)),
		}
	}

	var res Result
	if err := json.Unmarshal(resp.Body, &res); err != nil {
		return transportNotice(fmt.Errorf("decode response: %w", err))
	}

	if res.Status == statusSuccess {
		text := "キャンセルが完了しました。"
		if res.Message != "" {
			text += "\n" + res.Message
		}
		return form.Notice{Kind: form.NoticeSuccess, Text: text}
	}

	detail := res.Message
	if detail == "" {
		detail = noDetailText
	}
	return form.Notice{Kind: form.NoticeFailure, Text: "キャンセルできませんでした：" + detail}
}

func transportNotice(err error) form.Notice {
	return form.Notice{
		Kind: form.NoticeTransportError,
		Text: "キャンセルの送信中にエラーが発生しました。\n" + err.Error(),
	}
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
