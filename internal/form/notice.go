package form

// NoticeKind classifies a user-facing outcome of a submission.
type NoticeKind string

const (
	NoticeSuccess        NoticeKind = "success"
	NoticeFailure        NoticeKind = "failure"
	NoticeHTTPError      NoticeKind = "http_error"
	NoticeTransportError NoticeKind = "transport_error"
)

// Notice replaces the blocking alert a browser page would show.
type Notice struct {
	Kind NoticeKind `json:"kind"`
	Text string     `json:"text"`
}

// OK reports whether the notice describes a successful submission.
func (n Notice) OK() bool {
	return n.Kind == NoticeSuccess
}
