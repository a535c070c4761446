package form

import "sync"

// State is a snapshot of a submit control as the page would render it.
type State struct {
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

// SubmitControl models the submit button of a form. While a submission is in
// flight the control is disabled and shows its busy label; it is the only
// thing preventing a second concurrent send from the same form.
type SubmitControl struct {
	mu        sync.Mutex
	label     string
	busyLabel string
	busy      bool
}

// NewSubmitControl returns an enabled control showing label.
func NewSubmitControl(label, busyLabel string) *SubmitControl {
	return &SubmitControl{label: label, busyLabel: busyLabel}
}

// Begin disables the control. It returns false if a submission is already in
// flight, in which case the caller must not send anything.
func (c *SubmitControl) Begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return false
	}
	c.busy = true
	return true
}

// End re-enables the control and restores its original label.
func (c *SubmitControl) End() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

// Busy reports whether a submission is in flight.
func (c *SubmitControl) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

func (c *SubmitControl) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return State{Label: c.busyLabel, Disabled: true}
	}
	return State{Label: c.label}
}
