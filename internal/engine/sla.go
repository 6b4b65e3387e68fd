package engine

import (
	"fmt"
	"time"
)

// soonThreshold marks deadlines close enough to deserve a distinct visual
// treatment while still on track.
const soonThreshold = time.Hour

// SLAView is the wall-clock-relative rendering of a ticket's deadline. It is
// recomputed on every request and never cached.
type SLAView struct {
	Deadline time.Time `json:"deadline"`
	Overdue  bool      `json:"overdue"`
	Soon     bool      `json:"soon"`
	Label    string    `json:"label"`
}

// ComputeSLA derives the human-readable SLA state for a deadline at a given
// instant. Past the deadline the label reads "{H}h {M}m atrasado"; before it,
// "{H}h {M}m restantes" with the hour part dropped under one hour.
func ComputeSLA(deadline, now time.Time) SLAView {
	view := SLAView{Deadline: deadline}
	if now.After(deadline) {
		late := now.Sub(deadline)
		view.Overdue = true
		view.Label = fmt.Sprintf("%dh %dm atrasado", int(late.Hours()), int(late.Minutes())%60)
		return view
	}

	remaining := deadline.Sub(now)
	view.Soon = remaining < soonThreshold
	if remaining >= time.Hour {
		view.Label = fmt.Sprintf("%dh %dm restantes", int(remaining.Hours()), int(remaining.Minutes())%60)
	} else {
		view.Label = fmt.Sprintf("%dm restantes", int(remaining.Minutes()))
	}
	return view
}
