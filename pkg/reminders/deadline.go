package reminders

import (
	"fmt"
	"time"
)

// DeadlineLabel is the short text shown under a reminder.
// The zero value means the task has no deadline and nothing is shown.
type DeadlineLabel struct {
	Text    string
	Overdue bool
}

// IsZero reports whether there is nothing to show.
func (l DeadlineLabel) IsZero() bool {
	return l.Text == ""
}

// FormatDeadline classifies deadline relative to now:
//
//	nil              -> no label
//	before now       -> "Overdue!"
//	less than 1h     -> "Due soon!"
//	less than 24h    -> "Due in {N}h"
//	otherwise        -> "Due in {N}d"
//
// N is rounded down.
func FormatDeadline(deadline *time.Time, now time.Time) DeadlineLabel {
	if deadline == nil {
		return DeadlineLabel{}
	}

	diff := deadline.Sub(now)
	if diff < 0 {
		return DeadlineLabel{Text: "Overdue!", Overdue: true}
	}

	hours := int64(diff / time.Hour)
	switch {
	case hours < 1:
		return DeadlineLabel{Text: "Due soon!"}
	case hours < 24:
		return DeadlineLabel{Text: fmt.Sprintf("Due in %dh", hours)}
	default:
		return DeadlineLabel{Text: fmt.Sprintf("Due in %dd", hours/24)}
	}
}
