package reminders

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Task is a task with a pending reminder, as returned by the task API.
type Task struct {
	ID       int64      `json:"id"`
	Title    string     `json:"title"`
	Deadline *time.Time `json:"deadline"`
}

// deadlineLayouts are tried in order. Timestamps without an offset are read
// in the local time zone.
var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// UnmarshalJSON accepts RFC 3339 deadlines as well as the offset-less
// timestamps some backends emit. A null or empty deadline means none.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       int64   `json:"id"`
		Title    string  `json:"title"`
		Deadline *string `json:"deadline"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.ID = raw.ID
	t.Title = raw.Title
	t.Deadline = nil

	if raw.Deadline == nil || strings.TrimSpace(*raw.Deadline) == "" {
		return nil
	}

	d, err := parseDeadline(*raw.Deadline)
	if err != nil {
		return fmt.Errorf("task %d: %w", raw.ID, err)
	}
	t.Deadline = &d
	return nil
}

func parseDeadline(s string) (time.Time, error) {
	for i, layout := range deadlineLayouts {
		var (
			d   time.Time
			err error
		)
		if i == 0 {
			d, err = time.Parse(layout, s)
		} else {
			d, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDeadline, s)
}
