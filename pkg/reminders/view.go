package reminders

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"
)

// View is the render model of the banner.
type View struct {
	Heading        string
	Count          int
	ShowDismissAll bool
	Items          []Item
}

// Item is one rendered reminder.
type Item struct {
	ID       int64
	Title    string
	Deadline DeadlineLabel
}

// Empty reports whether the banner should render at all.
func (v View) Empty() bool {
	return v.Count == 0
}

// View builds the render model for tasks as of now.
func (b *Banner) View(tasks []Task, now time.Time) View {
	if len(tasks) == 0 {
		return View{}
	}

	items := make([]Item, len(tasks))
	for i, t := range tasks {
		items[i] = Item{
			ID:       t.ID,
			Title:    t.Title,
			Deadline: FormatDeadline(t.Deadline, now),
		}
	}

	return View{
		Heading:        fmt.Sprintf("Task Reminders (%d)", len(tasks)),
		Count:          len(tasks),
		ShowDismissAll: len(tasks) > 1,
		Items:          items,
	}
}

// Component renders the banner as HTML. An empty list renders nothing.
// Dismiss controls are forms posting to the banner's action path.
func (b *Banner) Component(tasks []Task, now time.Time) templ.Component {
	v := b.View(tasks, now)
	path := b.actionPath

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if v.Empty() {
			return nil
		}

		var buf bytes.Buffer
		buf.WriteString(`<div class="reminder-banner" role="region" aria-label="Task reminders">`)
		buf.WriteString(`<div class="reminder-banner__header"><span class="reminder-banner__heading">`)
		buf.WriteString(templ.EscapeString(v.Heading))
		buf.WriteString(`</span>`)
		if v.ShowDismissAll {
			buf.WriteString(`<form method="post" action="`)
			buf.WriteString(templ.EscapeString(path + "/dismiss-all"))
			buf.WriteString(`"><button type="submit" class="reminder-banner__dismiss-all">Dismiss all</button></form>`)
		}
		buf.WriteString(`</div><ul class="reminder-banner__list">`)

		for _, item := range v.Items {
			id := strconv.FormatInt(item.ID, 10)
			buf.WriteString(`<li class="reminder-banner__item" data-task-id="`)
			buf.WriteString(id)
			buf.WriteString(`"><div class="reminder-banner__body"><p class="reminder-banner__title">`)
			buf.WriteString(templ.EscapeString(item.Title))
			buf.WriteString(`</p>`)
			if !item.Deadline.IsZero() {
				class := "reminder-banner__deadline"
				if item.Deadline.Overdue {
					class += " reminder-banner__deadline--overdue"
				}
				buf.WriteString(`<p class="`)
				buf.WriteString(class)
				buf.WriteString(`">`)
				buf.WriteString(templ.EscapeString(item.Deadline.Text))
				buf.WriteString(`</p>`)
			}
			buf.WriteString(`</div><form method="post" action="`)
			buf.WriteString(templ.EscapeString(path + "/" + id + "/dismiss"))
			buf.WriteString(`"><button type="submit" class="reminder-banner__dismiss" aria-label="Dismiss reminder">&times;</button></form></li>`)
		}

		buf.WriteString(`</ul></div>`)

		_, err := w.Write(buf.Bytes())
		return err
	})
}
