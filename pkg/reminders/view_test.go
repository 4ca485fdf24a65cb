package reminders_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/remindkit/pkg/logger"
	"github.com/dmitrymomot/remindkit/pkg/reminders"
)

func render(t *testing.T, b *reminders.Banner, tasks []reminders.Task, now time.Time) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, b.Component(tasks, now).Render(context.Background(), &buf))
	return buf.String()
}

func TestBanner_View(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	soon := now.Add(5 * time.Hour)
	b := reminders.NewBanner(&fakeAcknowledger{}, nil, nil, reminders.WithLogger(logger.Discard()))

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		v := b.View(nil, now)
		assert.True(t, v.Empty())
		assert.Empty(t, v.Items)
	})

	t.Run("single task hides dismiss all", func(t *testing.T) {
		t.Parallel()

		v := b.View([]reminders.Task{{ID: 1, Title: "a"}}, now)
		assert.Equal(t, "Task Reminders (1)", v.Heading)
		assert.False(t, v.ShowDismissAll)
	})

	t.Run("items carry labels", func(t *testing.T) {
		t.Parallel()

		v := b.View([]reminders.Task{
			{ID: 1, Title: "late", Deadline: &past},
			{ID: 2, Title: "soon", Deadline: &soon},
			{ID: 3, Title: "whenever"},
		}, now)

		assert.Equal(t, "Task Reminders (3)", v.Heading)
		assert.True(t, v.ShowDismissAll)
		require.Len(t, v.Items, 3)
		assert.Equal(t, reminders.DeadlineLabel{Text: "Overdue!", Overdue: true}, v.Items[0].Deadline)
		assert.Equal(t, reminders.DeadlineLabel{Text: "Due in 5h"}, v.Items[1].Deadline)
		assert.True(t, v.Items[2].Deadline.IsZero())
	})
}

func TestBanner_Component(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	later := now.Add(50 * time.Hour)
	b := reminders.NewBanner(&fakeAcknowledger{}, nil, nil, reminders.WithLogger(logger.Discard()))

	t.Run("empty list renders nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, render(t, b, nil, now))
		assert.Empty(t, render(t, b, []reminders.Task{}, now))
	})

	t.Run("single item", func(t *testing.T) {
		t.Parallel()

		html := render(t, b, []reminders.Task{{ID: 9, Title: "Only one", Deadline: &later}}, now)
		assert.Contains(t, html, "Task Reminders (1)")
		assert.Contains(t, html, "Only one")
		assert.Contains(t, html, "Due in 2d")
		assert.Contains(t, html, `action="/reminders/9/dismiss"`)
		assert.NotContains(t, html, "Dismiss all")
	})

	t.Run("multiple items", func(t *testing.T) {
		t.Parallel()

		html := render(t, b, []reminders.Task{
			{ID: 1, Title: "late", Deadline: &past},
			{ID: 2, Title: "no deadline"},
		}, now)

		assert.Contains(t, html, "Task Reminders (2)")
		assert.Contains(t, html, "Dismiss all")
		assert.Contains(t, html, `action="/reminders/dismiss-all"`)
		assert.Contains(t, html, `reminder-banner__deadline reminder-banner__deadline--overdue">Overdue!`)
		assert.Equal(t, 1, strings.Count(html, `<p class="reminder-banner__deadline`))
		assert.Equal(t, 2, strings.Count(html, `aria-label="Dismiss reminder"`))
	})

	t.Run("titles are escaped", func(t *testing.T) {
		t.Parallel()

		html := render(t, b, []reminders.Task{{ID: 1, Title: `<script>alert("x")</script>`}}, now)
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	})

	t.Run("custom action path", func(t *testing.T) {
		t.Parallel()

		custom := reminders.NewBanner(&fakeAcknowledger{}, nil, nil,
			reminders.WithLogger(logger.Discard()),
			reminders.WithActionPath("/app/banner/"),
		)
		html := render(t, custom, []reminders.Task{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}, now)
		assert.Contains(t, html, `action="/app/banner/dismiss-all"`)
		assert.Contains(t, html, `action="/app/banner/2/dismiss"`)
	})
}
