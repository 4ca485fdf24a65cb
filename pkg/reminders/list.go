package reminders

import (
	"slices"
	"sync"
)

// List is an ordered, concurrency-safe set of reminders. It plays the
// owner role for a Banner: wire Remove and Clear as its callbacks.
type List struct {
	mu    sync.RWMutex
	tasks []Task
}

// NewList creates a list holding a copy of tasks.
func NewList(tasks []Task) *List {
	return &List{tasks: slices.Clone(tasks)}
}

// Tasks returns a copy of the current reminders.
func (l *List) Tasks() []Task {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.tasks)
}

// Get returns the reminder with the given id.
func (l *List) Get(id int64) (Task, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i := slices.IndexFunc(l.tasks, func(t Task) bool { return t.ID == id })
	if i < 0 {
		return Task{}, false
	}
	return l.tasks[i], true
}

// Len returns the number of reminders.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.tasks)
}

// Remove drops the reminder with the given id. Unknown ids are ignored.
func (l *List) Remove(id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = slices.DeleteFunc(l.tasks, func(t Task) bool { return t.ID == id })
}

// Clear drops every reminder.
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = nil
}

// Replace swaps the contents for a copy of tasks.
func (l *List) Replace(tasks []Task) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = slices.Clone(tasks)
}
