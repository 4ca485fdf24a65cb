// Package reminders implements the task reminder banner.
//
// FormatDeadline turns a task deadline into a short label ("Overdue!",
// "Due soon!", "Due in 5h", "Due in 2d"). A Banner acknowledges reminders
// through an Acknowledger, usually a TasksAPI, and reports successful
// dismissals to the owner of the list through callbacks:
//
//	list := reminders.NewList(tasks)
//	api := reminders.NewTasksAPI(baseURL, client.TokenSource())
//	banner := reminders.NewBanner(api, list.Remove, list.Clear)
//
//	_ = banner.Dismiss(ctx, 42)
//	_ = banner.DismissAll(ctx, list.Tasks())
//
// DismissAll is all-or-nothing from the list's point of view: onDismissAll
// runs only if every acknowledgement succeeded. Acknowledgements that did
// succeed are not rolled back.
//
// Component renders the banner as HTML through templ, and Router serves it
// together with the dismiss endpoints.
package reminders
