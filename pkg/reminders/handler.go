package reminders

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/remindkit/pkg/logger"
)

// Router serves the banner for the reminders held in list:
//
//	GET  /                          banner HTML
//	POST {action}/{id}/dismiss      dismiss one reminder
//	POST {action}/dismiss-all       dismiss every reminder
//
// The banner's callbacks are expected to update list. Dismiss endpoints
// redirect back to the banner whether or not acknowledgement succeeded;
// failures are only logged.
func (b *Banner) Router(list *List) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		templ.Handler(b.Component(list.Tasks(), b.now())).ServeHTTP(w, req)
	})

	r.Post(b.actionPath+"/dismiss-all", func(w http.ResponseWriter, req *http.Request) {
		_ = b.DismissAll(req.Context(), list.Tasks())
		http.Redirect(w, req, "/", http.StatusSeeOther)
	})

	r.Post(b.actionPath+"/{id}/dismiss", func(w http.ResponseWriter, req *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid task id", http.StatusBadRequest)
			return
		}
		if _, ok := list.Get(id); !ok {
			b.logger.LogAttrs(req.Context(), slog.LevelDebug, "dismiss for unknown reminder", logger.TaskID(id))
			http.Error(w, ErrTaskNotFound.Error(), http.StatusNotFound)
			return
		}

		_ = b.Dismiss(req.Context(), id)
		http.Redirect(w, req, "/", http.StatusSeeOther)
	})

	return r
}
