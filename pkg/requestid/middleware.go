package requestid

import (
	"net/http"
	"regexp"
)

// Header is the request id header sent to and accepted from peers.
const Header = "X-Request-ID"

const maxIDLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Middleware puts a request id into the context of every incoming request
// and echoes it in the response header. A well-formed client id is reused.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := r.Header.Get(Header); valid(id) {
			ctx = WithContext(ctx, id)
		}
		ctx, id := Ensure(ctx)

		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Transport sets the context's request id on outgoing requests that do not
// carry one yet, generating an id if needed.
type Transport struct {
	// Base is used to send the request. Nil means http.DefaultTransport.
	Base http.RoundTripper
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if req.Header.Get(Header) != "" {
		return base.RoundTrip(req)
	}

	_, id := Ensure(req.Context())
	out := req.Clone(req.Context())
	out.Header.Set(Header, id)
	return base.RoundTrip(out)
}

func valid(id string) bool {
	return id != "" && len(id) <= maxIDLength && validID.MatchString(id)
}
