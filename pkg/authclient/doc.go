// Package authclient is the session client for the remote auth API.
//
// A Client holds at most one session token. It is created explicitly with
// New, passed by reference to whatever needs it, and closed at teardown.
// The token is restored from a tokenstore.Store on construction and written
// back on every signup, login and logout.
//
//	store := tokenstore.NewFileStore(dir)
//	client := authclient.New(store, authclient.WithBaseURL("https://api.example.com"))
//	defer client.Close()
//
//	if _, err := client.Login(ctx, email, password); err != nil {
//	    var authErr *authclient.AuthError
//	    if errors.As(err, &authErr) {
//	        // show authErr.Message next to the form
//	    }
//	}
//
//	user := client.GetSession(ctx) // nil when logged out
//
// # Error Handling
//
// Signup and Login return *AuthError (matching ErrAuthentication) for bad
// credentials, conflicts and client-side validation failures; other errors
// wrap ErrRequestFailed or ErrInvalidResponse. GetSession never returns an
// error: any failure ends the session and is logged at warn level.
//
// # Concurrency
//
// All methods are safe for concurrent use. Concurrent Signup/Login calls race
// and the last response to complete wins.
package authclient
