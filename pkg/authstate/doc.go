// Package authstate exposes the current authentication state to any number
// of consumers.
//
// A Provider asks a SessionSource (usually *authclient.Client) who is signed
// in, caches the answer as a Snapshot and publishes every change through a
// broadcast.Subject. The state starts as unknown and loading; Mount runs
// the first check exactly once.
//
//	p := authstate.New(client)
//	defer p.Close()
//
//	p.Mount(ctx)
//	<-p.Ready()
//
//	if p.Snapshot().IsAuthenticated() {
//	    ...
//	}
//
//	sub := p.Subscribe(ctx)
//	for msg := range sub.Receive(ctx) {
//	    render(msg.Data)
//	}
//
// After a successful authclient login call Provider.Login to pick up the
// new session; it only refreshes state and never submits credentials.
//
// Providers can be carried in a context with WithProvider and retrieved with
// FromContext or MustFromContext.
package authstate
