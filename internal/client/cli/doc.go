// Package cli provides the interactive memberdesk command-line client.
//
// NewApp is the composition root: it opens the local credential store,
// builds the HTTP transport, the resource clients, the session store and the
// member list cache, and registers the session's forbidden handler and cache
// invalidation. App.Run hydrates the session and runs the REPL until the user
// exits.
package cli
