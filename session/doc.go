// Package session implements the client-side correlation bookkeeping a
// joined WAMP session must keep: which request ids are outstanding, which
// registrations/subscriptions are confirmed, and which invocations the
// client (as callee) still owes a Yield or Error.
package session
