// Package clock abstracts the time source behind WAMP-CRA challenge
// timestamps, so production code reads the wall clock while tests can pin
// the value the challenge must sign over.
package clock
