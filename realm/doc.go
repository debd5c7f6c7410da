// Package realm is the one place in this repository that owns a lock over
// routing state. The sans-I/O core (dealer, broker) refuses to synchronize
// itself; realm provides the embedder-facing convenience of one
// mutex-guarded Dealer+Broker pair per realm name, with concurrent
// first-touch creation of a brand-new realm coalesced via singleflight so
// two connections racing to join it don't allocate the pair twice.
package realm
