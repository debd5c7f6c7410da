// Package serializers turns a messages.Message's positional wire sequence
// into bytes and back, for each of the three wire formats WAMP peers
// negotiate at transport level: JSON, MessagePack and CBOR.
//
// A Serializer never inspects message semantics; it only knows how to
// round-trip a []any. Message-shape validation belongs to the messages
// package, not here.
package serializers
