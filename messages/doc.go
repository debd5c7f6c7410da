// Package messages defines the WAMP v2 wire message family.
//
// Every message kind is a plain Go struct whose Kind method returns its fixed
// integer type tag and whose Marshal method produces the positional wire
// sequence [TYPE, field1, field2, ...]. Parse dispatches on the leading
// integer and delegates to the kind's own parse function, which checks the
// length bounds, validates each index and collects every field error from
// the message before reporting them together. The parse functions build the
// message struct directly; they do not fill in the Fields record.
//
// This package has no knowledge of serializers, transports or session
// state; it only knows how to turn a message struct into a positional
// sequence and back.
package messages
