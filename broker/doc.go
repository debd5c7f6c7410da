// Package broker implements the router-side publish-subscribe routing
// core: subscribing sessions to topics, and fanning a Publish out to every
// subscriber as an Event, including an optional acknowledgement to the
// publisher.
package broker
