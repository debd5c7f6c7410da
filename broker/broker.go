package broker

import (
	"fmt"

	"github.com/arcwamp/wampproto-go/idgen"
	"github.com/arcwamp/wampproto-go/messages"
	"github.com/arcwamp/wampproto-go/metrics"
)

type subscription struct {
	id          int64
	topic       string
	subscribers map[int64]bool
}

// Publication is the outcome of routing one Publish: the Event content to
// deliver, the sessions to deliver it to, and an optional Published
// acknowledgement to send back to the publisher.
type Publication struct {
	Event      *messages.Event
	Recipients []int64
	Ack        *messages.Published
}

// Broker is the router-side pub-sub routing core for one realm. All
// subscribers to a topic share one subscription id, matching the basic
// profile's non-pattern-based subscriptions.
type Broker struct {
	subscriptionsByTopic   map[string]*subscription
	subscriptionsBySession map[int64]map[int64]*subscription
	sessions               map[int64]*messages.SessionDetails

	subscriptionIDs *idgen.Scope
	publicationIDs  *idgen.Scope

	Metrics metrics.BrokerMetrics
}

// New returns an empty Broker for one realm.
func New() *Broker {
	return &Broker{
		subscriptionsByTopic:   map[string]*subscription{},
		subscriptionsBySession: map[int64]map[int64]*subscription{},
		sessions:               map[int64]*messages.SessionDetails{},
		subscriptionIDs:        idgen.NewScope(),
		publicationIDs:         idgen.NewScope(),
		Metrics:                metrics.NoOpBrokerMetrics{},
	}
}

// AddSession registers a newly welcomed session with the broker.
func (b *Broker) AddSession(details *messages.SessionDetails) error {
	if _, exists := b.sessions[details.SessionID]; exists {
		return &ProtocolError{Op: "AddSession", Msg: fmt.Sprintf("session %d already exists", details.SessionID)}
	}
	b.sessions[details.SessionID] = details
	b.subscriptionsBySession[details.SessionID] = map[int64]*subscription{}
	return nil
}

// RemoveSession drops the session from every subscription it holds,
// dissolving subscriptions that are left with no subscribers.
func (b *Broker) RemoveSession(sessionID int64) {
	for _, sub := range b.subscriptionsBySession[sessionID] {
		delete(sub.subscribers, sessionID)
		if len(sub.subscribers) == 0 {
			delete(b.subscriptionsByTopic, sub.topic)
		}
	}
	delete(b.subscriptionsBySession, sessionID)
	delete(b.sessions, sessionID)
	b.Metrics.SessionRemoved()
}

// Subscribe handles a Subscribe from sessionID, returning the Subscribed
// reply to send back to that same session.
func (b *Broker) Subscribe(sessionID int64, msg *messages.Subscribe) (messages.Message, error) {
	if _, ok := b.sessions[sessionID]; !ok {
		return nil, &ProtocolError{Op: "Subscribe", Msg: fmt.Sprintf("unknown session %d", sessionID)}
	}

	sub, ok := b.subscriptionsByTopic[msg.Topic]
	if !ok {
		sub = &subscription{id: b.subscriptionIDs.NextID(), topic: msg.Topic, subscribers: map[int64]bool{}}
		b.subscriptionsByTopic[msg.Topic] = sub
	}
	sub.subscribers[sessionID] = true
	b.subscriptionsBySession[sessionID][sub.id] = sub
	b.Metrics.Subscribed()

	return &messages.Subscribed{RequestID: msg.RequestID, SubscriptionID: sub.id}, nil
}

// Unsubscribe handles an Unsubscribe from sessionID.
func (b *Broker) Unsubscribe(sessionID int64, msg *messages.Unsubscribe) (messages.Message, error) {
	if _, ok := b.sessions[sessionID]; !ok {
		return nil, &ProtocolError{Op: "Unsubscribe", Msg: fmt.Sprintf("unknown session %d", sessionID)}
	}
	sub, ok := b.subscriptionsBySession[sessionID][msg.SubscriptionID]
	if !ok {
		return nil, &ProtocolError{Op: "Unsubscribe", Msg: fmt.Sprintf("subscription %d does not belong to session %d", msg.SubscriptionID, sessionID)}
	}

	delete(b.subscriptionsBySession[sessionID], sub.id)
	delete(sub.subscribers, sessionID)
	if len(sub.subscribers) == 0 {
		delete(b.subscriptionsByTopic, sub.topic)
	}
	b.Metrics.Unsubscribed()

	return &messages.Unsubscribed{RequestID: msg.RequestID}, nil
}

// Publish handles a Publish from publisherSession, returning the
// Publication to deliver: one Event per subscriber sharing the same
// content, plus an optional Published acknowledgement to the publisher.
func (b *Broker) Publish(publisherSession int64, msg *messages.Publish) (*Publication, error) {
	if _, ok := b.sessions[publisherSession]; !ok {
		return nil, &ProtocolError{Op: "Publish", Msg: fmt.Sprintf("unknown session %d", publisherSession)}
	}

	publicationID := b.publicationIDs.NextID()
	acknowledge, _ := msg.Options["acknowledge"].(bool)

	sub, ok := b.subscriptionsByTopic[msg.Topic]
	var recipients []int64
	var subscriptionID int64
	if ok {
		subscriptionID = sub.id
		for session := range sub.subscribers {
			recipients = append(recipients, session)
		}
	}
	b.Metrics.Published(len(recipients))

	pub := &Publication{Recipients: recipients}
	if len(recipients) > 0 {
		pub.Event = &messages.Event{
			SubscriptionID: subscriptionID,
			PublicationID:  publicationID,
			Details:        map[string]any{},
			Args:           msg.Args,
			Kwargs:         msg.Kwargs,
			Payload:        msg.Payload,
		}
	}
	if acknowledge {
		pub.Ack = &messages.Published{RequestID: msg.RequestID, PublicationID: publicationID}
	}
	return pub, nil
}
