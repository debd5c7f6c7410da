package session

import (
	"fmt"

	"github.com/arcwamp/wampproto-go/messages"
	"github.com/arcwamp/wampproto-go/metrics"
)

// Session tracks one joined client's outstanding requests and confirmed
// entities, enforcing that every inbound response correlates to something
// this client actually sent.
type Session struct {
	callRequests        map[int64]struct{}
	registerRequests    map[int64]struct{}
	unregisterRequests  map[int64]int64
	subscribeRequests   map[int64]struct{}
	unsubscribeRequests map[int64]int64
	publishRequests     map[int64]struct{}

	registrations map[int64]struct{}
	subscriptions map[int64]struct{}

	invocations map[int64]struct{}

	Metrics metrics.SessionMetrics
}

// New returns an empty Session with no outstanding requests.
func New() *Session {
	return &Session{
		callRequests:        map[int64]struct{}{},
		registerRequests:    map[int64]struct{}{},
		unregisterRequests:  map[int64]int64{},
		subscribeRequests:   map[int64]struct{}{},
		unsubscribeRequests: map[int64]int64{},
		publishRequests:     map[int64]struct{}{},
		registrations:       map[int64]struct{}{},
		subscriptions:       map[int64]struct{}{},
		invocations:         map[int64]struct{}{},
		Metrics:             metrics.NoOpSessionMetrics{},
	}
}

// SendMessage records the bookkeeping for a message this session is about
// to send, rejecting anything that does not correlate to tracked state.
func (s *Session) SendMessage(m messages.Message) error {
	if err := s.sendMessage(m); err != nil {
		s.Metrics.ProtocolErrorObserved()
		return err
	}
	s.Metrics.RequestSent(fmt.Sprintf("%T", m))
	return nil
}

func (s *Session) sendMessage(m messages.Message) error {
	switch v := m.(type) {
	case *messages.Call:
		s.callRequests[v.RequestID] = struct{}{}
	case *messages.Register:
		s.registerRequests[v.RequestID] = struct{}{}
	case *messages.Subscribe:
		s.subscribeRequests[v.RequestID] = struct{}{}
	case *messages.Unregister:
		s.unregisterRequests[v.RequestID] = v.RegistrationID
	case *messages.Unsubscribe:
		s.unsubscribeRequests[v.RequestID] = v.SubscriptionID
	case *messages.Publish:
		if ack, _ := v.Options["acknowledge"].(bool); ack {
			s.publishRequests[v.RequestID] = struct{}{}
		}
	case *messages.Yield:
		if _, ok := s.invocations[v.RequestID]; !ok {
			return &ProtocolError{Op: "SendMessage", Msg: fmt.Sprintf("yield for unknown invocation %d", v.RequestID)}
		}
		delete(s.invocations, v.RequestID)
	case *messages.Error:
		if v.MessageType != messages.KindInvocation {
			return &ProtocolError{Op: "SendMessage", Msg: "error is only permitted with message_type=INVOCATION"}
		}
		if _, ok := s.invocations[v.RequestID]; !ok {
			return &ProtocolError{Op: "SendMessage", Msg: fmt.Sprintf("error for unknown invocation %d", v.RequestID)}
		}
		delete(s.invocations, v.RequestID)
	case *messages.Goodbye:
		// No bookkeeping: closing a session needs no correlation.
	default:
		return &ProtocolError{Op: "SendMessage", Msg: fmt.Sprintf("unknown message type %T", m)}
	}
	return nil
}

// ReceiveMessage applies the bookkeeping for an inbound message, rejecting
// anything that does not correlate to a request this session sent.
func (s *Session) ReceiveMessage(m messages.Message) error {
	if err := s.receiveMessage(m); err != nil {
		s.Metrics.ProtocolErrorObserved()
		return err
	}
	s.Metrics.ResponseReceived(fmt.Sprintf("%T", m))
	return nil
}

func (s *Session) receiveMessage(m messages.Message) error {
	switch v := m.(type) {
	case *messages.Result:
		if _, ok := s.callRequests[v.RequestID]; !ok {
			return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("result for unknown call %d", v.RequestID)}
		}
		delete(s.callRequests, v.RequestID)

	case *messages.Registered:
		if _, ok := s.registerRequests[v.RequestID]; !ok {
			return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("registered for unknown request %d", v.RequestID)}
		}
		delete(s.registerRequests, v.RequestID)
		s.registrations[v.RegistrationID] = struct{}{}

	case *messages.Unregistered:
		regID, ok := s.unregisterRequests[v.RequestID]
		if !ok {
			return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("unregistered for unknown request %d", v.RequestID)}
		}
		delete(s.unregisterRequests, v.RequestID)
		delete(s.registrations, regID)

	case *messages.Subscribed:
		if _, ok := s.subscribeRequests[v.RequestID]; !ok {
			return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("subscribed for unknown request %d", v.RequestID)}
		}
		delete(s.subscribeRequests, v.RequestID)
		s.subscriptions[v.SubscriptionID] = struct{}{}

	case *messages.Unsubscribed:
		subID, ok := s.unsubscribeRequests[v.RequestID]
		if !ok {
			return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("unsubscribed for unknown request %d", v.RequestID)}
		}
		delete(s.unsubscribeRequests, v.RequestID)
		delete(s.subscriptions, subID)

	case *messages.Published:
		if _, ok := s.publishRequests[v.RequestID]; !ok {
			return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("published for unknown request %d", v.RequestID)}
		}
		delete(s.publishRequests, v.RequestID)

	case *messages.Invocation:
		if _, ok := s.registrations[v.RegistrationID]; !ok {
			return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("invocation for unconfirmed registration %d", v.RegistrationID)}
		}
		s.invocations[v.RequestID] = struct{}{}

	case *messages.Event:
		if _, ok := s.subscriptions[v.SubscriptionID]; !ok {
			return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("event for unconfirmed subscription %d", v.SubscriptionID)}
		}

	case *messages.Error:
		if err := s.receiveError(v); err != nil {
			return err
		}

	case *messages.Goodbye, *messages.Abort:
		// Returned untouched; the embedder decides how to react.

	default:
		return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("unknown message type %T", m)}
	}
	return nil
}

func (s *Session) receiveError(v *messages.Error) error {
	switch v.MessageType {
	case messages.KindCall:
		if _, ok := s.callRequests[v.RequestID]; !ok {
			return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("error for unknown call %d", v.RequestID)}
		}
		delete(s.callRequests, v.RequestID)
	case messages.KindRegister:
		if _, ok := s.registerRequests[v.RequestID]; !ok {
			return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("error for unknown register %d", v.RequestID)}
		}
		delete(s.registerRequests, v.RequestID)
	case messages.KindUnregister:
		if _, ok := s.unregisterRequests[v.RequestID]; !ok {
			return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("error for unknown unregister %d", v.RequestID)}
		}
		delete(s.unregisterRequests, v.RequestID)
	case messages.KindSubscribe:
		if _, ok := s.subscribeRequests[v.RequestID]; !ok {
			return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("error for unknown subscribe %d", v.RequestID)}
		}
		delete(s.subscribeRequests, v.RequestID)
	case messages.KindUnsubscribe:
		if _, ok := s.unsubscribeRequests[v.RequestID]; !ok {
			return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("error for unknown unsubscribe %d", v.RequestID)}
		}
		delete(s.unsubscribeRequests, v.RequestID)
	case messages.KindPublish:
		if _, ok := s.publishRequests[v.RequestID]; !ok {
			return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("error for unknown publish %d", v.RequestID)}
		}
		delete(s.publishRequests, v.RequestID)
	default:
		return &ProtocolError{Op: "ReceiveMessage", Msg: fmt.Sprintf("error for unrecognized message_type %v", v.MessageType)}
	}
	return nil
}
