package broker

import (
	"testing"

	"github.com/arcwamp/wampproto-go/messages"
)

func addSession(t *testing.T, b *Broker, id int64) {
	t.Helper()
	if err := b.AddSession(&messages.SessionDetails{SessionID: id}); err != nil {
		t.Fatalf("AddSession(%d): %v", id, err)
	}
}

func subscribe(t *testing.T, b *Broker, session int64, requestID int64, topic string) *messages.Subscribed {
	t.Helper()
	reply, err := b.Subscribe(session, &messages.Subscribe{RequestID: requestID, Options: map[string]any{}, Topic: topic})
	if err != nil {
		t.Fatalf("Subscribe(%d): %v", session, err)
	}
	sub, ok := reply.(*messages.Subscribed)
	if !ok {
		t.Fatalf("expected Subscribed, got %T", reply)
	}
	return sub
}

func TestPublishFanOutWithAcknowledge(t *testing.T) {
	b := New()
	addSession(t, b, 1)
	addSession(t, b, 2)
	addSession(t, b, 3)

	sub1 := subscribe(t, b, 2, 10, "io.xconn.test")
	sub2 := subscribe(t, b, 3, 11, "io.xconn.test")
	if sub1.SubscriptionID != sub2.SubscriptionID {
		t.Fatalf("expected shared subscription id, got %d and %d", sub1.SubscriptionID, sub2.SubscriptionID)
	}

	pub, err := b.Publish(1, &messages.Publish{
		RequestID: 1, Options: map[string]any{"acknowledge": true},
		Topic: "io.xconn.test", Args: []any{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if pub.Event == nil {
		t.Fatalf("expected an Event to be produced")
	}
	if pub.Event.SubscriptionID != sub1.SubscriptionID {
		t.Fatalf("expected event subscription id %d, got %d", sub1.SubscriptionID, pub.Event.SubscriptionID)
	}
	if len(pub.Recipients) != 2 {
		t.Fatalf("expected 2 recipients, got %d", len(pub.Recipients))
	}
	if pub.Ack == nil {
		t.Fatalf("expected Published acknowledgement")
	}
	if pub.Ack.RequestID != 1 {
		t.Fatalf("expected ack request id 1, got %d", pub.Ack.RequestID)
	}
}

func TestPublishWithoutSubscribersOnlyAcks(t *testing.T) {
	b := New()
	addSession(t, b, 1)

	pub, err := b.Publish(1, &messages.Publish{RequestID: 1, Options: map[string]any{"acknowledge": true}, Topic: "io.xconn.empty"})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if pub.Event != nil {
		t.Fatalf("expected no Event without subscribers, got %+v", pub.Event)
	}
	if len(pub.Recipients) != 0 {
		t.Fatalf("expected no recipients, got %d", len(pub.Recipients))
	}
	if pub.Ack == nil {
		t.Fatalf("expected Published acknowledgement even with no subscribers")
	}
}

func TestPublishWithoutAcknowledgeOmitsAck(t *testing.T) {
	b := New()
	addSession(t, b, 1)
	addSession(t, b, 2)
	subscribe(t, b, 2, 10, "io.xconn.test")

	pub, err := b.Publish(1, &messages.Publish{RequestID: 1, Options: map[string]any{}, Topic: "io.xconn.test"})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if pub.Ack != nil {
		t.Fatalf("expected no ack without acknowledge=true")
	}
	if len(pub.Recipients) != 1 {
		t.Fatalf("expected 1 recipient, got %d", len(pub.Recipients))
	}
}

func TestUnsubscribeRemovesSubscriber(t *testing.T) {
	b := New()
	addSession(t, b, 1)
	addSession(t, b, 2)
	sub := subscribe(t, b, 2, 10, "io.xconn.test")

	if _, err := b.Unsubscribe(2, &messages.Unsubscribe{RequestID: 11, SubscriptionID: sub.SubscriptionID}); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}

	pub, err := b.Publish(1, &messages.Publish{RequestID: 1, Options: map[string]any{}, Topic: "io.xconn.test"})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(pub.Recipients) != 0 {
		t.Fatalf("expected no recipients after unsubscribe, got %d", len(pub.Recipients))
	}
}

func TestUnsubscribeRejectsForeignSession(t *testing.T) {
	b := New()
	addSession(t, b, 1)
	addSession(t, b, 2)
	sub := subscribe(t, b, 1, 10, "io.xconn.test")

	if _, err := b.Unsubscribe(2, &messages.Unsubscribe{RequestID: 11, SubscriptionID: sub.SubscriptionID}); err == nil {
		t.Fatalf("expected error unsubscribing another session's subscription")
	}
}

func TestRemoveSessionDissolvesEmptySubscription(t *testing.T) {
	b := New()
	addSession(t, b, 1)
	addSession(t, b, 2)
	subscribe(t, b, 2, 10, "io.xconn.test")

	b.RemoveSession(2)

	if _, exists := b.subscriptionsByTopic["io.xconn.test"]; exists {
		t.Fatalf("expected subscription to be dissolved once its only subscriber is removed")
	}
}
