package dealer

import (
	"fmt"

	"github.com/arcwamp/wampproto-go/idgen"
	"github.com/arcwamp/wampproto-go/messages"
	"github.com/arcwamp/wampproto-go/metrics"
)

type registration struct {
	id            int64
	procedure     string
	calleeSession int64
}

type pendingInvocation struct {
	invocationID    int64
	callerSession   int64
	callerRequestID int64
	calleeSession   int64
	receiveProgress bool
}

type callKey struct {
	callerSession   int64
	callerRequestID int64
}

// Dealer is the router-side RPC routing core for one realm.
type Dealer struct {
	registrationsByProcedure map[string]*registration
	registrationsBySession   map[int64]map[int64]*registration
	pendingCalls             map[int64]*pendingInvocation
	callToInvocationID       map[callKey]int64
	sessions                 map[int64]*messages.SessionDetails

	registrationIDs *idgen.Scope
	invocationIDs   *idgen.Scope

	Metrics metrics.DealerMetrics
}

// New returns an empty Dealer for one realm.
func New() *Dealer {
	return &Dealer{
		registrationsByProcedure: map[string]*registration{},
		registrationsBySession:   map[int64]map[int64]*registration{},
		pendingCalls:             map[int64]*pendingInvocation{},
		callToInvocationID:       map[callKey]int64{},
		sessions:                 map[int64]*messages.SessionDetails{},
		registrationIDs:          idgen.NewScope(),
		invocationIDs:            idgen.NewScope(),
		Metrics:                  metrics.NoOpDealerMetrics{},
	}
}

// AddSession registers a newly welcomed session with the dealer.
func (d *Dealer) AddSession(details *messages.SessionDetails) error {
	if _, exists := d.sessions[details.SessionID]; exists {
		return &ProtocolError{Op: "AddSession", Msg: fmt.Sprintf("session %d already exists", details.SessionID)}
	}
	d.sessions[details.SessionID] = details
	d.registrationsBySession[details.SessionID] = map[int64]*registration{}
	return nil
}

// RemoveSession tears down every registration the session held and drops
// it from every index, cascading through the procedure table.
func (d *Dealer) RemoveSession(sessionID int64) {
	for _, reg := range d.registrationsBySession[sessionID] {
		delete(d.registrationsByProcedure, reg.procedure)
	}
	for id, pending := range d.pendingCalls {
		if pending.callerSession == sessionID || pending.calleeSession == sessionID {
			delete(d.pendingCalls, id)
		}
	}
	for key, invocationID := range d.callToInvocationID {
		if _, ok := d.pendingCalls[invocationID]; !ok {
			delete(d.callToInvocationID, key)
		}
	}
	delete(d.registrationsBySession, sessionID)
	delete(d.sessions, sessionID)
	d.Metrics.SessionRemoved()
}

// Register handles a Register from sessionID, returning the Registered or
// Error reply to send back to that same session.
func (d *Dealer) Register(sessionID int64, msg *messages.Register) (messages.Message, error) {
	if _, ok := d.sessions[sessionID]; !ok {
		return nil, &ProtocolError{Op: "Register", Msg: fmt.Sprintf("unknown session %d", sessionID)}
	}
	if _, exists := d.registrationsByProcedure[msg.Procedure]; exists {
		return errorFor(messages.KindRegister, msg.RequestID, "wamp.error.procedure_already_exists"), nil
	}

	reg := &registration{id: d.registrationIDs.NextID(), procedure: msg.Procedure, calleeSession: sessionID}
	d.registrationsByProcedure[msg.Procedure] = reg
	d.registrationsBySession[sessionID][reg.id] = reg
	d.Metrics.Registered()

	return &messages.Registered{RequestID: msg.RequestID, RegistrationID: reg.id}, nil
}

// Unregister handles an Unregister from sessionID.
func (d *Dealer) Unregister(sessionID int64, msg *messages.Unregister) (messages.Message, error) {
	if _, ok := d.sessions[sessionID]; !ok {
		return nil, &ProtocolError{Op: "Unregister", Msg: fmt.Sprintf("unknown session %d", sessionID)}
	}
	reg, ok := d.registrationsBySession[sessionID][msg.RegistrationID]
	if !ok {
		return nil, &ProtocolError{Op: "Unregister", Msg: fmt.Sprintf("registration %d does not belong to session %d", msg.RegistrationID, sessionID)}
	}

	delete(d.registrationsBySession[sessionID], reg.id)
	delete(d.registrationsByProcedure, reg.procedure)
	d.Metrics.Unregistered()

	return &messages.Unregistered{RequestID: msg.RequestID}, nil
}

// Call handles a Call from callerSession, returning the session to route
// the reply to and the Invocation/Error message to send it.
func (d *Dealer) Call(callerSession int64, msg *messages.Call) (int64, messages.Message, error) {
	if _, ok := d.sessions[callerSession]; !ok {
		return 0, nil, &ProtocolError{Op: "Call", Msg: fmt.Sprintf("unknown session %d", callerSession)}
	}
	reg, ok := d.registrationsByProcedure[msg.Procedure]
	if !ok {
		d.Metrics.CallErrored()
		return callerSession, errorFor(messages.KindCall, msg.RequestID, "wamp.error.no_such_procedure"), nil
	}

	receiveProgress, _ := msg.Options["receive_progress"].(bool)
	progress, _ := msg.Options["progress"].(bool)
	key := callKey{callerSession: callerSession, callerRequestID: msg.RequestID}

	var invocationID int64
	if existing, ok := d.callToInvocationID[key]; ok {
		invocationID = existing
	} else {
		invocationID = d.invocationIDs.NextID()
		d.pendingCalls[invocationID] = &pendingInvocation{
			invocationID: invocationID, callerSession: callerSession, callerRequestID: msg.RequestID,
			calleeSession: reg.calleeSession, receiveProgress: receiveProgress,
		}
	}
	if progress {
		d.callToInvocationID[key] = invocationID
	} else {
		delete(d.callToInvocationID, key)
	}
	d.Metrics.CallRouted()

	details := map[string]any{}
	if receiveProgress {
		details["receive_progress"] = true
	}
	if progress {
		details["progress"] = true
	}

	invocation := &messages.Invocation{
		RequestID: invocationID, RegistrationID: reg.id, Details: details,
		Args: msg.Args, Kwargs: msg.Kwargs, Payload: msg.Payload,
	}
	return reg.calleeSession, invocation, nil
}

// Yield handles a Yield from calleeSession, returning the caller session to
// route the Result to and the Result message itself.
func (d *Dealer) Yield(calleeSession int64, msg *messages.Yield) (int64, messages.Message, error) {
	pending, ok := d.pendingCalls[msg.RequestID]
	if !ok {
		return 0, nil, &ProtocolError{Op: "Yield", Msg: fmt.Sprintf("yield for unknown invocation %d", msg.RequestID)}
	}
	if pending.calleeSession != calleeSession {
		return 0, nil, &ProtocolError{Op: "Yield", Msg: fmt.Sprintf("invocation %d does not belong to session %d", msg.RequestID, calleeSession)}
	}

	progress, _ := msg.Options["progress"].(bool)
	details := map[string]any{}
	if progress && pending.receiveProgress {
		details["progress"] = true
	} else {
		delete(d.pendingCalls, msg.RequestID)
	}

	result := &messages.Result{
		RequestID: pending.callerRequestID, Details: details,
		Args: msg.Args, Kwargs: msg.Kwargs, Payload: msg.Payload,
	}
	return pending.callerSession, result, nil
}

// Error handles an Error from a callee reporting that an Invocation could
// not be fulfilled, translating it into a Call-typed Error for the caller.
func (d *Dealer) Error(calleeSession int64, msg *messages.Error) (int64, messages.Message, error) {
	if msg.MessageType != messages.KindInvocation {
		return 0, nil, &ProtocolError{Op: "Error", Msg: "dealer only accepts errors for INVOCATION"}
	}
	pending, ok := d.pendingCalls[msg.RequestID]
	if !ok {
		return 0, nil, &ProtocolError{Op: "Error", Msg: fmt.Sprintf("error for unknown invocation %d", msg.RequestID)}
	}
	delete(d.pendingCalls, msg.RequestID)
	d.Metrics.CallErrored()

	callError := &messages.Error{
		MessageType: messages.KindCall, RequestID: pending.callerRequestID,
		Details: msg.Details, URI: msg.URI, Args: msg.Args, Kwargs: msg.Kwargs,
	}
	return pending.callerSession, callError, nil
}

func errorFor(messageType messages.Kind, requestID int64, uri string) *messages.Error {
	return &messages.Error{MessageType: messageType, RequestID: requestID, Details: map[string]any{}, URI: uri}
}
