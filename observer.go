package paginator

import "github.com/oklog/ulid/v2"

// PageChange describes an accepted page change. Previous is the page the
// engine was on before the change, Current the page it moved to.
type PageChange struct {
	Previous int
	Current  int
}

// SizingChange describes an accepted sizing mutation and the page count
// derived from it.
type SizingChange struct {
	TotalItems   int
	ItemsPerPage int
	TotalPages   int
}

// Subscription is the handle returned by OnPageChange and OnSizingChange.
// Detach removes the handler; detaching twice, or after Teardown, is a
// no-op.
type Subscription struct {
	id       string
	state    *State
	onPage   func(PageChange)
	onSizing func(SizingChange)
}

// ID returns the subscription's unique identifier.
func (sub *Subscription) ID() string { return sub.id }

// Detach removes this subscription from the engine.
func (sub *Subscription) Detach() {
	if sub.state == nil {
		return
	}
	sub.state.detach(sub)
	sub.state = nil
}

// OnPageChange registers fn to run after every accepted page change.
// Handlers run synchronously in registration order.
func (s *State) OnPageChange(fn func(PageChange)) *Subscription {
	sub := &Subscription{id: ulid.Make().String(), state: s, onPage: fn}
	s.pageSubs = append(s.pageSubs, sub)
	return sub
}

// OnSizingChange registers fn to run after every accepted SetTotalItems or
// SetItemsPerPage call, once the page count has been recomputed and the
// page reset to 1.
func (s *State) OnSizingChange(fn func(SizingChange)) *Subscription {
	sub := &Subscription{id: ulid.Make().String(), state: s, onSizing: fn}
	s.sizingSubs = append(s.sizingSubs, sub)
	return sub
}

// Teardown detaches all outstanding subscriptions at once. The engine
// remains usable; new subscriptions may be registered afterwards.
func (s *State) Teardown() {
	for _, sub := range s.pageSubs {
		sub.state = nil
	}
	for _, sub := range s.sizingSubs {
		sub.state = nil
	}
	s.pageSubs = nil
	s.sizingSubs = nil
}

func (s *State) detach(sub *Subscription) {
	s.pageSubs = remove(s.pageSubs, sub)
	s.sizingSubs = remove(s.sizingSubs, sub)
}

func remove(subs []*Subscription, sub *Subscription) []*Subscription {
	for i, candidate := range subs {
		if candidate == sub {
			return append(subs[:i:i], subs[i+1:]...)
		}
	}
	return subs
}

// notifyPage invokes page-change handlers over a snapshot of the
// subscriber list, so handlers may detach or subscribe mid-notification
// without affecting the current fan-out.
func (s *State) notifyPage(change PageChange) {
	snapshot := append([]*Subscription(nil), s.pageSubs...)
	for _, sub := range snapshot {
		if sub.onPage != nil {
			sub.onPage(change)
		}
	}
}

func (s *State) notifySizing(change SizingChange) {
	snapshot := append([]*Subscription(nil), s.sizingSubs...)
	for _, sub := range snapshot {
		if sub.onSizing != nil {
			sub.onSizing(change)
		}
	}
}
