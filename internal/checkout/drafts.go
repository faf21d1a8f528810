package checkout

import (
	"sync"

	"neonburro-api/internal/domain"
)

// draftStore holds in-flight checkout drafts. Drafts are transient: created
// when the wizard opens, destroyed on completion or abandonment, never
// persisted. The secondary index by payment intent id serves the wallet
// completion path, which arrives keyed by intent rather than draft.
type draftStore struct {
	mu       sync.RWMutex
	drafts   map[string]draftState
	byIntent map[string]string
}

type draftState struct {
	Draft  domain.CheckoutDraft
	Kind   draftKind
	CartID string
	// Lines is the cart frozen at SubmitDetails for shop checkouts. The
	// order is minted from this snapshot, never the live cart, so a cart
	// mutation mid-checkout cannot desync the lines from the charged total.
	Lines []domain.CartLine
}

type draftKind string

const (
	kindProject draftKind = "project"
	kindShop    draftKind = "shop"
)

func newDraftStore() *draftStore {
	return &draftStore{
		drafts:   make(map[string]draftState),
		byIntent: make(map[string]string),
	}
}

func (s *draftStore) get(id string) (draftState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.drafts[id]
	return st, ok
}

func (s *draftStore) getByIntent(intentID string) (draftState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byIntent[intentID]
	if !ok {
		return draftState{}, false
	}
	st, ok := s.drafts[id]
	return st, ok
}

func (s *draftStore) save(st draftState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.drafts[st.Draft.ID]; ok &&
		prev.Draft.PaymentIntentID != "" &&
		prev.Draft.PaymentIntentID != st.Draft.PaymentIntentID {
		delete(s.byIntent, prev.Draft.PaymentIntentID)
	}
	s.drafts[st.Draft.ID] = st
	if st.Draft.PaymentIntentID != "" {
		s.byIntent[st.Draft.PaymentIntentID] = st.Draft.ID
	}
}

func (s *draftStore) delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.drafts[id]; ok && st.Draft.PaymentIntentID != "" {
		delete(s.byIntent, st.Draft.PaymentIntentID)
	}
	delete(s.drafts, id)
}
