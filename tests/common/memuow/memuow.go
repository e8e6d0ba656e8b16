//go:build unit || e2e

// Package memuow is an in-memory UnitOfWork for command tests.
// Transactions are serialized and only committed when fn returns nil.
package memuow

import (
	"context"
	"sync"
	"time"

	domclaim "drop-arbiter/internal/domain/claim"
	domdrop "drop-arbiter/internal/domain/drop"
	"drop-arbiter/internal/domain/event"
	domoperator "drop-arbiter/internal/domain/operator"
	"drop-arbiter/internal/infra"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	"drop-arbiter/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	drops     map[uuid.UUID]*domdrop.Drop
	claims    map[uuid.UUID]*domclaim.Claim
	operators map[uuid.UUID]*domoperator.Operator
	events    []event.Event
}

func (s *state) clone() *state {
	c := &state{
		drops:     make(map[uuid.UUID]*domdrop.Drop, len(s.drops)),
		claims:    make(map[uuid.UUID]*domclaim.Claim, len(s.claims)),
		operators: make(map[uuid.UUID]*domoperator.Operator, len(s.operators)),
		events:    append([]event.Event(nil), s.events...),
	}
	for id, d := range s.drops {
		c.drops[id] = d.Clone()
	}
	for id, cl := range s.claims {
		c.claims[id] = cl.Clone()
	}
	for id, op := range s.operators {
		c.operators[id] = op
	}
	return c
}

type Store struct {
	mu      sync.Mutex
	state   *state
	commits int
	// FailNext makes the next Within return this error without committing.
	FailNext error
}

func New() *Store {
	return &Store{state: &state{
		drops:     map[uuid.UUID]*domdrop.Drop{},
		claims:    map[uuid.UUID]*domclaim.Claim{},
		operators: map[uuid.UUID]*domoperator.Operator{},
	}}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.FailNext; err != nil {
		s.FailNext = nil
		return err
	}

	staged := s.state.clone()
	if err := fn(ctx, &memTx{st: staged}); err != nil {
		return err
	}
	s.state = staged
	s.commits++
	return nil
}

func (s *Store) PutDrop(d *domdrop.Drop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.drops[d.ID()] = d.Clone()
}

func (s *Store) PutClaim(c *domclaim.Claim) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.claims[c.ID()] = c.Clone()
}

func (s *Store) PutOperator(op *domoperator.Operator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.operators[op.ID()] = op
}

func (s *Store) Drop(id uuid.UUID) *domdrop.Drop {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.state.drops[id]; ok {
		return d.Clone()
	}
	return nil
}

func (s *Store) Claim(id uuid.UUID) *domclaim.Claim {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.state.claims[id]; ok {
		return c.Clone()
	}
	return nil
}

func (s *Store) Operator(id uuid.UUID) *domoperator.Operator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.operators[id]
}

// ClaimsFor returns the claims of a drop, optionally filtered by status.
func (s *Store) ClaimsFor(dropID uuid.UUID, status ...domclaim.Status) []*domclaim.Claim {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domclaim.Claim
	for _, c := range s.state.claims {
		if c.DropID() != dropID {
			continue
		}
		if len(status) > 0 && c.Status() != status[0] {
			continue
		}
		out = append(out, c.Clone())
	}
	return out
}

func (s *Store) Events() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.state.events...)
}

func (s *Store) EventTypes() []event.Type {
	events := s.Events()
	out := make([]event.Type, 0, len(events))
	for _, e := range events {
		out = append(out, e.Type)
	}
	return out
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

type memTx struct {
	st *state
}

func (t *memTx) Drops() shared.DropRepository         { return dropRepo{t.st} }
func (t *memTx) Claims() shared.ClaimRepository       { return claimRepo{t.st} }
func (t *memTx) Events() shared.EventRepository       { return eventRepo{t.st} }
func (t *memTx) Operators() shared.OperatorRepository { return operatorRepo{t.st} }
func (t *memTx) DB() sqlc.DBTX                        { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type dropRepo struct{ st *state }

func (r dropRepo) Create(_ context.Context, _ sqlc.DBTX, d *domdrop.Drop) error {
	r.st.drops[d.ID()] = d.Clone()
	return nil
}

func (r dropRepo) LockByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*domdrop.Drop, error) {
	d, ok := r.st.drops[id]
	if !ok {
		return nil, notFound("drop not found")
	}
	return d.Clone(), nil
}

func (r dropRepo) LockOwned(_ context.Context, _ sqlc.DBTX, id, operatorID uuid.UUID) (*domdrop.Drop, error) {
	d, ok := r.st.drops[id]
	if !ok || d.OperatorID() != operatorID {
		return nil, notFound("drop not found")
	}
	return d.Clone(), nil
}

func (r dropRepo) MarkExpired(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (bool, error) {
	d, ok := r.st.drops[id]
	if !ok || !d.IsLive() {
		return false, nil
	}
	return true, d.Expire()
}

func (r dropRepo) MarkFilled(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (bool, error) {
	d, ok := r.st.drops[id]
	if !ok || !d.IsLive() {
		return false, nil
	}
	return true, d.Fill()
}

func (r dropRepo) Cancel(_ context.Context, _ sqlc.DBTX, id, operatorID uuid.UUID) (bool, error) {
	d, ok := r.st.drops[id]
	if !ok || d.OperatorID() != operatorID || !d.IsLive() {
		return false, nil
	}
	return true, d.Cancel()
}

func (r dropRepo) Extend(_ context.Context, _ sqlc.DBTX, id, operatorID uuid.UUID, seconds int32) (*domdrop.Drop, bool, error) {
	d, ok := r.st.drops[id]
	if !ok || d.OperatorID() != operatorID || !d.IsLive() {
		return nil, false, nil
	}
	if err := d.Extend(seconds); err != nil {
		return nil, false, err
	}
	return d.Clone(), true, nil
}

func (r dropRepo) ExpireDue(_ context.Context, _ sqlc.DBTX, now time.Time) ([]shared.ExpiredDrop, error) {
	var out []shared.ExpiredDrop
	for _, d := range r.st.drops {
		if !d.IsDueAt(now) {
			continue
		}
		_ = d.Expire()
		out = append(out, shared.ExpiredDrop{ID: d.ID(), OperatorID: d.OperatorID()})
	}
	return out, nil
}

type claimRepo struct{ st *state }

func (r claimRepo) Create(_ context.Context, _ sqlc.DBTX, c *domclaim.Claim) error {
	if _, ok := r.st.drops[c.DropID()]; !ok {
		return infra.WrapRepoErr("drop missing", nil, infra.KindForeignKeyViolated)
	}
	r.st.claims[c.ID()] = c.Clone()
	return nil
}

func (r claimRepo) LockWithDrop(_ context.Context, _ sqlc.DBTX, claimID, operatorID uuid.UUID) (*domclaim.Claim, *domdrop.Drop, error) {
	c, ok := r.st.claims[claimID]
	if !ok {
		return nil, nil, notFound("claim not found")
	}
	d, ok := r.st.drops[c.DropID()]
	if !ok || d.OperatorID() != operatorID {
		return nil, nil, notFound("claim not found")
	}
	return c.Clone(), d.Clone(), nil
}

func (r claimRepo) CountConfirmed(_ context.Context, _ sqlc.DBTX, dropID uuid.UUID) (int32, error) {
	var n int32
	for _, c := range r.st.claims {
		if c.DropID() == dropID && c.Status() == domclaim.StatusConfirmed {
			n++
		}
	}
	return n, nil
}

func (r claimRepo) Confirm(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time) (*domclaim.Claim, error) {
	c, ok := r.st.claims[id]
	if !ok || !c.IsPending() {
		return nil, notFound("pending claim not found")
	}
	if err := c.Confirm(at); err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

func (r claimRepo) Reject(_ context.Context, _ sqlc.DBTX, id, operatorID uuid.UUID) (*domclaim.Claim, error) {
	c, ok := r.st.claims[id]
	if !ok || !c.IsPending() {
		return nil, notFound("pending claim not found")
	}
	if d, ok := r.st.drops[c.DropID()]; !ok || d.OperatorID() != operatorID {
		return nil, notFound("pending claim not found")
	}
	if err := c.Reject(); err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

func (r claimRepo) ExpirePending(_ context.Context, _ sqlc.DBTX, dropIDs []uuid.UUID) (int64, error) {
	targets := make(map[uuid.UUID]struct{}, len(dropIDs))
	for _, id := range dropIDs {
		targets[id] = struct{}{}
	}
	var n int64
	for _, c := range r.st.claims {
		if _, ok := targets[c.DropID()]; ok && c.Expire() {
			n++
		}
	}
	return n, nil
}

type eventRepo struct{ st *state }

func (r eventRepo) Append(_ context.Context, _ sqlc.DBTX, e event.Event) error {
	r.st.events = append(r.st.events, e)
	return nil
}

type operatorRepo struct{ st *state }

func (r operatorRepo) Upsert(_ context.Context, _ sqlc.DBTX, op *domoperator.Operator) error {
	r.st.operators[op.ID()] = op
	return nil
}

// Publisher records every batch handed to the event publisher.
type Publisher struct {
	mu      sync.Mutex
	batches [][]event.Event
}

func (p *Publisher) Publish(_ context.Context, events []event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.batches = append(p.batches, events)
}

func (p *Publisher) Events() []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []event.Event
	for _, b := range p.batches {
		out = append(out, b...)
	}
	return out
}

func (p *Publisher) Types() []event.Type {
	events := p.Events()
	out := make([]event.Type, 0, len(events))
	for _, e := range events {
		out = append(out, e.Type)
	}
	return out
}
