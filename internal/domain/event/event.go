// Package event describes the append-only log of drop and claim transitions.
package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeDropLaunched   Type = "drop_launched"
	TypeDropExtended   Type = "drop_extended"
	TypeDropCancelled  Type = "drop_cancelled"
	TypeDropExpired    Type = "drop_expired"
	TypeDropFilled     Type = "drop_filled"
	TypeClaimReceived  Type = "claim_received"
	TypeClaimConfirmed Type = "claim_confirmed"
	TypeClaimRejected  Type = "claim_rejected"
)

const (
	ActorSystem   = "system"
	ActorCustomer = "customer"
	ActorOperator = "operator"
)

type Payload map[string]any

type Event struct {
	ID         uuid.UUID `json:"id"`
	OperatorID uuid.UUID `json:"operator_id"`
	Type       Type      `json:"type"`
	Actor      string    `json:"actor"`
	Payload    Payload   `json:"payload"`
	CreatedAt  time.Time `json:"created_at"`
}

func New(operatorID uuid.UUID, typ Type, actor string, payload Payload, now time.Time) Event {
	if actor == "" {
		actor = ActorOperator
	}
	if payload == nil {
		payload = Payload{}
	}
	return Event{
		ID:         uuid.New(),
		OperatorID: operatorID,
		Type:       typ,
		Actor:      actor,
		Payload:    payload,
		CreatedAt:  now,
	}
}
