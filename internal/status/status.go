// Package status defines the admin triage state machines. Quote requests,
// contact messages and orders each carry their own vocabulary; the tables
// below are the only place transitions are decided.
package status

import (
	"fmt"

	"foodtrucks-maroc-api-server/internal/models"
)

// devisTransitions: intake creates every devis in "pending"; only admin
// action advances it. accepted and rejected are terminal.
var devisTransitions = map[models.DevisStatus][]models.DevisStatus{
	models.DevisPending:  {models.DevisQuoted, models.DevisAccepted, models.DevisRejected},
	models.DevisQuoted:   {models.DevisAccepted, models.DevisRejected},
	models.DevisAccepted: {},
	models.DevisRejected: {},
}

// messageTransitions is a ratchet: a message never regresses to unread,
// and unread may jump straight to replied.
var messageTransitions = map[models.MessageStatus][]models.MessageStatus{
	models.MessageUnread:  {models.MessageRead, models.MessageReplied},
	models.MessageRead:    {models.MessageReplied},
	models.MessageReplied: {},
}

// orderTransitions covers the separate Order vocabulary. Do not mix it up
// with devisTransitions; the two entities are conceptually distinct.
var orderTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderPending:   {models.OrderConfirmed, models.OrderCancelled},
	models.OrderConfirmed: {models.OrderDelivered, models.OrderCancelled},
	models.OrderDelivered: {},
	models.OrderCancelled: {},
}

// CanTransitionDevis reports whether from -> to is allowed. Re-applying the
// current status is an idempotent no-op and always allowed.
func CanTransitionDevis(from, to models.DevisStatus) bool {
	if from == to {
		return true
	}
	for _, s := range devisTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CanTransitionMessage reports whether from -> to is allowed.
func CanTransitionMessage(from, to models.MessageStatus) bool {
	if from == to {
		return true
	}
	for _, s := range messageTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CanTransitionOrder reports whether from -> to is allowed.
func CanTransitionOrder(from, to models.OrderStatus) bool {
	if from == to {
		return true
	}
	for _, s := range orderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ErrInvalidTransition describes a rejected status change.
type ErrInvalidTransition struct {
	From, To string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

// CheckDevis returns an error when from -> to is not allowed.
func CheckDevis(from, to models.DevisStatus) error {
	if !CanTransitionDevis(from, to) {
		return &ErrInvalidTransition{From: string(from), To: string(to)}
	}
	return nil
}

// CheckMessage returns an error when from -> to is not allowed.
func CheckMessage(from, to models.MessageStatus) error {
	if !CanTransitionMessage(from, to) {
		return &ErrInvalidTransition{From: string(from), To: string(to)}
	}
	return nil
}
