package statemachine

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/lanca/lanca-api/internal/models"
)

// ErrInvalidState is returned when the requested status cannot be reached
var ErrInvalidState = errors.New("transição de status inválida")

// Payable events
const (
	EventPay     = "pay"
	EventReopen  = "reopen"
	EventCancel  = "cancel"
	EventRestore = "restore"
	EventReset   = "reset"
)

// PayableFSM wraps a payable with its state machine
type PayableFSM struct {
	payable *models.Payable
	fsm     *fsm.FSM
}

// NewPayableFSM creates a new payable state machine
func NewPayableFSM(payable *models.Payable) *PayableFSM {
	current := models.NormalizeStatus(payable.Status)
	if current == "" {
		current = models.StatusPending
	}

	events := fsm.Events{
		// Pendente → Pago
		{Name: EventPay, Src: []string{models.StatusPending}, Dst: models.StatusPaid},

		// Pago → Pendente (undo)
		{Name: EventReopen, Src: []string{models.StatusPaid}, Dst: models.StatusPending},

		// Pendente → Cancelado
		{Name: EventCancel, Src: []string{models.StatusPending}, Dst: models.StatusCancelled},

		// Cancelado → Pendente
		{Name: EventRestore, Src: []string{models.StatusCancelled}, Dst: models.StatusPending},
	}
	if !isKnown(current) {
		// legacy free-text status can only go back to Pendente
		events = append(events, fsm.EventDesc{Name: EventReset, Src: []string{current}, Dst: models.StatusPending})
	}

	return &PayableFSM{
		payable: payable,
		fsm:     fsm.NewFSM(current, events, fsm.Callbacks{}),
	}
}

// Pay transitions the payable to Pago
func (p *PayableFSM) Pay(ctx context.Context) error {
	return p.fire(ctx, EventPay)
}

// Reopen moves a paid payable back to Pendente
func (p *PayableFSM) Reopen(ctx context.Context) error {
	return p.fire(ctx, EventReopen)
}

// Cancel transitions the payable to Cancelado
func (p *PayableFSM) Cancel(ctx context.Context) error {
	return p.fire(ctx, EventCancel)
}

// Restore moves a cancelled payable back to Pendente
func (p *PayableFSM) Restore(ctx context.Context) error {
	return p.fire(ctx, EventRestore)
}

// SetStatus fires whichever event reaches target. Setting the current
// status again is a no-op.
func (p *PayableFSM) SetStatus(ctx context.Context, target string) error {
	target = models.NormalizeStatus(target)
	if target == p.fsm.Current() {
		p.payable.Status = target
		return nil
	}
	for _, event := range p.fsm.AvailableTransitions() {
		if p.destination(event) == target {
			return p.fire(ctx, event)
		}
	}
	return fmt.Errorf("%w: %s → %s", ErrInvalidState, p.fsm.Current(), target)
}

// Current returns the current state
func (p *PayableFSM) Current() string {
	return p.fsm.Current()
}

// Can checks if a transition is possible
func (p *PayableFSM) Can(event string) bool {
	return p.fsm.Can(event)
}

// Targets lists the statuses reachable from the current one
func (p *PayableFSM) Targets() []string {
	targets := []string{}
	for _, event := range p.fsm.AvailableTransitions() {
		targets = append(targets, p.destination(event))
	}
	return targets
}

func (p *PayableFSM) fire(ctx context.Context, event string) error {
	if !p.fsm.Can(event) {
		return fmt.Errorf("%w: %s não permite %s", ErrInvalidState, p.fsm.Current(), event)
	}
	if err := p.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	p.payable.Status = p.fsm.Current()
	return nil
}

func (p *PayableFSM) destination(event string) string {
	switch event {
	case EventPay:
		return models.StatusPaid
	case EventCancel:
		return models.StatusCancelled
	default:
		return models.StatusPending
	}
}

func isKnown(status string) bool {
	for _, s := range models.KnownStatuses {
		if s == status {
			return true
		}
	}
	return false
}
