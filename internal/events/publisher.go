// Package events publishes user lifecycle events to the configured broker.
// Publishing is best-effort: a broker outage never fails the request that
// triggered the event.
package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/restofront/apiserver/internal/mq"
	"github.com/restofront/apiserver/types"
)

// UserEventsChannel is the broker channel carrying user lifecycle events.
const UserEventsChannel = "user.events"

const (
	EventUserRegistered  = "user.registered"
	EventUserRoleChanged = "user.role_changed"
)

// UserEvent is the wire payload for user lifecycle events. It carries
// identity and role only; hashes and tokens never enter the broker.
type UserEvent struct {
	Event  string     `json:"event"`
	UserID int        `json:"user_id"`
	Email  string     `json:"email"`
	Role   types.Role `json:"role"`
}

// Publisher emits user events through an MQ instance. A Publisher with a
// nil bus is valid and drops all events, so callers need no nil checks.
type Publisher struct {
	bus *mq.MQ
}

func NewPublisher(bus *mq.MQ) *Publisher {
	return &Publisher{bus: bus}
}

// UserRegistered announces a newly created account.
func (p *Publisher) UserRegistered(ctx context.Context, user types.User) {
	p.publish(ctx, UserEvent{
		Event:  EventUserRegistered,
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
}

// UserRoleChanged announces a role update.
func (p *Publisher) UserRoleChanged(ctx context.Context, user types.User) {
	p.publish(ctx, UserEvent{
		Event:  EventUserRoleChanged,
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
}

func (p *Publisher) publish(ctx context.Context, event UserEvent) {
	if p == nil || p.bus == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("events: marshal %s: %v", event.Event, err)
		return
	}
	attrs := map[string]string{"event": event.Event}
	if _, err := p.bus.Publish(ctx, UserEventsChannel, data, attrs); err != nil {
		log.Printf("events: publish %s: %v", event.Event, err)
	}
}
