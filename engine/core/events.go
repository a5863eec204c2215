package core

import "github.com/lanecraft/moba-engine/engine/geom"

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtUnitDestroyed EventType = iota
	EvtUnitDamaged
	EvtProjectileFired
	EvtProjectileImpact
	EvtMinionSpawned
	EvtPlayerDied
	EvtPlayerRespawned
	EvtMonumentDestroyed
	EvtMatchOver
	EvtMatchReset
)

// ImpactPayload is broadcast on EvtProjectileImpact. Anything inside
// Blast of an opposing-team impact takes the full damage, no falloff.
type ImpactPayload struct {
	Pos    geom.Vec3
	Team   Team // firing team
	Damage int
	Blast  float64
}

// DestroyedPayload accompanies EvtUnitDestroyed
type DestroyedPayload struct {
	ID   EntityID
	Team Team
}

// MatchOverPayload accompanies EvtMatchOver
type MatchOverPayload struct {
	Winner Team
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Dispatch processes all queued events
func (eb *EventBus) Dispatch() {
	for i := 0; i < len(eb.queue); i++ {
		e := eb.queue[i]
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
	eb.queue = eb.queue[:0]
}
