package status

import (
	"github.com/rs/zerolog/log"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/observable"
)

// Service fans status events out from the domain services to the
// orchestrator and the websocket push channel.
type Service struct {
	events *observable.Observable[entities.StatusEvent]
}

func NewService() *Service {
	return &Service{
		events: observable.New[entities.StatusEvent](),
	}
}

func (s *Service) Publish(event entities.StatusEvent) {
	log.Debug().
		Str("type", string(event.Type)).
		Str("reason", string(event.Reason)).
		Msg("Publish: status event")

	s.events.Publish(event)
}

func (s *Service) Subscribe() *observable.Subscription[entities.StatusEvent] {
	return s.events.Subscribe()
}

// SubscribeEvents is the channel form of Subscribe for subscribers that
// live for the whole process.
func (s *Service) SubscribeEvents() <-chan entities.StatusEvent {
	return s.events.Subscribe().C()
}

func (s *Service) Unsubscribe(sub *observable.Subscription[entities.StatusEvent]) {
	s.events.Unsubscribe(sub)
}
