package mq

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

type Handler func(m *nats.Msg) (resp any)

// Service is a thin wrapper over a local NATS connection. Handlers are
// registered up front and activated individually, so command subjects can
// stay inert until the daemon is ready to serve them.
type Service struct {
	url string

	mx       sync.Mutex
	conn     *nats.Conn
	handlers map[string]Handler
	subs     map[string]*nats.Subscription
}

func NewService(url string) *Service {
	return &Service{
		url:      url,
		handlers: make(map[string]Handler),
		subs:     make(map[string]*nats.Subscription),
	}
}

func (s *Service) RegisterHandlers(handlers map[string]func(m *nats.Msg) (resp any)) {
	s.mx.Lock()
	defer s.mx.Unlock()

	for subject, handler := range handlers {
		s.handlers[subject] = handler
	}
}

func (s *Service) Connect() (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.conn != nil {
		return nil
	}

	if s.conn, err = nats.Connect(s.url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	); err != nil {
		return fmt.Errorf("Connect: %w", err)
	}

	return nil
}

// ActivateHandler subscribes the registered handler for subject.
func (s *Service) ActivateHandler(subject string) (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	handler, exists := s.handlers[subject]
	if !exists {
		return fmt.Errorf("ActivateHandler: handler for subject %s not registered", subject)
	}

	if _, active := s.subs[subject]; active {
		return nil
	}

	sub, err := s.conn.Subscribe(subject, func(m *nats.Msg) {
		resp := handler(m)
		if m.Reply == "" {
			return
		}

		data, err := json.Marshal(resp)
		if err != nil {
			log.Error().Err(err).Str("subject", subject).Msg("ActivateHandler: marshal response error")
			return
		}

		if err = m.Respond(data); err != nil {
			log.Error().Err(err).Str("subject", subject).Msg("ActivateHandler: respond error")
		}
	})
	if err != nil {
		return fmt.Errorf("ActivateHandler: %w", err)
	}

	s.subs[subject] = sub
	return nil
}

func (s *Service) ActivateAllHandlers() (err error) {
	s.mx.Lock()
	subjects := make([]string, 0, len(s.handlers))
	for subject := range s.handlers {
		subjects = append(subjects, subject)
	}
	s.mx.Unlock()

	for _, subject := range subjects {
		if err = s.ActivateHandler(subject); err != nil {
			return fmt.Errorf("ActivateAllHandlers: %w", err)
		}
	}

	return nil
}

func (s *Service) Close() (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.conn == nil {
		return nil
	}

	if err = s.conn.Drain(); err != nil {
		return fmt.Errorf("Close: %w", err)
	}

	s.conn = nil
	return nil
}
