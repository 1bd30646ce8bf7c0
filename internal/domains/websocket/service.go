package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/mq"
)

const sendQueueSize = 32

type (
	IStatusService interface {
		SubscribeEvents() <-chan entities.StatusEvent
	}

	// WsHandler serves one command method. The returned value is
	// marshalled into the reply body.
	WsHandler func(body json.RawMessage) (resp any)

	Message struct {
		ID     string          `json:"id,omitempty"`
		Method string          `json:"method"`
		Body   json.RawMessage `json:"body,omitempty"`
	}

	Reply struct {
		ID     string `json:"id,omitempty"`
		Method string `json:"method"`
		Body   any    `json:"body,omitempty"`
	}
)

// Service is the local websocket endpoint the GUI connects to. Every
// status event is pushed to all connected clients; command methods are
// dispatched through the route table.
type Service struct {
	statusService IStatusService
	listenAddr    string
	upgrader      websocket.Upgrader

	routes map[string]WsHandler

	mx    sync.Mutex
	conns map[*websocket.Conn]chan []byte
}

func NewService(statusService IStatusService, listenAddr string) *Service {
	return &Service{
		statusService: statusService,
		listenAddr:    listenAddr,
		upgrader: websocket.Upgrader{
			// local GUI only, daemon binds loopback
			CheckOrigin: func(_ *http.Request) bool { return true },
		},

		routes: map[string]WsHandler{},
		conns:  make(map[*websocket.Conn]chan []byte),
	}
}

func (s *Service) SetRoutes(routes map[string]WsHandler) {
	s.routes = routes
}

// Run serves websocket connections until the context is cancelled.
func (s *Service) Run(ctx context.Context) (err error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleUpgrade)

	server := &http.Server{
		Addr:    s.listenAddr,
		Handler: mux,
	}

	go s.broadcastEvents(ctx)

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.WSWriteWait)
		defer cancel()

		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("Run: server shutdown error")
		}
	}()

	log.Info().
		Str("addr", s.listenAddr).
		Msg("Run: websocket endpoint listening")

	if err = server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *Service) broadcastEvents(ctx context.Context) {
	events := s.statusService.SubscribeEvents()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}

			data, err := json.Marshal(Reply{
				Method: constants.MethodStatusEvent,
				Body:   event,
			})
			if err != nil {
				log.Error().Err(err).Msg("broadcastEvents: marshal error")
				continue
			}

			s.mx.Lock()
			for _, sendChan := range s.conns {
				select {
				case sendChan <- data:
				default:
					// slow client, drop the event for it
				}
			}
			s.mx.Unlock()
		}
	}
}

func (s *Service) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("handleUpgrade: upgrade error")
		return
	}

	sendChan := make(chan []byte, sendQueueSize)

	s.mx.Lock()
	s.conns[conn] = sendChan
	s.mx.Unlock()

	log.Debug().
		Str("remote", conn.RemoteAddr().String()).
		Msg("handleUpgrade: client connected")

	go s.writeLoop(conn, sendChan)
	s.readLoop(conn, sendChan)
}

func (s *Service) readLoop(conn *websocket.Conn, sendChan chan []byte) {
	defer s.dropConn(conn)

	_ = conn.SetReadDeadline(time.Now().Add(constants.WSPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(constants.WSPongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Msg("readLoop: client gone")
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			s.reply(sendChan, Reply{
				Body: mq.NewBadRequestResponse(err.Error()),
			})
			continue
		}

		handler, exists := s.routes[message.Method]
		if !exists {
			s.reply(sendChan, Reply{
				ID:     message.ID,
				Method: message.Method,
				Body:   mq.NewBadRequestResponse("unknown method"),
			})
			continue
		}

		go func(message Message) {
			s.reply(sendChan, Reply{
				ID:     message.ID,
				Method: message.Method,
				Body:   handler(message.Body),
			})
		}(message)
	}
}

func (s *Service) writeLoop(conn *websocket.Conn, sendChan chan []byte) {
	ticker := time.NewTicker(constants.WSPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-sendChan:
			if !ok {
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(constants.WSWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Debug().Err(err).Msg("writeLoop: write error")
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(constants.WSWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Service) reply(sendChan chan []byte, r Reply) {
	data, err := json.Marshal(r)
	if err != nil {
		log.Error().Err(err).Msg("reply: marshal error")
		return
	}

	select {
	case sendChan <- data:
	default:
	}
}

func (s *Service) dropConn(conn *websocket.Conn) {
	s.mx.Lock()
	if sendChan, exists := s.conns[conn]; exists {
		delete(s.conns, conn)
		close(sendChan)
	}
	s.mx.Unlock()

	_ = conn.Close()
}
