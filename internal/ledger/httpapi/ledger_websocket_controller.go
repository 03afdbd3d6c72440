package httpapi

import (
	"context"
	"finance-tracker/internal/infra/async"
	"finance-tracker/internal/infra/httpserver"
	"finance-tracker/internal/ledger/httpapi/internal"
	"finance-tracker/internal/ledger/usecases"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	sharedhttpapi "finance-tracker/internal/shared_kernel/httpapi"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	_wsReadLimit    = 512
	_wsPongWait     = 60 * time.Second
	_wsPingInterval = 54 * time.Second
	_wsWriteWait    = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LedgerWebSocketController streams the caller's record changes. Every
// connection holds its own broker subscription and only sees its owner's
// records.
type LedgerWebSocketController struct {
	broker  async.InternalBroker
	ctx     context.Context
	cancel  context.CancelFunc
	clients sync.WaitGroup
}

func NewLedgerWebSocketController(broker async.InternalBroker) *LedgerWebSocketController {
	ctx, cancel := context.WithCancel(context.Background())
	return &LedgerWebSocketController{
		broker: broker,
		ctx:    ctx,
		cancel: cancel,
	}
}

var _ httpserver.Controller = (*LedgerWebSocketController)(nil)

func (c *LedgerWebSocketController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/ledger", c.handleWebSocket())
}

func (c *LedgerWebSocketController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := sharedhttpapi.RequestOwner(r)
		if owner == "" {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, "missing owner")
			return
		}

		subscription, err := c.broker.Subscribe(usecases.LedgerTopic)
		if err != nil {
			slog.Error("subscribing to ledger changes", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed to open change feed")
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			c.unsubscribe(subscription)
			return
		}

		slog.Info("ledger feed connected", slog.String("owner", owner.String()), slog.String("remote_addr", r.RemoteAddr))

		c.clients.Add(1)
		go c.serve(conn, owner, subscription)
	}
}

func (c *LedgerWebSocketController) serve(conn *websocket.Conn, owner shareddomain.OwnerID, subscription async.Subscription) {
	defer c.clients.Done()
	defer conn.Close()
	defer c.unsubscribe(subscription)

	closed := make(chan struct{})
	go readUntilClosed(conn, closed)

	ticker := time.NewTicker(_wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(_wsWriteWait))
			return

		case <-closed:
			slog.Debug("ledger feed disconnected", slog.String("owner", owner.String()))
			return

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(_wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case message, ok := <-subscription.Receiver:
			if !ok {
				return
			}

			change, ok := message.Value.(usecases.RecordChange)
			if !ok || change.Owner != owner {
				continue
			}

			conn.SetWriteDeadline(time.Now().Add(_wsWriteWait))
			if err := conn.WriteJSON(internal.ToChangeMessage(message.Event, change, time.Now())); err != nil {
				slog.Error("writing ledger change", slog.String("error", err.Error()))
				return
			}
		}
	}
}

// readUntilClosed drains client frames so pongs and close frames are
// processed, and closes done when the connection ends.
func readUntilClosed(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(_wsReadLimit)
	conn.SetReadDeadline(time.Now().Add(_wsPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(_wsPongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			}
			return
		}
	}
}

func (c *LedgerWebSocketController) unsubscribe(subscription async.Subscription) {
	if err := c.broker.Unsubscribe(usecases.LedgerTopic, subscription); err != nil {
		slog.Debug("unsubscribing ledger feed", slog.String("error", err.Error()))
	}
}

func (c *LedgerWebSocketController) Shutdown() {
	slog.Info("shutting down ledger websocket controller")
	c.cancel()
	c.clients.Wait()
}
