package httpapi_test

import (
	"context"
	"finance-tracker/internal/infra/async"
	"finance-tracker/internal/infra/httpserver"
	"finance-tracker/internal/ledger/domain"
	ledger_httpapi "finance-tracker/internal/ledger/httpapi"
	ledger_httpapi_internal "finance-tracker/internal/ledger/httpapi/internal"
	"finance-tracker/internal/ledger/usecases"
	schemadomain "finance-tracker/internal/schema/domain"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("LedgerWebSocketController", func() {
	var (
		broker     *async.LocalBroker
		controller *ledger_httpapi.LedgerWebSocketController
		server     *httptest.Server
	)

	dial := func(owner string) *websocket.Conn {
		url := strings.Replace(server.URL, "http", "ws", 1) + "/ws/ledger?user_id=" + owner
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(conn.Close)
		return conn
	}

	publish := func(event string, change usecases.RecordChange) {
		Expect(broker.Publish(context.Background(), usecases.LedgerTopic, async.BrokerMessage{Event: event, Value: change})).To(Succeed())
	}

	BeforeEach(func() {
		broker = async.NewLocalBroker()
		controller = ledger_httpapi.NewLedgerWebSocketController(broker)
		handler := httpserver.NewServer(httpserver.ServerConfig{AllowedOrigins: []string{"*"}}, controller).Handler()
		server = httptest.NewServer(handler)

		DeferCleanup(func() {
			server.Close()
			controller.Shutdown()
			broker.Stop()
		})
	})

	It("should refuse connections without an owner", func() {
		url := strings.Replace(server.URL, "http", "ws", 1) + "/ws/ledger"
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)

		Expect(err).To(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
	})

	It("should only push the owner's changes", func() {
		mine := dial("owner-1")
		theirs := dial("owner-2")

		// Subscriptions are taken before the upgrade completes.
		publish(usecases.EventRecordDeleted, usecases.RecordChange{Owner: "owner-2", Context: schemadomain.ContextIncome, ID: "rec-2"})
		record := domain.Record{
			ID:         "rec-1",
			Owner:      "owner-1",
			Context:    schemadomain.ContextExpense,
			Amount:     decimal.NewFromInt(5),
			OccurredOn: "2026-03-02",
		}
		publish(usecases.EventRecordCreated, usecases.RecordChange{Owner: "owner-1", Context: schemadomain.ContextExpense, ID: "rec-1", Record: &record})

		var created ledger_httpapi_internal.ChangeMessage
		mine.SetReadDeadline(time.Now().Add(2 * time.Second))
		Expect(mine.ReadJSON(&created)).To(Succeed())
		Expect(created.Type).To(Equal(usecases.EventRecordCreated))
		Expect(created.ID).To(Equal("rec-1"))
		Expect(created.Record.Amount).To(Equal("5"))

		var deleted ledger_httpapi_internal.ChangeMessage
		theirs.SetReadDeadline(time.Now().Add(2 * time.Second))
		Expect(theirs.ReadJSON(&deleted)).To(Succeed())
		Expect(deleted.Type).To(Equal(usecases.EventRecordDeleted))
		Expect(deleted.ID).To(Equal("rec-2"))
		Expect(deleted.Record).To(BeNil())
	})

	It("should close client connections on shutdown", func() {
		conn := dial("owner-1")

		controller.Shutdown()

		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, _, err := conn.ReadMessage()
		Expect(websocket.IsCloseError(err, websocket.CloseGoingAway)).To(BeTrue())
	})
})
