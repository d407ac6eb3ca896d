package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	deliverycontext "fleetgate/internal/delivery/context"
	"fleetgate/internal/delivery/http/middleware"
	"fleetgate/internal/domain/entity"
	"fleetgate/internal/usecase"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// searchRequest is one keystroke from the client.
type searchRequest struct {
	Query string `json:"query"`
}

// searchEvent is a server push: either an immediate hint for the current
// query or the debounced lookup results.
type searchEvent struct {
	Type    string          `json:"type"`
	Query   string          `json:"query,omitempty"`
	Hint    string          `json:"hint,omitempty"`
	Devices []entity.Device `json:"devices,omitempty"`
}

// SearchHandler runs the live device search over a websocket. Each
// connection owns one debounced search session; results arrive as they
// resolve, stale ones are dropped server-side.
type SearchHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		uc:     uc,
		logger: logger,
	}
}

// Live upgrades the connection and pumps queries into a search session.
func (h *SearchHandler) Live(c echo.Context) error {
	session := middleware.GetSession(c)
	logger := deliverycontext.LoggerOrDefault(c.Request().Context(), h.logger)

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	// gorilla allows one concurrent writer; the debounce callback and the
	// read loop both write
	var writeMu sync.Mutex
	write := func(event searchEvent) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(event)
	}

	search := h.uc.NewSearchSession(session, func(devices []entity.Device) {
		if err := write(searchEvent{Type: "results", Devices: devices}); err != nil {
			logger.Debug("search push failed", slog.Any("error", err))
		}
	})
	defer search.Close()

	for {
		var req searchRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("search socket closed", slog.Any("error", err))
			}
			return nil
		}

		hint := search.SetQuery(req.Query)
		if err := write(searchEvent{Type: "hint", Query: req.Query, Hint: hint}); err != nil {
			return nil
		}
	}
}
