package api

import (
	"net/http"
	"time"

	"MacroPulse/internal/domain/models"
	"MacroPulse/internal/usecase"
	xhttp "MacroPulse/pkg/http"
	applogger "MacroPulse/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	wsWriteTimeout    = 10 * time.Second
	wsPingInterval    = 30 * time.Second
	wsRefreshInterval = 15 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The dashboard is served from another origin.
	CheckOrigin: func(*http.Request) bool { return true },
}

// StreamHandler pushes the latest composite signal for a series over a
// websocket. Clients subscribe via query parameters and receive a fresh
// snapshot every refresh interval.
type StreamHandler struct {
	svc *usecase.SeriesService
	l   *applogger.Logger
}

func NewStreamHandler(svc *usecase.SeriesService, l *applogger.Logger) *StreamHandler {
	return &StreamHandler{svc: svc, l: l}
}

func (h *StreamHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/series", h.Stream)
}

type streamFrame struct {
	SeriesID string              `json:"series_id"`
	Signal   *models.SignalPoint `json:"signal,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// Stream upgrades the connection and pushes snapshots until the client
// disconnects.
func (h *StreamHandler) Stream(c echo.Context) error {
	req := &models.SignalsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	h.l.Info("ws subscriber connected",
		applogger.String("series", req.SeriesID),
		applogger.String("remote", conn.RemoteAddr().String()),
	)

	// Drain client frames so pong handling and close frames work.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	refresh := time.NewTicker(wsRefreshInterval)
	defer refresh.Stop()
	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	// first snapshot immediately
	if err := h.push(c, conn, req); err != nil {
		return nil
	}

	for {
		select {
		case <-done:
			return nil
		case <-c.Request().Context().Done():
			return nil
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-refresh.C:
			if err := h.push(c, conn, req); err != nil {
				return nil
			}
		}
	}
}

func (h *StreamHandler) push(c echo.Context, conn *websocket.Conn, req *models.SignalsRequest) error {
	frame := streamFrame{SeriesID: req.SeriesID}

	points, err := h.svc.GetSignals(c.Request().Context(), *req)
	if err != nil {
		h.l.Warn("ws snapshot failed",
			applogger.String("series", req.SeriesID),
			applogger.Error(err),
		)
		frame.Error = err.Error()
	} else if len(points) > 0 {
		frame.Signal = &points[len(points)-1]
	}

	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteJSON(frame)
}
