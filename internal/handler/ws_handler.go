package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stemsi/asistnet-backend/internal/response"
	"github.com/stemsi/asistnet-backend/internal/service"
	ws "github.com/stemsi/asistnet-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams the notification centre over WebSocket.
type WSHandler struct {
	queryService *service.QueryService
	log          zerolog.Logger
	upgrader     websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(queryService *service.QueryService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		queryService: queryService,
		log:          log.With().Str("component", "ws_handler").Logger(),
		upgrader:     buildUpgrader(allowedOrigins),
	}
}

// NotificationStream godoc
// WS /ws/notifications
// Sends the notification list on connect and again on every "refresh";
// answers "ping" with "pong".
func (h *WSHandler) NotificationStream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Str("request_id", response.RequestID(c)).Logger()
	wsLog.Debug().Msg("Client connected")

	ctx := c.Request.Context()
	if err := h.sendNotifications(c, conn); err != nil {
		wsLog.Debug().Err(err).Msg("Initial write failed")
		return
	}

	for {
		var msg ws.RequestEnvelope
		if err := ws.ReadJSON(conn, &msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			return
		}

		switch msg.Action {
		case ws.ActionPing:
			err = ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong})
		case ws.ActionRefresh:
			err = h.sendNotifications(c, conn)
		default:
			err = ws.WriteError(conn, "unknown action: "+string(msg.Action))
		}
		if err != nil || ctx.Err() != nil {
			return
		}
	}
}

func (h *WSHandler) sendNotifications(c *gin.Context, conn *websocket.Conn) error {
	return ws.WriteTyped(conn, ws.NotificationsResponse{
		Event: ws.EventNotifications,
		Data:  h.queryService.ListNotifications(c.Request.Context()),
	})
}
