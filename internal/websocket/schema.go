package websocket

import "github.com/stemsi/asistnet-backend/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing    Action = "ping"
	ActionRefresh Action = "refresh"
)

// RequestEnvelope is every client message; only the action is inspected.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventNotifications Event = "notifications"
	EventPong          Event = "pong"
	EventError         Event = "error"
)

// NotificationsResponse carries the full notification list.
type NotificationsResponse struct {
	Event Event                `json:"event"`
	Data  []model.Notification `json:"data"`
}

type PongResponse struct {
	Event Event `json:"event"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}
