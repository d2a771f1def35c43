package model

// NotificationKind drives the icon and colour of a notification in the UI.
type NotificationKind string

const (
	NotificationAlert   NotificationKind = "alert"
	NotificationSuccess NotificationKind = "success"
)

// Notification is an entry in the notification centre.
type Notification struct {
	ID           int              `json:"id"`
	Kind         NotificationKind `json:"type"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	RelativeTime string           `json:"time"`
	Read         bool             `json:"read"`
}
