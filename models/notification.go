package models

import "time"

// NotificationType tells clients how a notification should be displayed.
type NotificationType string

const (
	// NotificationList notifications are shown in the in-app inbox.
	NotificationList NotificationType = "list"
	// NotificationPush notifications are delivered as push messages.
	NotificationPush NotificationType = "push"
)

// Valid reports whether t is a known notification type.
func (t NotificationType) Valid() bool {
	return t == NotificationList || t == NotificationPush
}

// Notification is a message addressed to a single user.
type Notification struct {
	NotificationID int64            `json:"id"`
	To             int64            `json:"to"`
	Title          string           `json:"title"`
	Body           string           `json:"body"`
	Type           NotificationType `json:"type"`
	Seen           bool             `json:"seen"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Notification model.
func (n Notification) TableName() string {
	return "notifications"
}
