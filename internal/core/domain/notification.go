package domain

// NotificationChannel is the medium a notification is delivered through.
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "EMAIL"
	ChannelSMS   NotificationChannel = "SMS"
)

// Notification is one rendered message for a user.
type Notification struct {
	Channel NotificationChannel
	To      string
	Subject string
	Body    string
}
