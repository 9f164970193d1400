// Package fcm wraps Firebase Cloud Messaging as the push transport.
package fcm

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// ErrTokenNotRegistered means the registration token is dead and should be
// removed so future runs do not retry it.
var ErrTokenNotRegistered = errors.New("fcm: registration token not valid")

const reminderChannelID = "backlog_reminders"

type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// Sender dispatches one push message and returns the transport receipt id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

type Client struct {
	messaging *messaging.Client
}

func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	mc, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init messaging client: %w", err)
	}
	return &Client{messaging: mc}, nil
}

func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	id, err := c.messaging.Send(ctx, &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: reminderChannelID,
				Priority:  messaging.PriorityHigh,
			},
		},
	})
	if err != nil {
		if messaging.IsRegistrationTokenNotRegistered(err) {
			return "", fmt.Errorf("%w: %v", ErrTokenNotRegistered, err)
		}
		return "", err
	}
	return id, nil
}
