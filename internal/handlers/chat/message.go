package chat

//go:generate mockgen -destination=mock/mock_responder.go -package=chatmock github.com/KirkDiggler/rpg-table/internal/handlers/chat Responder

import (
	"context"
)

// User is a chat member referenced by a message
type User struct {
	ID   string
	Name string
}

// Message is an inbound chat message from any transport
type Message struct {
	AuthorID   string
	AuthorName string
	ChannelID  string
	Content    string
	// Mentions lists the members mentioned in Content, in order
	Mentions []User
}

// Responder delivers replies through the transport
type Responder interface {
	// Send posts text to a channel
	Send(ctx context.Context, channelID, text string) error
	// SendDirect posts text privately to one user
	SendDirect(ctx context.Context, userID, text string) error
}
