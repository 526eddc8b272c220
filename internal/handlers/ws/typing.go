package ws

import (
	"github.com/kartiksrathod/Social-Media-sub000/internal/realtime"
)

// TypingPayload is what other room members receive for user_typing and
// user_stop_typing.
type TypingPayload struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
}

// CommandTyping relays a typing signal to the other members of the
// conversation room. The server keeps no typing state and runs no timers:
// the receiving client times out its own "is typing" display (~3s) in case
// the stop signal is lost, since this channel has no delivery guarantee.
type CommandTyping struct {
	ConversationID uint   `json:"conversationId"`
	UserID         uint   `json:"userId"`
	Username       string `json:"username"`
}

func (cmd *CommandTyping) GetType() string {
	return "typing"
}

func (cmd *CommandTyping) Process(ctx *CommandContext) error {
	room := realtime.ConversationRoom(cmd.ConversationID)
	if !ctx.Rooms.InRoom(ctx.ConnID, room) {
		// Typing outside a joined room is dropped, not an error.
		return nil
	}
	ctx.Dispatcher.DeliverToRoom(room, realtime.EventUserTyping,
		TypingPayload{UserID: ctx.UserID, Username: cmd.Username},
		ctx.ConnID)
	return nil
}

// CommandStopTyping relays an explicit stop signal to the other members.
type CommandStopTyping struct {
	ConversationID uint   `json:"conversationId"`
	UserID         uint   `json:"userId"`
	Username       string `json:"username"`
}

func (cmd *CommandStopTyping) GetType() string {
	return "stop_typing"
}

func (cmd *CommandStopTyping) Process(ctx *CommandContext) error {
	room := realtime.ConversationRoom(cmd.ConversationID)
	if !ctx.Rooms.InRoom(ctx.ConnID, room) {
		return nil
	}
	ctx.Dispatcher.DeliverToRoom(room, realtime.EventUserStopTyping,
		TypingPayload{UserID: ctx.UserID, Username: cmd.Username},
		ctx.ConnID)
	return nil
}
