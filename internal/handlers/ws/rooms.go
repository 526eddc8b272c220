package ws

import (
	"github.com/kartiksrathod/Social-Media-sub000/internal/realtime"
)

// Room commands are view-scoped: clients join when opening a conversation or
// a post's comment thread and leave on navigating away. The server never
// joins a connection to a room on its own.

// CommandJoinConversation subscribes the connection to a conversation room.
type CommandJoinConversation struct {
	ID uint `json:"id"`
}

func (cmd *CommandJoinConversation) GetType() string {
	return "join_conversation"
}

func (cmd *CommandJoinConversation) Process(ctx *CommandContext) error {
	ok, err := ctx.Messages.VerifyParticipant(cmd.ID, ctx.UserID)
	if err != nil {
		return err
	}
	if !ok {
		// Not a participant: ignore rather than leak the conversation's existence.
		return nil
	}
	ctx.Rooms.Join(ctx.ConnID, realtime.ConversationRoom(cmd.ID))
	return nil
}

// CommandLeaveConversation unsubscribes the connection from a conversation room.
type CommandLeaveConversation struct {
	ID uint `json:"id"`
}

func (cmd *CommandLeaveConversation) GetType() string {
	return "leave_conversation"
}

func (cmd *CommandLeaveConversation) Process(ctx *CommandContext) error {
	ctx.Rooms.Leave(ctx.ConnID, realtime.ConversationRoom(cmd.ID))
	return nil
}

// CommandJoinPostRoom subscribes the connection to a post's comment room.
type CommandJoinPostRoom struct {
	ID uint `json:"id"`
}

func (cmd *CommandJoinPostRoom) GetType() string {
	return "join_post_room"
}

func (cmd *CommandJoinPostRoom) Process(ctx *CommandContext) error {
	ctx.Rooms.Join(ctx.ConnID, realtime.PostRoom(cmd.ID))
	return nil
}

// CommandLeavePostRoom unsubscribes the connection from a post's comment room.
type CommandLeavePostRoom struct {
	ID uint `json:"id"`
}

func (cmd *CommandLeavePostRoom) GetType() string {
	return "leave_post_room"
}

func (cmd *CommandLeavePostRoom) Process(ctx *CommandContext) error {
	ctx.Rooms.Leave(ctx.ConnID, realtime.PostRoom(cmd.ID))
	return nil
}
