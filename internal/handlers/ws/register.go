package ws

import "fmt"

// CommandRegister binds the connection in the registry. The connection is
// already registered under the authenticated identity when the socket opens;
// this command exists for clients that re-announce after a reconnect and is
// idempotent. The payload id must match the authenticated user.
type CommandRegister struct {
	UserID uint `json:"user_id"`
}

func (cmd *CommandRegister) GetType() string {
	return "register"
}

func (cmd *CommandRegister) Process(ctx *CommandContext) error {
	if cmd.UserID != 0 && cmd.UserID != ctx.UserID {
		return fmt.Errorf("register user_id %d does not match authenticated user %d", cmd.UserID, ctx.UserID)
	}

	// Re-binding the same connection id is a no-op in the registry.
	ctx.Registry.Register(ctx.UserID, ctx.ConnID, ctx.Conn)
	return nil
}
