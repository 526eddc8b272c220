package ws

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/gofiber/websocket/v2"
	"github.com/kartiksrathod/Social-Media-sub000/internal/realtime"
	"github.com/kartiksrathod/Social-Media-sub000/internal/service"
)

// CommandContext provides all dependencies needed for command processing.
// Conn is the registry-wrapped connection: commands must write through it,
// never through the raw socket, so their writes serialize with deliveries.
type CommandContext struct {
	UserID     uint
	ConnID     string
	Conn       realtime.Conn
	Registry   *realtime.Registry
	Rooms      *realtime.RoomManager
	Dispatcher *realtime.Dispatcher
	Messages   *service.MessageService
	Presence   *service.PresenceService
}

// Command interface for all client-to-server WebSocket commands
type Command interface {
	GetType() string
	Process(ctx *CommandContext) error
}

// SerializedCommand is the wire format wrapper
type SerializedCommand struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ErrorResponse is sent when command processing fails
type ErrorResponse struct {
	Type    string `json:"type"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

func ToJson(cmd Command) ([]byte, error) {
	return json.Marshal(cmd)
}

func FromJson(jsonBytes []byte, cmd Command) error {
	return json.Unmarshal(jsonBytes, cmd)
}

func CreateCommand(cmdType string, typeRegistry map[string]reflect.Type) (Command, error) {
	cmdTypeReflect, ok := typeRegistry[cmdType]
	if !ok {
		return nil, fmt.Errorf("unknown command type: %s", cmdType)
	}

	instance := reflect.New(cmdTypeReflect).Interface()
	return instance.(Command), nil
}

// SendError sends an error response to the client
func SendError(conn realtime.Conn, code, message, details string) error {
	errResp := ErrorResponse{
		Type:    "error",
		Error:   message,
		Code:    code,
		Details: details,
	}
	data, err := json.Marshal(errResp)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}
