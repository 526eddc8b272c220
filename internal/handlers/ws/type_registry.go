package ws

import (
	"reflect"
)

var typeRegistry = map[string]reflect.Type{}

func init() {
	// Register all command types
	RegisterType(&CommandRegister{})
	RegisterType(&CommandJoinConversation{})
	RegisterType(&CommandLeaveConversation{})
	RegisterType(&CommandJoinPostRoom{})
	RegisterType(&CommandLeavePostRoom{})
	RegisterType(&CommandTyping{})
	RegisterType(&CommandStopTyping{})
	RegisterType(&CommandPing{})
	RegisterType(&CommandPong{})
}

func RegisterType(cmd Command) {
	typeRegistry[cmd.GetType()] = reflect.TypeOf(cmd).Elem()
}

// GetTypeRegistry returns the type registry for testing
func GetTypeRegistry() map[string]reflect.Type {
	return typeRegistry
}
