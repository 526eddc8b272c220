package ws

import "encoding/json"

func Serialize(cmd Command) ([]byte, error) {
	wrapper := SerializedCommand{
		Type:    cmd.GetType(),
		Payload: nil,
	}
	payload, err := ToJson(cmd)
	if err != nil {
		return nil, err
	}
	wrapper.Payload = payload
	return json.Marshal(wrapper)
}

func Deserialize(jsonBytes []byte) (Command, error) {
	var wrapper SerializedCommand
	if err := json.Unmarshal(jsonBytes, &wrapper); err != nil {
		return nil, err
	}

	return DeserializeSerializedCommand(&wrapper)
}

func DeserializeSerializedCommand(wrapper *SerializedCommand) (Command, error) {
	cmd, err := CreateCommand(wrapper.Type, typeRegistry)
	if err != nil {
		return nil, err
	}

	if err := FromJson(wrapper.Payload, cmd); err != nil {
		return nil, err
	}

	return cmd, nil
}
