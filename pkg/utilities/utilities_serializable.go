package utilities

import "encoding/json"

type Serializable interface {
	Serialize() ([]byte, error)
}

func Serialize(content any) ([]byte, error) {
	return json.Marshal(content)
}
