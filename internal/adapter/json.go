package adapter

import (
	"encoding/json"
)

// JSON abstracts message encoding so trigger payload handling can be
// mocked in tests.
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

type stdJSON struct{}

// NewJSON returns a JSON implementation backed by encoding/json.
func NewJSON() JSON {
	return stdJSON{}
}

func (stdJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (stdJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
