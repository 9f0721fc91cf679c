package websocket

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	errUnknownAction    = errors.New("unknown action")
	errMalformedMessage = errors.New("malformed message")
	errMissingSession   = errors.New("session_id is required")
	errMissingCell      = errors.New("cell is required")
)

// Message is both what a client sends and what the server answers with.
type Message struct {
	Action  string                 `json:"action"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

type Request struct {
	SessionID string `json:"session_id"`
	Mode      string `json:"mode"`
	Cell      *int   `json:"cell"`
}

type Response struct {
	Action  string  `json:"action"`
	Payload Payload `json:"payload"`
}

type Payload struct {
	Session *entity.State `json:"session,omitempty"`
	Cell    *int          `json:"cell,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func decodeRequest(payload map[string]interface{}) (*Request, error) {
	var req Request

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &req,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payload decoder: %w", err)
	}

	if err = decoder.Decode(payload); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedMessage, err)
	}

	return &req, nil
}

func (that *Request) requireSession() error {
	if that.SessionID == "" {
		return errMissingSession
	}

	return nil
}

func sessionPayload(session *entity.Session) Payload {
	state := session.State()
	return Payload{Session: &state}
}
