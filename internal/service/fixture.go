package service

import (
	"bytes"
	"context"
	"encoding/json"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"fixtureplanner/internal/model"
)

// emptyPayload is what an absent, null or unparseable body decodes to.
var emptyPayload = json.RawMessage(`{}`)

// FixtureGenerator turns a tournament configuration into a response for the browser client.
// Implementations must not retain the payload after Generate returns.
type FixtureGenerator interface {
	Generate(ctx context.Context, payload json.RawMessage) (*model.GenerateResponse, error)
}

// echoGenerator is the placeholder generator: schedules are still built in the browser,
// so it only acknowledges the payload it received.
type echoGenerator struct{}

// NewEchoGenerator constructs the placeholder FixtureGenerator.
func NewEchoGenerator() FixtureGenerator {
	return echoGenerator{}
}

func (echoGenerator) Generate(ctx context.Context, payload json.RawMessage) (*model.GenerateResponse, error) {
	_, span := otel.Tracer("fixtureplanner/service").Start(ctx, "FixtureGenerator.Generate",
		trace.WithAttributes(attribute.Int("fixture.payload_bytes", len(payload))),
	)
	defer span.End()

	if len(payload) == 0 {
		payload = emptyPayload
	}
	return &model.GenerateResponse{
		Status:   model.StatusOK,
		Message:  model.MessageNotImplemented,
		Received: payload,
	}, nil
}

// DecodePayload interprets a request body permissively.
//
// An empty body, a body that is not valid JSON (including invalid UTF-8), or a JSON null all yield {}.
// Any other JSON value is returned compacted, otherwise byte-for-byte as sent.
// It never returns an error: malformed input degrades to an empty payload.
func DecodePayload(body []byte) json.RawMessage {
	// json.Compact does not check string contents; echoing invalid UTF-8 would make the response invalid JSON.
	if !utf8.Valid(body) {
		return emptyPayload
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return emptyPayload
	}
	if buf.Len() == 0 || bytes.Equal(buf.Bytes(), []byte("null")) {
		return emptyPayload
	}
	return json.RawMessage(buf.Bytes())
}
