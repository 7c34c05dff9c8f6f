package model

import "encoding/json"

const (
	// StatusOK is the only status the placeholder generator reports.
	StatusOK = "ok"
	// MessageNotImplemented tells the browser client that schedules are still built client-side.
	MessageNotImplemented = "Generación de fixture aún no implementada en el servidor."
)

// GenerateResponse is the body returned by POST /generate.
// Received holds the request payload as raw JSON so key order and number literals survive the round trip.
// It may be any JSON value, not only an object.
type GenerateResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message"`

	// Request payload echoed verbatim; {} when the body was empty, null or not valid JSON
	Received json.RawMessage `json:"received"`
}
