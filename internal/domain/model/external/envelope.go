package external

import (
	"encoding/json"
	"fmt"

	"go-weather/internal/domain/model"
)

type envelope struct {
	Response *string `json:"response"`
}

// DecodeEnvelope reads a {"response": "<json text>"} body and decodes the inner payload.
func DecodeEnvelope(body []byte) (*WeatherPayload, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: envelope: %v", model.ErrMalformedPayload, err)
	}
	if env.Response == nil {
		return nil, fmt.Errorf("%w: envelope has no response", model.ErrMalformedPayload)
	}
	return DecodePayload(*env.Response)
}

// DecodeWeatherRecord decodes the response text of a saved lookup.
func DecodeWeatherRecord(rec *model.WeatherOut) (*WeatherPayload, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: empty record", model.ErrMalformedPayload)
	}
	return DecodePayload(rec.Response)
}

// DecodePayload decodes OpenWeather JSON text.
func DecodePayload(text string) (*WeatherPayload, error) {
	var payload WeatherPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("%w: payload: %v", model.ErrMalformedPayload, err)
	}
	return &payload, nil
}
