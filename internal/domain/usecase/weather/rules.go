package weather

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/pkg/util/numberutils"
)

const (
	day           = 24 * time.Hour
	maxDateRange  = 5 * day
	countrySuffix = ",US"

	maxRefreshBatch = 1000
)

// parseDate reads an optional YYYY-MM-DD value. Nil or blank means absent.
func parseDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := time.Parse(model.DateLayout, strings.TrimSpace(*value))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidDateFormat, *value)
	}
	return &t, nil
}

// validateRange checks ordering and span when both dates are present.
func validateRange(start, end *time.Time) error {
	if start == nil || end == nil {
		return nil
	}
	if start.After(*end) {
		return model.ErrInvalidDateRange
	}
	if end.Sub(*start) > maxDateRange {
		return model.ErrDateRangeTooLong
	}
	return nil
}

// useForecast is true when both dates are set and span at least one day.
func useForecast(start, end *time.Time) bool {
	return start != nil && end != nil && end.Sub(*start) >= day
}

// resolveLocation sends digit-only locations (spaces ignored) as a US zip code.
func resolveLocation(location string) api.Location {
	if numberutils.IsDigitsIgnoringSpaces(location) {
		return api.Location{Zip: location + countrySuffix}
	}
	return api.Location{Query: location + countrySuffix}
}

// filterForecast keeps list items whose dt_txt day lies in [start, end]. Other fields are kept as is.
func filterForecast(body []byte, start, end time.Time) ([]byte, error) {
	var data map[string]json.RawMessage
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedPayload, err)
	}

	var items []json.RawMessage
	if raw, ok := data["list"]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: list: %v", model.ErrMalformedPayload, err)
		}
	}

	kept := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		var slot struct {
			DtTxt string `json:"dt_txt"`
		}
		if err := json.Unmarshal(item, &slot); err != nil || len(slot.DtTxt) < len(model.DateLayout) {
			continue
		}
		d, err := time.Parse(model.DateLayout, slot.DtTxt[:len(model.DateLayout)])
		if err != nil {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			kept = append(kept, item)
		}
	}

	filtered, err := json.Marshal(kept)
	if err != nil {
		return nil, err
	}
	data["list"] = filtered
	return json.Marshal(data)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02T15:04:05")
	return &s
}
