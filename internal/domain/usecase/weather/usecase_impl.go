package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/gateway/queue"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/sqs"
	"go-weather/pkg/util/numberutils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type weatherUseCase struct {
	queueName   string
	batchSize   int
	weatherAPI  api.OpenWeatherGateway
	sunAPI      api.SunGateway
	dbGateway   db.WeatherRequestGateway
	queueSender queue.Sender
}

// NewWeatherUseCase wires the lookup rules. queueSender may be nil when the refresh queue is disabled.
func NewWeatherUseCase(queueName string, batchSize int, queueSender queue.Sender, weatherAPI api.OpenWeatherGateway, sunAPI api.SunGateway, dbGateway db.WeatherRequestGateway) UseCase {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &weatherUseCase{
		queueName:   queueName,
		batchSize:   numberutils.ClampInt(batchSize, 1, maxRefreshBatch),
		queueSender: queueSender,
		weatherAPI:  weatherAPI,
		sunAPI:      sunAPI,
		dbGateway:   dbGateway,
	}
}

func (uc *weatherUseCase) Create(ctx context.Context, userID int64, dto model.CreateWeatherDTO) (*model.WeatherOut, error) {
	start, err := parseDate(dto.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(dto.EndDate)
	if err != nil {
		return nil, err
	}
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	location := strings.TrimSpace(dto.Location)
	if location == "" {
		return nil, model.ErrLocationRequired
	}

	response, err := uc.fetchForRange(ctx, location, start, end)
	if err != nil {
		return nil, err
	}

	saved, err := uc.dbGateway.Create(ctx, entity.WeatherRequest{
		UserID:    userID,
		Location:  location,
		StartDate: start,
		EndDate:   end,
		Response:  response,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save weather request: %w", err)
	}

	log.Info(msg.GetMessage("weather.created", saved.ID, location), zap.Int64("user_id", userID))
	return model.NewWeatherOut(saved), nil
}

// fetchForRange applies the creation rules: zip or query, forecast for spans of a day or more, list filtered to the range.
func (uc *weatherUseCase) fetchForRange(ctx context.Context, location string, start, end *time.Time) (string, error) {
	loc := resolveLocation(location)

	if !useForecast(start, end) {
		body, err := uc.weatherAPI.Current(ctx, loc)
		if err != nil {
			return "", fmt.Errorf("%w: %v", model.ErrUpstream, err)
		}
		return string(body), nil
	}

	body, err := uc.weatherAPI.Forecast(ctx, loc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrUpstream, err)
	}
	filtered, err := filterForecast(body, *start, *end)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrUpstream, err)
	}
	return string(filtered), nil
}

func (uc *weatherUseCase) List(ctx context.Context, userID int64) ([]model.WeatherOut, error) {
	records, err := uc.dbGateway.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weather requests: %w", err)
	}

	out := make([]model.WeatherOut, 0, len(records))
	for i := range records {
		out = append(out, *model.NewWeatherOut(&records[i]))
	}
	return out, nil
}

func (uc *weatherUseCase) Get(ctx context.Context, userID int64, id int64) (*model.WeatherOut, error) {
	rec, err := uc.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return model.NewWeatherOut(rec), nil
}

func (uc *weatherUseCase) findOwned(ctx context.Context, userID int64, id int64) (*entity.WeatherRequest, error) {
	rec, err := uc.dbGateway.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find weather request %d: %w", id, err)
	}
	if !rec.OwnedBy(userID) {
		return nil, model.ErrNotFound
	}
	return rec, nil
}

func (uc *weatherUseCase) Update(ctx context.Context, userID int64, id int64, dto model.UpdateWeatherDTO) (*model.WeatherOut, error) {
	rec, err := uc.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	start, err := parseDate(dto.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(dto.EndDate)
	if err != nil {
		return nil, err
	}
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	if dto.Location != nil && strings.TrimSpace(*dto.Location) != "" {
		rec.Location = strings.TrimSpace(*dto.Location)
	}
	if start != nil {
		rec.StartDate = start
	}
	if end != nil {
		rec.EndDate = end
	}

	updated, err := uc.dbGateway.Update(ctx, *rec)
	if err != nil {
		return nil, fmt.Errorf("failed to update weather request %d: %w", id, err)
	}
	if updated == nil {
		return nil, model.ErrNotFound
	}
	return model.NewWeatherOut(updated), nil
}

func (uc *weatherUseCase) Edit(ctx context.Context, userID int64, id int64, dto model.EditWeatherDTO) error {
	rec, err := uc.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	start, err := parseDate(&dto.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate(&dto.EndDate)
	if err != nil {
		return err
	}
	if start != nil && end != nil && start.After(*end) {
		return model.ErrInvalidDateRange
	}

	rec.Location = strings.TrimSpace(dto.Location)
	if start != nil {
		rec.StartDate = start
	}
	if end != nil {
		rec.EndDate = end
	}

	loc := api.Location{Query: rec.Location}
	var body []byte
	if rec.StartDate != nil && rec.EndDate != nil {
		body, err = uc.weatherAPI.Forecast(ctx, loc)
	} else {
		body, err = uc.weatherAPI.Current(ctx, loc)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrUpstream, err)
	}
	rec.Response = string(body)

	if _, err := uc.dbGateway.Update(ctx, *rec); err != nil {
		return fmt.Errorf("failed to update weather request %d: %w", id, err)
	}
	return nil
}

func (uc *weatherUseCase) Delete(ctx context.Context, userID int64, id int64) error {
	if _, err := uc.findOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := uc.dbGateway.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete weather request %d: %w", id, err)
	}
	return nil
}

// Forecast keeps the upstream *http.StatusError in the chain so callers can pass its status through.
func (uc *weatherUseCase) Forecast(ctx context.Context, userID int64, id int64) (*model.ForecastResponse, error) {
	rec, err := uc.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	body, err := uc.weatherAPI.Forecast(ctx, api.Location{Query: rec.Location})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrUpstream, err)
	}
	return &model.ForecastResponse{Response: string(body)}, nil
}

func (uc *weatherUseCase) SunTimes(ctx context.Context, userID int64, id int64) (*model.SunTimesResponse, error) {
	rec, err := uc.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	payload, err := external.DecodePayload(rec.Response)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrNoCoordinates, err)
	}
	coord, ok := payload.Coordinates()
	if !ok {
		return nil, model.ErrNoCoordinates
	}

	results, err := uc.sunAPI.SunTimes(ctx, *coord.Lat, *coord.Lon)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSunAPI, err)
	}
	return &model.SunTimesResponse{Sunrise: results.Sunrise, Sunset: results.Sunset}, nil
}

func (uc *weatherUseCase) Export(ctx context.Context, userID int64) ([]model.ExportRow, error) {
	records, err := uc.dbGateway.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export weather requests: %w", err)
	}

	rows := make([]model.ExportRow, 0, len(records))
	for i := range records {
		rec := &records[i]
		var createdAt *string
		if !rec.CreatedAt.IsZero() {
			createdAt = formatDate(&rec.CreatedAt)
		}
		rows = append(rows, model.ExportRow{
			ID:        rec.ID,
			Location:  rec.Location,
			StartDate: formatDate(rec.StartDate),
			EndDate:   formatDate(rec.EndDate),
			Response:  rec.Response,
			CreatedAt: createdAt,
		})
	}
	return rows, nil
}

func (uc *weatherUseCase) SavedCards(ctx context.Context, userID int64) ([]model.SavedCard, error) {
	records, err := uc.dbGateway.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weather requests: %w", err)
	}

	cards := make([]model.SavedCard, 0, len(records))
	for _, rec := range records {
		payload, err := external.DecodePayload(rec.Response)
		if err != nil {
			continue
		}

		city := payload.Name
		main, weather := payload.Main, payload.Weather
		if items := payload.Items(); len(items) > 0 {
			main, weather = items[0].Main, items[0].Weather
			city = ""
			if payload.City != nil {
				city = payload.City.Name
			}
		}
		if main == nil || len(weather) == 0 {
			continue
		}

		cards = append(cards, model.SavedCard{
			ID:          rec.ID,
			City:        city,
			Temperature: main.Temp,
			Humidity:    int(main.Humidity),
			Description: weather[0].Description,
			Icon:        weather[0].Icon,
		})
	}
	return cards, nil
}

func (uc *weatherUseCase) Refresh(ctx context.Context, id int64) error {
	rec, err := uc.dbGateway.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find weather request %d: %w", id, err)
	}
	if rec == nil {
		return model.ErrNotFound
	}

	response, err := uc.fetchForRange(ctx, rec.Location, rec.StartDate, rec.EndDate)
	if err != nil {
		return err
	}

	if err := uc.dbGateway.UpdateResponse(ctx, id, response); err != nil {
		return fmt.Errorf("failed to store refreshed response for %d: %w", id, err)
	}
	log.Debug(msg.GetMessage("weather.refreshed", id))
	return nil
}

func (uc *weatherUseCase) EnqueueAllForRefresh(ctx context.Context, requestID string) error {
	if uc.queueSender == nil {
		return errors.New("refresh queue is disabled")
	}

	log.Info(msg.GetMessage("refresh.started"), zap.String("request_id", requestID))

	var lastID int64
	total, failed := 0, 0
	for {
		ids, err := uc.dbGateway.FindIDsAfter(ctx, lastID, uc.batchSize)
		if err != nil {
			log.Error(msg.GetMessage("refresh.page-failed", lastID), zap.String("request_id", requestID), zap.Error(err))
			return fmt.Errorf("failed to page weather requests after %d: %w", lastID, err)
		}
		if len(ids) == 0 {
			break
		}

		messages := make([]sqs.BatchMessage, 0, len(ids))
		for _, id := range ids {
			messages = append(messages, sqs.BatchMessage{
				MessageID: uuid.NewString(),
				Body:      model.RefreshMessage{ID: id, RequestID: requestID},
			})
		}

		result, err := uc.queueSender.SendMessageBatch(ctx, uc.queueName, messages)
		if err != nil {
			log.Warn(msg.GetMessage("refresh.batch-failed", lastID), zap.String("request_id", requestID), zap.Error(err))
			failed += len(ids)
		} else {
			failed += len(result.Failed)
		}

		total += len(ids)
		lastID = ids[len(ids)-1]
	}

	log.Info(msg.GetMessage("refresh.completed", total, failed), zap.String("request_id", requestID))
	return nil
}
