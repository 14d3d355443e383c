package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-weather/internal/domain/entity"
)

const weatherRequestColumns = `id, user_id, location, start_date, end_date, response, created_at`

type SQLWeatherRequestGateway struct {
	DB *sql.DB
}

var _ WeatherRequestGateway = (*SQLWeatherRequestGateway)(nil)

func NewSQLWeatherRequestGateway(db *sql.DB) *SQLWeatherRequestGateway {
	return &SQLWeatherRequestGateway{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWeatherRequest(row rowScanner) (*entity.WeatherRequest, error) {
	var (
		w          entity.WeatherRequest
		start, end sql.NullTime
	)
	if err := row.Scan(&w.ID, &w.UserID, &w.Location, &start, &end, &w.Response, &w.CreatedAt); err != nil {
		return nil, err
	}
	if start.Valid {
		w.StartDate = &start.Time
	}
	if end.Valid {
		w.EndDate = &end.Time
	}
	return &w, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func (gateway *SQLWeatherRequestGateway) FindByID(ctx context.Context, id int64) (*entity.WeatherRequest, error) {
	row := gateway.DB.QueryRowContext(ctx, `
		SELECT `+weatherRequestColumns+`
		FROM weather_requests
		WHERE id = $1`, id)

	w, err := scanWeatherRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return w, err
}

func (gateway *SQLWeatherRequestGateway) FindAllByUser(ctx context.Context, userID int64) (results []entity.WeatherRequest, err error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT `+weatherRequestColumns+`
		FROM weather_requests
		WHERE user_id = $1
		ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results = make([]entity.WeatherRequest, 0)
	for rows.Next() {
		w, err := scanWeatherRequest(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *w)
	}
	return results, rows.Err()
}

func (gateway *SQLWeatherRequestGateway) FindIDsAfter(ctx context.Context, afterID int64, limit int) (ids []int64, err error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT id
		FROM weather_requests
		WHERE id > $1
		ORDER BY id
		LIMIT $2`, afterID, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	ids = make([]int64, 0, limit)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (gateway *SQLWeatherRequestGateway) Create(ctx context.Context, rec entity.WeatherRequest) (*entity.WeatherRequest, error) {
	rec.CreatedAt = time.Now().UTC()

	err := gateway.DB.QueryRowContext(ctx, `
		INSERT INTO weather_requests (user_id, location, start_date, end_date, response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		rec.UserID, rec.Location, nullTime(rec.StartDate), nullTime(rec.EndDate), rec.Response, rec.CreatedAt).
		Scan(&rec.ID)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (gateway *SQLWeatherRequestGateway) Update(ctx context.Context, rec entity.WeatherRequest) (*entity.WeatherRequest, error) {
	row := gateway.DB.QueryRowContext(ctx, `
		UPDATE weather_requests
		SET location = $2, start_date = $3, end_date = $4, response = $5
		WHERE id = $1
		RETURNING `+weatherRequestColumns,
		rec.ID, rec.Location, nullTime(rec.StartDate), nullTime(rec.EndDate), rec.Response)

	updated, err := scanWeatherRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return updated, err
}

func (gateway *SQLWeatherRequestGateway) UpdateResponse(ctx context.Context, id int64, response string) error {
	_, err := gateway.DB.ExecContext(ctx, `
		UPDATE weather_requests
		SET response = $2
		WHERE id = $1`, id, response)
	return err
}

func (gateway *SQLWeatherRequestGateway) DeleteByID(ctx context.Context, id int64) error {
	_, err := gateway.DB.ExecContext(ctx, `DELETE FROM weather_requests WHERE id = $1`, id)
	return err
}
