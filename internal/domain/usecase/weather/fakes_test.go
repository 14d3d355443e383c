package weather

import (
	"context"
	"sort"
	"sync"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/sqs"
)

type fakeOpenWeather struct {
	current, forecast []byte
	err               error
	calls             []string
	locations         []api.Location
}

func (f *fakeOpenWeather) Current(_ context.Context, loc api.Location) ([]byte, error) {
	f.calls = append(f.calls, "current")
	f.locations = append(f.locations, loc)
	return f.current, f.err
}

func (f *fakeOpenWeather) Forecast(_ context.Context, loc api.Location) ([]byte, error) {
	f.calls = append(f.calls, "forecast")
	f.locations = append(f.locations, loc)
	return f.forecast, f.err
}

type fakeSun struct {
	lat, lon float64
	err      error
}

func (f *fakeSun) SunTimes(_ context.Context, lat, lon float64) (*external.SunriseSunsetResults, error) {
	f.lat, f.lon = lat, lon
	if f.err != nil {
		return nil, f.err
	}
	return &external.SunriseSunsetResults{Sunrise: "2024-05-01T11:45:00+00:00", Sunset: "2024-05-02T01:10:00+00:00"}, nil
}

type memoryGateway struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]entity.WeatherRequest
}

func newMemoryGateway(records ...entity.WeatherRequest) *memoryGateway {
	m := &memoryGateway{records: map[int64]entity.WeatherRequest{}}
	for _, r := range records {
		m.records[r.ID] = r
		m.nextID = max(m.nextID, r.ID)
	}
	return m
}

func (m *memoryGateway) FindByID(_ context.Context, id int64) (*entity.WeatherRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memoryGateway) FindAllByUser(_ context.Context, userID int64) ([]entity.WeatherRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.WeatherRequest
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryGateway) FindIDsAfter(_ context.Context, afterID int64, limit int) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []int64
	for id := range m.records {
		if id > afterID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (m *memoryGateway) Create(_ context.Context, rec entity.WeatherRequest) (*entity.WeatherRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	rec.ID = m.nextID
	m.records[rec.ID] = rec
	return &rec, nil
}

func (m *memoryGateway) Update(_ context.Context, rec entity.WeatherRequest) (*entity.WeatherRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[rec.ID]; !ok {
		return nil, nil
	}
	m.records[rec.ID] = rec
	return &rec, nil
}

func (m *memoryGateway) UpdateResponse(_ context.Context, id int64, response string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.records[id]
	rec.Response = response
	m.records[id] = rec
	return nil
}

func (m *memoryGateway) DeleteByID(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

type fakeSender struct {
	mu      sync.Mutex
	batches [][]sqs.BatchMessage
}

func (f *fakeSender) SendMessage(context.Context, string, any) error {
	return nil
}

func (f *fakeSender) SendMessageBatch(_ context.Context, _ string, messages []sqs.BatchMessage) (*sqs.BatchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, messages)
	result := &sqs.BatchResult{}
	for _, m := range messages {
		result.Successful = append(result.Successful, m.MessageID)
	}
	return result, nil
}
