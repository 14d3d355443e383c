package external

// WeatherPayload covers both OpenWeather shapes. List is nil for a current-weather payload
// and non-nil (possibly empty) for a forecast payload.
type WeatherPayload struct {
	Name    string          `json:"name"`
	Main    *MainBlock      `json:"main"`
	Weather []WeatherBlock  `json:"weather"`
	Coord   *Coord          `json:"coord"`
	City    *CityBlock      `json:"city"`
	List    *[]ForecastItem `json:"list"`
}

// IsForecast reports whether the payload carries a list, even an empty one.
func (p *WeatherPayload) IsForecast() bool {
	return p != nil && p.List != nil
}

// Items returns the forecast list or nil.
func (p *WeatherPayload) Items() []ForecastItem {
	if p == nil || p.List == nil {
		return nil
	}
	return *p.List
}

// Coordinates returns the top level coord, falling back to city.coord.
func (p *WeatherPayload) Coordinates() (*Coord, bool) {
	if p == nil {
		return nil, false
	}
	c := p.Coord
	if c == nil && p.City != nil {
		c = p.City.Coord
	}
	if c == nil || c.Lat == nil || c.Lon == nil {
		return nil, false
	}
	return c, true
}

type ForecastItem struct {
	DtTxt   string         `json:"dt_txt"`
	Main    *MainBlock     `json:"main"`
	Weather []WeatherBlock `json:"weather"`
}

type MainBlock struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

type WeatherBlock struct {
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Coord struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type CityBlock struct {
	Name  string `json:"name"`
	Coord *Coord `json:"coord"`
}

// FirstWeather returns weather[0], or an empty block.
func FirstWeather(blocks []WeatherBlock) WeatherBlock {
	if len(blocks) == 0 {
		return WeatherBlock{}
	}
	return blocks[0]
}
