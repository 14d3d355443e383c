package external

// SunriseSunsetResponse is the body of api.sunrise-sunset.org/json with formatted=0.
type SunriseSunsetResponse struct {
	Results SunriseSunsetResults `json:"results"`
	Status  string               `json:"status"`
}

type SunriseSunsetResults struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}
