// Package view renders the HTML pages and the htmx fragments.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"time"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/panel"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	PageIndex    = "index"
	PageHome     = "home"
	PageWeather  = "weather"
	PageRegister = "register"
	PageLogin    = "login"
	PageEdit     = "edit"
)

const (
	DefaultIconURL = "http://openweathermap.org/img/wn/%s@2x.png"
	clockLayout    = "3:04:05 PM"
)

// Page is the data every full page gets.
type Page struct {
	Title    string
	SignedIn bool
	Email    string
	Error    string
	Data     any
}

type Options struct {
	// IconURL is a format string with one %s for the icon code.
	IconURL string
	// Location is the zone sun times are shown in.
	Location *time.Location
	BasePath string
}

type Renderer struct {
	pages     map[string]*template.Template
	fragments *template.Template
	iconURL   string
	location  *time.Location
	basePath  string
}

var _ echo.Renderer = (*Renderer)(nil)

func NewRenderer(opts Options) (*Renderer, error) {
	if opts.IconURL == "" {
		opts.IconURL = DefaultIconURL
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	r := &Renderer{
		pages:    make(map[string]*template.Template),
		iconURL:  opts.IconURL,
		location: opts.Location,
		basePath: strings.TrimRight(opts.BasePath, "/"),
	}

	fragments, err := template.New("fragments").Funcs(r.funcs()).ParseFS(templatesFS, "templates/fragments.html")
	if err != nil {
		return nil, fmt.Errorf("parse fragments: %w", err)
	}
	r.fragments = fragments

	files, err := fs.Glob(templatesFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		page, err := fragments.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := page.ParseFS(templatesFS, "templates/layout.html", file); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", file, err)
		}
		r.pages[strings.TrimSuffix(path.Base(file), ".html")] = page
	}
	return r, nil
}

// StaticFS serves main.js and style.css.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"icon": func(code string) string {
			return fmt.Sprintf(r.iconURL, code)
		},
		"num": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
		"clock": func(t time.Time) string {
			return t.In(r.location).Format(clockLayout)
		},
		"date": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format(model.DateLayout)
		},
		"path": func(p string) string {
			return r.basePath + p
		},
	}
}

// Render implements echo.Renderer for the full pages.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return page.ExecuteTemplate(w, "layout", data)
}

func (r *Renderer) fragment(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// DailyForecast renders one .forecast-card-clean per day. No days render as "".
func (r *Renderer) DailyForecast(days []model.DayForecast) (string, error) {
	return r.fragment("daily_forecast", days)
}

// ForecastStrip wraps DailyForecast in a .forecast-container.
func (r *Renderer) ForecastStrip(days []model.DayForecast) (string, error) {
	return r.fragment("forecast_strip", days)
}

func (r *Renderer) CurrentWeather(current model.CurrentWeather) (string, error) {
	return r.fragment("current_weather", current)
}

// SunTimes renders sunrise and sunset as local times of day.
func (r *Renderer) SunTimes(times model.SunTimes) (string, error) {
	return r.fragment("sun_times", times)
}

func (r *Renderer) Error(message string) string {
	html, err := r.fragment("error", message)
	if err != nil {
		return `<p class="error">` + template.HTMLEscapeString(message) + `</p>`
	}
	return html
}

type panelData struct {
	ID      string
	Class   string
	Kind    panel.Kind
	Open    bool
	Content template.HTML
	OOB     bool
}

// PanelUpdate renders the toggled container plus an out-of-band empty container for each other card the toggle closed.
func (r *Renderer) PanelUpdate(result *panel.ToggleResult) (string, error) {
	var sb strings.Builder

	target, err := r.fragment("panel", panelData{
		ID:      result.Kind.ContainerID(result.CardID),
		Class:   result.Kind.ContainerClass(),
		Kind:    result.Kind,
		Open:    result.Opened,
		Content: template.HTML(result.Content),
	})
	if err != nil {
		return "", err
	}
	sb.WriteString(target)

	for _, cardID := range result.Closed {
		closed, err := r.fragment("panel", panelData{
			ID:    result.Kind.ContainerID(cardID),
			Class: result.Kind.ContainerClass(),
			Kind:  result.Kind,
			OOB:   true,
		})
		if err != nil {
			return "", err
		}
		sb.WriteString(closed)
	}
	return sb.String(), nil
}
