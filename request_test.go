package darksky

import (
	"net/url"
	"strings"
	"testing"
)

func TestForecastURLCoordinates(t *testing.T) {
	c := New("test-token")

	u := c.forecastURL(37.8267, -122.423, nil, nil)

	parsed, err := url.Parse(u)
	if err != nil {
		t.Fatalf("forecastURL produced unparseable URL: %v", err)
	}

	if parsed.Path != "/forecast/test-token/37.8267,-122.423" {
		t.Errorf("unexpected path %q", parsed.Path)
	}

	if parsed.RawQuery != "" {
		t.Errorf("expected no query parameters, got %q", parsed.RawQuery)
	}
}

func TestForecastURLShortestCoordinateForm(t *testing.T) {
	c := New("test-token")

	u := c.forecastURL(37.8, -122.4, nil, nil)

	if !strings.HasSuffix(u, "/37.8,-122.4") {
		t.Errorf("coordinates not rendered exactly as supplied: %q", u)
	}
}

func TestForecastURLOptions(t *testing.T) {
	c := New("test-token")

	u := c.forecastURL(19.2465, -99.1013, nil, []RequestOption{
		WithUnits(UnitsSI),
		WithLanguage(LangES),
		Exclude(BlockCurrently, BlockDaily),
		ExtendHourly(),
	})

	parsed, err := url.Parse(u)
	if err != nil {
		t.Fatalf("forecastURL produced unparseable URL: %v", err)
	}

	q := parsed.Query()
	if got := q.Get("units"); got != "si" {
		t.Errorf("expected units=si, got %q", got)
	}
	if got := q.Get("lang"); got != "es" {
		t.Errorf("expected lang=es, got %q", got)
	}
	if got := q.Get("exclude"); got != "currently,daily" {
		t.Errorf("expected exclude=currently,daily, got %q", got)
	}
	if got := q.Get("extend"); got != "hourly" {
		t.Errorf("expected extend=hourly, got %q", got)
	}

	for key, values := range q {
		if len(values) != 1 {
			t.Errorf("query key %q appears %d times", key, len(values))
		}
	}
}

func TestForecastURLTimeMachine(t *testing.T) {
	c := New("test-token")

	at := int64(1469471688)
	u := c.forecastURL(39.9042, 116.4074, &at, nil)

	parsed, err := url.Parse(u)
	if err != nil {
		t.Fatalf("forecastURL produced unparseable URL: %v", err)
	}

	if parsed.Path != "/forecast/test-token/39.9042,116.4074,1469471688" {
		t.Errorf("unexpected path %q", parsed.Path)
	}
}

func TestForecastURLCustomBase(t *testing.T) {
	c := New("test-token", WithBaseURL("http://127.0.0.1:8080"))

	u := c.forecastURL(1, 2, nil, nil)

	if !strings.HasPrefix(u, "http://127.0.0.1:8080/forecast/") {
		t.Errorf("base URL not honored: %q", u)
	}
}
