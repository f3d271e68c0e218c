package darksky

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type requestParams struct {
	units   Units
	lang    Language
	exclude []Block
	extend  bool
}

// RequestOption adjusts the query parameters of a single request.
type RequestOption func(*requestParams)

// WithUnits selects the measurement system of the returned values.
func WithUnits(u Units) RequestOption {
	return func(p *requestParams) { p.units = u }
}

// WithLanguage selects the language of the summary fields.
func WithLanguage(l Language) RequestOption {
	return func(p *requestParams) { p.lang = l }
}

// Exclude strips the named blocks from the response server-side.
func Exclude(blocks ...Block) RequestOption {
	return func(p *requestParams) { p.exclude = append(p.exclude, blocks...) }
}

// ExtendHourly extends the hourly block from 48 to 168 hours.
func ExtendHourly() RequestOption {
	return func(p *requestParams) { p.extend = true }
}

// forecastURL builds the request URL. The path is
// /forecast/{token}/{lat},{lon}[,{unixtime}]; coordinates are rendered in
// their shortest exact form, and url.Values keeps every query key unique.
func (c *Client) forecastURL(lat, lon float64, at *int64, opts []RequestOption) string {
	var p requestParams
	for _, opt := range opts {
		opt(&p)
	}

	coords := formatCoord(lat) + "," + formatCoord(lon)
	if at != nil {
		coords += "," + strconv.FormatInt(*at, 10)
	}

	u := fmt.Sprintf("%s/forecast/%s/%s", c.baseURL, c.token, coords)

	q := url.Values{}
	if p.units != "" {
		q.Set("units", string(p.units))
	}
	if p.lang != "" {
		q.Set("lang", string(p.lang))
	}
	if len(p.exclude) > 0 {
		blocks := make([]string, len(p.exclude))
		for i, b := range p.exclude {
			blocks[i] = string(b)
		}
		q.Set("exclude", strings.Join(blocks, ","))
	}
	if p.extend {
		q.Set("extend", "hourly")
	}

	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
