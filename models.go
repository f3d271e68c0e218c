package darksky

import "encoding/json"

// Icon identifies the machine-readable summary of a data point or block.
// The API reserves the right to add new values, so callers should treat
// unknown icons as a fallback case rather than an error.
type Icon string

const (
	IconClearDay          Icon = "clear-day"
	IconClearNight        Icon = "clear-night"
	IconRain              Icon = "rain"
	IconSnow              Icon = "snow"
	IconSleet             Icon = "sleet"
	IconWind              Icon = "wind"
	IconFog               Icon = "fog"
	IconCloudy            Icon = "cloudy"
	IconPartlyCloudyDay   Icon = "partly-cloudy-day"
	IconPartlyCloudyNight Icon = "partly-cloudy-night"

	// Documented but not actively issued by the API.
	IconHail         Icon = "hail"
	IconThunderstorm Icon = "thunderstorm"
	IconTornado      Icon = "tornado"
)

// PrecipType is the form of precipitation occurring at a data point.
type PrecipType string

const (
	PrecipRain  PrecipType = "rain"
	PrecipSleet PrecipType = "sleet"
	PrecipSnow  PrecipType = "snow"
)

// Units selects the measurement system of the returned values.
type Units string

const (
	UnitsAuto Units = "auto"
	UnitsCA   Units = "ca"
	UnitsSI   Units = "si"
	UnitsUK2  Units = "uk2"
	UnitsUS   Units = "us"
)

// Language selects the language of the summary fields.
type Language string

const (
	LangAR  Language = "ar"
	LangBS  Language = "bs"
	LangDE  Language = "de"
	LangEL  Language = "el"
	LangEN  Language = "en"
	LangES  Language = "es"
	LangFR  Language = "fr"
	LangHR  Language = "hr"
	LangIT  Language = "it"
	LangJA  Language = "ja"
	LangKO  Language = "ko"
	LangNL  Language = "nl"
	LangPL  Language = "pl"
	LangPT  Language = "pt"
	LangRU  Language = "ru"
	LangSK  Language = "sk"
	LangSV  Language = "sv"
	LangTET Language = "tet"
	LangTR  Language = "tr"
	LangUK  Language = "uk"
	LangZH  Language = "zh"

	LangPigLatin Language = "x-pig-latin"
)

// Block names one of the optional sections of a forecast response. Pass
// blocks to Exclude to strip them from the response server-side.
type Block string

const (
	BlockCurrently Block = "currently"
	BlockMinutely  Block = "minutely"
	BlockHourly    Block = "hourly"
	BlockDaily     Block = "daily"
	BlockAlerts    Block = "alerts"
	BlockFlags     Block = "flags"
)

// Severity of a weather alert.
type Severity string

const (
	SeverityAdvisory Severity = "advisory"
	SeverityWatch    Severity = "watch"
	SeverityWarning  Severity = "warning"
)

// Forecast is the full response for one location query. Latitude,
// longitude and timezone are the only fields the API guarantees; every
// sub-block may be absent depending on region, data availability and the
// exclude parameter.
type Forecast struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timezone  string     `json:"timezone"`
	Offset    *float64   `json:"offset,omitempty"`
	Currently *DataPoint `json:"currently,omitempty"`
	Minutely  *DataBlock `json:"minutely,omitempty"`
	Hourly    *DataBlock `json:"hourly,omitempty"`
	Daily     *DataBlock `json:"daily,omitempty"`
	Alerts    []Alert    `json:"alerts,omitempty"`
	Flags     *Flags     `json:"flags,omitempty"`
}

// DataBlock is an ordered sequence of data points covering a span of time.
type DataBlock struct {
	Summary *string     `json:"summary,omitempty"`
	Icon    *Icon       `json:"icon,omitempty"`
	Data    []DataPoint `json:"data,omitempty"`
}

// DataPoint is a single time-sampled weather reading. Which measurements
// are present varies by region and data source, so everything except the
// timestamp is a pointer; a nil field means the provider omitted it, not
// that the value was zero.
type DataPoint struct {
	Time int64 `json:"time"`

	Summary    *string     `json:"summary,omitempty"`
	Icon       *Icon       `json:"icon,omitempty"`
	PrecipType *PrecipType `json:"precipType,omitempty"`

	Temperature         *float64 `json:"temperature,omitempty"`
	TemperatureHigh     *float64 `json:"temperatureHigh,omitempty"`
	TemperatureHighTime *int64   `json:"temperatureHighTime,omitempty"`
	TemperatureLow      *float64 `json:"temperatureLow,omitempty"`
	TemperatureLowTime  *int64   `json:"temperatureLowTime,omitempty"`
	TemperatureMax      *float64 `json:"temperatureMax,omitempty"`
	TemperatureMaxTime  *int64   `json:"temperatureMaxTime,omitempty"`
	TemperatureMin      *float64 `json:"temperatureMin,omitempty"`
	TemperatureMinTime  *int64   `json:"temperatureMinTime,omitempty"`

	ApparentTemperature         *float64 `json:"apparentTemperature,omitempty"`
	ApparentTemperatureHigh     *float64 `json:"apparentTemperatureHigh,omitempty"`
	ApparentTemperatureHighTime *int64   `json:"apparentTemperatureHighTime,omitempty"`
	ApparentTemperatureLow      *float64 `json:"apparentTemperatureLow,omitempty"`
	ApparentTemperatureLowTime  *int64   `json:"apparentTemperatureLowTime,omitempty"`
	ApparentTemperatureMax      *float64 `json:"apparentTemperatureMax,omitempty"`
	ApparentTemperatureMaxTime  *int64   `json:"apparentTemperatureMaxTime,omitempty"`
	ApparentTemperatureMin      *float64 `json:"apparentTemperatureMin,omitempty"`
	ApparentTemperatureMinTime  *int64   `json:"apparentTemperatureMinTime,omitempty"`

	PrecipIntensity        *float64 `json:"precipIntensity,omitempty"`
	PrecipIntensityError   *float64 `json:"precipIntensityError,omitempty"`
	PrecipIntensityMax     *float64 `json:"precipIntensityMax,omitempty"`
	PrecipIntensityMaxTime *int64   `json:"precipIntensityMaxTime,omitempty"`
	PrecipProbability      *float64 `json:"precipProbability,omitempty"`
	PrecipAccumulation     *float64 `json:"precipAccumulation,omitempty"`

	WindSpeed    *float64 `json:"windSpeed,omitempty"`
	WindGust     *float64 `json:"windGust,omitempty"`
	WindGustTime *int64   `json:"windGustTime,omitempty"`
	WindBearing  *float64 `json:"windBearing,omitempty"`

	CloudCover *float64 `json:"cloudCover,omitempty"`
	DewPoint   *float64 `json:"dewPoint,omitempty"`
	Humidity   *float64 `json:"humidity,omitempty"`
	Pressure   *float64 `json:"pressure,omitempty"`
	Ozone      *float64 `json:"ozone,omitempty"`
	Visibility *float64 `json:"visibility,omitempty"`

	UVIndex     *float64 `json:"uvIndex,omitempty"`
	UVIndexTime *int64   `json:"uvIndexTime,omitempty"`

	MoonPhase            *float64 `json:"moonPhase,omitempty"`
	NearestStormBearing  *float64 `json:"nearestStormBearing,omitempty"`
	NearestStormDistance *float64 `json:"nearestStormDistance,omitempty"`

	SunriseTime *int64 `json:"sunriseTime,omitempty"`
	SunsetTime  *int64 `json:"sunsetTime,omitempty"`
}

// Alert is a severe weather warning issued for the requested location.
type Alert struct {
	Title       string   `json:"title"`
	Time        int64    `json:"time"`
	Expires     *int64   `json:"expires,omitempty"`
	Description string   `json:"description"`
	URI         string   `json:"uri"`
	Regions     []string `json:"regions,omitempty"`
	Severity    Severity `json:"severity,omitempty"`
}

// Flags carries metadata about the data sources behind a forecast.
type Flags struct {
	DarkSkyUnavailable *string  `json:"darksky-unavailable,omitempty"`
	DarkSkyStations    []string `json:"darksky-stations,omitempty"`
	DataPointStations  []string `json:"datapoint-stations,omitempty"`
	ISDStations        []string `json:"isd-stations,omitempty"`
	LAMPStations       []string `json:"lamp-stations,omitempty"`
	METARStations      []string `json:"metar-stations,omitempty"`
	METNOLicense       *string  `json:"metno-license,omitempty"`
	NearestStation     *float64 `json:"nearest-station,omitempty"`
	Sources            []string `json:"sources,omitempty"`
	Units              *string  `json:"units,omitempty"`
}

// ParseForecast decodes a raw API payload into a Forecast. It is a pure
// transformation: absent optional keys stay nil, and a payload missing
// one of the mandatory top-level fields (latitude, longitude, timezone)
// fails with a *ParseError naming that field.
func ParseForecast(body []byte) (*Forecast, error) {
	var raw struct {
		Forecast
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Timezone  *string  `json:"timezone"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ParseError{Err: err}
	}

	switch {
	case raw.Latitude == nil:
		return nil, &ParseError{Field: "latitude"}
	case raw.Longitude == nil:
		return nil, &ParseError{Field: "longitude"}
	case raw.Timezone == nil:
		return nil, &ParseError{Field: "timezone"}
	}

	f := raw.Forecast
	f.Latitude = *raw.Latitude
	f.Longitude = *raw.Longitude
	f.Timezone = *raw.Timezone
	return &f, nil
}
