package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vzahanych/darksky"
)

func forecastCmd() *cobra.Command {
	var (
		lat, lon     float64
		at           string
		units        string
		lang         string
		exclude      []string
		extendHourly bool
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Fetch the forecast for a coordinate pair",
		Long:  `Fetch current conditions and the forecast for a latitude/longitude pair. Pass --time for historical or future (time machine) data.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Token == "" {
				return errors.New("no API token: set DARKSKY_TOKEN or the token config key")
			}

			opts := []darksky.ClientOption{
				darksky.WithBaseURL(cfg.BaseURL),
				darksky.WithLogger(log),
				darksky.WithHTTPClient(&http.Client{
					Timeout: time.Duration(cfg.Timeout) * time.Second,
				}),
			}
			if cfg.RateRPS > 0 {
				opts = append(opts, darksky.WithRateLimit(cfg.RateRPS, cfg.RateBurst))
			}
			client := darksky.New(cfg.Token, opts...)

			var reqOpts []darksky.RequestOption
			if units == "" {
				units = cfg.Units
			}
			if units != "" {
				reqOpts = append(reqOpts, darksky.WithUnits(darksky.Units(units)))
			}
			if lang == "" {
				lang = cfg.Language
			}
			if lang != "" {
				reqOpts = append(reqOpts, darksky.WithLanguage(darksky.Language(lang)))
			}
			if len(exclude) > 0 {
				blocks := make([]darksky.Block, len(exclude))
				for i, b := range exclude {
					blocks[i] = darksky.Block(b)
				}
				reqOpts = append(reqOpts, darksky.Exclude(blocks...))
			}
			if extendHourly {
				reqOpts = append(reqOpts, darksky.ExtendHourly())
			}

			ctx := cmd.Context()

			var (
				forecast *darksky.Forecast
				err      error
			)
			if at != "" {
				t, perr := parseTime(at)
				if perr != nil {
					return perr
				}
				forecast, err = client.TimeMachine(ctx, lat, lon, t, reqOpts...)
			} else {
				forecast, err = client.Forecast(ctx, lat, lon, reqOpts...)
			}
			if err != nil {
				log.Error("forecast request failed", zap.Error(err))
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(forecast)
			}

			printSummary(forecast)
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in decimal degrees")
	cmd.Flags().StringVar(&at, "time", "", "time machine query: RFC 3339 timestamp or unix seconds")
	cmd.Flags().StringVar(&units, "units", "", "measurement units (auto, ca, si, uk2, us)")
	cmd.Flags().StringVar(&lang, "lang", "", "summary language code")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "blocks to exclude (currently, minutely, hourly, daily, alerts, flags)")
	cmd.Flags().BoolVar(&extendHourly, "extend-hourly", false, "extend the hourly block to 168 hours")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw forecast as JSON")
	cmd.MarkFlagRequired("lat")
	cmd.MarkFlagRequired("lon")

	return cmd
}

func parseTime(s string) (time.Time, error) {
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --time value %q: %w", s, err)
	}
	return t, nil
}

func printSummary(f *darksky.Forecast) {
	fmt.Printf("%s (%.4f, %.4f)\n", f.Timezone, f.Latitude, f.Longitude)

	if c := f.Currently; c != nil {
		if c.Summary != nil {
			fmt.Printf("Currently: %s", *c.Summary)
			if c.Temperature != nil {
				fmt.Printf(", %.1f°", *c.Temperature)
			}
			fmt.Println()
		}
	}

	if f.Daily != nil && f.Daily.Summary != nil {
		fmt.Printf("This week: %s\n", *f.Daily.Summary)
	}

	for _, a := range f.Alerts {
		if a.Expires != nil {
			fmt.Printf("ALERT [%s] %s (until %s)\n", a.Severity, a.Title,
				time.Unix(*a.Expires, 0).Format(time.RFC822))
		} else {
			fmt.Printf("ALERT [%s] %s\n", a.Severity, a.Title)
		}
	}
}
