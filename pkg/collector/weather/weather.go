// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package weather

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/NVIDIA/daily-briefing/pkg/errors"
	"github.com/NVIDIA/daily-briefing/pkg/section"
)

const (
	// Unknown fills fields the service did not return.
	Unknown = "?"

	unknownCondition = "Unknown"
	noPrecipitation  = "0"
	afternoonSlot    = "1500"
)

// Report is the weather section payload. Values are kept as the service
// formats them.
type Report struct {
	Location     string `json:"location" yaml:"location"`
	Condition    string `json:"condition" yaml:"condition"`
	TempF        string `json:"temp_f" yaml:"temp_f"`
	TempC        string `json:"temp_c" yaml:"temp_c"`
	FeelsLikeF   string `json:"feels_like_f" yaml:"feels_like_f"`
	Humidity     string `json:"humidity" yaml:"humidity"`
	WindMph      string `json:"wind_mph" yaml:"wind_mph"`
	WindDir      string `json:"wind_dir" yaml:"wind_dir"`
	HighF        string `json:"high_f" yaml:"high_f"`
	LowF         string `json:"low_f" yaml:"low_f"`
	HighC        string `json:"high_c" yaml:"high_c"`
	LowC         string `json:"low_c" yaml:"low_c"`
	UVIndex      string `json:"uv_index" yaml:"uv_index"`
	Sunrise      string `json:"sunrise" yaml:"sunrise"`
	Sunset       string `json:"sunset" yaml:"sunset"`
	PrecipChance string `json:"precip_chance" yaml:"precip_chance"`
}

// SectionName implements section.Payload.
func (Report) SectionName() section.Name {
	return section.Weather
}

// forecast mirrors the parts of the wttr.in j1 document that are used.
type forecast struct {
	CurrentCondition []struct {
		TempF          string `json:"temp_F"`
		TempC          string `json:"temp_C"`
		FeelsLikeF     string `json:"FeelsLikeF"`
		Humidity       string `json:"humidity"`
		WindspeedMiles string `json:"windspeedMiles"`
		Winddir16Point string `json:"winddir16Point"`
		UVIndex        string `json:"uvIndex"`
		WeatherDesc    []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
	Weather []struct {
		MaxTempF  string `json:"maxtempF"`
		MinTempF  string `json:"mintempF"`
		MaxTempC  string `json:"maxtempC"`
		MinTempC  string `json:"mintempC"`
		Astronomy []struct {
			Sunrise string `json:"sunrise"`
			Sunset  string `json:"sunset"`
		} `json:"astronomy"`
		Hourly []struct {
			Time         string `json:"time"`
			ChanceOfRain string `json:"chanceofrain"`
		} `json:"hourly"`
	} `json:"weather"`
}

// Collector fetches current conditions for Location.
type Collector struct {
	Client   *Client
	Location string
}

// Collect performs one request and shapes the forecast into a Report.
// It implements the Collector interface.
func (c *Collector) Collect(ctx context.Context) (section.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Debug("collecting weather", slog.String("location", c.Location))

	body, err := c.Client.Fetch(ctx, c.Location)
	if err != nil {
		return nil, err
	}

	report, err := Parse(c.Location, body)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Parse shapes a wttr.in j1 document into a Report.
func Parse(location string, body []byte) (Report, error) {
	var f forecast
	if err := json.Unmarshal(body, &f); err != nil {
		return Report{}, errors.Wrap(errors.ErrCodeUpstream, "failed to parse weather response", err)
	}

	r := Report{
		Location:     location,
		Condition:    unknownCondition,
		TempF:        Unknown,
		TempC:        Unknown,
		FeelsLikeF:   Unknown,
		Humidity:     Unknown,
		WindMph:      Unknown,
		HighF:        Unknown,
		LowF:         Unknown,
		HighC:        Unknown,
		LowC:         Unknown,
		UVIndex:      Unknown,
		Sunrise:      Unknown,
		Sunset:       Unknown,
		PrecipChance: noPrecipitation,
	}

	if len(f.CurrentCondition) > 0 {
		cur := f.CurrentCondition[0]
		if len(cur.WeatherDesc) > 0 {
			r.Condition = or(cur.WeatherDesc[0].Value, unknownCondition)
		}
		r.TempF = or(cur.TempF, Unknown)
		r.TempC = or(cur.TempC, Unknown)
		r.FeelsLikeF = or(cur.FeelsLikeF, Unknown)
		r.Humidity = or(cur.Humidity, Unknown)
		r.WindMph = or(cur.WindspeedMiles, Unknown)
		r.WindDir = cur.Winddir16Point
		r.UVIndex = or(cur.UVIndex, Unknown)
	}

	if len(f.Weather) > 0 {
		today := f.Weather[0]
		r.HighF = or(today.MaxTempF, Unknown)
		r.LowF = or(today.MinTempF, Unknown)
		r.HighC = or(today.MaxTempC, Unknown)
		r.LowC = or(today.MinTempC, Unknown)
		if len(today.Astronomy) > 0 {
			r.Sunrise = or(today.Astronomy[0].Sunrise, Unknown)
			r.Sunset = or(today.Astronomy[0].Sunset, Unknown)
		}
		if n := len(today.Hourly); n > 0 {
			slot := today.Hourly[n-1]
			for _, h := range today.Hourly {
				if h.Time == afternoonSlot {
					slot = h
					break
				}
			}
			r.PrecipChance = or(slot.ChanceOfRain, noPrecipitation)
		}
	}

	return r, nil
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
