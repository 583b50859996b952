// Package calendar answers working-day questions for the scheduler: a day
// is a working day iff it is neither a weekend day nor a holiday.
package calendar

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/jp"
	"github.com/rickar/cal/v2/us"
	"gopkg.in/yaml.v3"
)

const dayFormat = "2006-01-02"

// countryHolidays maps supported country codes to their holiday catalogs.
var countryHolidays = map[string][]*cal.Holiday{
	"JP": jp.Holidays,
	"US": us.Holidays,
	"GB": gb.Holidays,
	"DE": de.Holidays,
	"FR": fr.Holidays,
}

// Calendar implements the working-day predicate for one country plus an
// optional overlay of extra holiday dates.
type Calendar struct {
	business *cal.BusinessCalendar
	extra    map[string]bool
}

// New builds a Calendar for a country code. An unknown country observes no
// holidays — the calendar still functions with the weekend rule alone.
func New(country string, extra []time.Time) *Calendar {
	bc := cal.NewBusinessCalendar()
	if hs, ok := countryHolidays[strings.ToUpper(country)]; ok {
		bc.AddHoliday(hs...)
	} else if country != "" {
		log.Printf("warning: holiday country %q not supported, no holidays will be observed", country)
	}

	c := &Calendar{business: bc, extra: make(map[string]bool, len(extra))}
	for _, d := range extra {
		c.extra[d.Format(dayFormat)] = true
	}
	return c
}

// IsWorkingDay reports whether d is a working day.
func (c *Calendar) IsWorkingDay(d time.Time) bool {
	if c.extra[d.Format(dayFormat)] {
		return false
	}
	return c.business.IsWorkday(d)
}

// NextWorkingDay returns the smallest date after d that is a working day.
func (c *Calendar) NextWorkingDay(d time.Time) time.Time {
	next := d.AddDate(0, 0, 1)
	for !c.IsWorkingDay(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// overlayFile is the HOLIDAY_FILE YAML shape: a flat list of dates.
type overlayFile struct {
	Holidays []string `yaml:"holidays"`
}

// LoadOverlay reads extra holiday dates from a YAML file.
func LoadOverlay(path string) ([]time.Time, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read holiday file: %w", err)
	}
	var of overlayFile
	if err := yaml.Unmarshal(data, &of); err != nil {
		return nil, fmt.Errorf("parse holiday file %s: %w", path, err)
	}
	dates := make([]time.Time, 0, len(of.Holidays))
	for _, s := range of.Holidays {
		d, err := time.ParseInLocation(dayFormat, s, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse holiday date %q: %w", s, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}
