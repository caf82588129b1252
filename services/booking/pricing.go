package booking

import (
	"context"
	"math"
	"time"

	"dojovcp/models"
)

// Base hourly rates by station family, in currency units.
var hourlyRates = map[models.ResourceType]int64{
	models.ResourcePS4:       5500,
	models.ResourcePS5:       6500,
	models.ResourceXbox:      6500,
	models.ResourceSwitch:    6000,
	models.ResourceSimulador: 6000,
}

const (
	secondJoystickSurcharge = 500 // per hour, PS4 only
	promoDiscountedCapMin   = 60  // at most one extra hour at half rate
	longSessionThresholdMin = 180
	longSessionFactor       = 0.85
)

// RangeQuote is the price of a single continuous range.
type RangeQuote struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Minutes  int       `json:"minutes"`
	Amount   int64     `json:"amount"`
	PromoDay bool      `json:"promo_day"`
}

// PriceQuote is the total for a set of ranges on one resource.
type PriceQuote struct {
	ResourceID   string       `json:"resource_id"`
	HourlyRate   int64        `json:"hourly_rate"`
	Ranges       []RangeQuote `json:"ranges"`
	TotalMinutes int          `json:"total_minutes"`
	Total        int64        `json:"total"`
	LongSession  bool         `json:"long_session"` // 3h+ discount applied
}

// HourlyRate resolves the effective hourly rate for a resource. A per-resource
// override takes precedence over the family rate; the PS4 second-joystick
// surcharge applies on top of either.
func HourlyRate(resource *models.Resource, opts models.Options) int64 {
	rate := resource.PricePerHour
	if rate <= 0 {
		rate = hourlyRates[resource.Type]
	}
	if resource.Type == models.ResourcePS4 && opts.Joysticks == 2 {
		rate += secondJoystickSurcharge
	}
	return rate
}

// promoDay reports whether the half-rate second hour applies on this date.
func promoDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Monday, time.Wednesday, time.Friday:
		return true
	}
	return false
}

// billableMinutes rounds a duration up to whole minutes.
func billableMinutes(d time.Duration) int {
	return int(math.Ceil(d.Minutes()))
}

// roundTo100 rounds to the nearest hundred, halves away from zero.
func roundTo100(v float64) int64 {
	return int64(math.Round(v/100)) * 100
}

// priceRange prices one continuous range. On promo days, sessions longer than
// an hour get minutes 61 through 120 at half rate; the result is rounded to
// the nearest hundred.
func priceRange(hourlyRate int64, r models.TimeRange) RangeQuote {
	minutes := billableMinutes(r.Duration())
	perMinute := float64(hourlyRate) / 60

	promo := promoDay(r.Start)
	discounted := 0
	if promo && minutes > 60 {
		discounted = minutes - 60
		if discounted > promoDiscountedCapMin {
			discounted = promoDiscountedCapMin
		}
	}
	raw := float64(minutes-discounted)*perMinute + float64(discounted)*perMinute/2

	return RangeQuote{
		Start:    r.Start,
		End:      r.End,
		Minutes:  minutes,
		Amount:   roundTo100(raw),
		PromoDay: promo,
	}
}

// QuoteRanges prices a set of ranges at one hourly rate. When the combined
// duration reaches three hours the total gets a further 15% off, rounded to
// the nearest unit.
func QuoteRanges(hourlyRate int64, ranges []models.TimeRange) *PriceQuote {
	quote := &PriceQuote{HourlyRate: hourlyRate}
	for _, r := range ranges {
		rq := priceRange(hourlyRate, r)
		quote.Ranges = append(quote.Ranges, rq)
		quote.TotalMinutes += rq.Minutes
		quote.Total += rq.Amount
	}
	if quote.TotalMinutes >= longSessionThresholdMin {
		quote.LongSession = true
		quote.Total = int64(math.Round(float64(quote.Total) * longSessionFactor))
	}
	return quote
}

// Quote prices a set of ranges against a stored resource.
func (s *DefaultBookingService) Quote(ctx context.Context, resourceID string, ranges []models.TimeRange, opts models.Options) (*PriceQuote, error) {
	if len(ranges) == 0 {
		return nil, &ValidationError{Field: "ranges", Message: "at least one range is required"}
	}
	for _, r := range ranges {
		if !r.End.After(r.Start) {
			return nil, &ValidationError{Field: "ranges", Message: "range end must be after start"}
		}
	}
	resource, err := s.catalog.GetResource(ctx, resourceID)
	if err != nil {
		return nil, mapRepoErr("get resource", "resource", resourceID, err)
	}
	quote := QuoteRanges(HourlyRate(resource, opts), ranges)
	quote.ResourceID = resourceID
	return quote, nil
}
