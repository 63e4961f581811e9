package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

type PriceCalculator interface {
	Total(rate Money, window Window) Money
}

// DailyRateCalculator charges rate per day, prorated to the second and
// rounded half away from zero to whole cents.
type DailyRateCalculator struct{}

func NewDailyRateCalculator() *DailyRateCalculator {
	return &DailyRateCalculator{}
}

var secondsPerDay = decimal.NewFromInt(int64(24 * time.Hour / time.Second))

func (DailyRateCalculator) Total(rate Money, window Window) Money {
	seconds := decimal.NewFromInt(int64(window.Duration() / time.Second))
	total := decimal.NewFromInt(rate.Cents()).
		Mul(seconds).
		Div(secondsPerDay).
		Round(0)
	return Money{cents: total.IntPart()}
}
