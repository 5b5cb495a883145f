package report_test

import (
	"time"

	"github.com/shopspring/decimal"
)

// dec parst einen Dezimalstring; ungültige Literale sind Programmierfehler im Test.
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// day baut ein Kalenderdatum (UTC-Mitternacht).
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
