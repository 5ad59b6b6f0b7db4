package model

// MarketSizePoint is the market size in USD billions for a single year.
type MarketSizePoint struct {
	Year  int
	Value float64
}
