package pricing

// OccupancyPricer turns a base nightly rate into the rate actually charged
// given the hotel's occupancy percentage at booking time.
type OccupancyPricer interface {
	NightlyRate(base Money, occupancyPercent float64) Money
}

// BandedOccupancyPricer applies a stepwise surcharge: the occupancy percent
// is truncated to whole tens and each full band adds a fixed share of the
// base rate (0-9% -> +0%, 10-19% -> +5%, ... 90-100% -> +45%).
//
// The banding is intentional business logic, not an approximation of a
// continuous curve.
type BandedOccupancyPricer struct {
	BandWidth    int
	PerBandShare float64
}

func NewBandedOccupancyPricer() *BandedOccupancyPricer {
	return &BandedOccupancyPricer{
		BandWidth:    10,
		PerBandShare: 0.05,
	}
}

func (p *BandedOccupancyPricer) NightlyRate(base Money, occupancyPercent float64) Money {
	if occupancyPercent < 0 {
		occupancyPercent = 0
	}
	bands := int(occupancyPercent) / p.BandWidth
	factor := 1 + float64(bands)*p.PerBandShare
	return base.Scale(factor)
}
