package ticks

// shortYearMultiples replaces the decimal year table below five years, so that
// 2.5 years is never chosen while 25 and 250 remain reachable.
var shortYearMultiples = []float64{1, 2, 5}

// Selection is the unit picked for a raw interval.
type Selection struct {
	Unit     TimeUnit
	Duration float64
}

// SelectUnit walks units from finest to coarsest and keeps the first one whose
// largest multiple, averaged with the next unit's duration, still covers raw.
// The last unit is the fallback. units must satisfy ValidateUnits.
func SelectUnit(raw float64, units []TimeUnit, d Durations) Selection {
	unit := units[len(units)-1]
	for i := 0; i < len(units)-1; i++ {
		u := units[i]
		lessThan := (d.Of(u.Unit)*u.Multiples[len(u.Multiples)-1] + d.Of(units[i+1].Unit)) / 2
		if raw <= lessThan {
			unit = u
			break
		}
	}

	if unit.Unit == Year && raw < 5*d.Of(Year) {
		unit = TimeUnit{Unit: Year, Multiples: shortYearMultiples}
	}
	return Selection{Unit: unit, Duration: d.Of(unit.Unit)}
}

// Multitude returns how many units separate two ticks for the raw interval.
func (s Selection) Multitude(raw float64) float64 {
	count := raw / s.Duration
	if s.Unit.Multiples == nil {
		return normalize(count, nil, Magnitude(count), true)
	}
	return normalize(count, s.Unit.Multiples, 1, true)
}
