package present

// Band classifies a regression quality (coefficient of determination).
type Band int

const (
	BandInsufficient Band = iota // [0, 0.5)
	BandModerate                 // [0.5, 0.7)
	BandGood                     // [0.7, 0.9)
	BandExcellent                // [0.9, 1]
)

var bandNames = [...]string{"insufficient", "moderate", "good", "excellent"}

var bandLabels = [...]string{"ungenügend", "mäßig", "gut", "sehr gut"}

// QualityBand returns the band of quality q. Values outside [0, 1] are
// assigned to the nearest band.
func QualityBand(q float64) Band {
	switch {
	case q >= 0.9:
		return BandExcellent
	case q >= 0.7:
		return BandGood
	case q >= 0.5:
		return BandModerate
	default:
		return BandInsufficient
	}
}

func (b Band) String() string {
	if b < 0 || int(b) >= len(bandNames) {
		return "unknown"
	}

	return bandNames[b]
}

// Label returns the German display name of the band.
func (b Band) Label() string {
	if b < 0 || int(b) >= len(bandLabels) {
		return ""
	}

	return bandLabels[b]
}
