package diversity

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies one of the supported diversity measures.
type Kind int

const (
	KindShannon Kind = iota
	KindRenyi
	KindRaoQ
)

// Measure selects a diversity measure by value. Alpha is meaningful only
// for KindRenyi. The zero value is Shannon.
type Measure struct {
	Kind  Kind
	Alpha float64
}

// Shannon selects the Shannon entropy.
func Shannon() Measure {
	return Measure{Kind: KindShannon}
}

// Renyi selects the Renyi entropy of the given order. Orders below 0 are
// accepted numerically but only alpha >= 0, alpha != 1 produces
// meaningful scores; alpha = 1 fails validation.
func Renyi(alpha float64) Measure {
	return Measure{Kind: KindRenyi, Alpha: alpha}
}

// RaoQ selects Rao's quadratic entropy.
func RaoQ() Measure {
	return Measure{Kind: KindRaoQ}
}

// Validate rejects unknown kinds and the undefined Renyi order.
func (m Measure) Validate() error {
	switch m.Kind {
	case KindShannon, KindRaoQ:
		return nil
	case KindRenyi:
		if m.Alpha == 1 {
			return ErrUndefinedParameter
		}
		return nil
	}
	return fmt.Errorf("%w: kind %d", ErrInvalidMeasure, int(m.Kind))
}

// String returns the measure's band-label spelling: "shannon", "rao_q",
// or "renyi_<order>" with the order printed in its shortest decimal form
// ("renyi_0", "renyi_2", "renyi_0.5").
func (m Measure) String() string {
	switch m.Kind {
	case KindShannon:
		return "shannon"
	case KindRenyi:
		return "renyi_" + strconv.FormatFloat(m.Alpha, 'f', -1, 64)
	case KindRaoQ:
		return "rao_q"
	}
	return fmt.Sprintf("unknown(%d)", int(m.Kind))
}

// ParseMeasure inverts String and validates the result, so a successful
// parse is always usable by the reducers.
func ParseMeasure(name string) (Measure, error) {
	switch {
	case name == "shannon":
		return Shannon(), nil
	case name == "rao_q":
		return RaoQ(), nil
	case strings.HasPrefix(name, "renyi_"):
		alpha, err := strconv.ParseFloat(strings.TrimPrefix(name, "renyi_"), 64)
		if err != nil {
			return Measure{}, fmt.Errorf("%w: %q", ErrInvalidMeasure, name)
		}
		m := Renyi(alpha)
		if err := m.Validate(); err != nil {
			return Measure{}, err
		}
		return m, nil
	}
	return Measure{}, fmt.Errorf("%w: %q", ErrInvalidMeasure, name)
}
