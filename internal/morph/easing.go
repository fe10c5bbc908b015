package morph

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Easing maps linear progress in [0,1] to eased progress in [0,1], with Easing(0) == 0 and Easing(1) == 1.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

// EaseOutQuint decelerates sharply towards the end.
func EaseOutQuint(t float64) float64 {
	return 1 - math.Pow(1-t, 5)
}

// EaseInOutCubic accelerates through the first half and decelerates through the second.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

var easings = map[string]Easing{
	"linear":            Linear,
	"ease-out-quint":    EaseOutQuint,
	"ease-in-out-cubic": EaseInOutCubic,
}

// DefaultEasing is the name of the easing used when none is configured.
const DefaultEasing = "ease-out-quint"

// ErrUnknownEasing is returned by ParseEasing for unrecognized names.
var ErrUnknownEasing = errors.New("unknown easing")

// ParseEasing looks up an easing by name. The empty string selects DefaultEasing.
func ParseEasing(name string) (Easing, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultEasing
	}
	if e, ok := easings[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownEasing, name, strings.Join(EasingNames(), ", "))
}

// EasingNames returns the names accepted by ParseEasing, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
