package domain

import "strings"

// FilterSelection is a UI-level choice for one optional query dimension:
// either "all values" (no filter emitted) or one specific value. The "all"
// sentinel is a locale-dependent label ("all", "全部", ...), so raw input
// is normalized against a configured label set instead of a hardcoded
// literal.
type FilterSelection struct {
	value string
	all   bool
}

// AllValues is the no-filter selection.
func AllValues() FilterSelection {
	return FilterSelection{all: true}
}

// Specific selects exactly one value for the dimension.
func Specific(value string) FilterSelection {
	return FilterSelection{value: value}
}

// ParseFilterSelection normalizes raw user input: empty input or any of the
// configured "all" labels means no filter.
func ParseFilterSelection(raw string, allLabels []string) FilterSelection {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return AllValues()
	}

	for _, label := range allLabels {
		if strings.EqualFold(raw, label) {
			return AllValues()
		}
	}

	return Specific(raw)
}

// IsAll reports whether the selection means "do not filter".
func (f FilterSelection) IsAll() bool {
	return f.all
}

// Value returns the selected value; empty for the all selection.
func (f FilterSelection) Value() string {
	if f.all {
		return ""
	}
	return f.value
}

// Device type values accepted by the provider's device dimension.
const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
	DeviceTablet  = "tablet"
)

// ValidDeviceType reports whether v is in the closed device enumeration.
func ValidDeviceType(v string) bool {
	switch strings.ToLower(v) {
	case DeviceMobile, DeviceDesktop, DeviceTablet:
		return true
	}
	return false
}

// ValidCountryCode reports whether v looks like an ISO 3166-1 alpha-3 code.
func ValidCountryCode(v string) bool {
	if len(v) != 3 {
		return false
	}

	for _, r := range v {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}

	return true
}
