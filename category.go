package converter

import "sort"

type Category int

const (
	Length Category = iota + 1
	Temperature
	Volume
	Time
)

var categoryNames = map[Category]string{
	Length:      "Length",
	Temperature: "Temperature",
	Volume:      "Volume",
	Time:        "Time",
}

// sortedCategoryNames is filled once in init and never mutated.
var sortedCategoryNames []string

func init() {
	for _, name := range categoryNames {
		sortedCategoryNames = append(sortedCategoryNames, name)
	}
	sort.Strings(sortedCategoryNames)
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Base returns the canonical unit every conversion in c is routed through.
func (c Category) Base() Unit {
	switch c {
	case Length:
		return Meter
	case Temperature:
		return Celsius
	case Volume:
		return Liters
	case Time:
		return Seconds
	}
	return 0
}

func ParseCategory(name string) (Category, bool) {
	for c, n := range categoryNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// Categories returns the category names in lexicographic order.
func Categories() []string {
	return append([]string(nil), sortedCategoryNames...)
}
