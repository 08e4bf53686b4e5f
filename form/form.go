// Package form holds the state of the single conversion screen: the
// selected category, both units, the typed value and the last result.
//
// Setters only record input. Callers invoke Recompute after any change;
// Recompute is idempotent.
package form

import (
	"fmt"

	"converter"
)

const (
	DefaultCategory   = "Length"
	DefaultInputUnit  = "meter"
	DefaultOutputUnit = "kilometer"
)

type Form struct {
	Category    string
	InputUnit   string
	OutputUnit  string
	InputValue  float64
	OutputValue float64

	conv *converter.Converter
}

func New(conv *converter.Converter) *Form {
	if conv == nil {
		conv = converter.NewConverter()
	}
	return &Form{
		Category:   DefaultCategory,
		InputUnit:  DefaultInputUnit,
		OutputUnit: DefaultOutputUnit,
		conv:       conv,
	}
}

// SelectCategory switches category and resets both units to the first unit
// name of the new category in sorted order.
func (f *Form) SelectCategory(category string) error {
	names, err := converter.UnitNames(category)
	if err != nil {
		return fmt.Errorf("select category: %w", err)
	}
	f.Category = category
	f.InputUnit = names[0]
	f.OutputUnit = names[0]
	return nil
}

func (f *Form) SetInputUnit(unit string) {
	f.InputUnit = unit
}

func (f *Form) SetOutputUnit(unit string) {
	f.OutputUnit = unit
}

func (f *Form) SetInputValue(v float64) {
	f.InputValue = v
}

// Recompute converts InputValue and stores the result in OutputValue.
func (f *Form) Recompute() float64 {
	f.OutputValue = f.conv.Convert(f.Category, f.InputUnit, f.OutputUnit, f.InputValue)
	return f.OutputValue
}

// Output renders the result to two decimals followed by the output unit's
// symbol. OutputValue keeps full precision.
func (f *Form) Output() string {
	return FormatValue(f.OutputValue, converter.SymbolFor(f.Category, f.OutputUnit))
}

// UnitLabel renders a picker entry such as "meter (m)".
func (f *Form) UnitLabel(unit string) string {
	return fmt.Sprintf("%s (%s)", unit, converter.SymbolFor(f.Category, unit))
}

// UnitLabels returns the picker entries for the current category.
func (f *Form) UnitLabels() []string {
	names, err := converter.UnitNames(f.Category)
	if err != nil {
		return nil
	}
	labels := make([]string, 0, len(names))
	for _, name := range names {
		labels = append(labels, f.UnitLabel(name))
	}
	return labels
}

func FormatValue(v float64, symbol string) string {
	if symbol == "" {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2f %s", v, symbol)
}
