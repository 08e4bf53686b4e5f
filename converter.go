package converter

import (
	"fmt"
	"log/slog"
)

// Hops at which an unrecognized name can be passed through.
const (
	HopCategory = "category"
	HopInput    = "input"
	HopOutput   = "output"
)

// Recorder receives conversion events. It never influences results.
type Recorder interface {
	ObserveConversion(category string)
	ObserveFallback(category, hop string)
}

// Converter converts values between units of one category by way of the
// category's base unit. It holds no mutable state and is safe to share.
type Converter struct {
	logger   *slog.Logger
	recorder Recorder
}

type Option func(*Converter)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

func WithRecorder(r Recorder) Option {
	return func(c *Converter) {
		c.recorder = r
	}
}

func NewConverter(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConverter = NewConverter()

// Convert is Converter.Convert on a converter without logging or metrics.
func Convert(category, inputUnit, outputUnit string, inputValue float64) float64 {
	return defaultConverter.Convert(category, inputUnit, outputUnit, inputValue)
}

// ConvertStrict is Converter.ConvertStrict on the default converter.
func ConvertStrict(category, inputUnit, outputUnit string, inputValue float64) (float64, error) {
	return defaultConverter.ConvertStrict(category, inputUnit, outputUnit, inputValue)
}

// Convert never fails: an unknown category returns inputValue unchanged and
// an unknown unit is treated as the base unit at its hop. Converting a unit
// to itself returns inputValue exactly, skipping the affine round trip.
func (c *Converter) Convert(category, inputUnit, outputUnit string, inputValue float64) float64 {
	cat, ok := ParseCategory(category)
	if !ok {
		c.passthrough(cat.String(), HopCategory, category)
		return inputValue
	}
	c.observe(cat)
	if inputUnit == outputUnit {
		return inputValue
	}
	base := c.ToBase(cat, inputUnit, inputValue)
	return c.FromBase(cat, outputUnit, base)
}

// ConvertStrict does the same arithmetic as Convert but reports unknown
// names instead of passing the value through.
func (c *Converter) ConvertStrict(category, inputUnit, outputUnit string, inputValue float64) (float64, error) {
	cat, ok := ParseCategory(category)
	if !ok {
		return 0, fmt.Errorf("convert: category %q: %w", category, ErrUnknownCategory)
	}
	in, ok := LookupUnit(cat, inputUnit)
	if !ok {
		return 0, fmt.Errorf("convert: %s input unit %q: %w", cat, inputUnit, ErrUnknownUnit)
	}
	out, ok := LookupUnit(cat, outputUnit)
	if !ok {
		return 0, fmt.Errorf("convert: %s output unit %q: %w", cat, outputUnit, ErrUnknownUnit)
	}
	c.observe(cat)
	if in == out {
		return inputValue, nil
	}
	return out.Transform().FromBase(in.Transform().ToBase(inputValue)), nil
}

// ToBase maps v in the named unit to the category's base unit.
func (c *Converter) ToBase(category Category, unit string, v float64) float64 {
	u, ok := LookupUnit(category, unit)
	if !ok {
		c.passthrough(category.String(), HopInput, unit)
		return v
	}
	return u.Transform().ToBase(v)
}

// FromBase maps a base-unit value into the named unit.
func (c *Converter) FromBase(category Category, unit string, base float64) float64 {
	u, ok := LookupUnit(category, unit)
	if !ok {
		c.passthrough(category.String(), HopOutput, unit)
		return base
	}
	return u.Transform().FromBase(base)
}

func (c *Converter) observe(category Category) {
	if c.recorder != nil {
		c.recorder.ObserveConversion(category.String())
	}
}

func (c *Converter) passthrough(category, hop, name string) {
	if c.logger != nil {
		c.logger.Debug("unrecognized name, passing value through",
			"category", category,
			"hop", hop,
			"name", name)
	}
	if c.recorder != nil {
		c.recorder.ObserveFallback(category, hop)
	}
}
