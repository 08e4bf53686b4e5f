package converter

// Transform relates a unit to its category's base unit:
//
//	base = (v + Offset) * Mul / Div
//	v    = base * Div / Mul - Offset
//
// Mul and Div are kept apart so that "÷3.28084" stays a division instead of
// a multiplication by a rounded reciprocal.
type Transform struct {
	Offset float64
	Mul    float64
	Div    float64
}

var identity = Transform{Mul: 1, Div: 1}

func (t Transform) ToBase(v float64) float64 {
	return (v + t.Offset) * t.Mul / t.Div
}

func (t Transform) FromBase(base float64) float64 {
	return base*t.Div/t.Mul - t.Offset
}

type Unit int

const (
	Meter Unit = iota + 1
	Kilometer
	Feet
	Yard
	Mile

	Kelvin
	Celsius
	Fahrenheit

	Liters
	Milliliters
	Cups
	Pints
	Gallons

	Seconds
	Minutes
	Hours
	Days
)

type unitInfo struct {
	category  Category
	name      string
	symbol    string
	transform Transform
}

var units = map[Unit]unitInfo{
	Meter:     {Length, "meter", "m", identity},
	Kilometer: {Length, "kilometer", "km", Transform{Mul: 1000, Div: 1}},
	Feet:      {Length, "feet", "ft", Transform{Mul: 1, Div: 3.28084}},
	Yard:      {Length, "yard", "yd", Transform{Mul: 1, Div: 1.09361}},
	Mile:      {Length, "mile", "mi", Transform{Mul: 1609.34, Div: 1}},

	Kelvin:     {Temperature, "Kelvin", "K", Transform{Offset: -273.15, Mul: 1, Div: 1}},
	Celsius:    {Temperature, "Celsius", "°C", identity},
	Fahrenheit: {Temperature, "Fahrenheit", "°F", Transform{Offset: -32, Mul: 5, Div: 9}},

	Liters:      {Volume, "liters", "L", identity},
	Milliliters: {Volume, "milliliters", "mL", Transform{Mul: 1, Div: 1000}},
	Cups:        {Volume, "cups", "cups", Transform{Mul: 0.236588, Div: 1}},
	Pints:       {Volume, "pints", "pt", Transform{Mul: 0.473176, Div: 1}},
	Gallons:     {Volume, "gallons", "gal", Transform{Mul: 3.78541, Div: 1}},

	Seconds: {Time, "seconds", "s", identity},
	Minutes: {Time, "minutes", "min", Transform{Mul: 60, Div: 1}},
	Hours:   {Time, "hours", "hr", Transform{Mul: 3600, Div: 1}},
	Days:    {Time, "days", "d", Transform{Mul: 86400, Div: 1}},
}

func (u Unit) Category() Category { return units[u].category }

func (u Unit) Name() string { return units[u].name }

func (u Unit) Symbol() string { return units[u].symbol }

// Transform returns the unit's relation to its base unit. Unknown units get
// the identity transform.
func (u Unit) Transform() Transform {
	if info, ok := units[u]; ok {
		return info.transform
	}
	return identity
}

func (u Unit) String() string {
	if info, ok := units[u]; ok {
		return info.name
	}
	return "unknown"
}
