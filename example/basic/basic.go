package main

import (
	"fmt"

	"converter"
	"converter/form"
)

// Walks the conversion screen the way a UI would: mutate, then Recompute.
func main() {
	f := form.New(converter.NewConverter())

	f.SetInputValue(1500)
	f.Recompute()
	fmt.Printf("%v %s = %s\n", f.InputValue, f.InputUnit, f.Output())

	if err := f.SelectCategory("Temperature"); err != nil {
		panic(err)
	}
	f.SetOutputUnit("Fahrenheit")
	f.SetInputValue(37)
	f.Recompute()
	fmt.Printf("%v %s = %s\n", f.InputValue, f.InputUnit, f.Output())

	for _, category := range converter.Categories() {
		units, _ := converter.UnitsFor(category)
		fmt.Printf("%s: %d units, base %s\n", category, len(units), mustCategory(category).Base())
	}
}

func mustCategory(name string) converter.Category {
	c, ok := converter.ParseCategory(name)
	if !ok {
		panic("unknown category " + name)
	}
	return c
}
