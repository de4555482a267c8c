package service

import (
	"fmt"
	"strings"
)

type unitKind string

const (
	unitKindMass   unitKind = "mass"
	unitKindLength unitKind = "length"
)

type unitDef struct {
	kind       unitKind
	toBaseUnit float64
}

var unitTable = map[string]unitDef{
	// mass (base = kg)
	"kg":  {kind: unitKindMass, toBaseUnit: 1},
	"lb":  {kind: unitKindMass, toBaseUnit: 0.45359237},
	"lbs": {kind: unitKindMass, toBaseUnit: 0.45359237},

	// length (base = cm)
	"cm": {kind: unitKindLength, toBaseUnit: 1},
	"m":  {kind: unitKindLength, toBaseUnit: 100},
	"in": {kind: unitKindLength, toBaseUnit: 2.54},
}

// ToKg converts a body weight in kg or lb to kg.
func ToKg(value float64, unit string) (float64, error) {
	return toBase(value, unit, "kg", unitKindMass)
}

// ToCm converts a height in cm, m or in to cm.
func ToCm(value float64, unit string) (float64, error) {
	return toBase(value, unit, "cm", unitKindLength)
}

// FromKg converts kg to the given weight unit.
func FromKg(kg float64, unit string) (float64, error) {
	def, err := resolveKind(unit, "kg", unitKindMass)
	if err != nil {
		return 0, err
	}
	return kg / def.toBaseUnit, nil
}

func toBase(value float64, unit, fallback string, kind unitKind) (float64, error) {
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", kind)
	}
	def, err := resolveKind(unit, fallback, kind)
	if err != nil {
		return 0, err
	}
	return value * def.toBaseUnit, nil
}

func resolveKind(unit, fallback string, kind unitKind) (unitDef, error) {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		u = fallback
	}
	def, ok := unitTable[u]
	if !ok || def.kind != kind {
		return unitDef{}, fmt.Errorf("invalid %s unit %q", kind, unit)
	}
	return def, nil
}
