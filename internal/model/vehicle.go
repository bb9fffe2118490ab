package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Vehicle represents a single catalog entry eligible for comparison.
// Identity is the ID field alone: two Vehicle values with the same ID are
// the same vehicle regardless of how their other fields differ.
//
// Design decision: Nested sections (Specifications, Features, Warranty) are
// pointers so that a vehicle snapshot restored from an older persisted
// payload can legitimately lack whole sections. Field resolution treats a
// nil section as "path does not resolve" rather than as zero values.
type Vehicle struct {
	// ID is the stable unique identifier, expected to be a UUID string.
	ID string `json:"id" yaml:"id"`

	// Make is the manufacturer name (e.g., "Toyota").
	Make string `json:"make" yaml:"make"`

	// Model is the model name (e.g., "Camry").
	Model string `json:"model" yaml:"model"`

	// Year is the model year.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Trim is the trim level (e.g., "XSE").
	Trim string `json:"trim,omitempty" yaml:"trim,omitempty"`

	// BodyStyle is the body style (e.g., "Sedan", "SUV").
	BodyStyle string `json:"bodyStyle,omitempty" yaml:"bodyStyle,omitempty"`

	// Price is the advertised base price in whole currency units.
	Price float64 `json:"price,omitempty" yaml:"price,omitempty"`

	// MSRP is the manufacturer's suggested retail price.
	MSRP float64 `json:"msrp,omitempty" yaml:"msrp,omitempty"`

	// Specifications holds the technical spec sections, nil when unknown.
	Specifications *Specifications `json:"specifications,omitempty" yaml:"specifications,omitempty"`

	// Features holds boolean equipment flags, nil when unknown.
	Features *Features `json:"features,omitempty" yaml:"features,omitempty"`

	// Warranty holds the warranty terms, nil when unknown.
	Warranty *Warranty `json:"warranty,omitempty" yaml:"warranty,omitempty"`
}

// Specifications groups the technical specification sections of a vehicle.
type Specifications struct {
	// Engine holds engine figures, nil when unknown.
	Engine *Engine `json:"engine,omitempty" yaml:"engine,omitempty"`

	// FuelEconomy holds consumption figures in L/100km, nil when unknown.
	FuelEconomy *FuelEconomy `json:"fuelEconomy,omitempty" yaml:"fuelEconomy,omitempty"`

	// Dimensions holds size and weight figures, nil when unknown.
	Dimensions *Dimensions `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`

	// SeatingCapacity is the number of seats, zero when unknown.
	SeatingCapacity int `json:"seatingCapacity,omitempty" yaml:"seatingCapacity,omitempty"`

	// SafetyRating is the crash-test star rating, nil when untested.
	SafetyRating *float64 `json:"safetyRating,omitempty" yaml:"safetyRating,omitempty"`
}

// Engine holds engine output figures.
type Engine struct {
	// Horsepower is peak power output in hp.
	Horsepower float64 `json:"horsepower,omitempty" yaml:"horsepower,omitempty"`

	// Torque is peak torque in lb-ft.
	Torque float64 `json:"torque,omitempty" yaml:"torque,omitempty"`

	// Displacement is engine displacement in liters.
	Displacement float64 `json:"displacement,omitempty" yaml:"displacement,omitempty"`

	// Cylinders is the cylinder count.
	Cylinders int `json:"cylinders,omitempty" yaml:"cylinders,omitempty"`
}

// FuelEconomy holds fuel consumption figures.
// Values are liters per 100 km, so lower values are better.
type FuelEconomy struct {
	// City is the urban-cycle consumption.
	City float64 `json:"city,omitempty" yaml:"city,omitempty"`

	// Highway is the highway-cycle consumption.
	Highway float64 `json:"highway,omitempty" yaml:"highway,omitempty"`

	// Combined is the combined-cycle consumption.
	Combined float64 `json:"combined,omitempty" yaml:"combined,omitempty"`
}

// Dimensions holds exterior size and weight figures.
type Dimensions struct {
	// CurbWeight is the curb weight in kg.
	CurbWeight float64 `json:"curbWeight,omitempty" yaml:"curbWeight,omitempty"`

	// Wheelbase is the wheelbase in mm.
	Wheelbase float64 `json:"wheelbase,omitempty" yaml:"wheelbase,omitempty"`

	// CargoVolume is the cargo volume in liters.
	CargoVolume float64 `json:"cargoVolume,omitempty" yaml:"cargoVolume,omitempty"`
}

// Features holds boolean equipment flags.
type Features struct {
	// AllWheelDrive reports whether the vehicle has all-wheel drive.
	AllWheelDrive bool `json:"allWheelDrive" yaml:"allWheelDrive"`

	// Sunroof reports whether a sunroof is fitted.
	Sunroof bool `json:"sunroof" yaml:"sunroof"`

	// Navigation reports whether built-in navigation is fitted.
	Navigation bool `json:"navigation" yaml:"navigation"`

	// HeatedSeats reports whether heated front seats are fitted.
	HeatedSeats bool `json:"heatedSeats" yaml:"heatedSeats"`
}

// Warranty holds the basic warranty terms.
type Warranty struct {
	// Years is the warranty duration in years.
	Years int `json:"years,omitempty" yaml:"years,omitempty"`

	// Kilometers is the warranty distance limit in km.
	Kilometers int `json:"kilometers,omitempty" yaml:"kilometers,omitempty"`
}

// DisplayName returns the human-readable name used as a column header,
// e.g. "2024 Toyota Camry XSE". Empty components are omitted.
func (v *Vehicle) DisplayName() string {
	parts := make([]string, 0, 4)
	if v.Year != 0 {
		parts = append(parts, fmt.Sprintf("%d", v.Year))
	}
	if v.Make != "" {
		parts = append(parts, v.Make)
	}
	if v.Model != "" {
		parts = append(parts, v.Model)
	}
	if v.Trim != "" {
		parts = append(parts, v.Trim)
	}
	if len(parts) == 0 {
		return v.ID
	}
	return strings.Join(parts, " ")
}

// WellFormed reports whether the vehicle carries the minimal identifying
// fields required for persistence and URL projection: a UUID-shaped ID
// plus make and model. Business data (price consistency, spec plausibility)
// is deliberately not validated here; that belongs to the catalog source.
func (v *Vehicle) WellFormed() bool {
	if v == nil {
		return false
	}
	if uuid.Validate(v.ID) != nil {
		return false
	}
	return v.Make != "" && v.Model != ""
}
