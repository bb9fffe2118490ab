package report

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/carstack/carcompare/internal/compare"
	"github.com/carstack/carcompare/internal/model"
)

// MissingPlaceholder is rendered when a vehicle lacks a compared field.
const MissingPlaceholder = "N/A"

// Field pairs a comparable field path with its human-readable row label.
type Field struct {
	// Path is the model field path (e.g., "specifications.engine.horsepower").
	Path string `yaml:"path"`

	// Label is the row label shown in reports (e.g., "Horsepower").
	Label string `yaml:"label"`
}

// Header identifies one vehicle column of the table.
type Header struct {
	// ID is the vehicle identifier.
	ID string `json:"id"`

	// Name is the display name used as the column title.
	Name string `json:"name"`
}

// Row is one compared field across all selected vehicles.
type Row struct {
	// Label is the human-readable field name.
	Label string `json:"label"`

	// Path is the underlying field path.
	Path string `json:"path"`

	// Values holds one formatted value per vehicle, in column order.
	Values []string `json:"values"`

	// Best flags the advantageous value(s) per vehicle; always false for
	// non-numeric fields and for fields the vehicles agree on.
	Best []bool `json:"best"`

	// Highlight is true when the vehicles disagree on this field,
	// regardless of which value is better.
	Highlight bool `json:"highlight"`
}

// Table is the complete, rendering-agnostic comparison table.
type Table struct {
	// Headers holds one column header per vehicle, in selection order.
	Headers []Header `json:"headers"`

	// Rows holds one row per configured field, in configuration order.
	Rows []Row `json:"rows"`
}

// DefaultFields returns the fields compared when no configuration overrides
// them, in report order.
func DefaultFields() []Field {
	return []Field{
		{Path: "year", Label: "Year"},
		{Path: "bodyStyle", Label: "Body Style"},
		{Path: "price", Label: "Base Price"},
		{Path: "msrp", Label: "MSRP"},
		{Path: "specifications.engine.horsepower", Label: "Horsepower"},
		{Path: "specifications.engine.torque", Label: "Torque (lb-ft)"},
		{Path: "specifications.engine.displacement", Label: "Displacement (L)"},
		{Path: "specifications.engine.cylinders", Label: "Cylinders"},
		{Path: "specifications.fuelEconomy.city", Label: "Fuel City (L/100km)"},
		{Path: "specifications.fuelEconomy.highway", Label: "Fuel Highway (L/100km)"},
		{Path: "specifications.fuelEconomy.combined", Label: "Fuel Combined (L/100km)"},
		{Path: "specifications.dimensions.curbWeight", Label: "Curb Weight (kg)"},
		{Path: "specifications.dimensions.wheelbase", Label: "Wheelbase (mm)"},
		{Path: "specifications.dimensions.cargoVolume", Label: "Cargo Volume (L)"},
		{Path: "specifications.seatingCapacity", Label: "Seating"},
		{Path: "specifications.safetyRating", Label: "Safety Rating"},
		{Path: "features.allWheelDrive", Label: "All-Wheel Drive"},
		{Path: "features.sunroof", Label: "Sunroof"},
		{Path: "features.navigation", Label: "Navigation"},
		{Path: "features.heatedSeats", Label: "Heated Seats"},
		{Path: "warranty.years", Label: "Warranty (years)"},
		{Path: "warranty.kilometers", Label: "Warranty (km)"},
	}
}

// BuildTable produces the comparison table for the given vehicles and field
// list. It is pure: classification is recomputed from the vehicles on every
// call, nothing is cached.
func BuildTable(vehicles []*model.Vehicle, fields []Field) *Table {
	table := &Table{
		Headers: make([]Header, len(vehicles)),
		Rows:    make([]Row, 0, len(fields)),
	}
	for i, v := range vehicles {
		table.Headers[i] = Header{ID: v.ID, Name: v.DisplayName()}
	}

	for _, f := range fields {
		comparisons := compare.Classify(f.Path, vehicles, true)

		row := Row{
			Label:  f.Label,
			Path:   f.Path,
			Values: make([]string, len(vehicles)),
			Best:   make([]bool, len(vehicles)),
		}
		for i, fc := range comparisons {
			row.Values[i] = FormatValue(fc.Value)
			row.Best[i] = fc.BestHighlight
			if fc.Classification != model.ClassificationSame {
				row.Highlight = true
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// printer formats numbers with English locale grouping ("45,000").
var printer = message.NewPrinter(language.English)

// FormatValue renders a field value for display: numbers with locale
// grouping, booleans as Yes/No, missing as the placeholder.
func FormatValue(fv model.FieldValue) string {
	switch fv.Kind {
	case model.KindNumber:
		if fv.Num == math.Trunc(fv.Num) {
			return printer.Sprintf("%d", int64(fv.Num))
		}
		return printer.Sprintf("%.1f", fv.Num)
	case model.KindString:
		return fv.Str
	case model.KindBool:
		if fv.Bool {
			return "Yes"
		}
		return "No"
	default:
		return MissingPlaceholder
	}
}
