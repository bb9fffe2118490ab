package model

// FieldKind discriminates the value held by a FieldValue.
type FieldKind int

const (
	// KindMissing indicates the field path did not resolve on the vehicle.
	KindMissing FieldKind = iota

	// KindNumber indicates a numeric value (all numerics are float64).
	KindNumber

	// KindString indicates a string value.
	KindString

	// KindBool indicates a boolean value.
	KindBool
)

// FieldValue is the resolved value of one field path on one vehicle.
//
// Design decision: We use a small tagged union rather than interface{} so
// that the classifier can branch on Kind without type switches at every
// call site, and so that "missing" is a first-class state instead of nil.
type FieldValue struct {
	// Kind discriminates which of the value fields is meaningful.
	Kind FieldKind

	// Num holds the value when Kind is KindNumber.
	Num float64

	// Str holds the value when Kind is KindString.
	Str string

	// Bool holds the value when Kind is KindBool.
	Bool bool
}

// Number returns a numeric FieldValue.
func Number(v float64) FieldValue { return FieldValue{Kind: KindNumber, Num: v} }

// String returns a string FieldValue.
func String(v string) FieldValue { return FieldValue{Kind: KindString, Str: v} }

// Bool returns a boolean FieldValue.
func Bool(v bool) FieldValue { return FieldValue{Kind: KindBool, Bool: v} }

// Missing returns the missing FieldValue.
func Missing() FieldValue { return FieldValue{Kind: KindMissing} }

// IsNumeric reports whether the value is a number.
func (fv FieldValue) IsNumeric() bool { return fv.Kind == KindNumber }

// IsMissing reports whether the path did not resolve.
func (fv FieldValue) IsMissing() bool { return fv.Kind == KindMissing }

// Equal reports whether two field values have the same kind and content.
// Two missing values compare equal.
func (fv FieldValue) Equal(other FieldValue) bool {
	if fv.Kind != other.Kind {
		return false
	}
	switch fv.Kind {
	case KindNumber:
		return fv.Num == other.Num
	case KindString:
		return fv.Str == other.Str
	case KindBool:
		return fv.Bool == other.Bool
	default:
		return true
	}
}

// FieldPaths lists every field path the comparison engine understands, in
// the order they appear in the default report. Unknown paths resolve as
// missing and are never an error.
//
// Design decision: The original design resolved dotted paths by dynamic
// property lookup. We enumerate the supported paths explicitly and resolve
// them with a typed switch instead of reflection-by-string, so adding a
// field is a compile-visible change.
func FieldPaths() []string {
	return []string{
		"make",
		"model",
		"year",
		"trim",
		"bodyStyle",
		"price",
		"msrp",
		"specifications.engine.horsepower",
		"specifications.engine.torque",
		"specifications.engine.displacement",
		"specifications.engine.cylinders",
		"specifications.fuelEconomy.city",
		"specifications.fuelEconomy.highway",
		"specifications.fuelEconomy.combined",
		"specifications.dimensions.curbWeight",
		"specifications.dimensions.wheelbase",
		"specifications.dimensions.cargoVolume",
		"specifications.seatingCapacity",
		"specifications.safetyRating",
		"features.allWheelDrive",
		"features.sunroof",
		"features.navigation",
		"features.heatedSeats",
		"warranty.years",
		"warranty.kilometers",
	}
}

// Field resolves a dotted field path on the vehicle. A nil vehicle, a nil
// nested section, an unknown path, or an unset optional leaf all resolve
// to Missing; resolution never fails.
func (v *Vehicle) Field(path string) FieldValue {
	if v == nil {
		return Missing()
	}

	switch path {
	case "make":
		return nonEmptyString(v.Make)
	case "model":
		return nonEmptyString(v.Model)
	case "year":
		if v.Year == 0 {
			return Missing()
		}
		return Number(float64(v.Year))
	case "trim":
		return nonEmptyString(v.Trim)
	case "bodyStyle":
		return nonEmptyString(v.BodyStyle)
	case "price":
		return positiveNumber(v.Price)
	case "msrp":
		return positiveNumber(v.MSRP)
	}

	if specs := v.Specifications; specs != nil {
		switch path {
		case "specifications.seatingCapacity":
			if specs.SeatingCapacity == 0 {
				return Missing()
			}
			return Number(float64(specs.SeatingCapacity))
		case "specifications.safetyRating":
			if specs.SafetyRating == nil {
				return Missing()
			}
			return Number(*specs.SafetyRating)
		}

		if e := specs.Engine; e != nil {
			switch path {
			case "specifications.engine.horsepower":
				return positiveNumber(e.Horsepower)
			case "specifications.engine.torque":
				return positiveNumber(e.Torque)
			case "specifications.engine.displacement":
				return positiveNumber(e.Displacement)
			case "specifications.engine.cylinders":
				return positiveNumber(float64(e.Cylinders))
			}
		}
		if f := specs.FuelEconomy; f != nil {
			switch path {
			case "specifications.fuelEconomy.city":
				return positiveNumber(f.City)
			case "specifications.fuelEconomy.highway":
				return positiveNumber(f.Highway)
			case "specifications.fuelEconomy.combined":
				return positiveNumber(f.Combined)
			}
		}
		if d := specs.Dimensions; d != nil {
			switch path {
			case "specifications.dimensions.curbWeight":
				return positiveNumber(d.CurbWeight)
			case "specifications.dimensions.wheelbase":
				return positiveNumber(d.Wheelbase)
			case "specifications.dimensions.cargoVolume":
				return positiveNumber(d.CargoVolume)
			}
		}
	}

	if feat := v.Features; feat != nil {
		switch path {
		case "features.allWheelDrive":
			return Bool(feat.AllWheelDrive)
		case "features.sunroof":
			return Bool(feat.Sunroof)
		case "features.navigation":
			return Bool(feat.Navigation)
		case "features.heatedSeats":
			return Bool(feat.HeatedSeats)
		}
	}

	if w := v.Warranty; w != nil {
		switch path {
		case "warranty.years":
			return positiveNumber(float64(w.Years))
		case "warranty.kilometers":
			return positiveNumber(float64(w.Kilometers))
		}
	}

	return Missing()
}

// nonEmptyString maps "" to Missing, everything else to a string value.
func nonEmptyString(s string) FieldValue {
	if s == "" {
		return Missing()
	}
	return String(s)
}

// positiveNumber maps non-positive figures to Missing. All numeric vehicle
// figures are physical quantities where zero means "not recorded".
func positiveNumber(v float64) FieldValue {
	if v <= 0 {
		return Missing()
	}
	return Number(v)
}
