package compare

// lowerIsBetter enumerates the field paths where a smaller numeric value is
// the advantageous one. Every path not listed here defaults to
// higher-is-better. Prices and weight are costs; fuel economy figures are
// consumption in L/100km, where less fuel burned is better.
var lowerIsBetter = map[string]bool{
	"price": true,
	"msrp":  true,
	"specifications.fuelEconomy.city":      true,
	"specifications.fuelEconomy.highway":   true,
	"specifications.fuelEconomy.combined":  true,
	"specifications.dimensions.curbWeight": true,
}

// LowerIsBetter reports whether smaller values win for the given field path.
func LowerIsBetter(path string) bool {
	return lowerIsBetter[path]
}
