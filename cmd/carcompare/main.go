// Package main provides the entry point for the carcompare CLI.
//
// carcompare is a side-by-side vehicle comparison tool. Vehicles are
// selected from a catalog into a persistent comparison, and the comparison
// can be rendered as a table or shared as a URL.
//
// Usage:
//
//	carcompare add <vehicle>...
//	carcompare report
//	carcompare share
//
// See --help for all available options.
package main

// main is the entry point for carcompare.
func main() {
	Execute()
}
