// Package config provides configuration management for carcompare.
//
// Configuration comes from two places: CLI flags populate a Config struct
// that is passed through the application by dependency injection, and an
// optional .carcompare YAML file supplies per-user overrides such as a
// custom specification list for the comparison table. The file is searched
// for in the current directory and then the home directory, mirroring how
// tools like .gitconfig behave.
package config
