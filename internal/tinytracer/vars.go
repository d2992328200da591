package tinytracer

import "fmt"

var (
	Debug = false // set to true for a [STATS] summary after each run
	// Compile time checks
	_ fmt.Stringer = Vector3{}
)
