package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.1.0"

	// Modular tools
	Benchmark     = "v1.0.1"
	Motif_Finder  = "v1.0.0"
	Combinator    = "v1.0.0"
	Sanity_check  = "v1.1.0"
)
