// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits used throughout the application.
// These constants provide sensible defaults for configuration settings and establish
// boundaries for resource usage. Changes to these values may significantly impact
// application behavior.
package constants

// Default Configuration Values define fallback settings when not specified in configuration.
// These constants provide sensible defaults for core application settings.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"
)

// Environment Types define the recognized application running environments.
// These constants are used to adjust behavior based on the deployment environment.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// Request Size Limits help prevent denial of service via excessive resource consumption.
const (
	// MaxRequestBodySize is the maximum size in bytes for HTTP request bodies.
	MaxRequestBodySize = 1048576 // 1MB in bytes
)

// Default Query Parameter Values define the fallback values for collection endpoints.
const (
	// DefaultSkip is the number of leading items skipped when listing items.
	DefaultSkip = 0

	// DefaultLimit is the maximum number of items returned when listing items.
	DefaultLimit = 10
)
