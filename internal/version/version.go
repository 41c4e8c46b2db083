// ABOUTME: Version information for the encoder binaries
// ABOUTME: Printed by -version and written to the log at startup
package version

const (
	// Version is the release version
	Version = "0.3.0"

	// Product is the binary family name
	Product = "robot36-encoder"

	// Manufacturer is the project owner
	Manufacturer = "killertux"
)
