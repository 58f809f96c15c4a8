package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Output configuration
	KeyColor = "COLOR" // auto, always or never

	// Provisioning behaviour
	KeyConfirmTruncate = "CONFIRM_TRUNCATE" // Ask before emptying an existing non-empty file

	// Layout configuration
	KeyDefaultLayout = "DEFAULT_LAYOUT" // Manifest used by apply when no path is given
	KeyMarkerDir     = "MARKER_DIR"     // Directory holding applied-layout markers

	// System configuration
	KeyConfigVersion = "CONFIG_VERSION"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyColor:           "auto",
	KeyConfirmTruncate: "true",
	KeyConfigVersion:   "1",
}

// KnownKeys lists every key accepted by `config set`
var KnownKeys = []string{
	KeyColor,
	KeyConfirmTruncate,
	KeyDefaultLayout,
	KeyMarkerDir,
	KeyConfigVersion,
}
