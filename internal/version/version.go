package version

// Build information, set with -ldflags "-X github.com/arthur-debert/hilite/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the version line printed by "hilite version"
func String() string {
	return "hilite version " + Version + "\n  commit: " + Commit + "\n  built:  " + Date + "\n"
}
