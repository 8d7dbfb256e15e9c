package version

// Build information, set via ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build information for --version
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
