package version

// Set at build time with -ldflags "-X github.com/nic1611/furnctl/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)
