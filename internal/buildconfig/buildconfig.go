package buildconfig

// Build-time variables injected via ldflags:
//
//	-ldflags "-X github.com/goatx/ctl/internal/buildconfig.version=v0.3.0"
var (
	version = "dev"
	commit  = "unknown"
)

// Version returns the build version
func Version() string {
	return version
}

// Commit returns the git commit hash
func Commit() string {
	return commit
}
