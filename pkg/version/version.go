package version

// Values injected at build time via -ldflags.
var (
	gitVersion = "v0.0.0-unknown"
	gitCommit  = ""
)

// Info holds the build information of the running binary.
type Info struct {
	GitVersion string
	GitCommit  string
}

// Get returns the build information.
func Get() Info {
	return Info{
		GitVersion: gitVersion,
		GitCommit:  gitCommit,
	}
}
