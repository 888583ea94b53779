package lib

var (
	// Set at compile time, e.g.:
	// go build -ldflags "-X github.com/swiftdrop/console-lib.Sha=$(git rev-parse HEAD) -X github.com/swiftdrop/console-lib.Build=local"

	// Sha the commit sha
	Sha string
	// Build the build number
	Build string
)

// Version returns the sha/build
func Version() (string, string) {
	return Sha, Build
}
