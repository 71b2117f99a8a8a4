// Command bnf tests grammars against input and generates Go parsers from
// them.
package main

import "github.com/arr-ai/bnf/cmd"

// Build metadata, overridden with -ldflags "-X main.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	BuildOS   = "unknown"
)

func main() {
	cmd.Main(cmd.VersionTags{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		BuildOS:   BuildOS,
	})
}
