package flags

import (
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

// Git SHA1 commit hash of the release (set via linker flags).
var gitCommit = ""

// NewApp creates a cli application skeleton with the project-wide identity
// filled in. Commands and flags are attached by the launcher.
func NewApp(usage string) *cli.App {
	app := cli.NewApp()
	app.Name = "wallet-bcs"
	app.Usage = usage
	app.Version = "0.1.0"
	if gitCommit != "" {
		app.Version += "-" + gitCommit[:8]
	}
	app.Writer = os.Stdout
	return app
}
