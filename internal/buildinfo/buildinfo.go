package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String(app string) string {
	return fmt.Sprintf("%s %s (commit=%s, date=%s)", app, Version, Commit, Date)
}
