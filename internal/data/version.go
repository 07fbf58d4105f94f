package data

// set at build time using ldflags
var (
	Version   string
	GitCommit string
	GitBranch string
)
