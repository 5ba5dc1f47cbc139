package version

import "strings"

// Version values are set at build time using -ldflags.
var Version = "0.8.0"
var Built = ""
var GitCommit = ""

type VersionInfo struct {
	Version   string
	Built     string
	GitCommit string
}

func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   strings.TrimPrefix(strings.TrimSpace(Version), "v"),
		Built:     Built,
		GitCommit: GitCommit,
	}
}

// Line renders the --version output for a binary.
func (i VersionInfo) Line(binary string) string {
	if i.Version == "" || i.Version == "dev" {
		return binary + " dev"
	}
	line := binary + " " + i.Version
	if i.GitCommit != "" {
		line += " (" + i.GitCommit + ")"
	}
	return line
}
