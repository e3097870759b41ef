// Package model defines the plain data types shared by gocat's services.
package model

import "fmt"

// VersionInfo contains build-time metadata about the application.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// String renders the version the way the help header shows it.
func (v VersionInfo) String() string {
	if v.Version == "" {
		return "dev"
	}
	if v.Commit == "" || v.Commit == "none" {
		return v.Version
	}
	return fmt.Sprintf("%s (%s, %s)", v.Version, v.Commit, v.Date)
}
