package domain

import "time"

// FileStat is a point-in-time view of a file the external program depends on.
type FileStat struct {
	Path       string
	Exists     bool
	SizeBytes  int64
	ModifiedAt time.Time
}

// ProgramStatus reports external program availability with file diagnostics.
// Availability is probed per request and never cached.
type ProgramStatus struct {
	Available  bool
	Executable FileStat
	DataFile   FileStat
	CheckedAt  time.Time
}
