package occ

// Option carries per-instance configuration. The zero value disables every
// warning.
type Option struct {
	// WarnBackslashNewlineSpace warns when spaces or tabs separate a
	// backslash from the newline it splices away.
	WarnBackslashNewlineSpace bool

	// WarnNoNewlineEOF warns when a backslash-newline splice runs into
	// the end of the file.
	WarnNoNewlineEOF bool
}
