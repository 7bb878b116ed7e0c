package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagNotFound marks an archive path that does not resolve to a regular file
	ErrTagNotFound = goerr.NewTag("not_found")

	// ErrTagCorruptArchive marks an archive that cannot be parsed as ZIP
	ErrTagCorruptArchive = goerr.NewTag("corrupt_archive")

	// ErrTagAnalysisFailed marks any other failure while listing or extracting
	ErrTagAnalysisFailed = goerr.NewTag("analysis_failed")
)
