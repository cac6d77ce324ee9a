package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Fetch errors
	FetchRequestError
	FetchStatusError
	FetchDecodeError
	FetchAPIError

	// Dashboard errors
	IndicatorFailedError
	AllIndicatorsFailedError
	CancelledError

	// Export errors
	ExportEncodeError
	ExportFormatError
)
