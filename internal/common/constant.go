package common

const (
	// DefaultContentType is used when a part declares no Content-Type.
	DefaultContentType = "application/octet-stream"

	// UnnamedFile replaces blank upload filenames.
	UnnamedFile = "unnamed-file"

	// DownloadedFile is used when the transfer header carries no filename.
	DownloadedFile = "downloaded-file"
)
