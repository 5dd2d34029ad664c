package core

// Logger receives progress lines from the parallel renderer and the S3
// uploader. Implementations must be safe to call from the rendering goroutine.
type Logger interface {
	Printf(format string, args ...interface{})
}
