package remote

// Resource is a downloaded remote file.
type Resource struct {
	Body        []byte
	ContentType string
}
