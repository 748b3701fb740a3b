package dialfire

import (
	"io"
	"strings"
)

// FileAttachment is a named binary stream uploaded as a multipart form part.
type FileAttachment struct {
	Filename string
	Reader   io.Reader
}

// RequestSpec describes one logical call against the Dialfire API. Path is
// normalized at construction and never changes afterwards; Cursor is the only
// field mutated post-construction, in place, by pagination (see
// PagedResponse.NextPage). A zero Limit means no explicit limit is requested.
type RequestSpec struct {
	Path    string
	Method  string
	Payload Payload
	Files   []FileAttachment
	Cursor  string
	Limit   int
}

// NewRequestSpec creates a request spec for the given method and API-relative
// path. The path is leading-slash-normalized and doubled separators are
// collapsed, so scope prefixes like "campaigns/{id}/" concatenate cleanly with
// sub-paths like "/tasks".
func NewRequestSpec(method, path string) *RequestSpec {
	return &RequestSpec{
		Path:   NormalizePath(path),
		Method: method,
	}
}

// NormalizePath prefixes a leading slash and collapses "//" to "/". The
// normalization is purely textual and applied once, at spec construction.
func NormalizePath(path string) string {
	return strings.ReplaceAll("/"+path, "//", "/")
}
