package constants

import "time"

// Vendor endpoints.
const (
	// DefaultAPIEndpoint is the fixed origin of the Dialfire API.
	DefaultAPIEndpoint = "https://api.dialfire.com/api"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits for the opt-in transport retry knob. The engine itself issues
// exactly one attempt per call unless a caller raises RetryMax.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Wire protocol details.
const (
	// ContentTypePlainText is sent with every non-multipart request. The
	// vendor expects text/plain even for JSON-encoded bodies.
	ContentTypePlainText = "text/plain"

	// UploadFieldName is the fixed multipart form field carrying file
	// uploads.
	UploadFieldName = "data"
)
