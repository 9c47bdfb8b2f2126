package httpd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequestLine(t *testing.T) {
	req := ParseRequest("GET /a.html HTTP/1.1\r\nHost: localhost\r\n\r\n")
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/a.html", req.URI)
	assert.Equal(t, "HTTP/1.1", req.Version)
	assert.Equal(t, "localhost", req.Headers["Host"])
}

func TestParseEmptyRequest(t *testing.T) {
	req := ParseRequest("")
	assert.True(t, req.Empty())
	assert.Empty(t, req.Method)
	assert.Empty(t, req.URI)
	assert.Empty(t, req.Version)
	assert.Empty(t, req.Headers)
}

func TestParseEmptyFirstLine(t *testing.T) {
	req := ParseRequest("\r\nHost: localhost\r\n")
	assert.True(t, req.Empty())
	assert.Empty(t, req.Headers)
}

func TestParseShortRequestLine(t *testing.T) {
	// not three tokens, treated like an empty request
	req := ParseRequest("GET /\r\n")
	assert.True(t, req.Empty())
}

func TestParseHeaderNamesVerbatim(t *testing.T) {
	req := ParseRequest("GET / HTTP/1.1\r\nhost: a\r\nX-Custom-Header: b\r\n")
	assert.Equal(t, "a", req.Headers["host"])
	assert.Equal(t, "b", req.Headers["X-Custom-Header"])
	_, ok := req.Headers["Host"]
	assert.False(t, ok)
}

func TestParseDuplicateHeaderLastWins(t *testing.T) {
	req := ParseRequest("GET / HTTP/1.1\r\nHost: first\r\nHost: second\r\n")
	assert.Equal(t, "second", req.Headers["Host"])
}

func TestParseMalformedHeaderSkipped(t *testing.T) {
	req := ParseRequest("GET / HTTP/1.1\r\nnot-a-header\r\nHost: ok\r\n")
	assert.False(t, req.Empty())
	assert.Equal(t, HTTPHeader{"Host": "ok"}, req.Headers)
}

func TestParseBareNewlines(t *testing.T) {
	req := ParseRequest("GET /x HTTP/1.1\nAccept: */*\n\n")
	assert.Equal(t, "/x", req.URI)
	assert.Equal(t, "*/*", req.Headers["Accept"])
}
