package httpd

import "strings"

const headerSeparator = ": "

// ParseRequest decodes a fully accumulated request buffer. The first line
// must split into exactly three tokens (method, URI, version); anything else
// yields the empty-request sentinel with no headers. Header lines are stored
// verbatim, the last occurrence of a duplicated name wins, and lines without
// a ": " separator are skipped. Pure function of its input.
func ParseRequest(raw string) *Request {
	req := &Request{Headers: make(HTTPHeader)}
	if raw == "" {
		return req
	}

	lines := strings.Split(raw, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	fields := strings.Fields(lines[0])
	if len(fields) != 3 {
		return req
	}
	req.Method, req.URI, req.Version = fields[0], fields[1], fields[2]

	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		name, value, ok := strings.Cut(line, headerSeparator)
		if !ok {
			continue
		}
		req.Headers[name] = value
	}
	return req
}
