package httpd

// Not map[string][]string, unlike http.Header. Names are stored as received;
// a duplicated name keeps the last value seen.
type HTTPHeader map[string]string

type Request struct {
	Method  string
	URI     string
	Version string
	Headers HTTPHeader
}

// Empty reports the "no request" sentinel: nothing parseable arrived on the
// connection, so method, URI, and version are all absent.
func (r *Request) Empty() bool {
	return r.Method == ""
}
