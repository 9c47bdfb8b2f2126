package httpd

import (
	"io"
	"net"
	"strings"
)

// recvChunkSize is the fixed recv window of the request read loop.
const recvChunkSize = 1024

// ReadRawRequest accumulates fixed-size chunk reads from conn until a read
// comes back short. The short read is the request delimiter: there is no
// Content-Length or blank-line handling, so a request whose total size is an
// exact multiple of the chunk size blocks until the peer closes or shuts
// down its write side.
func ReadRawRequest(conn net.Conn) (string, error) {
	var sb strings.Builder
	buf := make([]byte, recvChunkSize)
	for {
		n, err := conn.Read(buf)
		sb.Write(buf[:n])
		if err != nil {
			if err == io.EOF {
				return sb.String(), nil
			}
			return sb.String(), err
		}
		if n < recvChunkSize {
			return sb.String(), nil
		}
	}
}
