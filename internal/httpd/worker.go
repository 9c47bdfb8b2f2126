package httpd

import (
	"errors"
	"log/slog"
	"net"

	"github.com/google/uuid"
)

// Worker drives one accepted connection through the request lifecycle:
// await data, parse, resolve, respond, close. Each connection is handled
// exactly once, synchronously, start to finish.
type Worker struct {
	conn     net.Conn
	resolver *Resolver
	logger   *slog.Logger

	raw      string
	req      *Request
	response []byte
}

type stateFunc func(*Worker) stateFunc

func NewWorker(resolver *Resolver, logger *slog.Logger) *Worker {
	return &Worker{resolver: resolver, logger: logger}
}

// Start takes the ownership of |conn| and runs the state machine to
// completion. The connection is closed on every exit path.
func (w *Worker) Start(conn net.Conn) {
	w.conn = conn
	w.logger = w.logger.With(
		slog.String("conn_id", uuid.NewString()),
		slog.String("remote", conn.RemoteAddr().String()),
	)
	for state := awaitData; state != nil; {
		state = state(w)
	}
}

// state funcs

func awaitData(w *Worker) stateFunc {
	raw, err := ReadRawRequest(w.conn)
	if err != nil {
		// whatever arrived still gets parsed; an empty buffer ends as 405
		w.logger.Error("read failed", slog.Any("error", err))
	}
	w.raw = raw
	return parseBuffer
}

func parseBuffer(w *Worker) stateFunc {
	w.req = ParseRequest(w.raw)
	if w.req.Empty() {
		w.logger.Warn("empty request")
		w.response = BuildMethodNotAllowed()
		return sendResponse
	}
	w.logger.Info("request decoded",
		slog.String("method", w.req.Method),
		slog.String("uri", w.req.URI),
		slog.String("version", w.req.Version),
	)
	return resolveTarget
}

func resolveTarget(w *Worker) stateFunc {
	content, mediaType, err := w.resolver.Resolve(w.req.URI)
	switch {
	case err == nil:
		w.logger.Debug("target resolved", slog.String("media_type", mediaType))
		w.response = BuildOK(content, mediaType)
	case errors.Is(err, ErrNotFound):
		w.logger.Info("target not found", slog.String("uri", w.req.URI))
		w.response = BuildNotFound()
	case errors.Is(err, ErrUnknownType):
		w.logger.Info("unknown media type", slog.String("uri", w.req.URI))
		w.response = BuildNotImplemented()
	default:
		w.logger.Error("resolve failed", slog.Any("error", err))
		w.response = BuildNotFound()
	}
	return sendResponse
}

func sendResponse(w *Worker) stateFunc {
	if _, err := w.conn.Write(w.response); err != nil {
		w.logger.Error("write failed", slog.Any("error", err))
	}
	return finishWorker
}

func finishWorker(w *Worker) stateFunc {
	w.conn.Close()
	w.logger.Debug("connection closed")
	return nil
}
