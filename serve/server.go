// Package serve is a small HTTP/1.1 transport, driving a take over TCP connections. It
// exists to put composed responses on the wire: requests are parsed by net/http, while
// responses are written by rs.Print only.
package serve

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/indigo-web/facets/config"
	"github.com/indigo-web/facets/http/headers"
	"github.com/indigo-web/facets/http/status"
	"github.com/indigo-web/facets/rq"
	"github.com/indigo-web/facets/rs"
	"github.com/indigo-web/facets/tk"
	"go.uber.org/multierr"
)

var ErrShutdown = errors.New("graceful shutdown")

type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	take   tk.Take

	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	shutdown bool
}

func New(cfg *config.Config, logger *slog.Logger, take tk.Take) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		cfg:    cfg,
		logger: logger,
		take:   take,
		conns:  map[net.Conn]struct{}{},
	}
}

// ListenAndServe listens on the configured address. See Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	sock, err := net.Listen("tcp", s.cfg.NET.Addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, sock)
}

// Serve accepts connections until the context is done. Then the listener is closed,
// and open connections are given NET.ShutdownTimeout to finish, after which they're
// closed forcibly. ErrShutdown is returned in this case.
func (s *Server) Serve(ctx context.Context, sock net.Listener) error {
	s.logger.Info("listening", slog.String("addr", sock.Addr().String()))

	stop := context.AfterFunc(ctx, func() {
		s.mu.Lock()
		s.shutdown = true
		s.mu.Unlock()
		_ = sock.Close()
	})
	defer stop()

	wg := new(sync.WaitGroup)

	for {
		conn, err := sock.Accept()
		if err != nil {
			s.mu.Lock()
			shutdown := s.shutdown
			s.mu.Unlock()

			if !shutdown {
				wg.Wait()
				return err
			}

			return multierr.Append(s.drain(wg), ErrShutdown)
		}

		if !s.track(conn) {
			_ = conn.Close()
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer s.untrack(conn)

			if err := s.ServeConn(conn); err != nil {
				s.logger.Warn("connection closed with error",
					slog.String("remote", conn.RemoteAddr().String()),
					slog.Group("error", slog.String("message", err.Error())),
				)
			}
		}()
	}
}

// drain waits for connections to finish up to the shutdown timeout, then closes the rest.
func (s *Server) drain(wg *sync.WaitGroup) (err error) {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(s.cfg.NET.ShutdownTimeout):
	}

	s.mu.Lock()
	for conn := range s.conns {
		err = multierr.Append(err, conn.Close())
	}
	s.mu.Unlock()

	<-done
	return err
}

func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shutdown {
		return false
	}

	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

// ServeConn serves requests off the connection until the peer closes it, asks for closing
// or a response can't be delimited without closing the connection. The connection is
// always closed on return.
func (s *Server) ServeConn(conn net.Conn) (err error) {
	defer func() {
		if closeErr := conn.Close(); !errors.Is(closeErr, net.ErrClosed) {
			err = multierr.Append(err, closeErr)
		}
	}()

	reader := bufio.NewReaderSize(conn, s.cfg.NET.ReadBufferSize)
	writer := bufio.NewWriter(conn)

	for {
		if err = conn.SetReadDeadline(time.Now().Add(s.cfg.NET.ReadTimeout)); err != nil {
			return err
		}

		request, readErr := http.ReadRequest(reader)
		if readErr != nil {
			if isClosed(readErr) {
				return nil
			}

			return s.reject(conn, writer, readErr)
		}

		var keepAlive bool
		if keepAlive, err = s.exchange(conn, writer, request); err != nil || !keepAlive {
			return err
		}
	}
}

func (s *Server) exchange(conn net.Conn, writer *bufio.Writer, request *http.Request) (keepAlive bool, err error) {
	id := uuid.New().String()
	logger := s.logger.With(
		slog.String("id", id),
		slog.Group("request",
			slog.String("method", request.Method),
			slog.String("uri", request.RequestURI),
			slog.String("remote", conn.RemoteAddr().String()),
		),
	)

	resp, err := s.take.Act(rq.FromHTTP(request))
	if err != nil {
		logger.Error("take failed", slog.Group("error", slog.String("message", err.Error())))
		resp = tk.Failure(err)
	}

	keepAlive = !request.Close

	if resp == nil || len(resp.Head()) == 0 {
		logger.Error("take returned a malformed response")
		keepAlive = false
		if resp != nil {
			// writes nothing, but releases the body
			_ = rs.Print(io.Discard, resp)
		}

		resp = fallback()
	}

	if _, head := rs.Head(resp); !has(head, headers.ContentLength) {
		// the body can be delimited only by closing the connection
		keepAlive = false
	}

	if !keepAlive {
		resp = closing(resp)
	}

	if err = conn.SetWriteDeadline(time.Now().Add(s.cfg.NET.WriteTimeout)); err != nil {
		return false, err
	}

	if err = multierr.Append(rs.Print(writer, resp), writer.Flush()); err != nil {
		return false, err
	}

	statusLine, _ := rs.Head(resp)
	logger.Info("served", slog.Group("response", slog.String("status", statusLine)))

	if keepAlive {
		// the rest of the body must be consumed before the next request can be read
		_, err = io.Copy(io.Discard, request.Body)
		err = multierr.Append(err, request.Body.Close())
	}

	return keepAlive, err
}

// reject answers a request which couldn't be parsed and stops serving the connection.
func (s *Server) reject(conn net.Conn, writer *bufio.Writer, cause error) error {
	s.logger.Info("bad request",
		slog.String("remote", conn.RemoteAddr().String()),
		slog.Group("error", slog.String("message", cause.Error())),
	)

	resp := closing(tk.Failure(status.ErrBadRequest))
	if err := conn.SetWriteDeadline(time.Now().Add(s.cfg.NET.WriteTimeout)); err != nil {
		return err
	}

	return multierr.Append(rs.Print(writer, resp), writer.Flush())
}

// closing overrides whatever Connection header the response had.
func closing(resp rs.Response) rs.Response {
	return rs.Must(rs.WithHeader(rs.WithoutHeader(resp, headers.Connection), headers.Connection, "close"))
}

// fallback is what goes on the wire if a take produced something unprintable.
func fallback() rs.Response {
	return rs.WithBody(rs.Must(rs.Status(status.InternalServerError)), "")
}

func has(head []string, name string) bool {
	_, found := headers.Find(head, name)
	return found
}

func isClosed(err error) bool {
	var netErr net.Error
	return errors.Is(err, io.EOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, io.ErrClosedPipe) ||
		(errors.As(err, &netErr) && netErr.Timeout())
}
