package rweb

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb/v2/consts"
	"github.com/rohanthewiz/rweb/v2/core/rtr"
	"github.com/rohanthewiz/rweb/v2/overview"
	"github.com/rohanthewiz/serr"
)

// Server is the HTTP Server.
type Server struct {
	options      ServerOptions
	handlers     []Handler
	contextPool  sync.Pool
	hashRouter   *rtr.HashRouter[Handler]
	paramRouter  *rtr.ParamRouter[Handler]
	routes       *rtr.RouteTable[overview.RouteEntry]
	namer        *overview.Namer
	errorHandler func(Context, error)

	connMu   sync.Mutex
	conns    map[net.Conn]struct{} // accepted connections still being served
	stopping bool
}

// NewServer creates a new HTTP server.
func NewServer(options ...ServerOptions) *Server {
	var opts ServerOptions
	if len(options) > 0 {
		opts = options[0]
	}
	if opts.Address == "" {
		opts.Address = defaultAddress
	}

	s := &Server{
		options:     opts,
		hashRouter:  rtr.NewHashRouter[Handler](),
		paramRouter: rtr.NewParamRouter[Handler](),
		routes:      rtr.NewRouteTable[overview.RouteEntry](),
		namer:       &overview.Namer{FieldSources: opts.HandlerSources},
		errorHandler: func(ctx Context, err error) {
			logger.LogErr(err, "request failed", "path", ctx.Request().Path())
		},
	}

	s.handlers = []Handler{s.dispatch}
	s.contextPool.New = func() any { return s.newContext() }

	if opts.RouteOverviewPath != "" {
		s.EnableRouteOverview(opts.RouteOverviewPath, opts.RouteOverviewRoles...)
	}

	return s
}

// dispatch is the last handler of the chain. It routes the request to its handler.
func (s *Server) dispatch(c Context) error {
	ctx := c.(*context)

	// Try exact match first
	hdlr, ok := s.hashRouter.Lookup(ctx.request.method, ctx.request.path)
	if !ok {
		hdlr = s.paramRouter.LookupNoAlloc(ctx.request.method, ctx.request.path, ctx.request.addParameter)
	}

	if hdlr == nil {
		ctx.SetStatus(404)
		return nil
	}

	return hdlr(c)
}

// SetErrorHandler replaces the handler called with errors returned by the handler chain.
func (s *Server) SetErrorHandler(fn func(Context, error)) {
	s.errorHandler = fn
}

// Use adds handlers to your handlers chain.
func (s *Server) Use(handlers ...Handler) {
	last := s.handlers[len(s.handlers)-1]
	// Re-slice to exclude last and add append the incoming handlers
	s.handlers = append(s.handlers[:len(s.handlers)-1], handlers...)
	s.handlers = append(s.handlers, last) // add back the last
}

// Group creates a route group with the given prefix and middleware.
func (s *Server) Group(prefix string, handlers ...Handler) *Group {
	return &Group{prefix: prefix, server: s, handlers: handlers}
}

// Request performs a synthetic request and returns the response.
// This function keeps the response in memory so it's slightly slower than a real request.
// However it is very useful inside tests where you don't want to spin up a real web server.
func (s *Server) Request(method string, url string, headers []Header, body io.Reader) Response {
	ctx := s.newContext()
	ctx.request.headers = append(ctx.request.headers, headers...)

	if body != nil {
		byts, err := io.ReadAll(body)
		if err != nil {
			s.errorHandler(ctx, serr.Wrap(err, "reading synthetic request body"))
		}
		ctx.request.body = byts
	}

	s.handleRequest(ctx, method, url, io.Discard)
	return ctx.Response()
}

// Run starts the server on the configured address and blocks until SIGINT or SIGTERM.
func (s *Server) Run() error {
	if err := s.options.Validate(); err != nil {
		return serr.Wrap(err, "invalid server options")
	}

	listener, err := net.Listen(consts.ProtocolTCP, s.options.Address)
	if err != nil {
		return serr.Wrap(err, "unable to listen", "address", s.options.Address)
	}

	s.connMu.Lock()
	s.stopping = false
	s.connMu.Unlock()

	if s.options.Verbose {
		logger.Info("Server is running", "address", listener.Addr().String())
		tableOpts := overview.TableOpts{Boxed: isatty.IsTerminal(os.Stdout.Fd())}
		if err = overview.WriteTable(os.Stdout, s.RouteOverviewEntries(), s.namer, tableOpts); err != nil {
			logger.LogErr(err, "unable to list routes")
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	go func() {
		if s.options.ReadyChan != nil { // don't forget nil check!
			s.options.ReadyChan <- struct{}{} // Let the caller know we are running
		}

		for {
			conn, err := listener.Accept()
			if err != nil {
				if errors.Is(err, net.ErrClosed) {
					return
				}
				continue
			}

			if !s.trackConn(conn) {
				_ = conn.Close()
				continue
			}
			go s.handleConnection(conn)
		}
	}()

	<-stop

	// Stop accepting, then drop connections kept alive by clients
	_ = listener.Close()
	s.closeConns()
	return nil
}

// trackConn records an accepted connection. It reports false once the server is stopping.
func (s *Server) trackConn(conn net.Conn) bool {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.stopping {
		return false
	}
	if s.conns == nil {
		s.conns = make(map[net.Conn]struct{}, 16)
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrackConn(conn net.Conn) {
	s.connMu.Lock()
	delete(s.conns, conn)
	s.connMu.Unlock()
}

// closeConns closes every live connection, unblocking their readers
func (s *Server) closeConns() {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	s.stopping = true
	for conn := range s.conns {
		_ = conn.Close()
		delete(s.conns, conn)
	}
}

// handleConnection handles an accepted connection.
func (s *Server) handleConnection(conn net.Conn) {
	var (
		ctx    = s.contextPool.Get().(*context)
		reader = bufio.NewReader(conn)
		method string
		url    string
	)

	ctx.reset()

	defer s.untrackConn(conn)
	defer conn.Close()
	defer s.contextPool.Put(ctx)

	for {
		// Read the HTTP request line
		message, err := reader.ReadString(consts.RuneNewLine)
		if err != nil {
			return
		}

		space := strings.IndexByte(message, consts.RuneSingleSpace)

		if space <= 0 {
			_, _ = io.WriteString(conn, consts.HTTPBadRequest)
			return
		}

		method = message[:space]

		if !isValidRequestMethod(method) {
			_, _ = io.WriteString(conn, consts.HTTPBadRequest)
			return
		}

		lastSpace := strings.LastIndexByte(message, consts.RuneSingleSpace)

		if lastSpace == space {
			lastSpace = len(message) - len(consts.CRLF)
		}

		url = message[space+1 : lastSpace]

		var contentLen int64

		// Add headers until we meet an empty line
		for {
			message, err = reader.ReadString(consts.RuneNewLine) // read a line
			if err != nil {
				return
			}

			if message == consts.CRLF { // "empty" line // end of headers
				break
			}

			colon := strings.IndexByte(message, consts.RuneColon)

			if colon <= 0 {
				continue // header should include a colon
			}

			key := message[:colon]
			value := strings.TrimSpace(message[colon+1:])

			ctx.request.headers = append(ctx.request.headers, Header{
				Key:   key,
				Value: value,
			})

			if strings.EqualFold(key, consts.HeaderContentLength) {
				contentLen, err = strconv.ParseInt(value, 10, 64)
				if err != nil || contentLen < 0 {
					_, _ = io.WriteString(conn, consts.HTTPBadRequest)
					return
				}
			}
		}

		if contentLen > 0 {
			body := make([]byte, contentLen)
			_, err = io.ReadFull(reader, body)
			if err != nil {
				return
			}
			ctx.request.body = append(ctx.request.body, body...)
		}

		// Handle the request
		s.handleRequest(ctx, method, url, conn)

		// Clean up the context
		ctx.reset()
	}
}

// handleRequest handles the given request.
func (s *Server) handleRequest(ctx *context, method string, url string, writer io.Writer) {
	ctx.method = method
	ctx.scheme, ctx.host, ctx.path, ctx.query = parseURL(url)

	// Call the Request handler
	err := s.handlers[0](ctx)
	if err != nil {
		s.errorHandler(ctx, err)
	}

	tmp := bytes.Buffer{}
	tmp.WriteString(consts.HTTP1)
	tmp.WriteByte(consts.RuneSingleSpace)
	tmp.WriteString(strconv.Itoa(int(ctx.status)))
	tmp.WriteString("\r\nContent-Length: ")
	tmp.WriteString(strconv.Itoa(len(ctx.response.body)))
	tmp.WriteString(consts.CRLF)

	for _, header := range ctx.response.headers {
		tmp.WriteString(header.Key)
		tmp.WriteString(": ")
		tmp.WriteString(header.Value)
		tmp.WriteString(consts.CRLF)
	}

	tmp.WriteString(consts.CRLF)
	tmp.Write(ctx.response.body)
	_, _ = writer.Write(tmp.Bytes())
}

// newContext allocates a new context with the default state.
func (s *Server) newContext() *context {
	return &context{
		server: s,
		request: request{
			body:    make([]byte, 0),
			headers: make([]Header, 0, 8),
			params:  make([]rtr.Parameter, 0, 8),
		},
		response: response{
			body:    make([]byte, 0, 1024),
			headers: make([]Header, 0, 8),
			status:  200,
		},
	}
}
