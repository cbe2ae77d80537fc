package consts

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
	MethodConnect = "CONNECT"
	MethodTrace   = "TRACE"
)

const (
	HTTP1 = "HTTP/1.1"
	CRLF  = "\r\n"

	ProtocolTCP = "tcp"

	SchemeDelimiter = "://"
	Localhost       = "localhost"

	HTTPBadRequest = "HTTP/1.1 400 Bad Request\r\n\r\n"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
	HeaderLocation      = "Location"
)

const (
	RuneColon       = ':'
	RuneAsterisk    = '*'
	RuneFwdSlash    = '/'
	RuneQuestion    = '?'
	RuneNewLine     = '\n'
	RuneSingleSpace = ' '
)
