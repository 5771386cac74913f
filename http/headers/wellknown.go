package headers

const (
	ContentType   = "Content-Type"
	ContentLength = "Content-Length"
	Location      = "Location"
	SetCookie     = "Set-Cookie"
	Cookie        = "Cookie"
	Connection    = "Connection"
)
