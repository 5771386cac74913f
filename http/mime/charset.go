package mime

type Charset = string

const (
	Unset    Charset = ""
	UTF8     Charset = "UTF-8"
	UTF16    Charset = "UTF-16"
	ASCII    Charset = "US-ASCII"
	ISO88591 Charset = "ISO-8859-1"
	CP1251   Charset = "windows-1251"
	CP1252   Charset = "windows-1252"
	// feel free to add more widespread charsets!
)
