package mime

import "path/filepath"

var Extension = map[string]MIME{
	".avif": AVIF,
	".css":  CSS,
	".gif":  GIF,
	".htm":  HTML,
	".html": HTML,
	".jpeg": JPEG,
	".jpg":  JPEG,
	".js":   JS,
	".mjs":  JS,
	".json": JSON,
	".pdf":  PDF,
	".png":  PNG,
	".svg":  SVG,
	".txt":  Plain,
	".wasm": WASM,
	".webp": WEBP,
	".xml":  XML,
	".gz":   GZIP,
	".yaml": YAML,
	".yml":  YAML,
	".zip":  ZIP,
	".ico":  ICO,
}

// ByPath guesses the MIME by the file extension, falling back to OctetStream.
func ByPath(path string) MIME {
	if m, ok := Extension[filepath.Ext(path)]; ok {
		return m
	}

	return OctetStream
}
