package upload

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

var allowedMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
	// Note: SVG is intentionally excluded due to XSS risk without sanitization
}

// ValidateImageSource checks an image reference supplied with a report.
// Remote URLs are accepted as-is and resolved at render time; inline data
// URLs are sniffed against a whitelist of raster formats. An empty source
// is valid, the slot renders as a placeholder.
func ValidateImageSource(source string) error {
	if source == "" {
		return nil
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return nil
	}
	if !strings.HasPrefix(source, "data:") {
		return errors.New("Referência de imagem inválida: use uma URL ou um data URL")
	}

	_, payload, found := strings.Cut(source, ",")
	if !found {
		return errors.New("Data URL malformado")
	}

	head := payload
	if len(head) > 512 {
		head = head[:512]
	}
	decoded, err := base64.StdEncoding.DecodeString(trimToQuantum(head))
	if err != nil {
		return errors.New("Data URL malformado")
	}

	detected := http.DetectContentType(decoded)

	// Block obvious scriptable types regardless of the declared media type
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return errors.New("Tipo de arquivo inválido: conteúdo HTML não é permitido")
	}
	if strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return errors.New("SVG/XML não são suportados por motivos de segurança")
	}

	if allowedMime[detected] {
		return nil
	}

	return errors.New("Somente os formatos JPG, JPEG, PNG, GIF, WEBP e BMP são suportados")
}

// trimToQuantum cuts a base64 prefix down to a decodable 4-byte boundary.
func trimToQuantum(s string) string {
	return s[:len(s)-len(s)%4]
}
