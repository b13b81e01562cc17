package invoice

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type Kind string

const (
	KindXML     Kind = "xml"
	KindPDF     Kind = "pdf"
	KindImage   Kind = "image"
	KindUnknown Kind = "unknown"
)

// Detect classifies an upload. A .xml name is trusted even when the content
// sniffs as plain text; everything else is decided by content.
func Detect(data []byte, filename string) Kind {
	if strings.EqualFold(filepath.Ext(filename), ".xml") {
		return KindXML
	}

	mt := mimetype.Detect(data)

	switch {
	case strings.Contains(mt.String(), "xml"):
		return KindXML
	case mt.Is("application/pdf"):
		return KindPDF
	case strings.HasPrefix(mt.String(), "image/"):
		return KindImage
	}

	return KindUnknown
}
