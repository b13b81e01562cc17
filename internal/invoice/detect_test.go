package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fornada/fornada/internal/invoice"
)

func TestDetect(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n', 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F', 0}

	tests := []struct {
		name     string
		data     []byte
		filename string
		want     invoice.Kind
	}{
		{name: "XMLByExtension", data: []byte("not really xml"), filename: "nota.XML", want: invoice.KindXML},
		{name: "XMLByContent", data: []byte(`<?xml version="1.0"?><nfeProc></nfeProc>`), filename: "upload", want: invoice.KindXML},
		{name: "PDF", data: []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj"), filename: "danfe.pdf", want: invoice.KindPDF},
		{name: "PNG", data: png, filename: "foto.png", want: invoice.KindImage},
		{name: "JPEG", data: jpeg, filename: "foto.jpg", want: invoice.KindImage},
		{name: "Unknown", data: []byte("just some text"), filename: "notes.txt", want: invoice.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invoice.Detect(tt.data, tt.filename))
		})
	}
}

func TestPDFText_Garbage(t *testing.T) {
	_, err := invoice.PDFText([]byte("%PDF-1.4 but truncated"))
	assert.Error(t, err)
}
