package invoice

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/encoding"
)

type nfeProduct struct {
	description string
	quantity    string
	unitPrice   string
	total       string
	hasTotal    bool
}

// ParseNFe reads an NF-e document, with or without the nfeProc envelope.
// Only the first emit and ide blocks are used; every det/prod becomes a line.
// Any malformed input yields ErrInvalidXML.
func ParseNFe(r io.Reader) (*Document, error) {
	src, err := utf8Source(r)
	if err != nil {
		return nil, ErrInvalidXML
	}

	dec := xml.NewDecoder(src)
	dec.CharsetReader = encoding.CharsetReader

	var (
		doc     Document
		path    []string
		text    strings.Builder
		product *nfeProduct
		seen    = map[string]bool{}
		sawRoot bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, ErrInvalidXML
		}

		switch t := tok.(type) {
		case xml.StartElement:
			sawRoot = true
			path = append(path, t.Name.Local)
			text.Reset()

			if t.Name.Local == "prod" && within(path, "det") {
				product = &nfeProduct{}
			}

		case xml.CharData:
			text.Write(t)

		case xml.EndElement:
			if len(path) == 0 {
				return nil, ErrInvalidXML
			}

			value := strings.TrimSpace(text.String())
			text.Reset()

			name := path[len(path)-1]
			parent := ""
			if len(path) > 1 {
				parent = path[len(path)-2]
			}

			switch {
			case parent == "emit" && name == "xNome" && !seen["xNome"]:
				doc.SupplierName, seen["xNome"] = value, true
			case parent == "emit" && name == "CNPJ" && !seen["CNPJ"]:
				doc.SupplierTaxID, seen["CNPJ"] = value, true
			case parent == "ide" && name == "nNF" && !seen["nNF"]:
				doc.Number, seen["nNF"] = value, true
			case product != nil && parent == "prod":
				product.set(name, value)
			case product != nil && name == "prod":
				doc.Lines = append(doc.Lines, product.line())
				product = nil
			}

			path = path[:len(path)-1]
		}
	}

	if !sawRoot || len(path) != 0 {
		return nil, ErrInvalidXML
	}

	return &doc, nil
}

// utf8Source leaves documents with a declared encoding to the decoder's
// CharsetReader and sniffs the rest.
func utf8Source(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(256)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}

	if end := bytes.Index(head, []byte("?>")); end > 0 && bytes.Contains(head[:end], []byte("encoding=")) {
		return br, nil
	}

	return encoding.NewUTF8Reader(br)
}

func within(path []string, element string) bool {
	for _, p := range path {
		if p == element {
			return true
		}
	}

	return false
}

func (p *nfeProduct) set(name, value string) {
	switch name {
	case "xProd":
		p.description = value
	case "qCom":
		p.quantity = value
	case "vUnCom":
		p.unitPrice = value
	case "vProd":
		p.total, p.hasTotal = value, value != ""
	}
}

func (p *nfeProduct) line() Line {
	l := NewLine(p.description, parseNumber(p.quantity), parseNumber(p.unitPrice))
	if p.hasTotal {
		l.TotalPrice = parseNumber(p.total)
	}

	return l
}

// parseNumber reads NF-e decimals ("12.5000"); unreadable values count as zero.
func parseNumber(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}

	return d
}
