package rest

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	pcerrors "github.com/diwise/pubchem/pkg/pubchem/errors"
)

// xmlSource is a forward only event source over an XML document. The text
// buffer is scratch space shared by every decoder of a single document.
type xmlSource struct {
	dec  *xml.Decoder
	text bytes.Buffer
}

func newXMLSource(r io.Reader) *xmlSource {
	return &xmlSource{
		dec: xml.NewDecoder(r),
	}
}

// next returns the next structural event in the document, or io.EOF if the
// document has been read to completion
func (s *xmlSource) next() (xml.Token, error) {
	tok, err := s.dec.Token()
	if err == nil {
		return tok, nil
	}

	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}

	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		if syntaxErr.Msg == "unexpected EOF" {
			return nil, unexpectedEOF(syntaxErr.Line)
		}
		return nil, fmt.Errorf("malformed document: %s (%w)", err.Error(), pcerrors.ErrBadResponse)
	}

	return nil, fmt.Errorf("failed to read response body: %w (%w)", err, pcerrors.ErrBadResponse)
}

// nextInElement behaves like next, but treats a clean end of the document as
// a failure since an element is still open
func (s *xmlSource) nextInElement() (xml.Token, error) {
	tok, err := s.next()
	if errors.Is(err, io.EOF) {
		return nil, unexpectedEOF(0)
	}
	return tok, err
}

// firstElement skips any prolog until the root element is found
func (s *xmlSource) firstElement() (xml.StartElement, error) {
	for {
		tok, err := s.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return xml.StartElement{}, unexpectedEOF(0)
			}
			return xml.StartElement{}, err
		}

		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// readText returns the character data of the element opened by start, and
// consumes everything up to and including its end element
func (s *xmlSource) readText(start xml.StartElement) (string, error) {
	s.text.Reset()

	for {
		tok, err := s.nextInElement()
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.CharData:
			s.text.Write(t)
		case xml.StartElement:
			if err = s.skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return s.text.String(), nil
		}
	}
}

// skip discards the sub tree of an element whose start element has just been
// consumed, including any nested elements with the same name
func (s *xmlSource) skip() error {
	depth := 1

	for depth > 0 {
		tok, err := s.nextInElement()
		if err != nil {
			return err
		}

		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}

	return nil
}

func unexpectedEOF(line int) error {
	if line > 0 {
		return fmt.Errorf("unexpected end of document at line %d (%w): %w", line, pcerrors.ErrBadResponse, io.ErrUnexpectedEOF)
	}
	return fmt.Errorf("unexpected end of document (%w): %w", pcerrors.ErrBadResponse, io.ErrUnexpectedEOF)
}
