package rest

import (
	"strconv"
	"strings"

	pcerrors "github.com/diwise/pubchem/pkg/pubchem/errors"
)

func parseInt32(element, text string) (int32, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return 0, &pcerrors.ParseError{Kind: pcerrors.ParseInt, Element: element, Text: text, Err: err}
	}
	return int32(i), nil
}

func parseFloat64(element, text string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &pcerrors.ParseError{Kind: pcerrors.ParseFloat, Element: element, Text: text, Err: err}
	}
	return f, nil
}
