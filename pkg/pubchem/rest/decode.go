package rest

import (
	"fmt"
	"io"

	pcerrors "github.com/diwise/pubchem/pkg/pubchem/errors"
)

// Record enumerates the document types that may be returned by the service
type Record interface {
	Fault | Waiting | PropertyTable | Properties | IdentifierList | InformationList | Information | DateTime
}

// Decode reads an XML document from r and decodes its root element into
// the record type expected by the caller. Unknown elements are skipped and
// any structural or numeric error aborts the decoding of the whole document.
func Decode[T Record](r io.Reader) (*T, error) {
	s := newXMLSource(r)

	start, err := s.firstElement()
	if err != nil {
		return nil, err
	}

	var record any
	var zero T

	switch any(zero).(type) {
	case Fault:
		record, err = decodeFault(s, start)
	case Waiting:
		record, err = decodeWaiting(s, start)
	case PropertyTable:
		record, err = decodePropertyTable(s, start)
	case Properties:
		record, err = decodeProperties(s, start)
	case IdentifierList:
		record, err = decodeIdentifierList(s, start)
	case InformationList:
		record, err = decodeInformationList(s, start)
	case Information:
		record, err = decodeInformation(s, start)
	case DateTime:
		record, err = decodeDateTime(s, start)
	default:
		err = fmt.Errorf("no decoder registered for %T (%w)", zero, pcerrors.ErrInternal)
	}

	if err != nil {
		return nil, err
	}

	return record.(*T), nil
}

// DecodeFault decodes a fault document and classifies it into one of the
// service fault errors
func DecodeFault(r io.Reader) error {
	fault, err := Decode[Fault](r)
	if err != nil {
		return err
	}

	return pcerrors.NewErrorFromFault(fault.Code, fault.Message, fault.Details)
}
