package rest

import (
	"encoding/xml"
	"fmt"

	pcerrors "github.com/diwise/pubchem/pkg/pubchem/errors"
)

// fieldDecoder consumes the child element opened by start and stores its
// value in the record under construction
type fieldDecoder[T any] func(s *xmlSource, start xml.StartElement, record *T) error

type fieldDecoders[T any] map[string]fieldDecoder[T]

// decodeElement reads the children of the element opened by start until its
// end element. Children without a field decoder are skipped.
func decodeElement[T any](s *xmlSource, start xml.StartElement, name string, fields fieldDecoders[T]) (*T, error) {
	if start.Name.Local != name {
		return nil, pcerrors.NewBadResponseError(
			fmt.Sprintf("expected element %s but found %s", name, start.Name.Local),
		)
	}

	record := new(T)

	for {
		tok, err := s.nextInElement()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			decode, ok := fields[t.Name.Local]
			if !ok {
				err = s.skip()
			} else {
				err = decode(s, t, record)
			}

			if err != nil {
				return nil, err
			}
		case xml.EndElement:
			return record, nil
		}
	}
}

func text[T any](set func(*T, string)) fieldDecoder[T] {
	return func(s *xmlSource, start xml.StartElement, record *T) error {
		value, err := s.readText(start)
		if err != nil {
			return err
		}
		set(record, value)
		return nil
	}
}

func integer[T any](set func(*T, int32)) fieldDecoder[T] {
	return func(s *xmlSource, start xml.StartElement, record *T) error {
		value, err := s.readText(start)
		if err != nil {
			return err
		}

		i, err := parseInt32(start.Name.Local, value)
		if err != nil {
			return err
		}

		set(record, i)
		return nil
	}
}

func float[T any](set func(*T, float64)) fieldDecoder[T] {
	return func(s *xmlSource, start xml.StartElement, record *T) error {
		value, err := s.readText(start)
		if err != nil {
			return err
		}

		f, err := parseFloat64(start.Name.Local, value)
		if err != nil {
			return err
		}

		set(record, f)
		return nil
	}
}

func nested[T, R any](decode func(*xmlSource, xml.StartElement) (*R, error), set func(*T, *R)) fieldDecoder[T] {
	return func(s *xmlSource, start xml.StartElement, record *T) error {
		value, err := decode(s, start)
		if err != nil {
			return err
		}
		set(record, value)
		return nil
	}
}

// dateTime decodes a child element typed as a date time, where the date
// components are either direct children or wrapped in a DateTime element
func dateTime[T any](set func(*T, *DateTime)) fieldDecoder[T] {
	return func(s *xmlSource, start xml.StartElement, record *T) error {
		value, err := decodeElement(s, start, start.Name.Local, dateTimeFields)
		if err != nil {
			return err
		}
		set(record, value)
		return nil
	}
}

var faultFields = fieldDecoders[Fault]{
	"Code":    text(func(f *Fault, v string) { f.Code = v }),
	"Message": text(func(f *Fault, v string) { f.Message = v }),
	"Details": text(func(f *Fault, v string) { f.Details = append(f.Details, v) }),
}

func decodeFault(s *xmlSource, start xml.StartElement) (*Fault, error) {
	return decodeElement(s, start, "Fault", faultFields)
}

var waitingFields = fieldDecoders[Waiting]{
	"ListKey": text(func(w *Waiting, v string) { w.ListKey = v }),
	"Message": text(func(w *Waiting, v string) { w.Message = &v }),
}

func decodeWaiting(s *xmlSource, start xml.StartElement) (*Waiting, error) {
	return decodeElement(s, start, "Waiting", waitingFields)
}

var propertyTableFields = fieldDecoders[PropertyTable]{
	"Properties": nested(decodeProperties, func(t *PropertyTable, p *Properties) {
		t.Properties = append(t.Properties, *p)
	}),
}

func decodePropertyTable(s *xmlSource, start xml.StartElement) (*PropertyTable, error) {
	return decodeElement(s, start, "PropertyTable", propertyTableFields)
}

var propertiesFields = fieldDecoders[Properties]{
	"CID":                      integer(func(p *Properties, v int32) { p.CID = v }),
	"MolecularFormula":         text(func(p *Properties, v string) { p.MolecularFormula = &v }),
	"MolecularWeight":          text(func(p *Properties, v string) { p.MolecularWeight = &v }),
	"CanonicalSMILES":          text(func(p *Properties, v string) { p.CanonicalSMILES = &v }),
	"IsomericSMILES":           text(func(p *Properties, v string) { p.IsomericSMILES = &v }),
	"InChI":                    text(func(p *Properties, v string) { p.InChI = &v }),
	"InChIKey":                 text(func(p *Properties, v string) { p.InChIKey = &v }),
	"IUPACName":                text(func(p *Properties, v string) { p.IUPACName = &v }),
	"XLogP":                    float(func(p *Properties, v float64) { p.XLogP = &v }),
	"ExactMass":                text(func(p *Properties, v string) { p.ExactMass = &v }),
	"MonoisotopicMass":         text(func(p *Properties, v string) { p.MonoisotopicMass = &v }),
	"TPSA":                     float(func(p *Properties, v float64) { p.TPSA = &v }),
	"Complexity":               float(func(p *Properties, v float64) { p.Complexity = &v }),
	"Charge":                   integer(func(p *Properties, v int32) { p.Charge = &v }),
	"HBondDonorCount":          integer(func(p *Properties, v int32) { p.HBondDonorCount = &v }),
	"HBondAcceptorCount":       integer(func(p *Properties, v int32) { p.HBondAcceptorCount = &v }),
	"RotatableBondCount":       integer(func(p *Properties, v int32) { p.RotatableBondCount = &v }),
	"HeavyAtomCount":           integer(func(p *Properties, v int32) { p.HeavyAtomCount = &v }),
	"IsotopeAtomCount":         integer(func(p *Properties, v int32) { p.IsotopeAtomCount = &v }),
	"AtomStereoCount":          integer(func(p *Properties, v int32) { p.AtomStereoCount = &v }),
	"DefinedAtomStereoCount":   integer(func(p *Properties, v int32) { p.DefinedAtomStereoCount = &v }),
	"UndefinedAtomStereoCount": integer(func(p *Properties, v int32) { p.UndefinedAtomStereoCount = &v }),
	"BondStereoCount":          integer(func(p *Properties, v int32) { p.BondStereoCount = &v }),
	"DefinedBondStereoCount":   integer(func(p *Properties, v int32) { p.DefinedBondStereoCount = &v }),
	"UndefinedBondStereoCount": integer(func(p *Properties, v int32) { p.UndefinedBondStereoCount = &v }),
	"CovalentUnitCount":        integer(func(p *Properties, v int32) { p.CovalentUnitCount = &v }),
	"Volume3D":                 float(func(p *Properties, v float64) { p.Volume3D = &v }),
	"XStericQuadrupole3D":      float(func(p *Properties, v float64) { p.XStericQuadrupole3D = &v }),
	"YStericQuadrupole3D":      float(func(p *Properties, v float64) { p.YStericQuadrupole3D = &v }),
	"ZStericQuadrupole3D":      float(func(p *Properties, v float64) { p.ZStericQuadrupole3D = &v }),
	"FeatureCount3D":           integer(func(p *Properties, v int32) { p.FeatureCount3D = &v }),
	"FeatureAcceptorCount3D":   integer(func(p *Properties, v int32) { p.FeatureAcceptorCount3D = &v }),
	"FeatureDonorCount3D":      integer(func(p *Properties, v int32) { p.FeatureDonorCount3D = &v }),
	"FeatureAnionCount3D":      integer(func(p *Properties, v int32) { p.FeatureAnionCount3D = &v }),
	"FeatureCationCount3D":     integer(func(p *Properties, v int32) { p.FeatureCationCount3D = &v }),
	"FeatureRingCount3D":       integer(func(p *Properties, v int32) { p.FeatureRingCount3D = &v }),
	"FeatureHydrophobeCount3D": integer(func(p *Properties, v int32) { p.FeatureHydrophobeCount3D = &v }),
	"ConformerModelRMSD3D":     float(func(p *Properties, v float64) { p.ConformerModelRMSD3D = &v }),
	"EffectiveRotorCount3D":    float(func(p *Properties, v float64) { p.EffectiveRotorCount3D = &v }),
	"ConformerCount3D":         integer(func(p *Properties, v int32) { p.ConformerCount3D = &v }),
	"Fingerprint2D":            text(func(p *Properties, v string) { p.Fingerprint2D = &v }),
	"Title":                    text(func(p *Properties, v string) { p.Title = &v }),
}

// decodeProperties rejects records without a CID. PubChem numbers compounds
// from 1, so a zero CID means the element was missing.
func decodeProperties(s *xmlSource, start xml.StartElement) (*Properties, error) {
	p, err := decodeElement(s, start, "Properties", propertiesFields)
	if err != nil {
		return nil, err
	}

	if p.CID == 0 {
		return nil, pcerrors.NewBadResponseError("properties record without CID")
	}

	return p, nil
}

var identifierListFields = fieldDecoders[IdentifierList]{
	"CID":            integer(func(l *IdentifierList, v int32) { l.CIDs = append(l.CIDs, v) }),
	"SID":            integer(func(l *IdentifierList, v int32) { l.SIDs = append(l.SIDs, v) }),
	"AID":            integer(func(l *IdentifierList, v int32) { l.AIDs = append(l.AIDs, v) }),
	"ListKey":        text(func(l *IdentifierList, v string) { l.ListKey = &v }),
	"Size":           integer(func(l *IdentifierList, v int32) { l.Size = &v }),
	"EntrezDB":       text(func(l *IdentifierList, v string) { l.EntrezDB = &v }),
	"EntrezWebEnv":   text(func(l *IdentifierList, v string) { l.EntrezWebEnv = &v }),
	"EntrezQueryKey": integer(func(l *IdentifierList, v int32) { l.EntrezQueryKey = &v }),
	"EntrezURL":      text(func(l *IdentifierList, v string) { l.EntrezURL = &v }),
	"CacheKey":       text(func(l *IdentifierList, v string) { l.CacheKey = &v }),
}

func decodeIdentifierList(s *xmlSource, start xml.StartElement) (*IdentifierList, error) {
	return decodeElement(s, start, "IdentifierList", identifierListFields)
}

var informationListFields = fieldDecoders[InformationList]{
	"SourceName": text(func(l *InformationList, v string) { l.SourceNames = append(l.SourceNames, v) }),
	"Information": nested(decodeInformation, func(l *InformationList, i *Information) {
		l.Information = append(l.Information, *i)
	}),
	"Annotation": nested(decodeAnnotation, func(l *InformationList, a *Annotation) {
		l.Annotations = append(l.Annotations, *a)
	}),
}

func decodeInformationList(s *xmlSource, start xml.StartElement) (*InformationList, error) {
	return decodeElement(s, start, "InformationList", informationListFields)
}

var informationFields = fieldDecoders[Information]{
	"ID":                    integer(func(i *Information, v int32) { i.ID = v }),
	"Synonym":               text(func(i *Information, v string) { i.Synonyms = append(i.Synonyms, v) }),
	"CID":                   integer(func(i *Information, v int32) { i.CIDs = append(i.CIDs, v) }),
	"SID":                   integer(func(i *Information, v int32) { i.SIDs = append(i.SIDs, v) }),
	"AID":                   integer(func(i *Information, v int32) { i.AIDs = append(i.AIDs, v) }),
	"GI":                    integer(func(i *Information, v int32) { i.GIs = append(i.GIs, v) }),
	"GeneID":                integer(func(i *Information, v int32) { i.GeneIDs = append(i.GeneIDs, v) }),
	"DepositionDate":        dateTime(func(i *Information, d *DateTime) { i.DepositionDate = d }),
	"ModificationDate":      dateTime(func(i *Information, d *DateTime) { i.ModificationDate = d }),
	"CreationDate":          dateTime(func(i *Information, d *DateTime) { i.CreationDate = d }),
	"HoldDate":              dateTime(func(i *Information, d *DateTime) { i.HoldDate = d }),
	"RegistryID":            text(func(i *Information, v string) { i.RegistryIDs = append(i.RegistryIDs, v) }),
	"RN":                    text(func(i *Information, v string) { i.RNs = append(i.RNs, v) }),
	"PubMedID":              integer(func(i *Information, v int32) { i.PubMedIDs = append(i.PubMedIDs, v) }),
	"PubMedId":              integer(func(i *Information, v int32) { i.PubMedIDs = append(i.PubMedIDs, v) }),
	"MMDBID":                integer(func(i *Information, v int32) { i.MMDBIDs = append(i.MMDBIDs, v) }),
	"DBURL":                 text(func(i *Information, v string) { i.DBURLs = append(i.DBURLs, v) }),
	"SBURL":                 text(func(i *Information, v string) { i.SBURLs = append(i.SBURLs, v) }),
	"ProteinGI":             integer(func(i *Information, v int32) { i.ProteinGIs = append(i.ProteinGIs, v) }),
	"NucleotideGI":          integer(func(i *Information, v int32) { i.NucleotideGIs = append(i.NucleotideGIs, v) }),
	"TaxonomyID":            integer(func(i *Information, v int32) { i.TaxonomyIDs = append(i.TaxonomyIDs, v) }),
	"MIMID":                 integer(func(i *Information, v int32) { i.MIMIDs = append(i.MIMIDs, v) }),
	"ProbeID":               integer(func(i *Information, v int32) { i.ProbeIDs = append(i.ProbeIDs, v) }),
	"PatentID":              text(func(i *Information, v string) { i.PatentIDs = append(i.PatentIDs, v) }),
	"ProteinName":           text(func(i *Information, v string) { i.ProteinNames = append(i.ProteinNames, v) }),
	"GeneSymbol":            text(func(i *Information, v string) { i.GeneSymbols = append(i.GeneSymbols, v) }),
	"SourceName":            text(func(i *Information, v string) { i.SourceNames = append(i.SourceNames, v) }),
	"SourceCategory":        text(func(i *Information, v string) { i.SourceCategories = append(i.SourceCategories, v) }),
	"Title":                 text(func(i *Information, v string) { i.Title = &v }),
	"Description":           text(func(i *Information, v string) { i.Description = &v }),
	"DescriptionSourceName": text(func(i *Information, v string) { i.DescriptionSourceName = &v }),
	"DescriptionURL":        text(func(i *Information, v string) { i.DescriptionURL = &v }),
	"ConformerID":           text(func(i *Information, v string) { i.ConformerIDs = append(i.ConformerIDs, v) }),
	"ProteinAccession":      text(func(i *Information, v string) { i.ProteinAccessions = append(i.ProteinAccessions, v) }),
}

func decodeInformation(s *xmlSource, start xml.StartElement) (*Information, error) {
	return decodeElement(s, start, "Information", informationFields)
}

var annotationFields = fieldDecoders[Annotation]{
	"Heading": text(func(a *Annotation, v string) { a.Heading = v }),
	"Type":    text(func(a *Annotation, v string) { a.Type = v }),
}

func decodeAnnotation(s *xmlSource, start xml.StartElement) (*Annotation, error) {
	return decodeElement(s, start, "Annotation", annotationFields)
}

var dateTimeFields = fieldDecoders[DateTime]{
	"Year":   integer(func(d *DateTime, v int32) { d.Year = &v }),
	"Month":  integer(func(d *DateTime, v int32) { d.Month = &v }),
	"Day":    integer(func(d *DateTime, v int32) { d.Day = &v }),
	"Hour":   integer(func(d *DateTime, v int32) { d.Hour = &v }),
	"Minute": integer(func(d *DateTime, v int32) { d.Minute = &v }),
	"Second": integer(func(d *DateTime, v int32) { d.Second = &v }),
}

func init() {
	dateTimeFields["DateTime"] = func(s *xmlSource, start xml.StartElement, d *DateTime) error {
		inner, err := decodeDateTime(s, start)
		if err != nil {
			return err
		}
		d.merge(inner)
		return nil
	}
}

func decodeDateTime(s *xmlSource, start xml.StartElement) (*DateTime, error) {
	return decodeElement(s, start, "DateTime", dateTimeFields)
}

func (d *DateTime) merge(other *DateTime) {
	for _, f := range []struct{ dst, src **int32 }{
		{&d.Year, &other.Year},
		{&d.Month, &other.Month},
		{&d.Day, &other.Day},
		{&d.Hour, &other.Hour},
		{&d.Minute, &other.Minute},
		{&d.Second, &other.Second},
	} {
		if *f.src != nil {
			*f.dst = *f.src
		}
	}
}
