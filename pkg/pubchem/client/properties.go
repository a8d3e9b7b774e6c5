package client

import (
	"fmt"
	"strings"

	pcerrors "github.com/diwise/pubchem/pkg/pubchem/errors"
)

// CompoundProperty is a single property that can be retrieved for a compound
type CompoundProperty int

const (
	// Molecular formula.
	MolecularFormula CompoundProperty = iota
	// The sum of all atomic weights of the constituent atoms in a compound, in g/mol.
	MolecularWeight
	// Unique SMILES string of a compound, generated by a canonicalization algorithm.
	CanonicalSMILES
	// SMILES string with stereochemical and isotopic specifications.
	IsomericSMILES
	// Standard IUPAC International Chemical Identifier.
	InChI
	// Hashed version of the full standard InChI, consisting of 27 characters.
	InChIKey
	// Chemical name systematically determined according to the IUPAC nomenclatures.
	IUPACName
	// The title used for the compound summary page.
	Title
	// Computationally generated octanol-water partition coefficient.
	XLogP
	// The mass of the most likely isotopic composition for a single molecule.
	ExactMass
	// The mass of a molecule, using the mass of the most abundant isotope of each element.
	MonoisotopicMass
	// Topological polar surface area.
	TPSA
	// The molecular complexity rating of a compound.
	Complexity
	// The total (or net) charge of a molecule.
	Charge
	HBondDonorCount
	HBondAcceptorCount
	RotatableBondCount
	HeavyAtomCount
	IsotopeAtomCount
	AtomStereoCount
	DefinedAtomStereoCount
	UndefinedAtomStereoCount
	BondStereoCount
	DefinedBondStereoCount
	UndefinedBondStereoCount
	CovalentUnitCount
	Volume3D
	XStericQuadrupole3D
	YStericQuadrupole3D
	ZStericQuadrupole3D
	FeatureCount3D
	FeatureAcceptorCount3D
	FeatureDonorCount3D
	FeatureAnionCount3D
	FeatureCationCount3D
	FeatureRingCount3D
	FeatureHydrophobeCount3D
	ConformerModelRMSD3D
	EffectiveRotorCount3D
	ConformerCount3D
	// Base64 encoded PubChem substructure fingerprint of a molecule.
	Fingerprint2D
)

// property names as used in requests to, and responses from, the service
var propertyNames = [...]string{
	MolecularFormula:         "MolecularFormula",
	MolecularWeight:          "MolecularWeight",
	CanonicalSMILES:          "CanonicalSMILES",
	IsomericSMILES:           "IsomericSMILES",
	InChI:                    "InChI",
	InChIKey:                 "InChIKey",
	IUPACName:                "IUPACName",
	Title:                    "Title",
	XLogP:                    "XLogP",
	ExactMass:                "ExactMass",
	MonoisotopicMass:         "MonoisotopicMass",
	TPSA:                     "TPSA",
	Complexity:               "Complexity",
	Charge:                   "Charge",
	HBondDonorCount:          "HBondDonorCount",
	HBondAcceptorCount:       "HBondAcceptorCount",
	RotatableBondCount:       "RotatableBondCount",
	HeavyAtomCount:           "HeavyAtomCount",
	IsotopeAtomCount:         "IsotopeAtomCount",
	AtomStereoCount:          "AtomStereoCount",
	DefinedAtomStereoCount:   "DefinedAtomStereoCount",
	UndefinedAtomStereoCount: "UndefinedAtomStereoCount",
	BondStereoCount:          "BondStereoCount",
	DefinedBondStereoCount:   "DefinedBondStereoCount",
	UndefinedBondStereoCount: "UndefinedBondStereoCount",
	CovalentUnitCount:        "CovalentUnitCount",
	Volume3D:                 "Volume3D",
	XStericQuadrupole3D:      "XStericQuadrupole3D",
	YStericQuadrupole3D:      "YStericQuadrupole3D",
	ZStericQuadrupole3D:      "ZStericQuadrupole3D",
	FeatureCount3D:           "FeatureCount3D",
	FeatureAcceptorCount3D:   "FeatureAcceptorCount3D",
	FeatureDonorCount3D:      "FeatureDonorCount3D",
	FeatureAnionCount3D:      "FeatureAnionCount3D",
	FeatureCationCount3D:     "FeatureCationCount3D",
	FeatureRingCount3D:       "FeatureRingCount3D",
	FeatureHydrophobeCount3D: "FeatureHydrophobeCount3D",
	ConformerModelRMSD3D:     "ConformerModelRMSD3D",
	EffectiveRotorCount3D:    "EffectiveRotorCount3D",
	ConformerCount3D:         "ConformerCount3D",
	Fingerprint2D:            "Fingerprint2D",
}

// Name returns the name of the property as used by the service
func (p CompoundProperty) Name() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return fmt.Sprintf("CompoundProperty(%d)", int(p))
	}
	return propertyNames[p]
}

func (p CompoundProperty) String() string {
	return p.Name()
}

// AllProperties returns every property in the catalog, in catalog order
func AllProperties() []CompoundProperty {
	all := make([]CompoundProperty, len(propertyNames))
	for idx := range propertyNames {
		all[idx] = CompoundProperty(idx)
	}
	return all
}

// ParseCompoundProperty looks up a property by its name. The lookup is case
// insensitive.
func ParseCompoundProperty(name string) (CompoundProperty, error) {
	for idx, n := range propertyNames {
		if strings.EqualFold(n, name) {
			return CompoundProperty(idx), nil
		}
	}

	return 0, fmt.Errorf("unknown compound property %q (%w)", name, pcerrors.ErrInvalidRequest)
}

// ParseCompoundProperties parses a list of property names, such as the
// comma separated list "MolecularFormula,Title" split on commas
func ParseCompoundProperties(names []string) ([]CompoundProperty, error) {
	properties := make([]CompoundProperty, 0, len(names))

	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}

		p, err := ParseCompoundProperty(n)
		if err != nil {
			return nil, err
		}

		properties = append(properties, p)
	}

	return properties, nil
}

func propertyPath(properties []CompoundProperty) string {
	names := make([]string, len(properties))
	for idx, p := range properties {
		names[idx] = p.Name()
	}
	return "property/" + strings.Join(names, ",")
}
