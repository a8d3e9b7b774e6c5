package rest

// Fault is the error document returned by the service in place of a result
type Fault struct {
	Code    string   `json:"code" yaml:"code"`
	Message string   `json:"message" yaml:"message"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
}

// Waiting is returned instead of a result when the service has queued an
// asynchronous operation that can be polled using the list key
type Waiting struct {
	ListKey string  `json:"listKey" yaml:"listKey"`
	Message *string `json:"message,omitempty" yaml:"message,omitempty"`
}

type PropertyTable struct {
	Properties []Properties `json:"properties" yaml:"properties"`
}

// Properties holds the requested properties of a single compound. Any property
// that was not requested, or could not be computed by the service, is nil.
type Properties struct {
	CID                      int32    `json:"cid" yaml:"cid"`
	MolecularFormula         *string  `json:"molecularFormula,omitempty" yaml:"molecularFormula,omitempty"`
	MolecularWeight          *string  `json:"molecularWeight,omitempty" yaml:"molecularWeight,omitempty"`
	CanonicalSMILES          *string  `json:"canonicalSMILES,omitempty" yaml:"canonicalSMILES,omitempty"`
	IsomericSMILES           *string  `json:"isomericSMILES,omitempty" yaml:"isomericSMILES,omitempty"`
	InChI                    *string  `json:"inchi,omitempty" yaml:"inchi,omitempty"`
	InChIKey                 *string  `json:"inchiKey,omitempty" yaml:"inchiKey,omitempty"`
	IUPACName                *string  `json:"iupacName,omitempty" yaml:"iupacName,omitempty"`
	XLogP                    *float64 `json:"xlogp,omitempty" yaml:"xlogp,omitempty"`
	ExactMass                *string  `json:"exactMass,omitempty" yaml:"exactMass,omitempty"`
	MonoisotopicMass         *string  `json:"monoisotopicMass,omitempty" yaml:"monoisotopicMass,omitempty"`
	TPSA                     *float64 `json:"tpsa,omitempty" yaml:"tpsa,omitempty"`
	Complexity               *float64 `json:"complexity,omitempty" yaml:"complexity,omitempty"`
	Charge                   *int32   `json:"charge,omitempty" yaml:"charge,omitempty"`
	HBondDonorCount          *int32   `json:"hBondDonorCount,omitempty" yaml:"hBondDonorCount,omitempty"`
	HBondAcceptorCount       *int32   `json:"hBondAcceptorCount,omitempty" yaml:"hBondAcceptorCount,omitempty"`
	RotatableBondCount       *int32   `json:"rotatableBondCount,omitempty" yaml:"rotatableBondCount,omitempty"`
	HeavyAtomCount           *int32   `json:"heavyAtomCount,omitempty" yaml:"heavyAtomCount,omitempty"`
	IsotopeAtomCount         *int32   `json:"isotopeAtomCount,omitempty" yaml:"isotopeAtomCount,omitempty"`
	AtomStereoCount          *int32   `json:"atomStereoCount,omitempty" yaml:"atomStereoCount,omitempty"`
	DefinedAtomStereoCount   *int32   `json:"definedAtomStereoCount,omitempty" yaml:"definedAtomStereoCount,omitempty"`
	UndefinedAtomStereoCount *int32   `json:"undefinedAtomStereoCount,omitempty" yaml:"undefinedAtomStereoCount,omitempty"`
	BondStereoCount          *int32   `json:"bondStereoCount,omitempty" yaml:"bondStereoCount,omitempty"`
	DefinedBondStereoCount   *int32   `json:"definedBondStereoCount,omitempty" yaml:"definedBondStereoCount,omitempty"`
	UndefinedBondStereoCount *int32   `json:"undefinedBondStereoCount,omitempty" yaml:"undefinedBondStereoCount,omitempty"`
	CovalentUnitCount        *int32   `json:"covalentUnitCount,omitempty" yaml:"covalentUnitCount,omitempty"`
	Volume3D                 *float64 `json:"volume3D,omitempty" yaml:"volume3D,omitempty"`
	XStericQuadrupole3D      *float64 `json:"xStericQuadrupole3D,omitempty" yaml:"xStericQuadrupole3D,omitempty"`
	YStericQuadrupole3D      *float64 `json:"yStericQuadrupole3D,omitempty" yaml:"yStericQuadrupole3D,omitempty"`
	ZStericQuadrupole3D      *float64 `json:"zStericQuadrupole3D,omitempty" yaml:"zStericQuadrupole3D,omitempty"`
	FeatureCount3D           *int32   `json:"featureCount3D,omitempty" yaml:"featureCount3D,omitempty"`
	FeatureAcceptorCount3D   *int32   `json:"featureAcceptorCount3D,omitempty" yaml:"featureAcceptorCount3D,omitempty"`
	FeatureDonorCount3D      *int32   `json:"featureDonorCount3D,omitempty" yaml:"featureDonorCount3D,omitempty"`
	FeatureAnionCount3D      *int32   `json:"featureAnionCount3D,omitempty" yaml:"featureAnionCount3D,omitempty"`
	FeatureCationCount3D     *int32   `json:"featureCationCount3D,omitempty" yaml:"featureCationCount3D,omitempty"`
	FeatureRingCount3D       *int32   `json:"featureRingCount3D,omitempty" yaml:"featureRingCount3D,omitempty"`
	FeatureHydrophobeCount3D *int32   `json:"featureHydrophobeCount3D,omitempty" yaml:"featureHydrophobeCount3D,omitempty"`
	ConformerModelRMSD3D     *float64 `json:"conformerModelRMSD3D,omitempty" yaml:"conformerModelRMSD3D,omitempty"`
	EffectiveRotorCount3D    *float64 `json:"effectiveRotorCount3D,omitempty" yaml:"effectiveRotorCount3D,omitempty"`
	ConformerCount3D         *int32   `json:"conformerCount3D,omitempty" yaml:"conformerCount3D,omitempty"`
	Fingerprint2D            *string  `json:"fingerprint2D,omitempty" yaml:"fingerprint2D,omitempty"`
	Title                    *string  `json:"title,omitempty" yaml:"title,omitempty"`
}

// IdentifierList is returned by the cids, sids and aids operations. Only one
// of the identifier sequences is populated for a given request.
type IdentifierList struct {
	CIDs           []int32 `json:"cids,omitempty" yaml:"cids,omitempty"`
	SIDs           []int32 `json:"sids,omitempty" yaml:"sids,omitempty"`
	AIDs           []int32 `json:"aids,omitempty" yaml:"aids,omitempty"`
	ListKey        *string `json:"listKey,omitempty" yaml:"listKey,omitempty"`
	Size           *int32  `json:"size,omitempty" yaml:"size,omitempty"`
	EntrezDB       *string `json:"entrezDB,omitempty" yaml:"entrezDB,omitempty"`
	EntrezWebEnv   *string `json:"entrezWebEnv,omitempty" yaml:"entrezWebEnv,omitempty"`
	EntrezQueryKey *int32  `json:"entrezQueryKey,omitempty" yaml:"entrezQueryKey,omitempty"`
	EntrezURL      *string `json:"entrezURL,omitempty" yaml:"entrezURL,omitempty"`
	CacheKey       *string `json:"cacheKey,omitempty" yaml:"cacheKey,omitempty"`
}

// InformationList holds the information records and the source names and
// annotations listed next to them
type InformationList struct {
	Information []Information `json:"information" yaml:"information"`
	SourceNames []string      `json:"sourceNames,omitempty" yaml:"sourceNames,omitempty"`
	Annotations []Annotation  `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

type Information struct {
	ID                    int32     `json:"id" yaml:"id"`
	Synonyms              []string  `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	CIDs                  []int32   `json:"cids,omitempty" yaml:"cids,omitempty"`
	SIDs                  []int32   `json:"sids,omitempty" yaml:"sids,omitempty"`
	AIDs                  []int32   `json:"aids,omitempty" yaml:"aids,omitempty"`
	GIs                   []int32   `json:"gis,omitempty" yaml:"gis,omitempty"`
	GeneIDs               []int32   `json:"geneIDs,omitempty" yaml:"geneIDs,omitempty"`
	DepositionDate        *DateTime `json:"depositionDate,omitempty" yaml:"depositionDate,omitempty"`
	ModificationDate      *DateTime `json:"modificationDate,omitempty" yaml:"modificationDate,omitempty"`
	CreationDate          *DateTime `json:"creationDate,omitempty" yaml:"creationDate,omitempty"`
	HoldDate              *DateTime `json:"holdDate,omitempty" yaml:"holdDate,omitempty"`
	RegistryIDs           []string  `json:"registryIDs,omitempty" yaml:"registryIDs,omitempty"`
	RNs                   []string  `json:"rns,omitempty" yaml:"rns,omitempty"`
	PubMedIDs             []int32   `json:"pubMedIDs,omitempty" yaml:"pubMedIDs,omitempty"`
	MMDBIDs               []int32   `json:"mmdbIDs,omitempty" yaml:"mmdbIDs,omitempty"`
	DBURLs                []string  `json:"dbURLs,omitempty" yaml:"dbURLs,omitempty"`
	SBURLs                []string  `json:"sbURLs,omitempty" yaml:"sbURLs,omitempty"`
	ProteinGIs            []int32   `json:"proteinGIs,omitempty" yaml:"proteinGIs,omitempty"`
	NucleotideGIs         []int32   `json:"nucleotideGIs,omitempty" yaml:"nucleotideGIs,omitempty"`
	TaxonomyIDs           []int32   `json:"taxonomyIDs,omitempty" yaml:"taxonomyIDs,omitempty"`
	MIMIDs                []int32   `json:"mimIDs,omitempty" yaml:"mimIDs,omitempty"`
	ProbeIDs              []int32   `json:"probeIDs,omitempty" yaml:"probeIDs,omitempty"`
	PatentIDs             []string  `json:"patentIDs,omitempty" yaml:"patentIDs,omitempty"`
	ProteinNames          []string  `json:"proteinNames,omitempty" yaml:"proteinNames,omitempty"`
	GeneSymbols           []string  `json:"geneSymbols,omitempty" yaml:"geneSymbols,omitempty"`
	SourceNames           []string  `json:"sourceNames,omitempty" yaml:"sourceNames,omitempty"`
	SourceCategories      []string  `json:"sourceCategories,omitempty" yaml:"sourceCategories,omitempty"`
	Title                 *string   `json:"title,omitempty" yaml:"title,omitempty"`
	Description           *string   `json:"description,omitempty" yaml:"description,omitempty"`
	DescriptionSourceName *string   `json:"descriptionSourceName,omitempty" yaml:"descriptionSourceName,omitempty"`
	DescriptionURL        *string   `json:"descriptionURL,omitempty" yaml:"descriptionURL,omitempty"`
	ConformerIDs          []string  `json:"conformerIDs,omitempty" yaml:"conformerIDs,omitempty"`
	ProteinAccessions     []string  `json:"proteinAccessions,omitempty" yaml:"proteinAccessions,omitempty"`
}

type Annotation struct {
	Heading string `json:"heading" yaml:"heading"`
	Type    string `json:"type" yaml:"type"`
}

// DateTime is a partial timestamp. Any of its components may be missing.
type DateTime struct {
	Year   *int32 `json:"year,omitempty" yaml:"year,omitempty"`
	Month  *int32 `json:"month,omitempty" yaml:"month,omitempty"`
	Day    *int32 `json:"day,omitempty" yaml:"day,omitempty"`
	Hour   *int32 `json:"hour,omitempty" yaml:"hour,omitempty"`
	Minute *int32 `json:"minute,omitempty" yaml:"minute,omitempty"`
	Second *int32 `json:"second,omitempty" yaml:"second,omitempty"`
}
