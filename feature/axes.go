package feature

// Groups of the vocabulary.
var (
	// ConsonantRows are consonant manners in canonical table order.
	ConsonantRows = []Feature{
		Plosive, Implosive, Nasal, Trill, Tap, Fricative, Affricate,
		LateralFricative, LateralAffricate, Approximant, LateralApproximant,
	}

	// ConsonantColumns are consonant places in canonical table order.
	ConsonantColumns = []Feature{
		Bilabial, LabialVelar, LabialPalatal, Labiodental, Dental, Alveolar,
		Postalveolar, HissingHushing, Retroflex, AlveoloPalatal, Palatal,
		Velar, Uvular, Pharyngeal, Glottal, Epiglottal,
	}

	// VowelRows are vowel heights in canonical table order.
	VowelRows = []Feature{Close, NearClose, CloseMid, Mid, OpenMid, NearOpen, Open}

	// VowelColumns are vowel backness values in canonical table order.
	VowelColumns = []Feature{Front, NearFront, Central, NearBack, Back}

	// Shapes marks vowels that are listed inline instead of tabulated.
	Shapes = NewSet(Diphthong, Triphthong, Apical)

	// SeriesForming holds the features that split an inventory into
	// separate tables.
	SeriesForming = NewSet(
		PreGlottalised, PreAspirated, PreNasalised, PreLabialised,
		Aspirated, Ejective, Pharyngealised, Nasalised, Labialised,
		Velarised, Faucalised, Palatalised, HalfLong, Long, CreakyVoiced,
		BreathyVoiced, LateralReleased, Rhotic, AdvancedTongueRoot,
		RetractedTongueRoot,
	)
)

// Axes is a pair of ordered vocabularies spanning a classification grid.
type Axes struct {
	Rows    []Feature
	Columns []Feature

	rowPos map[Feature]int
	colPos map[Feature]int
}

// NewAxes builds an Axes from ordered row and column vocabularies.
func NewAxes(rows, columns []Feature) Axes {
	a := Axes{
		Rows:    rows,
		Columns: columns,
		rowPos:  make(map[Feature]int, len(rows)),
		colPos:  make(map[Feature]int, len(columns)),
	}
	for i, f := range rows {
		a.rowPos[f] = i
	}
	for i, f := range columns {
		a.colPos[f] = i
	}
	return a
}

var (
	// ConsonantAxes is the manner × place grid.
	ConsonantAxes = NewAxes(ConsonantRows, ConsonantColumns)

	// VowelAxes is the height × backness grid.
	VowelAxes = NewAxes(VowelRows, VowelColumns)
)

// For returns the grid used for the given major class.
func For(class Feature) (Axes, bool) {
	switch class {
	case Consonant:
		return ConsonantAxes, true
	case Vowel:
		return VowelAxes, true
	default:
		return Axes{}, false
	}
}

// Coordinates returns the (row, column) position of s in the grid.
// The first row and the first column tag in canonical order win.
func (a Axes) Coordinates(s Set) (row, col int, ok bool) {
	row, col = -1, -1
	for i, f := range a.Rows {
		if s.Has(f) {
			row = i
			break
		}
	}
	for i, f := range a.Columns {
		if s.Has(f) {
			col = i
			break
		}
	}
	return row, col, row >= 0 && col >= 0
}

// RowIndex returns the position of f among the rows.
func (a Axes) RowIndex(f Feature) (int, bool) {
	i, ok := a.rowPos[f]
	return i, ok
}

// ColumnIndex returns the position of f among the columns.
func (a Axes) ColumnIndex(f Feature) (int, bool) {
	i, ok := a.colPos[f]
	return i, ok
}

// UsedRows returns the rows present in s, in canonical order.
func (a Axes) UsedRows(s Set) []Feature {
	return filter(a.Rows, s)
}

// UsedColumns returns the columns present in s, in canonical order.
func (a Axes) UsedColumns(s Set) []Feature {
	return filter(a.Columns, s)
}

func filter(vocab []Feature, s Set) []Feature {
	var out []Feature
	for _, f := range vocab {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}
