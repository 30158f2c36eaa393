package extract

// Entity labels recognized by the pipeline. Extractors should prefer these;
// the PERSON label additionally drives author backfill on documents whose
// author is still the upload-time placeholder.
const (
	LabelPerson = "PERSON"
	LabelOrg    = "ORG"
	LabelLoc    = "LOC"
	LabelMisc   = "MISC"
	LabelDate   = "DATE"
)

// EntityLabels lists the valid labels for extracted entities.
var EntityLabels = []string{
	LabelPerson,
	LabelOrg,
	LabelLoc,
	LabelMisc,
	LabelDate,
}

// MaxEntityInputChars bounds how much text is handed to entity extraction
// for a single document, for cost control on large documents.
const MaxEntityInputChars = 100000

// MaxEntitiesPerDocument caps how many entities the pipeline keeps per
// document, in extraction order.
const MaxEntitiesPerDocument = 20

// TruncateChars returns at most maxChars leading characters of text,
// never splitting a multi-byte rune. A non-positive maxChars leaves the
// text unchanged.
func TruncateChars(text string, maxChars int) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}
