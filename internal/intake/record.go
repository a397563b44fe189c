package intake

import (
	"encoding/json"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"caseprep/internal/fault"
)

// ExtractedRecord maps extraction keys to optional string values. It lives
// only long enough to be reconciled and is then discarded.
type ExtractedRecord map[string]*string

// The extraction collaborator promises a flat object of scalar-or-null
// values; everything else is a malformed result.
var recordSchema = jsonschema.MustCompileString("extracted_record.schema.json", `{
	"type": "object",
	"additionalProperties": {"type": ["string", "number", "boolean", "null"]}
}`)

// ParseRecord validates and defensively coerces the raw extraction response.
// Scalars become strings, null stays absent; any other shape fails with a
// MalformedExtractionResult fault.
func ParseRecord(raw []byte) (ExtractedRecord, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fault.NewMalformedExtractionResult(err.Error())
	}
	if err := recordSchema.Validate(v); err != nil {
		return nil, fault.NewMalformedExtractionResult(err.Error())
	}

	obj := v.(map[string]interface{})
	rec := make(ExtractedRecord, len(obj))
	for key, val := range obj {
		switch t := val.(type) {
		case nil:
			rec[key] = nil
		case string:
			s := t
			rec[key] = &s
		case bool:
			s := strconv.FormatBool(t)
			rec[key] = &s
		case float64:
			s := strconv.FormatFloat(t, 'f', -1, 64)
			rec[key] = &s
		}
	}
	return rec, nil
}

// Value returns the usable string for key. Missing keys, nulls, blank text,
// and the literal "null" spellings the extraction service emits are all
// treated as absent.
func (r ExtractedRecord) Value(key string) (string, bool) {
	p, ok := r[key]
	if !ok || p == nil {
		return "", false
	}
	s := strings.TrimSpace(*p)
	switch s {
	case "", "null", "Null", "NULL":
		return "", false
	}
	return s, true
}

// NullSentinel reports whether key is present carrying one of the literal
// null spellings. These are distinct from a missing key or a JSON null: the
// extraction service answered for the field and the answer was the string
// "null", which the reconciler surfaces in the skipped-field report.
func (r ExtractedRecord) NullSentinel(key string) (string, bool) {
	p, ok := r[key]
	if !ok || p == nil {
		return "", false
	}
	switch s := strings.TrimSpace(*p); s {
	case "null", "Null", "NULL":
		return s, true
	}
	return "", false
}
