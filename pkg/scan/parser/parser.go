// Package parser reads the diagnosis JSON object out of a model reply.
package parser

import (
	"encoding/json"
	"strconv"
	"strings"

	apperr "agrow/pkg/errors"
	"agrow/pkg/scan/types"
)

// Extract returns the text from the first '{' to the last '}'.
func Extract(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// Parse decodes the embedded object. Fields are read leniently: a field of
// the wrong type is treated as absent.
func Parse(text string) (types.Diagnosis, error) {
	const op = "scan.parse"
	obj, ok := Extract(text)
	if !ok {
		return types.Diagnosis{}, apperr.Newf(apperr.KindParse, op, "no JSON object in model reply")
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return types.Diagnosis{}, apperr.E(apperr.KindParse, op, err)
	}

	d := types.Diagnosis{
		IdentifiedCrop:    str(raw, "identifiedCrop"),
		CommonName:        str(raw, "commonName"),
		Condition:         str(raw, "condition"),
		ScientificName:    str(raw, "scientificName"),
		Status:            str(raw, "status"),
		Advice:            str(raw, "advice"),
		Symptoms:          list(raw, "symptoms"),
		TreatmentOrganic:  str(raw, "treatmentOrganic"),
		TreatmentChemical: str(raw, "treatmentChemical"),
	}
	d.Confidence, d.HasConfidence = number(raw, "confidence")
	return d, nil
}

func str(m map[string]any, k string) string {
	switch v := m[k].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func number(m map[string]any, k string) (float64, bool) {
	switch v := m[k].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			return f, true
		}
	}
	return 0, false
}

func list(m map[string]any, k string) []string {
	var out []string
	switch v := m[k].(type) {
	case []any:
		for _, it := range v {
			if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case string:
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
