package serviceImp

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"agrow/entities"
	kbservice "agrow/pkg/kb/service"
	"agrow/pkg/scan/types"
)

// Engine merges a parsed diagnosis with the curated knowledge base entry for
// the same crop and condition. It holds no per-call state.
type Engine struct {
	kb    kbservice.KBService
	now   func() time.Time
	newID func() string
}

func NewEngine(kb kbservice.KBService, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{kb: kb, now: now, newID: uuid.NewString}
}

// Reconcile builds the record and reports whether a knowledge base entry
// matched. The crop hint stands in when the model named no crop.
func (e *Engine) Reconcile(log *entities.ProcessLog, d types.Diagnosis, cropHint string) (*entities.DiagnosisRecord, bool) {
	crop := d.IdentifiedCrop
	if crop == "" {
		crop = cropHint
	}

	conf := "confidence unavailable"
	if d.HasConfidence {
		conf = fmt.Sprintf("%.1f%%", d.Confidence*100)
	}
	step := fmt.Sprintf("Vision Result: %s detected (%s). State: %s.", orDash(crop), conf, orDash(d.Condition))
	if d.IdentifiedCrop == "" || !d.HasConfidence {
		log.Warn(step)
	} else {
		log.Success(step)
	}

	var match *entities.Disease
	if e.kb != nil && crop != "" && d.Condition != "" {
		match, _ = e.kb.Lookup(crop, d.Condition)
	}
	if match != nil {
		log.Success("Validated against Scientific Knowledge Base.")
	} else {
		log.Info("Dynamic Remediation synthesized via Neural Logic.")
	}

	rec := &entities.DiagnosisRecord{
		ID:                e.newID(),
		Crop:              crop,
		PredictedDisease:  d.Condition,
		CommonName:        d.CommonName,
		Confidence:        d.Confidence,
		CreatedAt:         e.now().UTC(),
		ScientificName:    d.ScientificName,
		Status:            entities.ParseStatus(d.Status),
		Advice:            d.Advice,
		Symptoms:          d.Symptoms,
		TreatmentOrganic:  d.TreatmentOrganic,
		TreatmentChemical: d.TreatmentChemical,
	}
	if match != nil {
		rec.ScientificName = pick(match.ScientificName, rec.ScientificName)
		if match.Status != "" {
			rec.Status = match.Status
		}
		rec.Advice = pick(match.Advice, rec.Advice)
		if len(match.Symptoms) > 0 {
			rec.Symptoms = append([]string(nil), match.Symptoms...)
		}
		rec.TreatmentOrganic = pick(match.Treatment.Organic, rec.TreatmentOrganic)
		rec.TreatmentChemical = pick(match.Treatment.Chemical, rec.TreatmentChemical)
	}

	log.Success("Diagnostic Pack Generated.")
	rec.AnalysisLogs = log.Entries()
	return rec, match != nil
}

func pick(curated, ai string) string {
	if curated != "" {
		return curated
	}
	return ai
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
