package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrow/entities"
	kbsvc "agrow/pkg/kb/serviceImp"
	"agrow/pkg/scan/types"
)

var fixedNow = func() time.Time { return time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC) }

func neemLeafSpot() entities.Disease {
	return entities.Disease{
		ID:             "neem-leaf-spot",
		Crop:           "neem",
		Name:           "leaf spot",
		ScientificName: "Cercospora subsessilis",
		Status:         entities.StatusActionNeeded,
		Symptoms:       []string{"circular brown spots"},
		Treatment:      entities.Treatment{Organic: "Neem oil spray", Chemical: "Mancozeb 75 WP"},
		Advice:         "Prune infected leaves.",
	}
}

func newTestEngine(entries ...entities.Disease) *Engine {
	e := NewEngine(kbsvc.NewFromEntries(entries), fixedNow)
	e.newID = func() string { return "id-1" }
	return e
}

func TestReconcile_KBWinsOnMatch(t *testing.T) {
	e := newTestEngine(neemLeafSpot())
	d := types.Diagnosis{
		IdentifiedCrop: "Neem", Condition: "Leaf Spot", CommonName: "Neem",
		ScientificName: "ai latin", Status: "Healthy", Advice: "ai advice",
		Symptoms: []string{"ai symptom"}, TreatmentOrganic: "ai organic", TreatmentChemical: "ai chem",
		Confidence: 0.81, HasConfidence: true,
	}

	rec, matched := e.Reconcile(entities.NewProcessLog(fixedNow), d, "")

	require.True(t, matched)
	assert.Equal(t, "id-1", rec.ID)
	assert.Equal(t, entities.StatusActionNeeded, rec.Status)
	assert.Equal(t, "Cercospora subsessilis", rec.ScientificName)
	assert.Equal(t, "Prune infected leaves.", rec.Advice)
	assert.Equal(t, []string{"circular brown spots"}, rec.Symptoms)
	assert.Equal(t, "Neem oil spray", rec.TreatmentOrganic)
	assert.Equal(t, "Mancozeb 75 WP", rec.TreatmentChemical)
	assert.Equal(t, "Neem", rec.Crop)
	assert.Equal(t, "Leaf Spot", rec.PredictedDisease)
	assert.InDelta(t, 0.81, rec.Confidence, 1e-9)
	assert.Equal(t, fixedNow(), rec.CreatedAt)
}

func TestReconcile_EmptyKBFieldsFallBackToAI(t *testing.T) {
	sparse := entities.Disease{Crop: "Neem", Name: "Leaf Spot", Status: entities.StatusCritical}
	e := newTestEngine(sparse)
	d := types.Diagnosis{
		IdentifiedCrop: "neem", Condition: "leaf spot", Status: "Healthy",
		Advice: "ai advice", Symptoms: []string{"ai symptom"}, TreatmentOrganic: "ai organic",
	}

	rec, matched := e.Reconcile(entities.NewProcessLog(fixedNow), d, "")

	require.True(t, matched)
	assert.Equal(t, entities.StatusCritical, rec.Status)
	assert.Equal(t, "ai advice", rec.Advice)
	assert.Equal(t, []string{"ai symptom"}, rec.Symptoms)
	assert.Equal(t, "ai organic", rec.TreatmentOrganic)
}

func TestReconcile_NoMatchIsAllAI(t *testing.T) {
	e := newTestEngine(neemLeafSpot())
	d := types.Diagnosis{
		IdentifiedCrop: "Tomato", Condition: "Healthy", ScientificName: "Solanum lycopersicum",
		Status: "healthy", Advice: "Keep watering", Symptoms: []string{"none"},
		TreatmentOrganic: "none", TreatmentChemical: "none", Confidence: 0.92, HasConfidence: true,
	}

	rec, matched := e.Reconcile(entities.NewProcessLog(fixedNow), d, "Tomato")

	assert.False(t, matched)
	assert.Equal(t, entities.StatusHealthy, rec.Status)
	assert.Equal(t, "Solanum lycopersicum", rec.ScientificName)
	assert.Equal(t, "Keep watering", rec.Advice)
	assert.Equal(t, []string{"none"}, rec.Symptoms)
	assert.Equal(t, "none", rec.TreatmentOrganic)
	assert.Equal(t, "none", rec.TreatmentChemical)
	assert.InDelta(t, 0.92, rec.Confidence, 1e-9)
}

func TestReconcile_LogOrder(t *testing.T) {
	e := newTestEngine(neemLeafSpot())
	plog := entities.NewProcessLog(fixedNow)
	plog.Success("start")
	plog.Info("vision")

	rec, _ := e.Reconcile(plog, types.Diagnosis{IdentifiedCrop: "Neem", Condition: "Leaf Spot", Confidence: 0.5, HasConfidence: true}, "")

	require.Len(t, rec.AnalysisLogs, 5)
	assert.Equal(t, "start", rec.AnalysisLogs[0].Step)
	assert.Equal(t, "Vision Result: Neem detected (50.0%). State: Leaf Spot.", rec.AnalysisLogs[2].Step)
	assert.Equal(t, entities.LogSuccess, rec.AnalysisLogs[2].Status)
	assert.Equal(t, "Validated against Scientific Knowledge Base.", rec.AnalysisLogs[3].Step)
	assert.Equal(t, "Diagnostic Pack Generated.", rec.AnalysisLogs[4].Step)
}

func TestReconcile_MissingCropUsesHint(t *testing.T) {
	e := newTestEngine(neemLeafSpot())

	rec, matched := e.Reconcile(entities.NewProcessLog(fixedNow), types.Diagnosis{Condition: "LEAF SPOT", Status: "weird"}, "Neem")

	assert.True(t, matched)
	assert.Equal(t, "Neem", rec.Crop)
	assert.Zero(t, rec.Confidence)
	assert.Equal(t, entities.LogWarning, rec.AnalysisLogs[0].Status)
	assert.Contains(t, rec.AnalysisLogs[0].Step, "confidence unavailable")
	assert.Equal(t, "Validated against Scientific Knowledge Base.", rec.AnalysisLogs[1].Step)
}

func TestReconcile_UnknownStatusWithoutMatch(t *testing.T) {
	e := newTestEngine()

	rec, matched := e.Reconcile(entities.NewProcessLog(fixedNow), types.Diagnosis{IdentifiedCrop: "Basil", Status: "pest attack"}, "")

	assert.False(t, matched)
	assert.Equal(t, entities.StatusUnknown, rec.Status)
	assert.Equal(t, "Dynamic Remediation synthesized via Neural Logic.", rec.AnalysisLogs[1].Step)
}

func TestReconcile_AIStatusNormalisedToEnumeration(t *testing.T) {
	e := newTestEngine()
	cases := map[string]entities.Status{
		"Healthy":         entities.StatusHealthy,
		" action NEEDED ": entities.StatusActionNeeded,
		"critical":        entities.StatusCritical,
		"Moderate":        entities.StatusUnknown,
		"":                entities.StatusUnknown,
	}
	for in, want := range cases {
		d := types.Diagnosis{IdentifiedCrop: "Tomato", Condition: "Blight", Status: in}
		rec, matched := e.Reconcile(entities.NewProcessLog(fixedNow), d, "")
		require.False(t, matched)
		assert.Equal(t, want, rec.Status, "status %q", in)
	}
}
