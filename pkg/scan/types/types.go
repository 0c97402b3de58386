package types

// Diagnosis is the model's structured answer as far as it could be read.
// Missing fields are zero values.
type Diagnosis struct {
	IdentifiedCrop    string   `json:"identifiedCrop"`
	CommonName        string   `json:"commonName"`
	Condition         string   `json:"condition"`
	ScientificName    string   `json:"scientificName"`
	Status            string   `json:"status"`
	Advice            string   `json:"advice"`
	Symptoms          []string `json:"symptoms"`
	TreatmentOrganic  string   `json:"treatmentOrganic"`
	TreatmentChemical string   `json:"treatmentChemical"`
	Confidence        float64  `json:"confidence"`
	HasConfidence     bool     `json:"-"`
}

// CreateScanRequest is the body of POST /api/scans.
type CreateScanRequest struct {
	ImageURL string `json:"imageUrl"`
	Crop     string `json:"crop"`
}
