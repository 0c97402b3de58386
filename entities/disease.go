package entities

type Treatment struct {
	Organic  string `json:"organic" yaml:"organic"`
	Chemical string `json:"chemical" yaml:"chemical"`
}

// Disease is one curated Knowledge Base entry. ConfidenceRange is advisory
// and plays no part in matching.
type Disease struct {
	ID              string     `json:"id" yaml:"id"`
	Crop            string     `json:"crop" yaml:"crop"`
	Name            string     `json:"name" yaml:"name"`
	ScientificName  string     `json:"scientificName" yaml:"scientificName"`
	Status          Status     `json:"status" yaml:"status"`
	ConfidenceRange [2]float64 `json:"confidenceRange" yaml:"confidenceRange"`
	Symptoms        []string   `json:"symptoms" yaml:"symptoms"`
	Treatment       Treatment  `json:"treatment" yaml:"treatment"`
	Advice          string     `json:"advice" yaml:"advice"`
}
