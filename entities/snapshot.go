package entities

// Snapshot is the whole persisted data set, read and written as one unit.
type Snapshot struct {
	Users     []User            `json:"users"`
	Scans     []DiagnosisRecord `json:"scans"`
	Products  []Product         `json:"products"`
	Purchases []Purchase        `json:"purchases"`
}

// Normalize replaces nil collections with empty ones so the snapshot
// serialises as arrays.
func (s *Snapshot) Normalize() {
	if s.Users == nil {
		s.Users = []User{}
	}
	if s.Scans == nil {
		s.Scans = []DiagnosisRecord{}
	}
	if s.Products == nil {
		s.Products = []Product{}
	}
	if s.Purchases == nil {
		s.Purchases = []Purchase{}
	}
}
