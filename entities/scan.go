package entities

import (
	"strings"
	"time"
)

type Status string

const (
	StatusHealthy      Status = "Healthy"
	StatusActionNeeded Status = "Action Needed"
	StatusCritical     Status = "Critical"
	StatusUnknown      Status = "Unknown"
)

// ParseStatus maps s onto the status enumeration ignoring case and
// surrounding space. Anything else is StatusUnknown.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "healthy":
		return StatusHealthy
	case "action needed":
		return StatusActionNeeded
	case "critical":
		return StatusCritical
	}
	return StatusUnknown
}

type LogLevel string

const (
	LogInfo    LogLevel = "info"
	LogSuccess LogLevel = "success"
	LogWarning LogLevel = "warning"
)

type ProcessingLogEntry struct {
	Step      string    `json:"step"`
	Timestamp time.Time `json:"timestamp"`
	Status    LogLevel  `json:"status"`
}

// DiagnosisRecord is one stored leaf-image analysis. Persisted under "scans".
type DiagnosisRecord struct {
	ID                string               `gorm:"primaryKey" json:"id"`
	UserID            string               `gorm:"index" json:"userId"`
	ImageURL          string               `json:"imageUrl"`
	Crop              string               `json:"crop"`
	PredictedDisease  string               `json:"predictedDisease"`
	ScientificName    string               `json:"scientificName,omitempty"`
	CommonName        string               `json:"commonName,omitempty"`
	Confidence        float64              `json:"confidence"`
	Status            Status               `json:"status"`
	CreatedAt         time.Time            `json:"createdAt"`
	Advice            string               `json:"advice"`
	Symptoms          []string             `gorm:"serializer:json" json:"symptoms,omitempty"`
	TreatmentOrganic  string               `json:"treatmentOrganic,omitempty"`
	TreatmentChemical string               `json:"treatmentChemical,omitempty"`
	AnalysisLogs      []ProcessingLogEntry `gorm:"serializer:json" json:"analysisLogs,omitempty"`
}

func (DiagnosisRecord) TableName() string { return "scans" }

// ProcessLog accumulates ProcessingLogEntry values in order.
type ProcessLog struct {
	entries []ProcessingLogEntry
	now     func() time.Time
}

func NewProcessLog(now func() time.Time) *ProcessLog {
	if now == nil {
		now = time.Now
	}
	return &ProcessLog{now: now}
}

func (l *ProcessLog) add(level LogLevel, step string) {
	l.entries = append(l.entries, ProcessingLogEntry{Step: step, Timestamp: l.now().UTC(), Status: level})
}

func (l *ProcessLog) Info(step string)    { l.add(LogInfo, step) }
func (l *ProcessLog) Success(step string) { l.add(LogSuccess, step) }
func (l *ProcessLog) Warn(step string)    { l.add(LogWarning, step) }

func (l *ProcessLog) Entries() []ProcessingLogEntry {
	out := make([]ProcessingLogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
