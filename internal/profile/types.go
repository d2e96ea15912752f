package profile

import "time"

// Report is the decoded personality dossier for one assessment run.
// All list content is untrusted free text from the model. Immutable
// once returned.
type Report struct {
	// SubjectName is the operative callsign, attached locally after
	// decoding. Never sent back to the subject by the model.
	SubjectName string

	// Score is the composite evaluation score (1-100).
	Score int

	// DominantTraits are the strongest observed personality markers.
	DominantTraits []string

	// Strengths and Weaknesses as read from the answer pattern.
	Strengths  []string
	Weaknesses []string

	// BehavioralTendencies are predicted patterns under pressure.
	BehavioralTendencies []string

	// RiskIndicators flag concerning response patterns. May be empty.
	RiskIndicators []string

	// ConfidenceScore is the model's self-assessed confidence (1-100).
	ConfidenceScore int

	// GeneratedAt is when the analysis completed, attached locally.
	GeneratedAt time.Time
}
