package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"persona-engine/internal/domain"
)

// ParitySummary is the cross-implementation conformance projection of a
// Result: the fields every deployment (web bundle, mobile fallback, edge
// function, this service) must reproduce bit-for-bit from the same
// response map. Golden vectors record its canonical JSON and checksum.
type ParitySummary struct {
	Ocean       domain.OceanScores  `json:"ocean"`
	MBTIType    *string             `json:"mbti_type"`
	NeedsRetake bool                `json:"needs_retake"`
	Reason      domain.RetakeReason `json:"needs_retake_reason"`
}

// Summarize projects a full result onto its parity surface.
func Summarize(r *domain.Result) ParitySummary {
	return ParitySummary{
		Ocean:       r.Ocean,
		MBTIType:    r.MBTIType,
		NeedsRetake: r.NeedsRetake,
		Reason:      r.RetakeReason,
	}
}

// CanonicalJSON is the byte representation the checksum is taken over:
// compact JSON with fields in declaration order.
func (p ParitySummary) CanonicalJSON() ([]byte, error) {
	return json.Marshal(p)
}

// Checksum is the hex sha256 of the canonical JSON.
func (p ParitySummary) Checksum() (string, error) {
	raw, err := p.CanonicalJSON()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
