// Package report assembles assessment results into a serializable
// document. A report carries one finding per assessed aspect (a raw
// primitive, a certificate public key, a signature hash) and an
// aggregate verdict that is compliant only when every finding is.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Finding is the verdict for a single assessed primitive.
type Finding struct {
	Aspect      string `json:"aspect" cbor:"aspect"`
	Family      string `json:"family" cbor:"family"`
	Primitive   string `json:"primitive" cbor:"primitive"`
	Compliant   bool   `json:"compliant" cbor:"compliant"`
	Recommended string `json:"recommended" cbor:"recommended"`
}

// Report is the full output of one assessment run.
type Report struct {
	Standard  string    `json:"standard" cbor:"standard"`
	Security  uint16    `json:"security,omitempty" cbor:"security,omitempty"`
	Year      uint16    `json:"year" cbor:"year"`
	Subject   string    `json:"subject,omitempty" cbor:"subject,omitempty"`
	Timestamp time.Time `json:"timestamp" cbor:"timestamp"`
	Findings  []Finding `json:"findings" cbor:"findings"`
	Compliant bool      `json:"compliant" cbor:"compliant"`
}

// New starts an empty report for the given standard and context
// parameters. The aggregate verdict starts compliant and is torn down
// by the first non-compliant finding.
func New(standard string, security, year uint16) *Report {
	return &Report{
		Standard:  standard,
		Security:  security,
		Year:      year,
		Timestamp: time.Now().UTC(),
		Compliant: true,
	}
}

// Add appends a finding and folds it into the aggregate verdict.
func (r *Report) Add(f Finding) {
	r.Findings = append(r.Findings, f)
	if !f.Compliant {
		r.Compliant = false
	}
}

// JSON encodes the report indented for human consumption. The API
// layer encodes the struct compactly on its own.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// CBOR encodes the report deterministically.
func (r *Report) CBOR() ([]byte, error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}
	return em.Marshal(r)
}

// DecodeCBOR parses a report previously produced by CBOR.
func DecodeCBOR(data []byte) (*Report, error) {
	var r Report
	if err := cbor.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &r, nil
}
