package dialfire

import (
	"encoding/json"
	"fmt"
)

// Synthetic filter fields the vendor uses to smuggle pagination parameters
// into a filter-list body.
const (
	cursorField = "_cursor_"
	limitField  = "_limit_"
)

// FilterClause is one entry of a filter-list payload: a field/operator/values
// record the Dialfire API interprets as a query filter.
type FilterClause struct {
	Values   []interface{} `json:"values"`
	Field    string        `json:"field"`
	Operator string        `json:"operator,omitempty"`
	Reverse  bool          `json:"reverse,omitempty"`
}

// Payload is the tagged union of request body shapes accepted by the Dialfire
// API. Exactly one variant is active per request; the variant selects the wire
// encoding. A nil Payload means no body is sent.
//
// The union is sealed: RawPayload, JSONPayload, and FilterPayload are the only
// variants.
type Payload interface {
	// Encode produces the wire body for one send. Cursor and limit are only
	// meaningful for FilterPayload; the other variants ignore them.
	Encode(cursor string, limit int) ([]byte, error)

	payloadVariant()
}

// RawPayload is sent as the literal request body.
type RawPayload string

func (p RawPayload) payloadVariant() {}

// Encode implements Payload.Encode.
func (p RawPayload) Encode(_ string, _ int) ([]byte, error) {
	return []byte(p), nil
}

// JSONPayload is a JSON object sent as a JSON-encoded request body.
type JSONPayload map[string]interface{}

func (p JSONPayload) payloadVariant() {}

// Encode implements Payload.Encode.
func (p JSONPayload) Encode(_ string, _ int) ([]byte, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding JSON payload: %w", err)
	}

	return body, nil
}

// FilterPayload is a filter-clause list sent as a JSON-encoded request body.
type FilterPayload []FilterClause

func (p FilterPayload) payloadVariant() {}

// Encode implements Payload.Encode. A non-empty cursor appends a synthetic
// "_cursor_" clause and a non-zero limit appends a "_limit_" clause, in that
// order. The synthetics go onto a fresh copy of the list on every call, so
// repeated sends of the same spec never accumulate duplicate clauses and the
// caller's slice is never mutated.
func (p FilterPayload) Encode(cursor string, limit int) ([]byte, error) {
	clauses := make([]FilterClause, len(p), len(p)+2)
	copy(clauses, p)

	if cursor != "" {
		clauses = append(clauses, FilterClause{Values: []interface{}{cursor}, Field: cursorField})
	}

	if limit != 0 {
		clauses = append(clauses, FilterClause{Values: []interface{}{limit}, Field: limitField})
	}

	body, err := json.Marshal(clauses)
	if err != nil {
		return nil, fmt.Errorf("encoding filter payload: %w", err)
	}

	return body, nil
}
