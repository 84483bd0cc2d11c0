package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MismatchRecord is one discrepancy identified by the AI collaborator.
// All fields are optional on the wire; report generation applies
// defaults for anything absent.
type MismatchRecord struct {
	TransactionID   string
	DiscrepancyType string
	Reason          string
	ExcelData       FieldValue
	SQLData         FieldValue
}

// DetectionError marks a failed AI analysis: either the call itself
// failed or the response could not be parsed. Raw carries the
// unparseable response text when available.
type DetectionError struct {
	Message string
	Raw     string
}

// MismatchOutcome is the tagged variant for one entry of an AI response:
// exactly one of Record or Err is set. The decision is made once, at
// ingestion, instead of field-presence checks scattered through the
// report builder.
type MismatchOutcome struct {
	Record *MismatchRecord
	Err    *DetectionError
}

// OK reports whether the outcome carries a usable mismatch record.
func (o MismatchOutcome) OK() bool {
	return o.Record != nil
}

// ErrorOutcome builds a single-element outcome slice marking a failed
// detection run.
func ErrorOutcome(message, raw string) []MismatchOutcome {
	return []MismatchOutcome{{Err: &DetectionError{Message: message, Raw: raw}}}
}

// FieldValue holds the excel_data / sql_data side of a mismatch record,
// which the collaborator returns either as a plain value or as an
// object carrying debit/credit amounts.
type FieldValue struct {
	Text    string
	Amounts *AmountPair
}

// AmountPair is a structured debit/credit value.
type AmountPair struct {
	Debit  float64 `json:"debit"`
	Credit float64 `json:"credit"`
}

// String renders the field the way the report expects: structured
// amounts as "Amount: {debit} / {credit}", anything else as its plain
// string form.
func (v FieldValue) String() string {
	if v.Amounts != nil {
		return fmt.Sprintf("Amount: %v / %v", v.Amounts.Debit, v.Amounts.Credit)
	}
	return v.Text
}

// ParseOutcomes decodes a raw JSON array from the AI collaborator into
// tagged outcomes. A non-array or otherwise undecodable payload yields
// an error; shape problems inside individual elements do not.
func ParseOutcomes(data []byte) ([]MismatchOutcome, error) {
	var elems []map[string]json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("mismatch payload is not a JSON array: %w", err)
	}

	outcomes := make([]MismatchOutcome, 0, len(elems))
	for _, elem := range elems {
		if raw, ok := elem["error"]; ok {
			outcomes = append(outcomes, MismatchOutcome{Err: &DetectionError{
				Message: decodeScalar(raw),
				Raw:     decodeScalar(elem["raw_response"]),
			}})
			continue
		}
		rec := &MismatchRecord{
			TransactionID:   decodeScalar(elem["transaction_id"]),
			DiscrepancyType: decodeScalar(elem["discrepancy_type"]),
			Reason:          decodeScalar(elem["reason"]),
			ExcelData:       decodeFieldValue(elem["excel_data"]),
			SQLData:         decodeFieldValue(elem["sql_data"]),
		}
		outcomes = append(outcomes, MismatchOutcome{Record: rec})
	}
	return outcomes, nil
}

// decodeScalar renders a raw JSON scalar as a plain string, tolerating
// numbers and other primitives where a string was expected.
func decodeScalar(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}
	return string(raw)
}

func decodeFieldValue(raw json.RawMessage) FieldValue {
	if len(raw) == 0 {
		return FieldValue{}
	}
	var pair AmountPair
	if err := json.Unmarshal(raw, &pair); err == nil {
		// Only treat it as structured amounts when the object really
		// carries a debit or credit key.
		var probe map[string]json.RawMessage
		if json.Unmarshal(raw, &probe) == nil {
			if _, d := probe["debit"]; d {
				return FieldValue{Amounts: &pair}
			}
			if _, c := probe["credit"]; c {
				return FieldValue{Amounts: &pair}
			}
		}
	}
	return FieldValue{Text: decodeScalar(raw)}
}
