package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []MismatchOutcome
		wantErr bool
	}{
		{
			name:    "plain record with string data fields",
			payload: `[{"transaction_id":"123","discrepancy_type":"amount_difference","reason":"debit drifted","excel_data":"100.00","sql_data":"112.00"}]`,
			want: []MismatchOutcome{
				{Record: &MismatchRecord{
					TransactionID:   "123",
					DiscrepancyType: "amount_difference",
					Reason:          "debit drifted",
					ExcelData:       FieldValue{Text: "100.00"},
					SQLData:         FieldValue{Text: "112.00"},
				}},
			},
		},
		{
			name:    "structured debit and credit amounts",
			payload: `[{"transaction_id":"7","excel_data":{"debit":100.5,"credit":0},"sql_data":{"debit":88,"credit":0}}]`,
			want: []MismatchOutcome{
				{Record: &MismatchRecord{
					TransactionID: "7",
					ExcelData:     FieldValue{Amounts: &AmountPair{Debit: 100.5}},
					SQLData:       FieldValue{Amounts: &AmountPair{Debit: 88}},
				}},
			},
		},
		{
			name:    "numeric transaction id is stringified",
			payload: `[{"transaction_id":42,"reason":"missing in SQL"}]`,
			want: []MismatchOutcome{
				{Record: &MismatchRecord{TransactionID: "42", Reason: "missing in SQL"}},
			},
		},
		{
			name:    "error marker with raw response",
			payload: `[{"error":"No valid JSON found in AI response","raw_response":"I could not find discrepancies"}]`,
			want: []MismatchOutcome{
				{Err: &DetectionError{
					Message: "No valid JSON found in AI response",
					Raw:     "I could not find discrepancies",
				}},
			},
		},
		{
			name:    "empty array",
			payload: `[]`,
			want:    []MismatchOutcome{},
		},
		{
			name:    "non-array payload",
			payload: `{"error":"x"}`,
			wantErr: true,
		},
		{
			name:    "prose payload",
			payload: `the datasets look identical to me`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOutcomes([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldValueString(t *testing.T) {
	assert.Equal(t, "Amount: 100.5 / 0", FieldValue{Amounts: &AmountPair{Debit: 100.5}}.String())
	assert.Equal(t, "Amount: 0 / 250", FieldValue{Amounts: &AmountPair{Credit: 250}}.String())
	assert.Equal(t, "plain", FieldValue{Text: "plain"}.String())
	assert.Equal(t, "", FieldValue{}.String())
}
