package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gl-reconciler/internal/domain"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantLen  int
		wantErr  bool
	}{
		{
			name:     "bare array",
			response: `[{"transaction_id":"1","discrepancy_type":"amount_difference","reason":"off by 12"}]`,
			wantLen:  1,
		},
		{
			name:     "fenced array",
			response: "```json\n[{\"transaction_id\":\"1\",\"reason\":\"off\"}]\n```",
			wantLen:  1,
		},
		{
			name:     "array wrapped in prose",
			response: `Here are the discrepancies I found: [{"transaction_id":"1","reason":"off"}] Let me know if you need more.`,
			wantLen:  1,
		},
		{
			name:     "empty array",
			response: `[]`,
			wantLen:  0,
		},
		{
			name:     "no JSON at all",
			response: "the extracts appear identical",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseResponse(tt.response)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `[1]`, stripFences("```json\n[1]\n```"))
	assert.Equal(t, `[1]`, stripFences("```\n[1]\n```"))
	assert.Equal(t, `[1]`, stripFences("json\n[1]"))
	assert.Equal(t, `[1]`, stripFences("[1]"))
}

func TestRenderSamplesTruncates(t *testing.T) {
	ds := domain.Dataset{
		Columns: []string{"transaction_id", "debit"},
		Rows: []domain.Row{
			{"transaction_id": "T1", "debit": "100"},
			{"transaction_id": "T2", "debit": "200"},
			{"transaction_id": "T3", "debit": "300"},
		},
	}

	out := RenderSamples(ds, ds, 2)

	assert.Contains(t, out, "EXCEL GL EXTRACT (First 2 rows of 3 total):")
	assert.Contains(t, out, "SQL GL EXTRACT (First 2 rows of 3 total):")
	assert.Contains(t, out, "Excel rows: 3")
	assert.Contains(t, out, "Columns: [transaction_id, debit]")
	assert.Contains(t, out, "T2")
	assert.NotContains(t, out, "T3")
}
