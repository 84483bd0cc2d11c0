package gateway

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"gl-reconciler/internal/domain"
	"gl-reconciler/internal/logging"
)

//go:embed prompts/forensic_accountant.txt
var forensicPrompt string

const systemInstruction = "You are a forensic accountant specializing in financial data reconciliation."

// GeminiDetector implements usecase.MismatchDetector on top of the
// Gemini API. Only a bounded sample of each extract is sent, to stay
// within the model's token budget; localizing discrepancies beyond
// that sample is out of its reach by design.
type GeminiDetector struct {
	client     *genai.Client
	model      string
	sampleSize int
}

// NewGeminiDetector creates a detector bound to one model and sample
// size.
func NewGeminiDetector(ctx context.Context, apiKey, model string, sampleSize int) (*GeminiDetector, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create Gemini client: %w", err)
	}
	return &GeminiDetector{
		client:     client,
		model:      model,
		sampleSize: sampleSize,
	}, nil
}

// Detect sends extract samples to the model and parses the returned
// mismatch list. All failures, from the API call to an unparseable
// response, come back in-band as a single error outcome.
func (d *GeminiDetector) Detect(ctx context.Context, excel, sql domain.Dataset) []domain.MismatchOutcome {
	prompt := forensicPrompt + "\n\n" + RenderSamples(excel, sql, d.sampleSize)

	resp, err := d.client.Models.GenerateContent(ctx, d.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](0.1),
		MaxOutputTokens:   2000,
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		logging.GetLogger().WithError(err).Error("Gemini call failed")
		return domain.ErrorOutcome(err.Error(), "")
	}

	text := strings.TrimSpace(resp.Text())
	outcomes, err := parseResponse(text)
	if err != nil {
		logging.GetLogger().WithError(err).Warn("could not parse Gemini response")
		return domain.ErrorOutcome("failed to parse AI response", text)
	}
	return outcomes
}

// parseResponse decodes the model output, tolerating the usual
// formatting noise: code fences, a stray "json" prefix, or prose
// wrapped around the array.
func parseResponse(text string) ([]domain.MismatchOutcome, error) {
	cleaned := stripFences(text)

	outcomes, err := domain.ParseOutcomes([]byte(cleaned))
	if err == nil {
		return outcomes, nil
	}

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start >= 0 && end > start {
		if outcomes, err2 := domain.ParseOutcomes([]byte(cleaned[start : end+1])); err2 == nil {
			return outcomes, nil
		}
	}
	return nil, err
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// RenderSamples formats the first sampleSize rows of each extract as
// aligned text plus summary statistics, the shape the forensic prompt
// expects.
func RenderSamples(excel, sql domain.Dataset, sampleSize int) string {
	var b strings.Builder

	excelSample := sampleRows(excel, sampleSize)
	sqlSample := sampleRows(sql, sampleSize)

	fmt.Fprintf(&b, "EXCEL GL EXTRACT (First %d rows of %d total):\n", len(excelSample), excel.RowCount())
	writeTable(&b, excel.Columns, excelSample)
	fmt.Fprintf(&b, "\nSQL GL EXTRACT (First %d rows of %d total):\n", len(sqlSample), sql.RowCount())
	writeTable(&b, sql.Columns, sqlSample)

	fmt.Fprintf(&b, "\nDATASET STATISTICS:\n")
	fmt.Fprintf(&b, "Excel rows: %d\n", excel.RowCount())
	fmt.Fprintf(&b, "SQL rows: %d\n", sql.RowCount())
	fmt.Fprintf(&b, "Columns: [%s]\n", strings.Join(excel.Columns, ", "))

	return b.String()
}

func sampleRows(d domain.Dataset, n int) []domain.Row {
	if n >= len(d.Rows) {
		return d.Rows
	}
	return d.Rows[:n]
}

func writeTable(b *strings.Builder, columns []string, rows []domain.Row) {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}
	for _, row := range rows {
		for i, col := range columns {
			if l := len(row[col]); l > widths[i] {
				widths[i] = l
			}
		}
	}

	for i, col := range columns {
		fmt.Fprintf(b, "%-*s  ", widths[i], col)
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, col := range columns {
			fmt.Fprintf(b, "%-*s  ", widths[i], row[col])
		}
		b.WriteString("\n")
	}
}
