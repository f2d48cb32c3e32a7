// File: service/ai/extractor.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"showphaze/models"
	"showphaze/utils"
)

// GeminiExtractor implements Extractor on top of the Gemini client: it asks
// the model for a single JSON parameter bag and parses it leniently.
type GeminiExtractor struct {
	Client *GeminiClient
}

func NewGeminiExtractor(client *GeminiClient) *GeminiExtractor {
	return &GeminiExtractor{Client: client}
}

func (e *GeminiExtractor) ExtractBookingParams(ctx context.Context, text string) (*models.BookingParams, error) {
	logger := utils.GetLogger()

	prompt := buildExtractionPrompt(text, time.Now())
	raw, err := e.Client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extraction call failed: %w", err)
	}

	params, err := ParseBookingParams(raw)
	if err != nil {
		logger.Warn("failed to parse extraction output", zap.Error(err))
		return nil, err
	}
	return params, nil
}

// buildExtractionPrompt renders the extraction instructions. The current date
// is included so relative dates ("tomorrow", "next Friday") can be resolved by
// the model; unspecified dates default to tomorrow.
func buildExtractionPrompt(text string, now time.Time) string {
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	var sb strings.Builder
	sb.WriteString("You analyze job booking requests and produce structured parameters.\n")
	sb.WriteString("Today's date is " + today + ".\n\n")
	sb.WriteString(`Extract all position names and their quantities. Handle multiple positions in one sentence (e.g. "3 waiters and 2 chefs"). If a quantity is not specified, default to 1.

Rules:
- start_date: one ISO date (YYYY-MM-DD) per position; default to ` + tomorrow + ` when not given. Treat date ranges ("21st and 30th March") as individual start dates.
- timeIn / timeOut: if mentioned, format as YYYY-MM-DDTHH:mm:ss using the corresponding date; otherwise omit them entirely (catalog values or defaults apply).
- tbd, overnight_shift, attire, select_option, number_of_hours, additional_comments, complexity: include only when the user states them.
- default_rate / contractor_rate: include only when the user mentions rates.
- Match position names exactly as stated by the user (e.g. "female bartender", "senior chef").

Respond with exactly one raw JSON object and nothing else. No markdown, no explanations. Fields: position_name (array of strings), quantity (array of integers), start_date (array of strings), and the optional fields above as arrays aligned per position.

Example request: "I need 3 waiters and 2 chefs on April 10th from 5pm to 10pm"
Example response:
{"position_name":["waiter","chef"],"quantity":[3,2],"start_date":["2024-04-10","2024-04-10"],"timeIn":"2024-04-10T17:00:00","timeOut":"2024-04-10T22:00:00"}

Example request: "Get 10 models for April 10th, no specific time yet. It's TBD"
Example response:
{"position_name":["model"],"quantity":[10],"start_date":["2024-04-10"],"tbd":[true]}

Request: `)
	sb.WriteString(text)
	return sb.String()
}

// ParseBookingParams pulls the parameter bag out of raw model output. Models
// wrap JSON in code fences or prose often enough that the first '{' to the
// last '}' is scanned rather than trusting the whole payload.
func ParseBookingParams(raw string) (*models.BookingParams, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object found in extraction output")
	}

	var params models.BookingParams
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &params); err != nil {
		return nil, fmt.Errorf("failed to decode extraction output: %w", err)
	}
	return &params, nil
}
