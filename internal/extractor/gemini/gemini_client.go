package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"legajos/internal/config"
	"legajos/internal/domain"
	"legajos/internal/extractor"
	"legajos/internal/port"
)

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client implements port.Extractor against Google's Gemini API.
// FlashModel serves every call except the expert half of Consult, which
// goes to ProModel.
type Client struct {
	apiKey     string
	flashModel string
	proModel   string
	endpoint   string // non-empty only when overridden for testing
	client     *http.Client
}

// NewClient creates a Gemini-backed extractor.
func NewClient(cfg *config.GeminiConfig) *Client {
	return newClient(cfg, "")
}

// NewClientWithEndpoint creates a client pointing every model at a custom
// API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.GeminiConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.GeminiConfig, endpoint string) *Client {
	flash := cfg.FlashModel
	if flash == "" {
		flash = "gemini-2.5-flash"
	}
	pro := cfg.ProModel
	if pro == "" {
		pro = "gemini-2.5-pro"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		flashModel: flash,
		proModel:   pro,
		endpoint:   endpoint,
		client:     &http.Client{Timeout: timeout},
	}
}

func (c *Client) url(model string) string {
	if c.endpoint != "" {
		return c.endpoint
	}
	return fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
}

// ExtractStructured sends the file with the instruction prompt, constrains
// the response to the requested schema, and validates the required fields
// before returning.
func (c *Client) ExtractStructured(ctx context.Context, input port.ExtractInput, prompt string, schema *port.Schema) (json.RawMessage, error) {
	filePart, err := inlineDataPart(input)
	if err != nil {
		return nil, err
	}

	text, err := c.generate(ctx, c.flashModel, []map[string]interface{}{filePart, textPart(prompt)}, jsonGenerationConfig(schema))
	if err != nil {
		return nil, extractionErr(err)
	}

	raw := json.RawMessage(text)
	if !json.Valid(raw) {
		return nil, extractionErr(fmt.Errorf("response is not valid JSON: %s", truncate(text, 200)))
	}
	if err := extractor.ValidateRequired(raw, schema); err != nil {
		return nil, extractionErr(err)
	}
	return raw, nil
}

// ExtractText returns the raw unformatted text of the file.
func (c *Client) ExtractText(ctx context.Context, input port.ExtractInput) (string, error) {
	filePart, err := inlineDataPart(input)
	if err != nil {
		return "", err
	}
	text, err := c.generate(ctx, c.flashModel, []map[string]interface{}{filePart, textPart(extractor.BuildFullTextPrompt())}, nil)
	if err != nil {
		return "", extractionErr(err)
	}
	return text, nil
}

// GenerateTemplate produces template text for the given document kind.
func (c *Client) GenerateTemplate(ctx context.Context, kind, extra string) (string, error) {
	text, err := c.generate(ctx, c.flashModel, []map[string]interface{}{textPart(extractor.BuildTemplatePrompt(kind, extra))}, nil)
	if err != nil {
		return "", extractionErr(err)
	}
	return text, nil
}

// ExtractPlaceholders returns the ordered-unique placeholder names found in
// the template text.
func (c *Client) ExtractPlaceholders(ctx context.Context, templateText string) ([]string, error) {
	text, err := c.generate(ctx, c.flashModel,
		[]map[string]interface{}{textPart(extractor.BuildPlaceholderPrompt(templateText))},
		jsonGenerationConfig(extractor.PlaceholderListSchema()))
	if err != nil {
		return nil, extractionErr(err)
	}

	var names []string
	if err := json.Unmarshal([]byte(text), &names); err != nil {
		return nil, extractionErr(fmt.Errorf("parsing placeholder list: %w", err))
	}

	// The service occasionally repeats a name; keep first occurrences only.
	seen := make(map[string]bool, len(names))
	unique := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			unique = append(unique, n)
		}
	}
	return unique, nil
}

// LookupShipment resolves a tracking number into a ShipmentRecord. The
// sender and the tracking number are pinned after parsing; the service is
// not trusted for either field.
func (c *Client) LookupShipment(ctx context.Context, trackingNumber string) (*domain.ShipmentRecord, error) {
	schema := extractor.ShipmentSchema()
	text, err := c.generate(ctx, c.flashModel,
		[]map[string]interface{}{textPart(extractor.BuildShipmentPrompt(trackingNumber))},
		jsonGenerationConfig(schema))
	if err != nil {
		return nil, extractionErr(err)
	}

	raw := json.RawMessage(text)
	if err := extractor.ValidateRequired(raw, schema); err != nil {
		return nil, extractionErr(err)
	}

	var rec domain.ShipmentRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, extractionErr(fmt.Errorf("parsing shipment record: %w", err))
	}
	rec.Remitente = domain.SenderName
	rec.NumeroSeguimiento = trackingNumber
	return &rec, nil
}

// Consult fires the expert-tier and general-tier requests concurrently.
// A partial expert/general pair is not useful, so either failure cancels
// the sibling call and fails the whole consultation.
func (c *Client) Consult(ctx context.Context, query string) (*domain.Consultation, error) {
	var expert, general string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := c.generate(gctx, c.proModel, []map[string]interface{}{textPart(extractor.ConsultExpertPrefix + `"` + query + `"`)}, nil)
		if err != nil {
			return fmt.Errorf("expert consultation: %w", err)
		}
		expert = text
		return nil
	})
	g.Go(func() error {
		text, err := c.generate(gctx, c.flashModel, []map[string]interface{}{textPart(query)}, nil)
		if err != nil {
			return fmt.Errorf("general consultation: %w", err)
		}
		general = text
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, extractionErr(err)
	}

	return &domain.Consultation{ExpertResponse: expert, GeneralResponse: general}, nil
}

// generate performs one generateContent call and returns the trimmed text
// of the first candidate part.
func (c *Client) generate(ctx context.Context, model string, parts []map[string]interface{}, genConfig map[string]interface{}) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role":  "user",
				"parts": parts,
			},
		},
	}
	if genConfig != nil {
		reqBody["generationConfig"] = genConfig
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(model), bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	return parseCandidateText(respBody)
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func parseCandidateText(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from API: no candidates")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from API: no parts")
	}
	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}

func inlineDataPart(input port.ExtractInput) (map[string]interface{}, error) {
	if _, ok := domain.AllowedContentTypes[input.ContentType]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, input.ContentType)
	}
	return map[string]interface{}{
		"inline_data": map[string]interface{}{
			"mime_type": input.ContentType,
			"data":      base64.StdEncoding.EncodeToString(input.FileBytes),
		},
	}, nil
}

func textPart(text string) map[string]interface{} {
	return map[string]interface{}{"text": text}
}

func jsonGenerationConfig(schema *port.Schema) map[string]interface{} {
	return map[string]interface{}{
		"responseMimeType": "application/json",
		"responseSchema":   schema,
		"maxOutputTokens":  16384,
	}
}

func extractionErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
