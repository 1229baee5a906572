package service

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"legajos/internal/domain"
	"legajos/internal/port"
)

// placeholderPattern matches {{name}} tokens; the name may carry padding
// spaces which are trimmed before lookup.
var placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// defaultTemplateKind labels the rendered document when no template was
// explicitly generated (upload mode).
const defaultTemplateKind = "Llamado de atención"

// TemplateState is a snapshot of the template engine for the caller.
type TemplateState struct {
	Kind         string            `json:"kind"`
	Text         string            `json:"text"`
	Placeholders []string          `json:"placeholders"`
	Answers      map[string]string `json:"answers"`
}

// TemplateService is the document template pipeline: acquire a template by
// generation or upload, discover its placeholders, collect answers, and
// render the final document.
type TemplateService interface {
	Generate(ctx context.Context, kind, extra string) (string, error)
	Upload(ctx context.Context, file port.ExtractInput) (string, error)
	SetText(text string) error
	Analyze(ctx context.Context) ([]string, error)
	SetAnswer(name, value string) error
	Render() (string, error)
	State() *TemplateState
	Kind() string
}

type templateService struct {
	extractor port.Extractor

	mu           sync.Mutex
	kind         string
	text         string
	placeholders []string
	answers      map[string]string
}

// NewTemplateService creates a TemplateService implementation.
func NewTemplateService(ex port.Extractor) TemplateService {
	return &templateService{
		extractor: ex,
		kind:      defaultTemplateKind,
		answers:   make(map[string]string),
	}
}

// Generate asks the extraction service for a fresh template. On success it
// becomes the active template and all placeholder answers are cleared.
func (s *templateService) Generate(ctx context.Context, kind, extra string) (string, error) {
	text, err := s.extractor.GenerateTemplate(ctx, kind, extra)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kind = kind
	s.setTemplate(text)
	return text, nil
}

// Upload extracts the full text of the uploaded file as the active
// template; placeholder answers are cleared.
func (s *templateService) Upload(ctx context.Context, file port.ExtractInput) (string, error) {
	text, err := s.extractor.ExtractText(ctx, file)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setTemplate(text)
	return text, nil
}

// SetText replaces the active template text with a hand edit. Placeholder
// slots survive the edit; a new Analyze pass refreshes them.
func (s *templateService) SetText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	return nil
}

// Analyze extracts the placeholder names of the current template and
// initializes an empty answer slot for each; answers from a previous pass
// are discarded.
func (s *templateService) Analyze(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	text := s.text
	s.mu.Unlock()
	if text == "" {
		return nil, domain.ErrNoTemplate
	}

	names, err := s.extractor.ExtractPlaceholders(ctx, text)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.placeholders = names
	s.answers = make(map[string]string, len(names))
	for _, n := range names {
		s.answers[n] = ""
	}
	return append([]string(nil), names...), nil
}

// SetAnswer records the user-entered value of one analyzed placeholder.
func (s *templateService) SetAnswer(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.answers[name]; !ok {
		return domain.ErrUnknownPlaceholder
	}
	s.answers[name] = value
	return nil
}

// Render substitutes every {{name}} token whose answer is non-empty and
// leaves the rest intact, so a partially filled template keeps its unfilled
// tokens visible.
func (s *templateService) Render() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.text == "" {
		return "", domain.ErrNoTemplate
	}
	rendered := placeholderPattern.ReplaceAllStringFunc(s.text, func(match string) string {
		key := strings.TrimSpace(placeholderPattern.FindStringSubmatch(match)[1])
		if v := s.answers[key]; v != "" {
			return v
		}
		return match
	})
	return rendered, nil
}

// State returns a snapshot of the engine.
func (s *templateService) State() *TemplateState {
	s.mu.Lock()
	defer s.mu.Unlock()
	answers := make(map[string]string, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	return &TemplateState{
		Kind:         s.kind,
		Text:         s.text,
		Placeholders: append([]string(nil), s.placeholders...),
		Answers:      answers,
	}
}

// Kind returns the label of the active template (for download filenames).
func (s *templateService) Kind() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind
}

// setTemplate installs new template text and resets placeholder state.
// Callers hold s.mu.
func (s *templateService) setTemplate(text string) {
	s.text = text
	s.placeholders = nil
	s.answers = make(map[string]string)
}
