package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"legajos/internal/domain"
	"legajos/internal/service"
	"legajos/mocks"
)

func TestTemplateService_Generate_ResetsPlaceholders(t *testing.T) {
	ex := new(mocks.MockExtractor)
	svc := service.NewTemplateService(ex)

	ex.On("GenerateTemplate", mock.Anything, "Suspensión", "").
		Return("Sr. {{nombre}}: queda suspendido.", nil).Once()
	ex.On("ExtractPlaceholders", mock.Anything, "Sr. {{nombre}}: queda suspendido.").
		Return([]string{"nombre"}, nil).Once()

	text, err := svc.Generate(context.Background(), "Suspensión", "")
	require.NoError(t, err)
	assert.Equal(t, "Sr. {{nombre}}: queda suspendido.", text)
	assert.Equal(t, "Suspensión", svc.Kind())

	_, err = svc.Analyze(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.SetAnswer("nombre", "Pérez"))

	// A new generation drops the analyzed placeholders and their answers
	ex.On("GenerateTemplate", mock.Anything, "Apercibimiento", "tono formal").
		Return("Estimado {{apellido}}.", nil).Once()
	_, err = svc.Generate(context.Background(), "Apercibimiento", "tono formal")
	require.NoError(t, err)

	state := svc.State()
	assert.Equal(t, "Apercibimiento", state.Kind)
	assert.Empty(t, state.Placeholders)
	assert.Empty(t, state.Answers)
}

func TestTemplateService_Analyze_NoTemplate(t *testing.T) {
	svc := service.NewTemplateService(new(mocks.MockExtractor))

	_, err := svc.Analyze(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoTemplate)
}

func TestTemplateService_Analyze_ResetsAnswers(t *testing.T) {
	ex := new(mocks.MockExtractor)
	svc := service.NewTemplateService(ex)

	require.NoError(t, svc.SetText("Hola {{nombre}}."))
	ex.On("ExtractPlaceholders", mock.Anything, "Hola {{nombre}}.").
		Return([]string{"nombre"}, nil)

	_, err := svc.Analyze(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.SetAnswer("nombre", "Ana"))

	// Re-analysis clears every previous answer
	_, err = svc.Analyze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"nombre": ""}, svc.State().Answers)
}

func TestTemplateService_SetAnswer_Unknown(t *testing.T) {
	svc := service.NewTemplateService(new(mocks.MockExtractor))

	err := svc.SetAnswer("nombre", "Ana")
	assert.ErrorIs(t, err, domain.ErrUnknownPlaceholder)
}

func TestTemplateService_Render_RoundTrip(t *testing.T) {
	ex := new(mocks.MockExtractor)
	svc := service.NewTemplateService(ex)

	require.NoError(t, svc.SetText("Hola {{nombre}}, fecha {{fecha}}."))
	ex.On("ExtractPlaceholders", mock.Anything, mock.Anything).
		Return([]string{"nombre", "fecha"}, nil)

	_, err := svc.Analyze(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.SetAnswer("nombre", "Ana"))
	require.NoError(t, svc.SetAnswer("fecha", "01/01/2024"))

	rendered, err := svc.Render()
	require.NoError(t, err)
	assert.Equal(t, "Hola Ana, fecha 01/01/2024.", rendered)
}

func TestTemplateService_Render_KeepsUnansweredTokens(t *testing.T) {
	ex := new(mocks.MockExtractor)
	svc := service.NewTemplateService(ex)

	require.NoError(t, svc.SetText("Hola {{nombre}}, fecha {{ fecha }}."))
	ex.On("ExtractPlaceholders", mock.Anything, mock.Anything).
		Return([]string{"nombre", "fecha"}, nil)

	_, err := svc.Analyze(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.SetAnswer("fecha", "01/01/2024"))

	// Padded token names resolve after trimming; unanswered tokens survive
	rendered, err := svc.Render()
	require.NoError(t, err)
	assert.Equal(t, "Hola {{nombre}}, fecha 01/01/2024.", rendered)

	// Rendering with no answers at all returns the text unchanged
	_, err = svc.Analyze(context.Background())
	require.NoError(t, err)
	rendered, err = svc.Render()
	require.NoError(t, err)
	assert.Equal(t, "Hola {{nombre}}, fecha {{ fecha }}.", rendered)
}

func TestTemplateService_Render_NoTemplate(t *testing.T) {
	svc := service.NewTemplateService(new(mocks.MockExtractor))

	_, err := svc.Render()
	assert.ErrorIs(t, err, domain.ErrNoTemplate)
}

func TestTemplateService_Upload_BecomesActiveTemplate(t *testing.T) {
	ex := new(mocks.MockExtractor)
	svc := service.NewTemplateService(ex)

	file := pdfInput("modelo.pdf")
	ex.On("ExtractText", mock.Anything, file).Return("Texto del modelo {{motivo}}.", nil)

	text, err := svc.Upload(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, "Texto del modelo {{motivo}}.", text)
	assert.Equal(t, "Texto del modelo {{motivo}}.", svc.State().Text)
}
