package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"legajos/internal/domain"
	"legajos/internal/service"
	"legajos/internal/store"
	"legajos/mocks"
)

func shipment(tracking string) *domain.ShipmentRecord {
	return &domain.ShipmentRecord{
		Destinatario:      "Juan Pérez",
		Remitente:         domain.SenderName,
		FechaEnvio:        "10/01/2024",
		FechaEntrega:      "12/01/2024",
		NumeroSeguimiento: tracking,
		Situacion:         domain.SituacionEntregada,
	}
}

func TestTrackingService_Lookup_EmptyNumber(t *testing.T) {
	ex := new(mocks.MockExtractor)
	svc := service.NewTrackingService(store.New(), ex)

	_, err := svc.Lookup(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyTrackingNumber)
	ex.AssertNotCalled(t, "LookupShipment")
}

func TestTrackingService_Lookup_TrimsAndStores(t *testing.T) {
	st := store.New()
	ex := new(mocks.MockExtractor)
	svc := service.NewTrackingService(st, ex)

	ex.On("LookupShipment", mock.Anything, "AB123").Return(shipment("AB123"), nil)

	rec, err := svc.Lookup(context.Background(), "  AB123  ")
	require.NoError(t, err)
	assert.Equal(t, "AB123", rec.NumeroSeguimiento)

	history := svc.History()
	require.Len(t, history, 1)
	assert.Equal(t, "AB123", history[0].NumeroSeguimiento)
}

func TestTrackingService_History_NewestFirst(t *testing.T) {
	st := store.New()
	ex := new(mocks.MockExtractor)
	svc := service.NewTrackingService(st, ex)

	ex.On("LookupShipment", mock.Anything, "FIRST").Return(shipment("FIRST"), nil)
	ex.On("LookupShipment", mock.Anything, "SECOND").Return(shipment("SECOND"), nil)

	_, err := svc.Lookup(context.Background(), "FIRST")
	require.NoError(t, err)
	_, err = svc.Lookup(context.Background(), "SECOND")
	require.NoError(t, err)

	history := svc.History()
	require.Len(t, history, 2)
	assert.Equal(t, "SECOND", history[0].NumeroSeguimiento)
	assert.Equal(t, "FIRST", history[1].NumeroSeguimiento)
}

func TestTrackingService_Lookup_FailureLeavesHistoryUntouched(t *testing.T) {
	st := store.New()
	ex := new(mocks.MockExtractor)
	svc := service.NewTrackingService(st, ex)

	ex.On("LookupShipment", mock.Anything, "XX999").Return(nil, domain.ErrExtractionFailed)

	_, err := svc.Lookup(context.Background(), "XX999")
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	assert.Empty(t, svc.History())
}
