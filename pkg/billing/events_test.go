package billing

import (
	"context"
	"testing"
	"time"

	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/realtime"
	"github.com/dormhq/dorm-ledger/pkg/storage"
	"github.com/dormhq/dorm-ledger/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecordEventPayment(t *testing.T) {
	op := models.OperationContext{ActorID: "admin-1"}
	event := &models.EventCharge{
		ID:        "event-1",
		Name:      "Acquaintance Party",
		AmountDue: 20000,
		Active:    true,
	}
	in := storage.EventPaymentInput{
		EventID:    "event-1",
		ResidentID: "res-1",
		Tendered:   20000,
		Method:     models.MethodCash,
	}
	record := &models.EventPaymentRecord{
		ID:         "event-1#res-1",
		EventID:    "event-1",
		ResidentID: "res-1",
		AmountPaid: 20000,
		Status:     models.StatusPaid,
	}

	t.Run("Publishes And Confirms After Ledger Write", func(t *testing.T) {
		store := new(mocks.Storage)
		dispatcher := &recordingDispatcher{}
		publisher := &recordingPublisher{}
		mgr := NewEventManager(store, store, dispatcher, publisher)

		store.On("RecordEventPayment", mock.Anything, op, in).Return(record, nil)
		store.On("GetResident", mock.Anything, "res-1").
			Return(&models.Resident{ID: "res-1", Name: "Maria Santos", Email: "maria@example.com"}, nil)
		store.On("GetEvent", mock.Anything, "event-1").Return(event, nil)

		got, err := mgr.RecordPayment(context.Background(), op, in)

		assert.NoError(t, err)
		assert.Equal(t, record, got)
		assert.Len(t, publisher.published, 1)
		assert.Equal(t, realtime.MessageTypeEventPaymentUpdate, publisher.published[0].Type)
		assert.Len(t, dispatcher.sent, 1)
		assert.Equal(t, "maria@example.com", dispatcher.sent[0].To)
		assert.Contains(t, dispatcher.sent[0].Body, "Acquaintance Party")
		assert.Contains(t, dispatcher.sent[0].Body, "200.00")
		store.AssertExpectations(t)
	})

	t.Run("Failed Confirmation Lookup Does Not Fail The Payment", func(t *testing.T) {
		store := new(mocks.Storage)
		dispatcher := &recordingDispatcher{}
		mgr := NewEventManager(store, store, dispatcher, &recordingPublisher{})

		store.On("RecordEventPayment", mock.Anything, op, in).Return(record, nil)
		store.On("GetResident", mock.Anything, "res-1").Return(nil, storage.ErrNotFound)

		got, err := mgr.RecordPayment(context.Background(), op, in)

		assert.NoError(t, err)
		assert.Equal(t, record, got)
		assert.Empty(t, dispatcher.sent)
	})
}

func TestBroadcastReminder(t *testing.T) {
	event := &models.EventCharge{
		ID:        "event-1",
		Name:      "Acquaintance Party",
		AmountDue: 20000,
		DueDate:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}

	t.Run("Reminds Only Unsettled Residents In One Message", func(t *testing.T) {
		store := new(mocks.Storage)
		dispatcher := &recordingDispatcher{}
		mgr := NewEventManager(store, store, dispatcher, &recordingPublisher{})

		store.On("GetEvent", mock.Anything, "event-1").Return(event, nil)
		store.On("ListEventPayments", mock.Anything, "event-1").Return([]models.EventPaymentRecord{
			{ResidentID: "res-1", AmountPaid: 20000, Status: models.StatusPaid},
			{ResidentID: "res-2", AmountPaid: 5000, Status: models.StatusPartiallyPaid},
		}, nil)
		store.On("ListActiveResidents", mock.Anything).Return([]models.Resident{
			{ID: "res-1", Email: "maria@example.com"},
			{ID: "res-2", Email: "jose@example.com"},
			{ID: "res-3", Email: "ana@example.com"},
		}, nil)

		count, err := mgr.BroadcastReminder(context.Background(), "event-1")

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Len(t, dispatcher.sent, 1)
		assert.Contains(t, dispatcher.sent[0].To, "jose@example.com")
		assert.Contains(t, dispatcher.sent[0].To, "ana@example.com")
		assert.NotContains(t, dispatcher.sent[0].To, "maria@example.com")
		assert.Contains(t, dispatcher.sent[0].Body, "200.00")
		store.AssertExpectations(t)
	})

	t.Run("Everyone Settled Sends Nothing", func(t *testing.T) {
		store := new(mocks.Storage)
		dispatcher := &recordingDispatcher{}
		mgr := NewEventManager(store, store, dispatcher, &recordingPublisher{})

		store.On("GetEvent", mock.Anything, "event-1").Return(event, nil)
		store.On("ListEventPayments", mock.Anything, "event-1").Return([]models.EventPaymentRecord{
			{ResidentID: "res-1", AmountPaid: 20000, Status: models.StatusPaid},
		}, nil)
		store.On("ListActiveResidents", mock.Anything).Return([]models.Resident{
			{ID: "res-1", Email: "maria@example.com"},
		}, nil)

		count, err := mgr.BroadcastReminder(context.Background(), "event-1")

		assert.NoError(t, err)
		assert.Zero(t, count)
		assert.Empty(t, dispatcher.sent)
	})

	t.Run("Unknown Event", func(t *testing.T) {
		store := new(mocks.Storage)
		mgr := NewEventManager(store, store, &recordingDispatcher{}, &recordingPublisher{})

		store.On("GetEvent", mock.Anything, "missing").Return(nil, storage.ErrNotFound)

		_, err := mgr.BroadcastReminder(context.Background(), "missing")

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
