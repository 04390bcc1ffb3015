package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/lsweb-studio/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestStore struct {
	created []types.ContactRequest
	fail    bool
}

func (f *fakeRequestStore) Create(ctx context.Context, request types.ContactRequest) (types.ContactRequest, error) {
	if f.fail {
		return types.ContactRequest{}, errors.New("store unavailable")
	}
	f.created = append(f.created, request)
	return request, nil
}

type fakeNotifier struct {
	sent []types.ContactRequest
	fail bool
}

func (f *fakeNotifier) NewRequest(ctx context.Context, request types.ContactRequest) error {
	if f.fail {
		return errors.New("notifier unavailable")
	}
	f.sent = append(f.sent, request)
	return nil
}

func newTestIntake(store *fakeRequestStore, notifier *fakeNotifier) *IntakeService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewIntakeService(store, notifier, logger)
}

func validSubmitInput() SubmitInput {
	return SubmitInput{
		Name:        "Ana Gómez",
		Email:       "ana@example.com",
		ProjectType: "e-commerce",
		Description: "Tienda online para mi negocio",
	}
}

func TestSubmit_MissingRequiredFields(t *testing.T) {
	required := []string{"name", "email", "projectType", "description"}
	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			store := &fakeRequestStore{}
			notifier := &fakeNotifier{}
			svc := newTestIntake(store, notifier)

			input := validSubmitInput()
			switch field {
			case "name":
				input.Name = "   "
			case "email":
				input.Email = ""
			case "projectType":
				input.ProjectType = ""
			case "description":
				input.Description = "  \n "
			}

			_, err := svc.Submit(context.Background(), input)
			require.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, store.created, "validation failure must not write to the store")
			assert.Empty(t, notifier.sent, "validation failure must not notify")
		})
	}
}

func TestSubmit_Success(t *testing.T) {
	store := &fakeRequestStore{}
	notifier := &fakeNotifier{}
	svc := newTestIntake(store, notifier)

	result, err := svc.Submit(context.Background(), validSubmitInput())
	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.True(t, result.Stored)
	assert.True(t, result.Notified)

	require.Len(t, store.created, 1)
	stored := store.created[0]
	assert.Equal(t, result.ID, stored.ID)
	assert.Equal(t, types.StatusPending, stored.Status)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Nil(t, stored.Phone)
	assert.Nil(t, stored.Company)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, result.ID, notifier.sent[0].ID)
}

func TestSubmit_DistinctIDs(t *testing.T) {
	store := &fakeRequestStore{}
	svc := newTestIntake(store, &fakeNotifier{})

	first, err := svc.Submit(context.Background(), validSubmitInput())
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), validSubmitInput())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "repeating a submission must yield a new id")
}

func TestSubmit_OptionalFieldsTrimmed(t *testing.T) {
	store := &fakeRequestStore{}
	svc := newTestIntake(store, &fakeNotifier{})

	input := validSubmitInput()
	input.Phone = "  +54 11 5555-0000  "
	input.Budget = "   "

	_, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	stored := store.created[0]
	require.NotNil(t, stored.Phone)
	assert.Equal(t, "+54 11 5555-0000", *stored.Phone)
	assert.Nil(t, stored.Budget, "blank optional fields are stored as absent")
}

func TestSubmit_StoreFailureIsBestEffort(t *testing.T) {
	store := &fakeRequestStore{fail: true}
	notifier := &fakeNotifier{}
	svc := newTestIntake(store, notifier)

	result, err := svc.Submit(context.Background(), validSubmitInput())
	require.NoError(t, err, "store failure must not fail the submission")
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.Stored)
	assert.True(t, result.Notified, "notification still goes out when the store fails")
}

func TestSubmit_NotifierFailureIsBestEffort(t *testing.T) {
	store := &fakeRequestStore{}
	notifier := &fakeNotifier{fail: true}
	svc := newTestIntake(store, notifier)

	result, err := svc.Submit(context.Background(), validSubmitInput())
	require.NoError(t, err, "notifier failure must not fail the submission")
	assert.True(t, result.Stored)
	assert.False(t, result.Notified)
}
