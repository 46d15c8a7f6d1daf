package webhook_test

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/logger"
	mockspkg "github.com/feral-file/nft-ledger/internal/mocks"
	"github.com/feral-file/nft-ledger/internal/store/schema"
	"github.com/feral-file/nft-ledger/internal/webhook"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func testClient() *schema.WebhookClient {
	return &schema.WebhookClient{
		ID:               1,
		ClientID:         "7b1c2a90-0000-4000-8000-000000000001",
		WebhookURL:       "https://example.com/hooks/ledger",
		WebhookSecret:    "topsecret",
		EventFilters:     []byte(`["transfer"]`),
		IsActive:         true,
		RetryMaxAttempts: 3,
	}
}

type delivererMocks struct {
	store *mockspkg.MockWebhookStore
	http  *mockspkg.MockHTTPClient
	clock *mockspkg.MockClock
}

func setupDeliverer(t *testing.T) (*webhook.Deliverer, *delivererMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := &delivererMocks{
		store: mockspkg.NewMockWebhookStore(ctrl),
		http:  mockspkg.NewMockHTTPClient(ctrl),
		clock: mockspkg.NewMockClock(ctrl),
	}
	m.clock.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()

	d := webhook.NewDeliverer(m.store, m.http, m.clock, webhook.Config{
		PoolSize:         2,
		InitialRetryWait: time.Millisecond,
	})
	return d, m, ctrl
}

func TestDeliverer_SuccessfulDelivery(t *testing.T) {
	d, m, ctrl := setupDeliverer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	event := testEvent()
	client := testClient()

	m.store.EXPECT().ListActiveWebhookClients(ctx, domain.EventTypeTransfer).
		Return([]*schema.WebhookClient{client}, nil)
	m.store.EXPECT().CreateWebhookDelivery(gomock.Any(), gomock.Any()).Return(nil)

	m.http.EXPECT().
		Post(gomock.Any(), client.WebhookURL, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, headers map[string]string, body []byte) (int, []byte, error) {
			// The recipient can verify what we send
			assert.Equal(t, event.EventID, headers[webhook.HeaderEventID])
			timestamp, err := strconv.ParseInt(headers[webhook.HeaderTimestamp], 10, 64)
			require.NoError(t, err)
			assert.True(t, webhook.VerifySignature(client.WebhookSecret, event.EventID, timestamp, body, headers[webhook.HeaderSignature]))
			return http.StatusOK, nil, nil
		})

	m.store.EXPECT().UpdateWebhookDelivery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, delivery *schema.WebhookDelivery) error {
			assert.True(t, delivery.Success)
			assert.Equal(t, 1, delivery.Attempts)
			assert.Equal(t, http.StatusOK, delivery.StatusCode)
			assert.Empty(t, delivery.LastError)
			return nil
		})

	require.NoError(t, d.Dispatch(ctx, event))
	d.StopAndWait()
}

func TestDeliverer_RetriesServerErrors(t *testing.T) {
	d, m, ctrl := setupDeliverer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	event := testEvent()
	client := testClient()

	m.store.EXPECT().ListActiveWebhookClients(ctx, domain.EventTypeTransfer).
		Return([]*schema.WebhookClient{client}, nil)
	m.store.EXPECT().CreateWebhookDelivery(gomock.Any(), gomock.Any()).Return(nil)

	gomock.InOrder(
		m.http.EXPECT().Post(gomock.Any(), client.WebhookURL, gomock.Any(), gomock.Any()).
			Return(http.StatusInternalServerError, []byte("oops"), nil),
		m.http.EXPECT().Post(gomock.Any(), client.WebhookURL, gomock.Any(), gomock.Any()).
			Return(http.StatusOK, nil, nil),
	)

	m.store.EXPECT().UpdateWebhookDelivery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, delivery *schema.WebhookDelivery) error {
			assert.True(t, delivery.Success)
			assert.Equal(t, 2, delivery.Attempts)
			return nil
		})

	require.NoError(t, d.Dispatch(ctx, event))
	d.StopAndWait()
}

func TestDeliverer_ClientErrorIsNotRetried(t *testing.T) {
	d, m, ctrl := setupDeliverer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	event := testEvent()
	client := testClient()

	m.store.EXPECT().ListActiveWebhookClients(ctx, domain.EventTypeTransfer).
		Return([]*schema.WebhookClient{client}, nil)
	m.store.EXPECT().CreateWebhookDelivery(gomock.Any(), gomock.Any()).Return(nil)

	m.http.EXPECT().Post(gomock.Any(), client.WebhookURL, gomock.Any(), gomock.Any()).
		Return(http.StatusBadRequest, []byte("bad payload"), nil).
		Times(1)

	m.store.EXPECT().UpdateWebhookDelivery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, delivery *schema.WebhookDelivery) error {
			assert.False(t, delivery.Success)
			assert.Equal(t, 1, delivery.Attempts)
			assert.Equal(t, http.StatusBadRequest, delivery.StatusCode)
			assert.Contains(t, delivery.LastError, "bad payload")
			return nil
		})

	require.NoError(t, d.Dispatch(ctx, event))
	d.StopAndWait()
}

func TestDeliverer_RateLimitIsRetried(t *testing.T) {
	d, m, ctrl := setupDeliverer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	event := testEvent()
	client := testClient()

	m.store.EXPECT().ListActiveWebhookClients(ctx, domain.EventTypeTransfer).
		Return([]*schema.WebhookClient{client}, nil)
	m.store.EXPECT().CreateWebhookDelivery(gomock.Any(), gomock.Any()).Return(nil)

	gomock.InOrder(
		m.http.EXPECT().Post(gomock.Any(), client.WebhookURL, gomock.Any(), gomock.Any()).
			Return(http.StatusTooManyRequests, nil, nil),
		m.http.EXPECT().Post(gomock.Any(), client.WebhookURL, gomock.Any(), gomock.Any()).
			Return(http.StatusOK, nil, nil),
	)

	m.store.EXPECT().UpdateWebhookDelivery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, delivery *schema.WebhookDelivery) error {
			assert.True(t, delivery.Success)
			assert.Equal(t, 2, delivery.Attempts)
			return nil
		})

	require.NoError(t, d.Dispatch(ctx, event))
	d.StopAndWait()
}

func TestDeliverer_ExhaustsRetryBudget(t *testing.T) {
	d, m, ctrl := setupDeliverer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	event := testEvent()
	client := testClient() // RetryMaxAttempts: 3

	m.store.EXPECT().ListActiveWebhookClients(ctx, domain.EventTypeTransfer).
		Return([]*schema.WebhookClient{client}, nil)
	m.store.EXPECT().CreateWebhookDelivery(gomock.Any(), gomock.Any()).Return(nil)

	m.http.EXPECT().Post(gomock.Any(), client.WebhookURL, gomock.Any(), gomock.Any()).
		Return(http.StatusServiceUnavailable, nil, nil).
		Times(3)

	m.store.EXPECT().UpdateWebhookDelivery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, delivery *schema.WebhookDelivery) error {
			assert.False(t, delivery.Success)
			assert.Equal(t, 3, delivery.Attempts)
			return nil
		})

	require.NoError(t, d.Dispatch(ctx, event))
	d.StopAndWait()
}

func TestDeliverer_FansOutToAllMatchingClients(t *testing.T) {
	d, m, ctrl := setupDeliverer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	event := testEvent()

	first := testClient()
	second := testClient()
	second.ID = 2
	second.ClientID = "7b1c2a90-0000-4000-8000-000000000002"
	second.WebhookURL = "https://example.org/hooks"
	second.WebhookSecret = "othersecret"

	m.store.EXPECT().ListActiveWebhookClients(ctx, domain.EventTypeTransfer).
		Return([]*schema.WebhookClient{first, second}, nil)
	m.store.EXPECT().CreateWebhookDelivery(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	m.http.EXPECT().Post(gomock.Any(), first.WebhookURL, gomock.Any(), gomock.Any()).
		Return(http.StatusOK, nil, nil)
	m.http.EXPECT().Post(gomock.Any(), second.WebhookURL, gomock.Any(), gomock.Any()).
		Return(http.StatusOK, nil, nil)

	m.store.EXPECT().UpdateWebhookDelivery(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	require.NoError(t, d.Dispatch(ctx, event))
	d.StopAndWait()
}

func TestDeliverer_NoMatchingClients(t *testing.T) {
	d, m, ctrl := setupDeliverer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	event := testEvent()

	m.store.EXPECT().ListActiveWebhookClients(ctx, domain.EventTypeTransfer).
		Return(nil, nil)

	require.NoError(t, d.Dispatch(ctx, event))
	d.StopAndWait()
}

func TestDeliverer_ListClientsFailure(t *testing.T) {
	d, m, ctrl := setupDeliverer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	event := testEvent()

	m.store.EXPECT().ListActiveWebhookClients(ctx, domain.EventTypeTransfer).
		Return(nil, assert.AnError)

	assert.Error(t, d.Dispatch(ctx, event))
	d.StopAndWait()
}

func TestDeliverer_TransportErrorIsRecorded(t *testing.T) {
	d, m, ctrl := setupDeliverer(t)
	defer ctrl.Finish()

	ctx := context.Background()
	event := testEvent()
	client := testClient()

	m.store.EXPECT().ListActiveWebhookClients(ctx, domain.EventTypeTransfer).
		Return([]*schema.WebhookClient{client}, nil)
	m.store.EXPECT().CreateWebhookDelivery(gomock.Any(), gomock.Any()).Return(nil)

	m.http.EXPECT().Post(gomock.Any(), client.WebhookURL, gomock.Any(), gomock.Any()).
		Return(0, nil, assert.AnError).
		Times(3)

	m.store.EXPECT().UpdateWebhookDelivery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, delivery *schema.WebhookDelivery) error {
			assert.False(t, delivery.Success)
			assert.NotEmpty(t, delivery.LastError)
			return nil
		})

	require.NoError(t, d.Dispatch(ctx, event))
	d.StopAndWait()
}
