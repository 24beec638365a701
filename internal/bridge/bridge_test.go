package bridge_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"

	"github.com/pharmadna/pharma-ledger/internal/adapter"
	"github.com/pharmadna/pharma-ledger/internal/bridge"
	"github.com/pharmadna/pharma-ledger/internal/domain"
	"github.com/pharmadna/pharma-ledger/internal/logger"
	mockspkg "github.com/pharmadna/pharma-ledger/internal/mocks"
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

// testBridgeMocks contains all the mocks needed for testing the bridge
type testBridgeMocks struct {
	ctrl      *gomock.Controller
	natsJS    *mockspkg.MockNatsJetStream
	natsConn  *mockspkg.MockNatsConn
	jetStream *mockspkg.MockJetStream
	consumer  *mockspkg.MockNatsConsumer
	store     *mockspkg.MockStore
	json      *mockspkg.MockJSON
}

// setupTestBridge creates all the mocks for testing
func setupTestBridge(t *testing.T) *testBridgeMocks {
	ctrl := gomock.NewController(t)

	return &testBridgeMocks{
		ctrl:      ctrl,
		natsJS:    mockspkg.NewMockNatsJetStream(ctrl),
		natsConn:  mockspkg.NewMockNatsConn(ctrl),
		jetStream: mockspkg.NewMockJetStream(ctrl),
		consumer:  mockspkg.NewMockNatsConsumer(ctrl),
		store:     mockspkg.NewMockStore(ctrl),
		json:      mockspkg.NewMockJSON(ctrl),
	}
}

func tearDownTestBridge(mocks *testBridgeMocks) {
	mocks.ctrl.Finish()
}

func testBridgeConfig() bridge.Config {
	return bridge.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "CUSTODY_EVENTS",
		ConsumerName:   "event-bridge",
		MaxReconnects:  10,
		ReconnectWait:  1 * time.Second,
		ConnectionName: "test-bridge",
		AckWaitTimeout: 30 * time.Second,
		MaxDeliver:     3,
	}
}

// expectSubscribe wires the connect and consumer creation expectations that
// every successful NewBridge call goes through
func expectSubscribe(mocks *testBridgeMocks, config bridge.Config) {
	mocks.natsJS.
		EXPECT().
		Connect(config.URL, gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(),
			config.StreamName,
			jetstream.ConsumerConfig{
				Durable:       config.ConsumerName,
				AckPolicy:     jetstream.AckExplicitPolicy,
				AckWait:       config.AckWaitTimeout,
				MaxDeliver:    config.MaxDeliver,
				FilterSubject: "custody.>",
			}).
		Return(mocks.consumer, nil)
}

func TestBridge_NewBridge_Success(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx := context.Background()
	config := testBridgeConfig()

	expectSubscribe(mocks, config)

	b, err := bridge.NewBridge(ctx, config, mocks.natsJS, mocks.store, mocks.json)

	assert.NoError(t, err)
	assert.NotNil(t, b)
}

func TestBridge_NewBridge_ConnectError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx := context.Background()
	config := testBridgeConfig()

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nil, nil, assert.AnError)

	b, err := bridge.NewBridge(ctx, config, mocks.natsJS, mocks.store, mocks.json)

	assert.Error(t, err)
	assert.Nil(t, b)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestBridge_NewBridge_CreateConsumerError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx := context.Background()
	config := testBridgeConfig()

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	// The failed subscription closes the connection it opened
	mocks.natsConn.EXPECT().Close()

	b, err := bridge.NewBridge(ctx, config, mocks.natsJS, mocks.store, mocks.json)

	assert.Error(t, err)
	assert.Nil(t, b)
	assert.Contains(t, err.Error(), "failed to create custody consumer")
}

func TestBridge_Run_ConsumeError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx := context.Background()
	config := testBridgeConfig()

	expectSubscribe(mocks, config)

	b, err := bridge.NewBridge(ctx, config, mocks.natsJS, mocks.store, mocks.json)
	assert.NoError(t, err)

	mocks.consumer.
		EXPECT().
		Consume(gomock.Any()).
		Return(nil, assert.AnError)

	err = b.Run(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create subscription")
}

func TestBridge_Run_ContextCancellation(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	config := testBridgeConfig()

	expectSubscribe(mocks, config)

	b, err := bridge.NewBridge(ctx, config, mocks.natsJS, mocks.store, mocks.json)
	assert.NoError(t, err)

	consumeCtx := mockspkg.NewMockConsumeContext(mocks.ctrl)
	consumeCtx.EXPECT().Stop()

	mocks.consumer.
		EXPECT().
		Consume(gomock.Any()).
		Return(consumeCtx, nil)

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err = b.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

// runBridgeWithMessage starts the bridge, delivers one message through the
// captured handler and waits for done before cancelling
func runBridgeWithMessage(t *testing.T, mocks *testBridgeMocks, msg adapter.Message, done chan struct{}) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	config := testBridgeConfig()

	expectSubscribe(mocks, config)

	b, err := bridge.NewBridge(ctx, config, mocks.natsJS, mocks.store, mocks.json)
	assert.NoError(t, err)

	consumeCtx := mockspkg.NewMockConsumeContext(mocks.ctrl)
	consumeCtx.EXPECT().Stop()

	handlerCh := make(chan adapter.MessageHandler, 1)
	mocks.consumer.
		EXPECT().
		Consume(gomock.Any()).
		DoAndReturn(func(h adapter.MessageHandler, _ ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			handlerCh <- h
			return consumeCtx, nil
		})

	go func() {
		handler := <-handlerCh
		handler(msg)

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("message was never resolved")
		}
		cancel()
	}()

	err = b.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBridge_Run_AppliesEvent(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	from := domain.NormalizeAddress("0x00000000000000000000000000000000000000a1")
	tokenID := domain.TokenID(7)
	event := domain.CustodyEvent{
		Sequence:     12,
		EventType:    domain.CustodyEventTypeTransferred,
		TokenID:      &tokenID,
		FromAddress:  &from,
		ToAddress:    domain.NormalizeAddress("0x00000000000000000000000000000000000000b2"),
		CustodyState: domain.CustodyStateInTransit,
		Timestamp:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	done := make(chan struct{})

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return(payload).AnyTimes()
	msg.EXPECT().Ack().DoAndReturn(func() error {
		close(done)
		return nil
	})

	mocks.json.
		EXPECT().
		Unmarshal(payload, gomock.Any()).
		DoAndReturn(json.Unmarshal)

	mocks.store.
		EXPECT().
		ApplyCustodyEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got *domain.CustodyEvent) error {
			assert.Equal(t, event.Sequence, got.Sequence)
			assert.Equal(t, event.EventType, got.EventType)
			assert.Equal(t, event.ToAddress, got.ToAddress)
			return nil
		})

	runBridgeWithMessage(t, mocks, msg, done)
}

func TestBridge_Run_MalformedPayloadTerminated(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	payload := []byte("not json")
	done := make(chan struct{})

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return(payload).AnyTimes()
	msg.EXPECT().Subject().Return("custody.transferred").AnyTimes()
	msg.EXPECT().Term().DoAndReturn(func() error {
		close(done)
		return nil
	})

	mocks.json.
		EXPECT().
		Unmarshal(payload, gomock.Any()).
		DoAndReturn(json.Unmarshal)

	runBridgeWithMessage(t, mocks, msg, done)
}

func TestBridge_Run_InvalidEventTerminated(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	// Parses fine but fails custody event validation: no recipient address
	payload := []byte(`{"sequence":3,"event_type":"transferred","to_address":""}`)
	done := make(chan struct{})

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return(payload).AnyTimes()
	msg.EXPECT().Term().DoAndReturn(func() error {
		close(done)
		return nil
	})

	mocks.json.
		EXPECT().
		Unmarshal(payload, gomock.Any()).
		DoAndReturn(json.Unmarshal)

	runBridgeWithMessage(t, mocks, msg, done)
}

func TestBridge_Run_StoreFailureNaked(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	event := domain.CustodyEvent{
		Sequence:  4,
		EventType: domain.CustodyEventTypeRoleChanged,
		ToAddress: domain.NormalizeAddress("0x00000000000000000000000000000000000000a1"),
		Role:      domain.RoleManufacturer,
		Timestamp: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	done := make(chan struct{})

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return(payload).AnyTimes()
	msg.EXPECT().Nak().DoAndReturn(func() error {
		close(done)
		return nil
	})

	mocks.json.
		EXPECT().
		Unmarshal(payload, gomock.Any()).
		DoAndReturn(json.Unmarshal)

	mocks.store.
		EXPECT().
		ApplyCustodyEvent(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	runBridgeWithMessage(t, mocks, msg, done)
}
