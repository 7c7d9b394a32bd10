package test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inkwell/dal"
	"inkwell/dto"
	"inkwell/logic"
	"inkwell/shared"
	"inkwell/test/mocks"
)

type delivererHarness struct {
	mockLogger   *mocks.MockILogger
	mockMetrics  *mocks.MockIMetrics
	mockResolver *mocks.MockIActorResolver
	mockSender   *mocks.MockIActivitySender
}

func setupDelivererTest(t *testing.T) (*gomock.Controller, *delivererHarness, logic.IDeliverer) {

	ctrl := gomock.NewController(t)
	cfg := testConfig()

	h := &delivererHarness{
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
		mockResolver: mocks.NewMockIActorResolver(ctrl),
		mockSender:   mocks.NewMockIActivitySender(ctrl),
	}
	stubLogger(h.mockLogger)
	stubMetrics(ctrl, h.mockMetrics)
	h.mockResolver.EXPECT().InboxUrl(gomock.Any()).
		DoAndReturn(func(a *dal.Actor) (string, error) {
			return shared.ActorInboxUrl(a.Handle, a.Host), nil
		}).AnyTimes()

	deliverer := logic.NewDeliverer(cfg, h.mockLogger, h.mockResolver, h.mockSender, h.mockMetrics)
	return ctrl, h, deliverer
}

func sendableActivity() *dto.ActivityOut {
	to := []string{shared.PublicStream}
	return &dto.ActivityOut{
		Context: dto.ActivityContext,
		Id:      "https://ink.dev/ap/activity/test-1",
		Type:    "Create",
		Actor:   "https://ink.dev/ap/@ursula",
		To:      &to,
	}
}

func TestDeliver_OnePostPerDistinctInbox(t *testing.T) {

	ctrl, h, deliverer := setupDelivererTest(t)
	defer ctrl.Finish()

	recipients := []*dal.Actor{
		foreignActor(7, "astrid"),
		foreignActor(8, "bjorn"),
		foreignActor(7, "astrid"), // duplicate entry
		localActor(1, "ursula"),   // local, not a federation target
	}
	h.mockSender.EXPECT().
		Send(gomock.Any(), shared.ActorInboxUrl("astrid", foreignHost), gomock.Any()).
		Return(nil)
	h.mockSender.EXPECT().
		Send(gomock.Any(), shared.ActorInboxUrl("bjorn", foreignHost), gomock.Any()).
		Return(nil)

	report, err := deliverer.Deliver(context.Background(), sendableActivity(), recipients, logic.TierSecondary)

	assert.NoError(t, err)
	assert.Len(t, report.PerRecipient, 2)
	assert.Equal(t, 0, report.FailedCount())
}

func TestDeliver_PrimaryFailureIsHardError(t *testing.T) {

	ctrl, h, deliverer := setupDelivererTest(t)
	defer ctrl.Finish()

	recipients := []*dal.Actor{foreignActor(7, "astrid"), foreignActor(8, "bjorn")}
	h.mockSender.EXPECT().
		Send(gomock.Any(), shared.ActorInboxUrl("astrid", foreignHost), gomock.Any()).
		Return(nil)
	h.mockSender.EXPECT().
		Send(gomock.Any(), shared.ActorInboxUrl("bjorn", foreignHost), gomock.Any()).
		Return(errors.New("connection refused"))
	h.mockMetrics.EXPECT().DeliveryFailed("primary").AnyTimes()

	report, err := deliverer.Deliver(context.Background(), sendableActivity(), recipients, logic.TierPrimary)

	assert.ErrorIs(t, err, logic.ErrTransport)
	assert.Equal(t, 1, report.FailedCount())
}

func TestDeliver_SecondaryFailureIsWarningOnly(t *testing.T) {

	ctrl, h, deliverer := setupDelivererTest(t)
	defer ctrl.Finish()

	recipients := []*dal.Actor{foreignActor(7, "astrid")}
	h.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))
	h.mockMetrics.EXPECT().DeliveryFailed("secondary").AnyTimes()

	report, err := deliverer.Deliver(context.Background(), sendableActivity(), recipients, logic.TierSecondary)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.FailedCount())
}

func TestDeliver_TimeoutCutsOffUnfinishedRecipients(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Delivery.Workers = 1
	cfg.Delivery.TimeoutSec = 1

	mockLogger := mocks.NewMockILogger(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	mockResolver := mocks.NewMockIActorResolver(ctrl)
	mockSender := mocks.NewMockIActivitySender(ctrl)
	stubLogger(mockLogger)
	stubMetrics(ctrl, mockMetrics)
	mockResolver.EXPECT().InboxUrl(gomock.Any()).
		DoAndReturn(func(a *dal.Actor) (string, error) {
			return shared.ActorInboxUrl(a.Handle, a.Host), nil
		}).AnyTimes()
	mockMetrics.EXPECT().DeliveryFailed("secondary").AnyTimes()

	recipients := []*dal.Actor{foreignActor(7, "astrid"), foreignActor(8, "bjorn")}
	// The first POST hangs until the batch deadline; with a single worker
	// the second recipient never reaches the wire
	mockSender.EXPECT().
		Send(gomock.Any(), shared.ActorInboxUrl("astrid", foreignHost), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ *dto.ActivityOut) error {
			<-ctx.Done()
			return ctx.Err()
		})

	deliverer := logic.NewDeliverer(cfg, mockLogger, mockResolver, mockSender, mockMetrics)

	started := time.Now()
	report, err := deliverer.Deliver(context.Background(), sendableActivity(), recipients, logic.TierSecondary)
	elapsed := time.Since(started)

	assert.NoError(t, err)
	assert.Less(t, elapsed, 3*time.Second)
	assert.Equal(t, 2, report.FailedCount())
	assert.Equal(t, "timeout", report.PerRecipient[shared.ActorInboxUrl("bjorn", foreignHost)].Error)
}

func TestDeliver_EmptyRecipientsIsNoop(t *testing.T) {

	ctrl, _, deliverer := setupDelivererTest(t)
	defer ctrl.Finish()

	report, err := deliverer.Deliver(context.Background(), sendableActivity(), nil, logic.TierPrimary)

	assert.NoError(t, err)
	assert.Empty(t, report.PerRecipient)
}
