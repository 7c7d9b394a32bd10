package test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inkwell/dal"
	"inkwell/dto"
	"inkwell/logic"
	"inkwell/test/mocks"
)

type followHarness struct {
	mockLogger      *mocks.MockILogger
	mockRepo        *mocks.MockIRepo
	mockMetrics     *mocks.MockIMetrics
	mockResolver    *mocks.MockIActorResolver
	mockDeliverer   *mocks.MockIDeliverer
	mockRecommender *mocks.MockIFollowRecommender
	graph           logic.IFollowGraph
}

func setupFollowTest(t *testing.T) (*gomock.Controller, *followHarness, logic.IFollowService) {

	ctrl := gomock.NewController(t)
	cfg := testConfig()

	h := &followHarness{
		mockLogger:      mocks.NewMockILogger(ctrl),
		mockRepo:        mocks.NewMockIRepo(ctrl),
		mockMetrics:     mocks.NewMockIMetrics(ctrl),
		mockResolver:    mocks.NewMockIActorResolver(ctrl),
		mockDeliverer:   mocks.NewMockIDeliverer(ctrl),
		mockRecommender: mocks.NewMockIFollowRecommender(ctrl),
	}
	stubLogger(h.mockLogger)
	stubMetrics(ctrl, h.mockMetrics)
	h.mockRepo.EXPECT().GetActiveFollowCount().Return(0, nil).AnyTimes()
	h.graph = logic.NewFollowGraph(cfg, h.mockLogger, h.mockRepo, h.mockMetrics)

	fs := logic.NewFollowService(h.mockLogger, h.mockResolver, h.graph,
		logic.NewActivityBuilder(cfg), h.mockDeliverer, h.mockRecommender, h.mockMetrics)
	return ctrl, h, fs
}

func TestReceiveFollow_PrivateUserGoesPending(t *testing.T) {

	ctrl, h, fs := setupFollowTest(t)
	defer ctrl.Finish()

	follower := foreignActor(7, "astrid")
	followed := privateLocalActor(2, "bela")

	h.mockResolver.EXPECT().GetOrCreate("astrid", foreignHost).Return(follower, false, nil)
	h.mockResolver.EXPECT().Resolve("bela", "").Return(followed, nil)
	h.mockRepo.EXPECT().AddFollowIfNotExist(follower.Id, followed.Id, dal.FollowPending).
		Return(true, nil)
	// No NotifyFollowChange expectation: the recommender must not hear
	// about a pending edge

	state, err := fs.ReceiveFollow(context.Background(), "astrid", foreignHost, "bela")

	assert.NoError(t, err)
	assert.Equal(t, dal.FollowPending, state)
}

func TestReceiveFollow_PublicUserGoesActive(t *testing.T) {

	ctrl, h, fs := setupFollowTest(t)
	defer ctrl.Finish()

	follower := foreignActor(7, "astrid")
	followed := localActor(1, "ursula")

	h.mockResolver.EXPECT().GetOrCreate("astrid", foreignHost).Return(follower, false, nil)
	h.mockResolver.EXPECT().Resolve("ursula", "").Return(followed, nil)
	h.mockRepo.EXPECT().AddFollowIfNotExist(follower.Id, followed.Id, dal.FollowActive).
		Return(true, nil)
	h.mockRecommender.EXPECT().NotifyFollowChange(follower.Id, followed.Id, true)

	state, err := fs.ReceiveFollow(context.Background(), "astrid", foreignHost, "ursula")

	assert.NoError(t, err)
	assert.Equal(t, dal.FollowActive, state)
}

func TestApprove_FlipsPendingAndNotifiesRecommender(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	mockResolver := mocks.NewMockIActorResolver(ctrl)
	mockRecommender := mocks.NewMockIFollowRecommender(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	stubLogger(mockLogger)
	stubMetrics(ctrl, mockMetrics)
	mockRepo.EXPECT().GetActiveFollowCount().Return(0, nil).AnyTimes()

	follower := foreignActor(7, "astrid")
	followed := privateLocalActor(2, "bela")
	graph := logic.NewFollowGraph(testConfig(), mockLogger, mockRepo, mockMetrics)
	approver := logic.NewApprover(mockLogger, mockResolver, graph, mockRecommender)

	mockResolver.EXPECT().Resolve("astrid", foreignHost).Return(follower, nil)
	mockResolver.EXPECT().Resolve("bela", "").Return(followed, nil)
	mockRepo.EXPECT().GetFollow(follower.Id, followed.Id).
		Return(&dal.FollowEdge{FollowerId: follower.Id, FollowedId: followed.Id, State: dal.FollowPending}, nil)
	mockRepo.EXPECT().SetFollowState(follower.Id, followed.Id, dal.FollowActive).Return(nil)
	mockRecommender.EXPECT().NotifyFollowChange(follower.Id, followed.Id, true)

	err := approver.Decide("@astrid@far.example", "@bela", true)

	assert.NoError(t, err)
}

func TestDeny_ErasesEdgeWithoutRecommender(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	mockResolver := mocks.NewMockIActorResolver(ctrl)
	mockRecommender := mocks.NewMockIFollowRecommender(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	stubLogger(mockLogger)
	stubMetrics(ctrl, mockMetrics)
	mockRepo.EXPECT().GetActiveFollowCount().Return(0, nil).AnyTimes()

	follower := foreignActor(7, "astrid")
	followed := privateLocalActor(2, "bela")
	graph := logic.NewFollowGraph(testConfig(), mockLogger, mockRepo, mockMetrics)
	approver := logic.NewApprover(mockLogger, mockResolver, graph, mockRecommender)

	mockResolver.EXPECT().Resolve("astrid", foreignHost).Return(follower, nil)
	mockResolver.EXPECT().Resolve("bela", "").Return(followed, nil)
	mockRepo.EXPECT().DeleteFollow(follower.Id, followed.Id).Return(nil)

	err := approver.Decide("@astrid@far.example", "@bela", false)

	assert.NoError(t, err)
}

func TestSendFollowRequest_RollsBackOnFailedDelivery(t *testing.T) {

	ctrl, h, fs := setupFollowTest(t)
	defer ctrl.Finish()

	follower := localActor(1, "ursula")
	followed := foreignActor(7, "astrid")

	h.mockResolver.EXPECT().Resolve("ursula", "").Return(follower, nil)
	h.mockResolver.EXPECT().GetOrCreate("astrid", foreignHost).Return(followed, true, nil)
	h.mockResolver.EXPECT().ActorUrl(gomock.Any()).Return("https://ink.dev/ap/@ursula").AnyTimes()
	h.mockRepo.EXPECT().AddFollowIfNotExist(follower.Id, followed.Id, dal.FollowActive).
		Return(true, nil)
	h.mockDeliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), gomock.Any(), logic.TierPrimary).
		Return(nil, logic.ErrTransport)
	// The compensating rollback: edge gone, freshly created shadow gone
	h.mockRepo.EXPECT().DeleteFollow(follower.Id, followed.Id).Return(nil)
	h.mockRepo.EXPECT().DeleteActor(followed.Id).Return(nil)

	_, err := fs.SendFollowRequest(context.Background(), "@ursula", "@astrid@far.example")

	assert.ErrorIs(t, err, logic.ErrTransport)
}

func TestSendFollowRequest_DuplicateIsError400(t *testing.T) {

	ctrl, h, fs := setupFollowTest(t)
	defer ctrl.Finish()

	follower := localActor(1, "ursula")
	followed := foreignActor(7, "astrid")

	h.mockResolver.EXPECT().Resolve("ursula", "").Return(follower, nil)
	h.mockResolver.EXPECT().GetOrCreate("astrid", foreignHost).Return(followed, false, nil)
	h.mockRepo.EXPECT().AddFollowIfNotExist(follower.Id, followed.Id, dal.FollowActive).
		Return(false, nil)

	_, err := fs.SendFollowRequest(context.Background(), "@ursula", "@astrid@far.example")

	assert.ErrorIs(t, err, logic.ErrDuplicate)
	assert.Equal(t, dto.ResultError400, logic.ResultOf(err))
}

func TestSendUnfollow_SendsUndoToFollowedInbox(t *testing.T) {

	ctrl, h, fs := setupFollowTest(t)
	defer ctrl.Finish()

	follower := localActor(1, "ursula")
	followed := foreignActor(7, "astrid")
	followerUrl := "https://ink.dev/ap/@ursula"
	followedUrl := "https://far.example/ap/@astrid"

	h.mockResolver.EXPECT().Resolve("ursula", "").Return(follower, nil)
	h.mockResolver.EXPECT().Resolve("astrid", foreignHost).Return(followed, nil)
	h.mockResolver.EXPECT().ActorUrl(follower).Return(followerUrl).AnyTimes()
	h.mockResolver.EXPECT().ActorUrl(followed).Return(followedUrl).AnyTimes()
	h.mockDeliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), gomock.Any(), logic.TierPrimary).
		DoAndReturn(func(_ context.Context, act *dto.ActivityOut, recipients []*dal.Actor, _ logic.DeliveryTier) (*logic.DeliveryReport, error) {
			assert.Equal(t, "Undo", act.Type)
			assert.True(t, act.Sendable())
			inner, ok := act.Object.(*dto.ActivityOut)
			if assert.True(t, ok) {
				assert.Equal(t, "Follow", inner.Type)
				assert.False(t, inner.Sendable())
			}
			if assert.Len(t, recipients, 1) {
				assert.Equal(t, followed.Id, recipients[0].Id)
			}
			return &logic.DeliveryReport{Tier: logic.TierPrimary}, nil
		})
	h.mockRepo.EXPECT().DeleteFollow(follower.Id, followed.Id).Return(nil)
	h.mockRecommender.EXPECT().NotifyFollowChange(follower.Id, followed.Id, false)

	err := fs.SendUnfollow(context.Background(), "@ursula", "@astrid@far.example")

	assert.NoError(t, err)
}
