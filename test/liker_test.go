package test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inkwell/dal"
	"inkwell/dto"
	"inkwell/logic"
	"inkwell/shared"
	"inkwell/test/mocks"
)

type likerHarness struct {
	mockLogger    *mocks.MockILogger
	mockRepo      *mocks.MockIRepo
	mockMetrics   *mocks.MockIMetrics
	mockResolver  *mocks.MockIActorResolver
	mockDeliverer *mocks.MockIDeliverer
}

func setupLikerTest(t *testing.T) (*gomock.Controller, *likerHarness, logic.ILiker) {

	ctrl := gomock.NewController(t)
	cfg := testConfig()

	h := &likerHarness{
		mockLogger:    mocks.NewMockILogger(ctrl),
		mockRepo:      mocks.NewMockIRepo(ctrl),
		mockMetrics:   mocks.NewMockIMetrics(ctrl),
		mockResolver:  mocks.NewMockIActorResolver(ctrl),
		mockDeliverer: mocks.NewMockIDeliverer(ctrl),
	}
	stubLogger(h.mockLogger)
	stubMetrics(ctrl, h.mockMetrics)

	h.mockResolver.EXPECT().ActorUrl(gomock.Any()).DoAndReturn(func(a *dal.Actor) string {
		if a.IsLocal() {
			return shared.ActorUrl(a.Handle, cfg.Host)
		}
		return shared.ActorUrl(a.Handle, a.Host)
	}).AnyTimes()

	liker := logic.NewLiker(h.mockLogger, h.mockRepo, h.mockResolver,
		logic.NewActivityBuilder(cfg), h.mockDeliverer, h.mockMetrics)
	return ctrl, h, liker
}

func TestLike_SendsToForeignAuthorInbox(t *testing.T) {

	ctrl, h, liker := setupLikerTest(t)
	defer ctrl.Finish()

	user := localActor(1, "ursula")
	author := foreignActor(7, "astrid")
	authorUrl := shared.ActorUrl(author.Handle, author.Host)
	article := &dal.Article{Id: 42, AuthorId: author.Id, Title: "Distant Shores",
		ApId: "https://far.example/ap/@astrid/articles/42"}

	h.mockResolver.EXPECT().ResolveId(user.Id).Return(user, nil)
	h.mockRepo.EXPECT().GetArticle(article.Id).Return(article, nil)
	h.mockResolver.EXPECT().ResolveId(author.Id).Return(author, nil)
	h.mockRepo.EXPECT().AddLikeIfNotExist(user.Id, article.Id).Return(true, nil)
	h.mockRepo.EXPECT().IncrementLikesCount(article.Id).Return(nil)

	h.mockDeliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), gomock.Any(), logic.TierPrimary).
		DoAndReturn(func(_ context.Context, act *dto.ActivityOut, recipients []*dal.Actor, tier logic.DeliveryTier) (*logic.DeliveryReport, error) {
			assert.Equal(t, "Like", act.Type)
			assert.Equal(t, article.ApId, act.Object)
			assert.True(t, act.Sendable())
			if assert.NotNil(t, act.To) {
				assert.Equal(t, []string{authorUrl}, *act.To)
			}
			if assert.Len(t, recipients, 1) {
				assert.Equal(t, author.Id, recipients[0].Id)
			}
			return &logic.DeliveryReport{Tier: tier}, nil
		})

	err := liker.Like(context.Background(), user.Id, article.Id)

	assert.NoError(t, err)
}

func TestLike_RollsBackOnFailedDelivery(t *testing.T) {

	ctrl, h, liker := setupLikerTest(t)
	defer ctrl.Finish()

	user := localActor(1, "ursula")
	author := foreignActor(7, "astrid")
	article := &dal.Article{Id: 42, AuthorId: author.Id,
		ApId: "https://far.example/ap/@astrid/articles/42"}

	h.mockResolver.EXPECT().ResolveId(user.Id).Return(user, nil)
	h.mockRepo.EXPECT().GetArticle(article.Id).Return(article, nil)
	h.mockResolver.EXPECT().ResolveId(author.Id).Return(author, nil)
	h.mockRepo.EXPECT().AddLikeIfNotExist(user.Id, article.Id).Return(true, nil)
	h.mockRepo.EXPECT().IncrementLikesCount(article.Id).Return(nil)
	h.mockDeliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), gomock.Any(), logic.TierPrimary).
		Return(nil, logic.ErrTransport)
	h.mockRepo.EXPECT().RemoveLike(user.Id, article.Id).Return(true, nil)
	h.mockRepo.EXPECT().DecrementLikesCount(article.Id).Return(nil)

	err := liker.Like(context.Background(), user.Id, article.Id)

	assert.ErrorIs(t, err, logic.ErrTransport)
}

func TestUnlike_WithoutPriorLikeKeepsCount(t *testing.T) {

	ctrl, h, liker := setupLikerTest(t)
	defer ctrl.Finish()

	user := localActor(1, "ursula")
	author := localActor(2, "sam")
	article := &dal.Article{Id: 42, AuthorId: author.Id,
		ApId: "https://ink.dev/ap/@sam/articles/42"}

	h.mockResolver.EXPECT().ResolveId(user.Id).Return(user, nil)
	h.mockRepo.EXPECT().GetArticle(article.Id).Return(article, nil)
	h.mockResolver.EXPECT().ResolveId(author.Id).Return(author, nil)
	// Nothing to retract: likes_count must stay untouched
	h.mockRepo.EXPECT().RemoveLike(user.Id, article.Id).Return(false, nil)

	err := liker.Unlike(context.Background(), user.Id, article.Id)

	assert.NoError(t, err)
}
