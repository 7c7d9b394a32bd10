package test

import (
	"context"
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

type publisherHarness struct {
	mockLogger    *mocks.MockILogger
	mockRepo      *mocks.MockIRepo
	mockMetrics   *mocks.MockIMetrics
	mockResolver  *mocks.MockIActorResolver
	mockConverter *mocks.MockIContentConverter
	mockDeliverer *mocks.MockIDeliverer
}

func setupPublisherTest(t *testing.T) (*gomock.Controller, *publisherHarness, logic.IPublisher) {

	ctrl := gomock.NewController(t)
	cfg := testConfig()

	h := &publisherHarness{
		mockLogger:    mocks.NewMockILogger(ctrl),
		mockRepo:      mocks.NewMockIRepo(ctrl),
		mockMetrics:   mocks.NewMockIMetrics(ctrl),
		mockResolver:  mocks.NewMockIActorResolver(ctrl),
		mockConverter: mocks.NewMockIContentConverter(ctrl),
		mockDeliverer: mocks.NewMockIDeliverer(ctrl),
	}
	stubLogger(h.mockLogger)
	stubMetrics(ctrl, h.mockMetrics)

	audience := logic.NewAudienceResolver(h.mockLogger, h.mockRepo)
	publisher := logic.NewPublisher(cfg, h.mockLogger, h.mockRepo, h.mockResolver,
		h.mockConverter, logic.NewActivityBuilder(cfg), audience, h.mockDeliverer, h.mockMetrics)
	return ctrl, h, publisher
}

func TestPublish_StampsApIdAndFansOut(t *testing.T) {

	ctrl, h, publisher := setupPublisherTest(t)
	defer ctrl.Finish()

	author := localActor(1, "ursula")
	follower := foreignActor(7, "astrid")
	when := time.Now().UTC()

	h.mockResolver.EXPECT().ResolveId(author.Id).Return(author, nil)
	h.mockResolver.EXPECT().ActorUrl(author).Return("https://ink.dev/ap/@ursula").AnyTimes()
	h.mockConverter.EXPECT().MarkdownToHtml("Hello *there*").Return("<p>Hello <em>there</em></p>", nil)
	h.mockRepo.EXPECT().AddArticle(gomock.Any()).
		DoAndReturn(func(article *dal.Article) (int64, error) {
			article.Id = 42
			return 42, nil
		})
	h.mockRepo.EXPECT().SetArticleApId(int64(42), shared.ArticleApId("ursula", localHost, 42)).Return(nil)
	h.mockRepo.EXPECT().GetFollowers(author.Id, true).Return([]*dal.Actor{follower}, nil)
	h.mockDeliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), gomock.Any(), logic.TierSecondary).
		DoAndReturn(func(_ context.Context, act *dto.ActivityOut, recipients []*dal.Actor, tier logic.DeliveryTier) (*logic.DeliveryReport, error) {
			assert.Equal(t, "Create", act.Type)
			assert.True(t, act.Sendable())
			return &logic.DeliveryReport{Tier: tier}, nil
		})

	article, err := publisher.Publish(context.Background(), author.Id, "Salutations",
		"Hello *there*", "", "", when)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), article.Id)
	assert.Equal(t, shared.ArticleApId("ursula", localHost, 42), article.ApId)
	assert.Equal(t, "<p>Hello <em>there</em></p>", article.BodyHtml)
}

func TestUpdate_NonAuthorIsUnauthorized(t *testing.T) {

	ctrl, h, publisher := setupPublisherTest(t)
	defer ctrl.Finish()

	article := &dal.Article{Id: 42, AuthorId: 1}
	h.mockRepo.EXPECT().GetArticle(article.Id).Return(article, nil)

	err := publisher.Update(context.Background(), article.Id, 2, "t", "b", "", "")

	assert.ErrorIs(t, err, logic.ErrUnauthorized)
	assert.Equal(t, dto.ResultError401, logic.ResultOf(err))
}

func TestDelete_CascadeSkipsAlreadyNotifiedInboxes(t *testing.T) {

	ctrl, h, publisher := setupPublisherTest(t)
	defer ctrl.Finish()

	author := localActor(1, "ursula")
	f1 := foreignActor(7, "astrid")  // follows both author and sharer1
	f2 := foreignActor(8, "bjorn")   // follows sharer1 only
	f3 := foreignActor(9, "carmen")  // follows sharer2 only
	article := &dal.Article{Id: 42, AuthorId: author.Id,
		ApId: "https://ink.dev/ap/@ursula/articles/42", CreatedAt: time.Now().UTC()}

	h.mockRepo.EXPECT().GetArticle(article.Id).Return(article, nil).AnyTimes()
	h.mockResolver.EXPECT().ResolveId(author.Id).Return(author, nil)
	h.mockResolver.EXPECT().ActorUrl(author).Return("https://ink.dev/ap/@ursula").AnyTimes()

	// Primary batch: the author's own followers
	h.mockRepo.EXPECT().GetFollowers(author.Id, true).Return([]*dal.Actor{f1}, nil)
	primaryReport := &logic.DeliveryReport{
		Tier: logic.TierPrimary,
		PerRecipient: map[string]logic.DeliveryResult{
			shared.ActorInboxUrl(f1.Handle, f1.Host): {Ok: true},
		},
	}
	h.mockDeliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), gomock.Any(), logic.TierPrimary).
		Return(primaryReport, nil)

	// Secondary batch: the sharers' followers, minus who already got it
	h.mockRepo.EXPECT().GetSharerIds(article.Id).Return([]int64{20, 21}, nil)
	h.mockRepo.EXPECT().GetFollowers(int64(20), true).Return([]*dal.Actor{f1, f2}, nil)
	h.mockRepo.EXPECT().GetFollowers(int64(21), true).Return([]*dal.Actor{f3}, nil)
	h.mockRepo.EXPECT().GetActorById(author.Id).Return(author, nil)
	h.mockDeliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), gomock.Any(), logic.TierSecondary).
		DoAndReturn(func(_ context.Context, act *dto.ActivityOut, recipients []*dal.Actor, tier logic.DeliveryTier) (*logic.DeliveryReport, error) {
			assert.Equal(t, "Delete", act.Type)
			assert.ElementsMatch(t, []int64{f2.Id, f3.Id}, actorIds(recipients))
			return &logic.DeliveryReport{Tier: tier}, nil
		})

	h.mockRepo.EXPECT().DeleteArticle(article.Id).Return(nil)

	err := publisher.Delete(context.Background(), article.Id, author.Id)

	assert.NoError(t, err)
}

func TestDelete_PrimaryFailureAbortsBeforeLocalDelete(t *testing.T) {

	ctrl, h, publisher := setupPublisherTest(t)
	defer ctrl.Finish()

	author := localActor(1, "ursula")
	f1 := foreignActor(7, "astrid")
	article := &dal.Article{Id: 42, AuthorId: author.Id,
		ApId: "https://ink.dev/ap/@ursula/articles/42", CreatedAt: time.Now().UTC()}

	h.mockRepo.EXPECT().GetArticle(article.Id).Return(article, nil)
	h.mockResolver.EXPECT().ResolveId(author.Id).Return(author, nil)
	h.mockResolver.EXPECT().ActorUrl(author).Return("https://ink.dev/ap/@ursula").AnyTimes()
	h.mockRepo.EXPECT().GetFollowers(author.Id, true).Return([]*dal.Actor{f1}, nil)
	h.mockDeliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), gomock.Any(), logic.TierPrimary).
		Return(nil, logic.ErrTransport)
	// No DeleteArticle expectation: the local copy stays

	err := publisher.Delete(context.Background(), article.Id, author.Id)

	assert.ErrorIs(t, err, logic.ErrTransport)
}
