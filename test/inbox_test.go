package test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inkwell/dal"
	"inkwell/logic"
	"inkwell/test/mocks"
)

type inboxHarness struct {
	mockLogger   *mocks.MockILogger
	mockRepo     *mocks.MockIRepo
	mockMetrics  *mocks.MockIMetrics
	mockResolver *mocks.MockIActorResolver
	mockFollows  *mocks.MockIFollowService
}

func setupInboxTest(t *testing.T) (*gomock.Controller, *inboxHarness, logic.IInbox) {

	ctrl := gomock.NewController(t)

	h := &inboxHarness{
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
		mockResolver: mocks.NewMockIActorResolver(ctrl),
		mockFollows:  mocks.NewMockIFollowService(ctrl),
	}
	stubLogger(h.mockLogger)
	stubMetrics(ctrl, h.mockMetrics)

	inbox := logic.NewInbox(h.mockLogger, h.mockRepo, h.mockResolver, h.mockFollows, h.mockMetrics)
	return ctrl, h, inbox
}

func followActivityJson() []byte {
	return []byte(fmt.Sprintf(`{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "https://%s/activities/follow-1",
		"type": "Follow",
		"actor": "https://%s/ap/@astrid",
		"object": "https://%s/ap/@bela"
	}`, foreignHost, foreignHost, localHost))
}

func TestInbox_DispatchesFollow(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().MarkActivityHandled(
		fmt.Sprintf("https://%s/activities/follow-1", foreignHost), gomock.Any()).
		Return(false, nil)
	h.mockFollows.EXPECT().ReceiveFollow(gomock.Any(), "astrid", foreignHost, "bela").
		Return(dal.FollowPending, nil)

	err := inbox.HandleActivity(context.Background(), "bela", followActivityJson())

	assert.NoError(t, err)
}

func TestInbox_ReplayedActivityIsNoop(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).
		Return(true, nil)
	// No further expectations: a replay must not touch anything

	err := inbox.HandleActivity(context.Background(), "bela", followActivityJson())

	assert.NoError(t, err)
}

func TestInbox_FollowOfWrongUserIsRejected(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := inbox.HandleActivity(context.Background(), "someone-else", followActivityJson())

	assert.ErrorIs(t, err, logic.ErrInvalidRequest)
}

func TestInbox_ActivityWithoutIdIsRejected(t *testing.T) {

	ctrl, _, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := []byte(`{"type": "Follow", "actor": "https://far.example/ap/@astrid"}`)
	err := inbox.HandleActivity(context.Background(), "bela", body)

	assert.ErrorIs(t, err, logic.ErrInvalidRequest)
}

func TestInbox_UndoFollowDispatchesUnfollow(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := []byte(fmt.Sprintf(`{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "https://%s/activities/undo-1",
		"type": "Undo",
		"actor": "https://%s/ap/@astrid",
		"object": {
			"type": "Follow",
			"actor": "https://%s/ap/@astrid",
			"object": "https://%s/ap/@bela"
		}
	}`, foreignHost, foreignHost, foreignHost, localHost))

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).
		Return(false, nil)
	h.mockFollows.EXPECT().ReceiveUnfollow(gomock.Any(), "astrid", foreignHost, "bela").
		Return(nil)

	err := inbox.HandleActivity(context.Background(), "bela", body)

	assert.NoError(t, err)
}

func TestInbox_UndoFollowOfWrongUserIsRejected(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := []byte(fmt.Sprintf(`{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "https://%s/activities/undo-2",
		"type": "Undo",
		"actor": "https://%s/ap/@astrid",
		"object": {
			"type": "Follow",
			"actor": "https://%s/ap/@astrid",
			"object": "https://%s/ap/@bela"
		}
	}`, foreignHost, foreignHost, foreignHost, localHost))

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).
		Return(false, nil)
	// No ReceiveUnfollow expectation: the embedded Follow names someone else

	err := inbox.HandleActivity(context.Background(), "casper", body)

	assert.ErrorIs(t, err, logic.ErrInvalidRequest)
}

func TestInbox_AnnounceOfKnownArticleRecordsShare(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	apId := "https://ink.dev/ap/@ursula/articles/42"
	body := []byte(fmt.Sprintf(`{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "https://%s/activities/announce-1",
		"type": "Announce",
		"actor": "https://%s/ap/@astrid",
		"object": "%s"
	}`, foreignHost, foreignHost, apId))

	announcer := foreignActor(7, "astrid")
	article := &dal.Article{Id: 42, AuthorId: 1, ApId: apId}

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).
		Return(false, nil)
	h.mockRepo.EXPECT().GetArticleByApId(apId).Return(article, nil)
	h.mockResolver.EXPECT().GetOrCreate("astrid", foreignHost).Return(announcer, false, nil)
	h.mockRepo.EXPECT().AddShareIfNotExist(announcer.Id, article.Id, gomock.Any()).Return(true, nil)
	h.mockRepo.EXPECT().IncrementSharesCount(article.Id).Return(nil)

	err := inbox.HandleActivity(context.Background(), "ursula", body)

	assert.NoError(t, err)
}

func TestInbox_UnknownActivityTypeIsIgnored(t *testing.T) {

	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	body := []byte(fmt.Sprintf(`{
		"id": "https://%s/activities/move-1",
		"type": "Move",
		"actor": "https://%s/ap/@astrid"
	}`, foreignHost, foreignHost))

	h.mockRepo.EXPECT().MarkActivityHandled(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := inbox.HandleActivity(context.Background(), "bela", body)

	assert.NoError(t, err)
}
