package logic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inkwell/dto"
	"inkwell/shared"
)

func testBuilder() IActivityBuilder {
	return NewActivityBuilder(&shared.Config{Host: "ink.dev"})
}

func TestBuildFollow_SendableCarriesEnvelope(t *testing.T) {

	ab := testBuilder()
	followerUrl := "https://ink.dev/ap/@ursula"
	followedUrl := "https://far.example/ap/@astrid"

	act := ab.BuildFollow(followerUrl, followedUrl, true)

	assert.True(t, act.Sendable())
	assert.Equal(t, dto.ActivityContext, act.Context)
	assert.NotEmpty(t, act.Id)
	assert.Equal(t, "Follow", act.Type)
	assert.Equal(t, followerUrl, act.Actor)
	assert.Equal(t, followedUrl, act.Object)
	if assert.NotNil(t, act.To) {
		assert.Equal(t, []string{followedUrl}, *act.To)
	}
}

func TestBuildFollow_EmbeddableHasNoEnvelope(t *testing.T) {

	ab := testBuilder()

	act := ab.BuildFollow("https://ink.dev/ap/@ursula", "https://far.example/ap/@astrid", false)

	assert.False(t, act.Sendable())
	assert.Empty(t, act.Id)
	assert.Nil(t, act.To)
}

func TestBuildLike_SendableAddressesAuthor(t *testing.T) {

	ab := testBuilder()
	likerUrl := "https://ink.dev/ap/@ursula"
	authorUrl := "https://far.example/ap/@astrid"
	articleApId := "https://far.example/ap/@astrid/articles/7"

	act := ab.BuildLike(likerUrl, articleApId, authorUrl, true)

	assert.True(t, act.Sendable())
	assert.NotEmpty(t, act.Id)
	assert.Equal(t, "Like", act.Type)
	assert.Equal(t, likerUrl, act.Actor)
	assert.Equal(t, articleApId, act.Object)
	if assert.NotNil(t, act.To) {
		assert.Equal(t, []string{authorUrl}, *act.To)
	}
}

func TestBuildLike_EmbeddableHasNoEnvelope(t *testing.T) {

	ab := testBuilder()

	act := ab.BuildLike("https://ink.dev/ap/@ursula",
		"https://far.example/ap/@astrid/articles/7",
		"https://far.example/ap/@astrid", false)

	assert.False(t, act.Sendable())
	assert.Empty(t, act.Id)
	assert.Nil(t, act.To)
}

func TestBuildUndo_WrapsEmbeddableForm(t *testing.T) {

	ab := testBuilder()
	followerUrl := "https://ink.dev/ap/@ursula"
	followedUrl := "https://far.example/ap/@astrid"
	inner := ab.BuildFollow(followerUrl, followedUrl, false)

	undo, err := ab.BuildUndo(followerUrl, inner, []string{followedUrl})

	assert.NoError(t, err)
	assert.True(t, undo.Sendable())
	embedded, ok := undo.Object.(*dto.ActivityOut)
	if assert.True(t, ok) {
		assert.False(t, embedded.Sendable())
		assert.Nil(t, embedded.To)
		assert.Empty(t, embedded.Id)
	}
}

func TestBuildUndo_RejectsSendableInner(t *testing.T) {

	ab := testBuilder()
	followerUrl := "https://ink.dev/ap/@ursula"
	followedUrl := "https://far.example/ap/@astrid"
	inner := ab.BuildFollow(followerUrl, followedUrl, true)

	undo, err := ab.BuildUndo(followerUrl, inner, []string{followedUrl})

	assert.Nil(t, undo)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestBuildAnnounce_CarriesArticleObject(t *testing.T) {

	ab := testBuilder()
	when := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	article := ab.BuildArticle("https://ink.dev/ap/@ursula/articles/42", "On Writing", when,
		"https://ink.dev/ap/@ursula", "<p>Words.</p>", "", "https://ink.dev/@ursula/articles/42")

	act := ab.BuildAnnounce("https://ink.dev/ap/@sam", article, when, []string{shared.PublicStream})

	assert.Equal(t, "Announce", act.Type)
	assert.True(t, act.Sendable())
	assert.Equal(t, shared.TimestampRfc(when), act.Published)
	obj, ok := act.Object.(*dto.ArticleObject)
	if assert.True(t, ok) {
		assert.Equal(t, "Article", obj.Type)
		assert.Equal(t, "On Writing", obj.Name)
	}
}
