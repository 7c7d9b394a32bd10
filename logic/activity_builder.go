package logic

import (
	"fmt"
	"time"

	"inkwell/dto"
	"inkwell/shared"
)

// IActivityBuilder constructs outbound activity documents. Pure
// construction, no I/O. A sendable activity carries the full envelope
// (@context, id, to); an embeddable one omits it so that it can be nested
// inside another activity.
type IActivityBuilder interface {
	BuildArticle(apId, title string, published time.Time, actorUrl, bodyHtml, summary, articleUrl string) *dto.ArticleObject
	BuildCreate(actorUrl string, article *dto.ArticleObject, to []string) *dto.ActivityOut
	BuildUpdate(actorUrl string, article *dto.ArticleObject, to []string) *dto.ActivityOut
	BuildDelete(deleterUrl string, article *dto.ArticleObject, to []string) *dto.ActivityOut
	BuildAnnounce(actorUrl string, article *dto.ArticleObject, published time.Time, to []string) *dto.ActivityOut
	BuildFollow(followerUrl, followedUrl string, sendable bool) *dto.ActivityOut
	BuildLike(actorUrl, objectApId, authorUrl string, sendable bool) *dto.ActivityOut
	BuildUndo(actorUrl string, inner *dto.ActivityOut, to []string) (*dto.ActivityOut, error)
}

type activityBuilder struct {
	idb shared.IdBuilder
}

func NewActivityBuilder(cfg *shared.Config) IActivityBuilder {
	return &activityBuilder{shared.IdBuilder{Host: cfg.Host}}
}

// envelope stamps the fields that make an activity sendable.
func (ab *activityBuilder) envelope(act *dto.ActivityOut, to []string) *dto.ActivityOut {
	act.Context = dto.ActivityContext
	act.Id = ab.idb.NewActivityId()
	if to != nil {
		act.To = &to
	}
	return act
}

func (ab *activityBuilder) BuildArticle(apId, title string, published time.Time,
	actorUrl, bodyHtml, summary, articleUrl string,
) *dto.ArticleObject {
	return &dto.ArticleObject{
		Type:         "Article",
		Id:           apId,
		Name:         title,
		Published:    shared.TimestampRfc(published),
		AttributedTo: actorUrl,
		Content:      bodyHtml,
		Summary:      summary,
		Url:          articleUrl,
	}
}

func (ab *activityBuilder) BuildCreate(actorUrl string, article *dto.ArticleObject, to []string) *dto.ActivityOut {
	return ab.envelope(&dto.ActivityOut{
		Type:   "Create",
		Actor:  actorUrl,
		Object: article,
	}, to)
}

func (ab *activityBuilder) BuildUpdate(actorUrl string, article *dto.ArticleObject, to []string) *dto.ActivityOut {
	return ab.envelope(&dto.ActivityOut{
		Type:   "Update",
		Actor:  actorUrl,
		Object: article,
	}, to)
}

func (ab *activityBuilder) BuildDelete(deleterUrl string, article *dto.ArticleObject, to []string) *dto.ActivityOut {
	return ab.envelope(&dto.ActivityOut{
		Type:   "Delete",
		Actor:  deleterUrl,
		Object: article,
	}, to)
}

func (ab *activityBuilder) BuildAnnounce(actorUrl string, article *dto.ArticleObject,
	published time.Time, to []string,
) *dto.ActivityOut {
	return ab.envelope(&dto.ActivityOut{
		Type:      "Announce",
		Actor:     actorUrl,
		Published: shared.TimestampRfc(published),
		Object:    article,
	}, to)
}

func (ab *activityBuilder) BuildFollow(followerUrl, followedUrl string, sendable bool) *dto.ActivityOut {
	act := &dto.ActivityOut{
		Type:   "Follow",
		Actor:  followerUrl,
		Object: followedUrl,
	}
	if sendable {
		ab.envelope(act, []string{followedUrl})
	}
	return act
}

func (ab *activityBuilder) BuildLike(actorUrl, objectApId, authorUrl string, sendable bool) *dto.ActivityOut {
	act := &dto.ActivityOut{
		Type:   "Like",
		Actor:  actorUrl,
		Object: objectApId,
	}
	if sendable {
		ab.envelope(act, []string{authorUrl})
	}
	return act
}

// BuildUndo wraps an earlier activity for retraction. The inner activity
// must be the embeddable form; a nested envelope is a builder invariant
// violation, not something to silently pass through.
func (ab *activityBuilder) BuildUndo(actorUrl string, inner *dto.ActivityOut, to []string) (*dto.ActivityOut, error) {
	if inner.Sendable() {
		return nil, fmt.Errorf("%w: cannot embed an enveloped %s activity inside Undo", ErrInvalidRequest, inner.Type)
	}
	return ab.envelope(&dto.ActivityOut{
		Type:   "Undo",
		Actor:  actorUrl,
		Object: inner,
	}, to), nil
}
