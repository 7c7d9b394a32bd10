package logic

import (
	"context"
	"fmt"
	"time"

	"inkwell/dal"
	"inkwell/dto"
	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_announcer.go -package mocks inkwell/logic IAnnouncer

type IAnnouncer interface {
	Announce(ctx context.Context, articleId, announcerId int64, when time.Time) error
}

type announcer struct {
	logger    shared.ILogger
	repo      dal.IRepo
	idb       shared.IdBuilder
	resolver  IActorResolver
	builder   IActivityBuilder
	audience  IAudienceResolver
	deliverer IDeliverer
	metrics   IMetrics
}

func NewAnnouncer(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	resolver IActorResolver,
	builder IActivityBuilder,
	audience IAudienceResolver,
	deliverer IDeliverer,
	metrics IMetrics,
) IAnnouncer {
	return &announcer{
		logger:    logger,
		repo:      repo,
		idb:       shared.IdBuilder{Host: cfg.Host},
		resolver:  resolver,
		builder:   builder,
		audience:  audience,
		deliverer: deliverer,
		metrics:   metrics,
	}
}

// Announce re-broadcasts an article to the announcer's followers. The
// announcer's own share bookkeeping and the author's counter are updated
// in-process; everything over the wire is best-effort.
func (an *announcer) Announce(ctx context.Context, articleId, announcerId int64, when time.Time) error {

	announcer, err := an.resolver.ResolveId(announcerId)
	if err != nil {
		return err
	}
	article, err := an.repo.GetArticle(articleId)
	if err != nil {
		return err
	}
	if article == nil {
		return fmt.Errorf("%w: no such article: %d", ErrNotFound, articleId)
	}
	if article.AuthorId == announcerId {
		return fmt.Errorf("%w: cannot announce own article", ErrInvalidRequest)
	}
	author, err := an.resolver.ResolveId(article.AuthorId)
	if err != nil {
		return err
	}

	articleObj := an.articleObject(article, author)
	activity := an.builder.BuildAnnounce(an.resolver.ActorUrl(announcer), articleObj,
		when, []string{shared.PublicStream})

	recipients, err := an.audience.DirectFollowers(announcerId, true)
	if err != nil {
		return err
	}
	recipients = appendActorIfMissing(recipients, author)
	recipients = appendActorIfMissing(recipients, announcer)

	an.metrics.ActivitySent("Announce")
	if _, err = an.deliverer.Deliver(ctx, activity, recipients, TierSecondary); err != nil {
		return err
	}

	// Record the share only once the batch has been dispatched
	isNew, err := an.repo.AddShareIfNotExist(announcerId, articleId, when)
	if err != nil {
		return err
	}
	if !isNew {
		an.logger.Infof("Share of article %d by actor %d already recorded", articleId, announcerId)
		return nil
	}
	return an.repo.IncrementSharesCount(articleId)
}

func (an *announcer) articleObject(article *dal.Article, author *dal.Actor) *dto.ArticleObject {
	articleUrl := article.ApId
	if author.IsLocal() {
		articleUrl = an.idb.LocalArticleUrl(author.Handle, article.Id)
	}
	return an.builder.BuildArticle(article.ApId, article.Title, article.CreatedAt,
		an.resolver.ActorUrl(author), article.BodyHtml, article.Summary, articleUrl)
}

// appendActorIfMissing adds actor to the slice unless an entry with the
// same id is already present.
func appendActorIfMissing(actors []*dal.Actor, actor *dal.Actor) []*dal.Actor {
	for _, a := range actors {
		if a.Id == actor.Id {
			return actors
		}
	}
	return append(actors, actor)
}
