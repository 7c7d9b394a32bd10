package logic

import (
	"context"
	"fmt"
	"time"

	"inkwell/dal"
	"inkwell/dto"
	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_publisher.go -package mocks inkwell/logic IPublisher

// IPublisher owns the lifecycle of local articles: creation, edits and
// deletion, each with its federation fan-out. Only local authors publish;
// only the author may mutate or delete what they published.
type IPublisher interface {
	Publish(ctx context.Context, authorId int64, title, bodyMd, tags, summary string, when time.Time) (*dal.Article, error)
	Update(ctx context.Context, articleId, editorId int64, title, bodyMd, tags, summary string) error
	Delete(ctx context.Context, articleId, deleterId int64) error
}

type publisher struct {
	logger    shared.ILogger
	repo      dal.IRepo
	idb       shared.IdBuilder
	resolver  IActorResolver
	converter IContentConverter
	builder   IActivityBuilder
	audience  IAudienceResolver
	deliverer IDeliverer
	metrics   IMetrics
}

func NewPublisher(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	resolver IActorResolver,
	converter IContentConverter,
	builder IActivityBuilder,
	audience IAudienceResolver,
	deliverer IDeliverer,
	metrics IMetrics,
) IPublisher {
	return &publisher{
		logger:    logger,
		repo:      repo,
		idb:       shared.IdBuilder{Host: cfg.Host},
		resolver:  resolver,
		converter: converter,
		builder:   builder,
		audience:  audience,
		deliverer: deliverer,
		metrics:   metrics,
	}
}

func (pub *publisher) Publish(ctx context.Context, authorId int64,
	title, bodyMd, tags, summary string, when time.Time,
) (*dal.Article, error) {

	author, err := pub.resolver.ResolveId(authorId)
	if err != nil {
		return nil, err
	}
	if !author.IsLocal() {
		return nil, fmt.Errorf("%w: only local users can publish here", ErrInvalidRequest)
	}

	bodyHtml, err := pub.converter.MarkdownToHtml(bodyMd)
	if err != nil {
		return nil, err
	}

	article := &dal.Article{
		AuthorId:  authorId,
		Title:     title,
		BodyHtml:  bodyHtml,
		BodyMd:    bodyMd,
		Tags:      tags,
		Summary:   summary,
		CreatedAt: when,
	}
	if _, err = pub.repo.AddArticle(article); err != nil {
		return nil, err
	}
	// The federation id embeds the row id, so it can only be stamped now
	article.ApId = shared.ArticleApId(author.Handle, pub.idb.Host, article.Id)
	if err = pub.repo.SetArticleApId(article.Id, article.ApId); err != nil {
		return nil, err
	}
	pub.logger.Infof("Published article %d by %s", article.Id, author.Handle)

	activity := pub.builder.BuildCreate(pub.resolver.ActorUrl(author),
		pub.articleObject(article, author), []string{shared.PublicStream})
	pub.metrics.ActivitySent("Create")
	if err = pub.fanOutToFollowers(ctx, authorId, activity); err != nil {
		return nil, err
	}
	return article, nil
}

func (pub *publisher) Update(ctx context.Context, articleId, editorId int64,
	title, bodyMd, tags, summary string,
) error {

	article, author, err := pub.authorize(articleId, editorId, "update")
	if err != nil {
		return err
	}

	bodyHtml, err := pub.converter.MarkdownToHtml(bodyMd)
	if err != nil {
		return err
	}
	article.Title = title
	article.BodyHtml = bodyHtml
	article.BodyMd = bodyMd
	article.Tags = tags
	article.Summary = summary
	if err = pub.repo.UpdateArticle(article); err != nil {
		return err
	}

	activity := pub.builder.BuildUpdate(pub.resolver.ActorUrl(author),
		pub.articleObject(article, author), []string{shared.PublicStream})
	pub.metrics.ActivitySent("Update")
	return pub.fanOutToFollowers(ctx, article.AuthorId, activity)
}

// Delete removes an article and tells the federation about it. The
// author's own followers are the hard requirement; follower sets of
// actors who announced the article are notified best-effort, minus any
// inbox the first batch already covered.
func (pub *publisher) Delete(ctx context.Context, articleId, deleterId int64) error {

	article, author, err := pub.authorize(articleId, deleterId, "delete")
	if err != nil {
		return err
	}

	activity := pub.builder.BuildDelete(pub.resolver.ActorUrl(author),
		pub.articleObject(article, author), []string{shared.PublicStream})

	ownFollowers, err := pub.audience.DirectFollowers(article.AuthorId, true)
	if err != nil {
		return err
	}
	pub.metrics.ActivitySent("Delete")
	report, err := pub.deliverer.Deliver(ctx, activity, ownFollowers, TierPrimary)
	if err != nil {
		return err
	}

	sharersAudience, err := pub.audience.SharersAudience(articleId)
	if err != nil {
		return err
	}
	notified := report.Inboxes()
	var secondary []*dal.Actor
	for _, a := range sharersAudience {
		if _, done := notified[shared.ActorInboxUrl(a.Handle, a.Host)]; done {
			continue
		}
		secondary = append(secondary, a)
	}
	if _, err = pub.deliverer.Deliver(ctx, activity, secondary, TierSecondary); err != nil {
		return err
	}

	return pub.repo.DeleteArticle(articleId)
}

func (pub *publisher) authorize(articleId, actorId int64, what string) (*dal.Article, *dal.Actor, error) {
	article, err := pub.repo.GetArticle(articleId)
	if err != nil {
		return nil, nil, err
	}
	if article == nil {
		return nil, nil, fmt.Errorf("%w: no such article: %d", ErrNotFound, articleId)
	}
	if article.AuthorId != actorId {
		return nil, nil, fmt.Errorf("%w: only the author can %s article %d", ErrUnauthorized, what, articleId)
	}
	author, err := pub.resolver.ResolveId(article.AuthorId)
	if err != nil {
		return nil, nil, err
	}
	return article, author, nil
}

func (pub *publisher) articleObject(article *dal.Article, author *dal.Actor) *dto.ArticleObject {
	articleUrl := article.ApId
	if author.IsLocal() {
		articleUrl = pub.idb.LocalArticleUrl(author.Handle, article.Id)
	}
	return pub.builder.BuildArticle(article.ApId, article.Title, article.CreatedAt,
		pub.resolver.ActorUrl(author), article.BodyHtml, article.Summary, articleUrl)
}

func (pub *publisher) fanOutToFollowers(ctx context.Context, authorId int64, activity *dto.ActivityOut) error {
	followers, err := pub.audience.DirectFollowers(authorId, true)
	if err != nil {
		return err
	}
	_, err = pub.deliverer.Deliver(ctx, activity, followers, TierSecondary)
	return err
}
