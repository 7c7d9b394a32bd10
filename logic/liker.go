package logic

import (
	"context"
	"fmt"

	"inkwell/dal"
	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_liker.go -package mocks inkwell/logic ILiker

// ILiker records likes of articles and retracts them. When the article's
// author lives elsewhere, the Like travels to their inbox; retraction
// sends an Undo wrapping the original Like.
type ILiker interface {
	Like(ctx context.Context, userId, articleId int64) error
	Unlike(ctx context.Context, userId, articleId int64) error
}

type liker struct {
	logger    shared.ILogger
	repo      dal.IRepo
	resolver  IActorResolver
	builder   IActivityBuilder
	deliverer IDeliverer
	metrics   IMetrics
}

func NewLiker(
	logger shared.ILogger,
	repo dal.IRepo,
	resolver IActorResolver,
	builder IActivityBuilder,
	deliverer IDeliverer,
	metrics IMetrics,
) ILiker {
	return &liker{logger, repo, resolver, builder, deliverer, metrics}
}

func (lk *liker) Like(ctx context.Context, userId, articleId int64) error {

	user, article, author, err := lk.resolveParticipants(userId, articleId)
	if err != nil {
		return err
	}

	isNew, err := lk.repo.AddLikeIfNotExist(userId, articleId)
	if err != nil {
		return err
	}
	if !isNew {
		return fmt.Errorf("%w: actor %d already likes article %d", ErrDuplicate, userId, articleId)
	}
	if err = lk.repo.IncrementLikesCount(articleId); err != nil {
		return err
	}

	if !author.IsLocal() {
		activity := lk.builder.BuildLike(lk.resolver.ActorUrl(user), article.ApId,
			lk.resolver.ActorUrl(author), true)
		lk.metrics.ActivitySent("Like")
		_, err = lk.deliverer.Deliver(ctx, activity, []*dal.Actor{author}, TierPrimary)
		if err != nil {
			// Unwind: a like the author never heard about is not kept
			if removed, rbErr := lk.repo.RemoveLike(userId, articleId); rbErr != nil {
				lk.logger.Errorf("Like rollback failed for (%d, %d): %v", userId, articleId, rbErr)
			} else if removed {
				if rbErr = lk.repo.DecrementLikesCount(articleId); rbErr != nil {
					lk.logger.Errorf("Like rollback failed for article %d: %v", articleId, rbErr)
				}
			}
			return err
		}
	}
	return nil
}

func (lk *liker) Unlike(ctx context.Context, userId, articleId int64) error {

	user, article, author, err := lk.resolveParticipants(userId, articleId)
	if err != nil {
		return err
	}

	if !author.IsLocal() {
		inner := lk.builder.BuildLike(lk.resolver.ActorUrl(user), article.ApId,
			lk.resolver.ActorUrl(author), false)
		undo, err := lk.builder.BuildUndo(lk.resolver.ActorUrl(user), inner,
			[]string{lk.resolver.ActorUrl(author)})
		if err != nil {
			return err
		}
		lk.metrics.ActivitySent("Undo")
		if _, err = lk.deliverer.Deliver(ctx, undo, []*dal.Actor{author}, TierPrimary); err != nil {
			return err
		}
	}

	removed, err := lk.repo.RemoveLike(userId, articleId)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}
	return lk.repo.DecrementLikesCount(articleId)
}

func (lk *liker) resolveParticipants(userId, articleId int64) (*dal.Actor, *dal.Article, *dal.Actor, error) {
	user, err := lk.resolver.ResolveId(userId)
	if err != nil {
		return nil, nil, nil, err
	}
	article, err := lk.repo.GetArticle(articleId)
	if err != nil {
		return nil, nil, nil, err
	}
	if article == nil {
		return nil, nil, nil, fmt.Errorf("%w: no such article: %d", ErrNotFound, articleId)
	}
	author, err := lk.resolver.ResolveId(article.AuthorId)
	if err != nil {
		return nil, nil, nil, err
	}
	return user, article, author, nil
}
