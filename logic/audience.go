package logic

import (
	"inkwell/dal"
	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_audience.go -package mocks inkwell/logic IAudienceResolver

// IAudienceResolver computes recipient sets for outbound distributions.
// Sets headed for federation dispatch are deduplicated on the destination
// inbox URL, not on actor identity: two handles could resolve to one inbox
// under multi-handle hosting, and one inbox must not get two POSTs from a
// single computation.
type IAudienceResolver interface {
	// DirectFollowers returns actors with an ACTIVE edge onto actorId.
	// With foreignOnly, local followers are dropped; callers fanning out
	// in-network want the unfiltered list.
	DirectFollowers(actorId int64, foreignOnly bool) ([]*dal.Actor, error)
	// SharersAudience is the union of the foreign direct followers of
	// every sharer of the article, plus the article's author if foreign,
	// deduplicated by inbox.
	SharersAudience(articleId int64) ([]*dal.Actor, error)
}

type audienceResolver struct {
	logger shared.ILogger
	repo   dal.IRepo
}

func NewAudienceResolver(logger shared.ILogger, repo dal.IRepo) IAudienceResolver {
	return &audienceResolver{logger, repo}
}

func (res *audienceResolver) DirectFollowers(actorId int64, foreignOnly bool) ([]*dal.Actor, error) {

	followers, err := res.repo.GetFollowers(actorId, true)
	if err != nil {
		return nil, err
	}
	if !foreignOnly {
		return followers, nil
	}
	var foreign []*dal.Actor
	for _, f := range followers {
		if !f.IsLocal() {
			foreign = append(foreign, f)
		}
	}
	return foreign, nil
}

func (res *audienceResolver) SharersAudience(articleId int64) ([]*dal.Actor, error) {

	article, err := res.repo.GetArticle(articleId)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	sharerIds, err := res.repo.GetSharerIds(articleId)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var audience []*dal.Actor
	add := func(a *dal.Actor) {
		if a.IsLocal() {
			return
		}
		inbox := shared.ActorInboxUrl(a.Handle, a.Host)
		if _, exists := seen[inbox]; exists {
			return
		}
		seen[inbox] = struct{}{}
		audience = append(audience, a)
	}

	for _, sharerId := range sharerIds {
		followers, err := res.repo.GetFollowers(sharerId, true)
		if err != nil {
			return nil, err
		}
		for _, f := range followers {
			add(f)
		}
	}

	author, err := res.repo.GetActorById(article.AuthorId)
	if err != nil {
		return nil, err
	}
	if author != nil {
		add(author)
	}

	return audience, nil
}
