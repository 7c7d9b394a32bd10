package logic

import (
	"fmt"

	"github.com/gorilla/feeds"

	"inkwell/dal"
	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_feed_builder.go -package mocks inkwell/logic IFeedBuilder

// IFeedBuilder renders a local user's recent articles as an RSS feed.
type IFeedBuilder interface {
	BuildUserFeed(handle string) (rssXml string, err error)
}

type feedBuilder struct {
	cfg      *shared.Config
	repo     dal.IRepo
	idb      shared.IdBuilder
	resolver IActorResolver
}

func NewFeedBuilder(cfg *shared.Config, repo dal.IRepo, resolver IActorResolver) IFeedBuilder {
	return &feedBuilder{cfg, repo, shared.IdBuilder{Host: cfg.Host}, resolver}
}

func (fb *feedBuilder) BuildUserFeed(handle string) (string, error) {

	actor, err := fb.resolver.Resolve(handle, "")
	if err != nil {
		return "", err
	}
	articles, err := fb.repo.GetArticlesByAuthor(actor.Id, fb.cfg.FeedItemCount)
	if err != nil {
		return "", err
	}

	title := actor.DisplayName
	if title == "" {
		title = "@" + actor.Handle
	}
	feed := &feeds.Feed{
		Title:       fmt.Sprintf("%s on %s", title, fb.cfg.Host),
		Link:        &feeds.Link{Href: fb.idb.UserUrl(actor.Handle)},
		Description: actor.Bio,
	}
	for _, article := range articles {
		item := &feeds.Item{
			Title:       article.Title,
			Link:        &feeds.Link{Href: fb.idb.LocalArticleUrl(actor.Handle, article.Id)},
			Description: article.Summary,
			Content:     article.BodyHtml,
			Created:     article.CreatedAt,
			Id:          article.ApId,
		}
		feed.Items = append(feed.Items, item)
		if feed.Created.Before(article.CreatedAt) {
			feed.Created = article.CreatedAt
		}
	}
	return feed.ToRss()
}
