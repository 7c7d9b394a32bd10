package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"inkwell/dal"
	"inkwell/dto"
	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_inbox.go -package mocks inkwell/logic IInbox

// IInbox dispatches activities POSTed to a local user's inbox. Activities
// are deduplicated on their id: federation peers may deliver the same
// activity more than once, and a replay must be a no-op.
type IInbox interface {
	HandleActivity(ctx context.Context, receivingUser string, bodyBytes []byte) error
}

type inbox struct {
	logger    shared.ILogger
	repo      dal.IRepo
	resolver  IActorResolver
	follows   IFollowService
	sanitizer *bluemonday.Policy
	metrics   IMetrics
}

func NewInbox(
	logger shared.ILogger,
	repo dal.IRepo,
	resolver IActorResolver,
	follows IFollowService,
	metrics IMetrics,
) IInbox {
	return &inbox{logger, repo, resolver, follows, bluemonday.UGCPolicy(), metrics}
}

func (ib *inbox) HandleActivity(ctx context.Context, receivingUser string, bodyBytes []byte) error {

	var base dto.ActivityInBase
	if err := json.Unmarshal(bodyBytes, &base); err != nil {
		return fmt.Errorf("%w: invalid activity: %v", ErrInvalidRequest, err)
	}
	if base.Id == "" || base.Actor == "" {
		return fmt.Errorf("%w: activity without id or actor", ErrInvalidRequest)
	}

	alreadyHandled, err := ib.repo.MarkActivityHandled(base.Id, time.Now().UTC())
	if err != nil {
		return err
	}
	if alreadyHandled {
		ib.logger.Infof("Already handled activity; ignoring: %s", base.Id)
		return nil
	}

	senderHandle, senderHost, err := shared.ParseActorUrl(base.Actor)
	if err != nil {
		return fmt.Errorf("%w: malformed actor: %v", ErrInvalidRequest, err)
	}

	switch base.Type {
	case "Follow":
		return ib.handleFollow(ctx, senderHandle, senderHost, receivingUser, bodyBytes)
	case "Undo":
		return ib.handleUndo(ctx, senderHandle, senderHost, receivingUser, bodyBytes)
	case "Create":
		return ib.handleCreate(senderHandle, senderHost, bodyBytes)
	case "Announce":
		return ib.handleAnnounce(ctx, senderHandle, senderHost, &base)
	case "Like":
		return ib.handleLike(senderHandle, senderHost, &base)
	default:
		ib.logger.Infof("Ignoring activity of type %s from %s", base.Type, base.Actor)
		return nil
	}
}

func (ib *inbox) handleFollow(ctx context.Context, senderHandle, senderHost, receivingUser string, bodyBytes []byte) error {

	var act dto.ActivityIn[string]
	if err := json.Unmarshal(bodyBytes, &act); err != nil {
		return fmt.Errorf("%w: invalid Follow: %v", ErrInvalidRequest, err)
	}
	followedHandle, _, err := shared.ParseActorUrl(act.Object)
	if err != nil {
		return fmt.Errorf("%w: malformed Follow object: %v", ErrInvalidRequest, err)
	}
	if followedHandle != receivingUser {
		return fmt.Errorf("%w: Follow object does not match inbox owner %s", ErrInvalidRequest, receivingUser)
	}
	_, err = ib.follows.ReceiveFollow(ctx, senderHandle, senderHost, receivingUser)
	return err
}

func (ib *inbox) handleUndo(ctx context.Context, senderHandle, senderHost, receivingUser string, bodyBytes []byte) error {

	var act dto.ActivityIn[dto.ActivityInBase]
	if err := json.Unmarshal(bodyBytes, &act); err != nil {
		return fmt.Errorf("%w: invalid Undo: %v", ErrInvalidRequest, err)
	}
	switch act.Object.Type {
	case "Follow":
		objUrl, ok := act.Object.Object.(string)
		if !ok {
			return fmt.Errorf("%w: Undo Follow object must be an actor url", ErrInvalidRequest)
		}
		followedHandle, _, err := shared.ParseActorUrl(objUrl)
		if err != nil {
			return fmt.Errorf("%w: malformed Undo Follow object: %v", ErrInvalidRequest, err)
		}
		if followedHandle != receivingUser {
			return fmt.Errorf("%w: Undo Follow object does not match inbox owner %s", ErrInvalidRequest, receivingUser)
		}
		return ib.follows.ReceiveUnfollow(ctx, senderHandle, senderHost, receivingUser)
	case "Like":
		apId, ok := act.Object.Object.(string)
		if !ok {
			return fmt.Errorf("%w: Undo Like object must be an article id", ErrInvalidRequest)
		}
		return ib.retractLike(senderHandle, senderHost, apId)
	default:
		ib.logger.Infof("Ignoring Undo of %s from %s@%s", act.Object.Type, senderHandle, senderHost)
		return nil
	}
}

// handleCreate stores a shadow copy of an article published by a foreign
// actor the instance knows about. Content is sanitized on the way in.
func (ib *inbox) handleCreate(senderHandle, senderHost string, bodyBytes []byte) error {

	var act dto.ActivityIn[dto.ArticleObject]
	if err := json.Unmarshal(bodyBytes, &act); err != nil {
		return fmt.Errorf("%w: invalid Create: %v", ErrInvalidRequest, err)
	}
	obj := &act.Object
	if obj.Id == "" {
		return fmt.Errorf("%w: Create object without id", ErrInvalidRequest)
	}
	ib.metrics.ActivityReceived("Create")

	author, _, err := ib.resolver.GetOrCreate(senderHandle, senderHost)
	if err != nil {
		return err
	}
	existing, err := ib.repo.GetArticleByApId(obj.Id)
	if err != nil {
		return err
	}
	if existing != nil {
		ib.logger.Infof("Already have article %s; ignoring Create", obj.Id)
		return nil
	}
	createdAt, err := time.Parse(time.RFC3339, obj.Published)
	if err != nil {
		createdAt = time.Now().UTC()
	}
	article := &dal.Article{
		AuthorId:  author.Id,
		ApId:      obj.Id,
		Title:     obj.Name,
		BodyHtml:  ib.sanitizer.Sanitize(obj.Content),
		Summary:   obj.Summary,
		CreatedAt: createdAt,
	}
	_, err = ib.repo.AddArticle(article)
	return err
}

func (ib *inbox) handleAnnounce(ctx context.Context, senderHandle, senderHost string, base *dto.ActivityInBase) error {

	apId, err := objectApId(base.Object)
	if err != nil {
		return err
	}
	article, err := ib.repo.GetArticleByApId(apId)
	if err != nil {
		return err
	}
	if article == nil {
		ib.logger.Infof("Announce of unknown article %s; ignoring", apId)
		return nil
	}
	ib.metrics.ActivityReceived("Announce")

	announcer, _, err := ib.resolver.GetOrCreate(senderHandle, senderHost)
	if err != nil {
		return err
	}
	isNew, err := ib.repo.AddShareIfNotExist(announcer.Id, article.Id, time.Now().UTC())
	if err != nil {
		return err
	}
	if !isNew {
		return nil
	}
	return ib.repo.IncrementSharesCount(article.Id)
}

func (ib *inbox) handleLike(senderHandle, senderHost string, base *dto.ActivityInBase) error {

	apId, err := objectApId(base.Object)
	if err != nil {
		return err
	}
	article, err := ib.repo.GetArticleByApId(apId)
	if err != nil {
		return err
	}
	if article == nil {
		ib.logger.Infof("Like of unknown article %s; ignoring", apId)
		return nil
	}
	ib.metrics.ActivityReceived("Like")

	liker, _, err := ib.resolver.GetOrCreate(senderHandle, senderHost)
	if err != nil {
		return err
	}
	isNew, err := ib.repo.AddLikeIfNotExist(liker.Id, article.Id)
	if err != nil {
		return err
	}
	if !isNew {
		return nil
	}
	return ib.repo.IncrementLikesCount(article.Id)
}

func (ib *inbox) retractLike(senderHandle, senderHost, apId string) error {

	article, err := ib.repo.GetArticleByApId(apId)
	if err != nil {
		return err
	}
	if article == nil {
		return nil
	}
	liker, err := ib.resolver.Resolve(senderHandle, senderHost)
	if err != nil {
		return err
	}
	removed, err := ib.repo.RemoveLike(liker.Id, article.Id)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}
	return ib.repo.DecrementLikesCount(article.Id)
}

// objectApId accepts either a bare id string or an embedded object with
// an id field, which is how different implementations send Announce/Like.
func objectApId(raw any) (string, error) {
	if str, ok := raw.(string); ok {
		return str, nil
	}
	if obj, ok := raw.(map[string]interface{}); ok {
		if id, ok := obj["id"].(string); ok {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: cannot extract object id", ErrInvalidRequest)
}
