package logic

import (
	"context"
	"fmt"

	"inkwell/dal"
	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_follow_service.go -package mocks inkwell/logic IFollowService

// IFollowService orchestrates follow and unfollow flows in both
// directions. Outbound flows are initiated by a local user and must reach
// the foreign followee or be rolled back; inbound flows arrive over
// federation and only touch local state.
type IFollowService interface {
	// SendFollowRequest lets a local user follow another actor. Monikers
	// are @handle or @handle@host. Returns the resulting edge state.
	SendFollowRequest(ctx context.Context, followerMoniker, followedMoniker string) (state int, err error)
	// ReceiveFollow handles a foreign actor's follow of a local user.
	ReceiveFollow(ctx context.Context, followerHandle, followerHost, followedHandle string) (state int, err error)
	SendUnfollow(ctx context.Context, followerMoniker, followedMoniker string) error
	ReceiveUnfollow(ctx context.Context, followerHandle, followerHost, followedHandle string) error
}

type followService struct {
	logger      shared.ILogger
	resolver    IActorResolver
	graph       IFollowGraph
	builder     IActivityBuilder
	deliverer   IDeliverer
	recommender IFollowRecommender
	metrics     IMetrics
}

func NewFollowService(
	logger shared.ILogger,
	resolver IActorResolver,
	graph IFollowGraph,
	builder IActivityBuilder,
	deliverer IDeliverer,
	recommender IFollowRecommender,
	metrics IMetrics,
) IFollowService {
	return &followService{logger, resolver, graph, builder, deliverer, recommender, metrics}
}

func (fs *followService) SendFollowRequest(ctx context.Context, followerMoniker, followedMoniker string) (int, error) {

	follower, followed, wasCreated, err := fs.resolvePair(followerMoniker, followedMoniker)
	if err != nil {
		return 0, err
	}

	state, err := fs.graph.Request(follower, followed)
	if err != nil {
		return 0, err
	}

	if !followed.IsLocal() {
		activity := fs.builder.BuildFollow(fs.resolver.ActorUrl(follower),
			fs.resolver.ActorUrl(followed), true)
		fs.metrics.ActivitySent("Follow")
		_, err = fs.deliverer.Deliver(ctx, activity, []*dal.Actor{followed}, TierPrimary)
		if err != nil {
			// The edge and any shadow row created for this request must
			// not outlive the failed delivery
			if rbErr := fs.graph.Rollback(follower.Id, followed.Id, wasCreated); rbErr != nil {
				fs.logger.Errorf("Follow rollback failed for (%d, %d): %v", follower.Id, followed.Id, rbErr)
			}
			return 0, err
		}
	}

	if state == dal.FollowActive {
		fs.recommender.NotifyFollowChange(follower.Id, followed.Id, true)
	}
	return state, nil
}

func (fs *followService) ReceiveFollow(ctx context.Context, followerHandle, followerHost, followedHandle string) (int, error) {

	if followerHost == "" {
		return 0, fmt.Errorf("%w: federated follow from a local actor", ErrInvalidRequest)
	}
	follower, _, err := fs.resolver.GetOrCreate(followerHandle, followerHost)
	if err != nil {
		return 0, err
	}
	followed, err := fs.resolver.Resolve(followedHandle, "")
	if err != nil {
		return 0, err
	}

	state, err := fs.graph.Request(follower, followed)
	if err != nil {
		return 0, err
	}
	fs.metrics.ActivityReceived("Follow")

	// A pending edge is the approver's business; the recommender only
	// hears about edges that went active
	if state == dal.FollowActive {
		fs.recommender.NotifyFollowChange(follower.Id, followed.Id, true)
	}
	return state, nil
}

func (fs *followService) SendUnfollow(ctx context.Context, followerMoniker, followedMoniker string) error {

	followerHandle, followerHost, err := shared.ParseMoniker(followerMoniker)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if followerHost != "" {
		return fmt.Errorf("%w: unfollow must come from a local user", ErrInvalidRequest)
	}
	follower, err := fs.resolver.Resolve(followerHandle, "")
	if err != nil {
		return err
	}
	followedHandle, followedHost, err := shared.ParseMoniker(followedMoniker)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	followed, err := fs.resolver.Resolve(followedHandle, followedHost)
	if err != nil {
		return err
	}

	if !followed.IsLocal() {
		inner := fs.builder.BuildFollow(fs.resolver.ActorUrl(follower),
			fs.resolver.ActorUrl(followed), false)
		undo, err := fs.builder.BuildUndo(fs.resolver.ActorUrl(follower), inner,
			[]string{fs.resolver.ActorUrl(followed)})
		if err != nil {
			return err
		}
		fs.metrics.ActivitySent("Undo")
		if _, err = fs.deliverer.Deliver(ctx, undo, []*dal.Actor{followed}, TierPrimary); err != nil {
			return err
		}
	}

	if err = fs.graph.Unfollow(follower.Id, followed.Id); err != nil {
		return err
	}
	fs.recommender.NotifyFollowChange(follower.Id, followed.Id, false)
	return nil
}

func (fs *followService) ReceiveUnfollow(ctx context.Context, followerHandle, followerHost, followedHandle string) error {

	follower, err := fs.resolver.Resolve(followerHandle, followerHost)
	if err != nil {
		return err
	}
	followed, err := fs.resolver.Resolve(followedHandle, "")
	if err != nil {
		return err
	}
	fs.metrics.ActivityReceived("Undo")

	if err = fs.graph.Unfollow(follower.Id, followed.Id); err != nil {
		return err
	}
	fs.recommender.NotifyFollowChange(follower.Id, followed.Id, false)
	return nil
}

// resolvePair resolves a local follower and a possibly-foreign followee,
// reporting whether the followee's record was created just now.
func (fs *followService) resolvePair(followerMoniker, followedMoniker string) (
	follower, followed *dal.Actor, followedWasCreated bool, err error,
) {
	followerHandle, followerHost, err := shared.ParseMoniker(followerMoniker)
	if err != nil {
		return nil, nil, false, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if followerHost != "" {
		return nil, nil, false, fmt.Errorf("%w: follow request must come from a local user", ErrInvalidRequest)
	}
	follower, err = fs.resolver.Resolve(followerHandle, "")
	if err != nil {
		return nil, nil, false, err
	}

	followedHandle, followedHost, err := shared.ParseMoniker(followedMoniker)
	if err != nil {
		return nil, nil, false, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	followed, followedWasCreated, err = fs.resolver.GetOrCreate(followedHandle, followedHost)
	if err != nil {
		return nil, nil, false, err
	}
	if follower.Id == followed.Id {
		return nil, nil, false, fmt.Errorf("%w: cannot follow yourself", ErrInvalidRequest)
	}
	return follower, followed, followedWasCreated, nil
}
