package logic

import (
	"fmt"

	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_approver.go -package mocks inkwell/logic IApprover

// IApprover decides the fate of pending follow requests onto private
// local users. Approval flips the edge to active; denial erases it.
type IApprover interface {
	Decide(followerMoniker, followedMoniker string, accept bool) error
}

type approver struct {
	logger      shared.ILogger
	resolver    IActorResolver
	graph       IFollowGraph
	recommender IFollowRecommender
}

func NewApprover(
	logger shared.ILogger,
	resolver IActorResolver,
	graph IFollowGraph,
	recommender IFollowRecommender,
) IApprover {
	return &approver{logger, resolver, graph, recommender}
}

func (ap *approver) Decide(followerMoniker, followedMoniker string, accept bool) error {

	followerHandle, followerHost, err := shared.ParseMoniker(followerMoniker)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	follower, err := ap.resolver.Resolve(followerHandle, followerHost)
	if err != nil {
		return err
	}

	followedHandle, followedHost, err := shared.ParseMoniker(followedMoniker)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if followedHost != "" {
		return fmt.Errorf("%w: can only decide follows of local users", ErrInvalidRequest)
	}
	followed, err := ap.resolver.Resolve(followedHandle, "")
	if err != nil {
		return err
	}

	if !accept {
		ap.logger.Infof("Follow request from %s onto %s denied", followerMoniker, followedMoniker)
		return ap.graph.Reject(follower.Id, followed.Id)
	}

	if err = ap.graph.Approve(follower.Id, followed.Id); err != nil {
		return err
	}
	ap.logger.Infof("Follow request from %s onto %s approved", followerMoniker, followedMoniker)
	ap.recommender.NotifyFollowChange(follower.Id, followed.Id, true)
	return nil
}
