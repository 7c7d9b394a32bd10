package logic

import (
	"fmt"

	"inkwell/dal"
	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_follow_graph.go -package mocks inkwell/logic IFollowGraph

// IFollowGraph owns the lifecycle of follow edges. An edge is created by a
// request, flips PENDING to ACTIVE exactly once on approval, and is erased
// by unfollow or rejection; there is no terminal "rejected" state.
type IFollowGraph interface {
	// Request creates the edge. A public followee activates the edge
	// immediately; a private one gates it behind approval. Requesting an
	// edge that already exists fails with ErrDuplicate.
	Request(follower, followed *dal.Actor) (state int, err error)
	// Approve moves a PENDING edge to ACTIVE. Absent edges fail with
	// ErrNotFound, already-active ones with ErrDuplicate.
	Approve(followerId, followedId int64) error
	// Reject and Unfollow both erase the edge; erasing an absent edge is
	// not an error.
	Reject(followerId, followedId int64) error
	Unfollow(followerId, followedId int64) error
	// Rollback compensates a local-initiated follow whose foreign delivery
	// failed: the edge goes away, and so does the followed actor's shadow
	// row if it was created solely for this request.
	Rollback(followerId, followedId int64, alsoDeleteFollowedActor bool) error
}

type followGraph struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	metrics IMetrics
}

func NewFollowGraph(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo, metrics IMetrics) IFollowGraph {
	return &followGraph{cfg, logger, repo, metrics}
}

// refreshFollowerGauge is best-effort bookkeeping after any edge change.
func (fg *followGraph) refreshFollowerGauge() {
	count, err := fg.repo.GetActiveFollowCount()
	if err != nil {
		fg.logger.Warnf("Could not refresh follower count: %v", err)
		return
	}
	fg.metrics.TotalFollowers(count)
}

func (fg *followGraph) Request(follower, followed *dal.Actor) (int, error) {

	state := dal.FollowActive
	if followed.Private {
		fg.logger.Infof("Follow of private actor %s: waiting for approval", followed.Handle)
		state = dal.FollowPending
	}

	isNew, err := fg.repo.AddFollowIfNotExist(follower.Id, followed.Id, state)
	if err != nil {
		return 0, err
	}
	if !isNew {
		return 0, fmt.Errorf("%w: follow edge (%d, %d)", ErrDuplicate, follower.Id, followed.Id)
	}
	if state == dal.FollowActive {
		fg.refreshFollowerGauge()
	}
	return state, nil
}

func (fg *followGraph) Approve(followerId, followedId int64) error {

	edge, err := fg.repo.GetFollow(followerId, followedId)
	if err != nil {
		return err
	}
	if edge == nil {
		return fmt.Errorf("%w: follow edge (%d, %d)", ErrNotFound, followerId, followedId)
	}
	if edge.State == dal.FollowActive {
		return fmt.Errorf("%w: follow edge (%d, %d) is already active", ErrDuplicate, followerId, followedId)
	}
	if err = fg.repo.SetFollowState(followerId, followedId, dal.FollowActive); err != nil {
		return err
	}
	fg.refreshFollowerGauge()
	return nil
}

func (fg *followGraph) Reject(followerId, followedId int64) error {
	return fg.Unfollow(followerId, followedId)
}

func (fg *followGraph) Unfollow(followerId, followedId int64) error {
	if err := fg.repo.DeleteFollow(followerId, followedId); err != nil {
		return err
	}
	fg.refreshFollowerGauge()
	return nil
}

func (fg *followGraph) Rollback(followerId, followedId int64, alsoDeleteFollowedActor bool) error {

	fg.logger.Infof("Rolling back follow of actor #%d", followedId)
	if err := fg.repo.DeleteFollow(followerId, followedId); err != nil {
		return err
	}
	if alsoDeleteFollowedActor {
		if err := fg.repo.DeleteActor(followedId); err != nil {
			return err
		}
	}
	return nil
}
