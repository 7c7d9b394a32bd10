package logic

import (
	"fmt"

	"inkwell/dal"
	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_actor_resolver.go -package mocks inkwell/logic IActorResolver

// IActorResolver maps (handle, host) identities to actor records. An empty
// host means the actor lives on this instance. Foreign actors get a shadow
// record on first sight.
type IActorResolver interface {
	Resolve(handle, host string) (*dal.Actor, error)
	ResolveId(id int64) (*dal.Actor, error)
	// GetOrCreate returns the actor for (handle, host), fetching foreign
	// actor metadata and inserting a shadow record if this is the first
	// contact. wasCreated reports whether a fresh row was inserted.
	GetOrCreate(handle, host string) (actor *dal.Actor, wasCreated bool, err error)
	InboxUrl(actor *dal.Actor) (string, error)
	ActorUrl(actor *dal.Actor) string
}

type actorResolver struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	retriever IActorRetriever
	idb       shared.IdBuilder
}

func NewActorResolver(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	retriever IActorRetriever,
) IActorResolver {
	return &actorResolver{cfg, logger, repo, retriever, shared.IdBuilder{Host: cfg.Host}}
}

func (res *actorResolver) Resolve(handle, host string) (*dal.Actor, error) {
	actor, err := res.repo.GetActor(handle, host)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, fmt.Errorf("%w: actor %s", ErrNotFound, shared.MakeFullMoniker(host, handle))
	}
	return actor, nil
}

func (res *actorResolver) ResolveId(id int64) (*dal.Actor, error) {
	actor, err := res.repo.GetActorById(id)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, fmt.Errorf("%w: actor #%d", ErrNotFound, id)
	}
	return actor, nil
}

func (res *actorResolver) GetOrCreate(handle, host string) (*dal.Actor, bool, error) {

	actor, err := res.repo.GetActor(handle, host)
	if err != nil {
		return nil, false, err
	}
	if actor != nil {
		return actor, false, nil
	}

	if host == "" {
		// Local actors are never created as a side effect of federation
		return nil, false, fmt.Errorf("%w: local actor %s", ErrNotFound, handle)
	}

	// First contact with this foreign actor: fetch metadata, insert shadow
	doc, err := res.retriever.Retrieve(shared.ActorUrl(handle, host))
	if err != nil {
		res.logger.Infof("Could not retrieve foreign actor %s@%s: %v", handle, host, err)
		return nil, false, fmt.Errorf("%w: foreign actor %s@%s", ErrInvalidRequest, handle, host)
	}

	shadow := dal.Actor{
		Handle:      handle,
		Host:        host,
		DisplayName: doc.Name,
		Bio:         doc.Summary,
		Private:     doc.ManuallyApproves,
	}
	// The unique (handle, host) index makes concurrent first contacts
	// converge on a single row
	isNew, err := res.repo.AddActorIfNotExist(&shadow)
	if err != nil {
		return nil, false, err
	}
	return &shadow, isNew, nil
}

func (res *actorResolver) InboxUrl(actor *dal.Actor) (string, error) {
	if actor.IsLocal() {
		// The instance never delivers to itself over federation
		return "", fmt.Errorf("%w: no federation inbox for local actor %s", ErrInvalidRequest, actor.Handle)
	}
	return shared.ActorInboxUrl(actor.Handle, actor.Host), nil
}

func (res *actorResolver) ActorUrl(actor *dal.Actor) string {
	if actor.IsLocal() {
		return res.idb.UserUrl(actor.Handle)
	}
	return shared.ActorUrl(actor.Handle, actor.Host)
}
