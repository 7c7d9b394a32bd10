package logic

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"inkwell/dto"
	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_actor_retriever.go -package mocks inkwell/logic IActorRetriever

// IActorRetriever fetches the public actor document of a foreign actor.
type IActorRetriever interface {
	Retrieve(actorUrl string) (doc *dto.ActorDoc, err error)
}

const retrieveTimeoutSec = 10

type actorRetriever struct {
	cfg       *shared.Config
	userAgent shared.IUserAgent
}

func NewActorRetriever(cfg *shared.Config, userAgent shared.IUserAgent) IActorRetriever {
	return &actorRetriever{cfg, userAgent}
}

func (ar *actorRetriever) Retrieve(actorUrl string) (doc *dto.ActorDoc, err error) {

	client := &http.Client{Timeout: time.Second * retrieveTimeoutSec}
	var req *http.Request
	if req, err = http.NewRequest("GET", actorUrl, nil); err != nil {
		return nil, err
	}
	ar.userAgent.AddUserAgent(req)
	req.Header.Set("Accept", "application/activity+json")
	var resp *http.Response
	if resp, err = client.Do(req); err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get actor document; got status %v", resp.StatusCode)
	}

	var bodyBytes []byte
	if bodyBytes, err = io.ReadAll(resp.Body); err != nil {
		return nil, err
	}

	var obj dto.ActorDoc
	if err = json.Unmarshal(bodyBytes, &obj); err != nil {
		return nil, err
	}
	if obj.Id == "" || obj.PreferredUserName == "" {
		return nil, fmt.Errorf("actor document is missing required fields: %s", actorUrl)
	}

	return &obj, nil
}
