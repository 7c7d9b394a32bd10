package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"inkwell/dal"
	"inkwell/dto"
	"inkwell/logic"
	"inkwell/shared"
)

type apiHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	metrics   logic.IMetrics
	resolver  logic.IActorResolver
	publisher logic.IPublisher
	announcer logic.IAnnouncer
	follows   logic.IFollowService
	approver  logic.IApprover
	liker     logic.ILiker
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	resolver logic.IActorResolver,
	publisher logic.IPublisher,
	announcer logic.IAnnouncer,
	follows logic.IFollowService,
	approver logic.IApprover,
	liker logic.ILiker,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		resolver:  resolver,
		publisher: publisher,
		announcer: announcer,
		follows:   follows,
		approver:  approver,
		liker:     liker,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/articles", func(w http.ResponseWriter, r *http.Request) { hg.postArticles(w, r) }},
		{"PUT", "/articles", func(w http.ResponseWriter, r *http.Request) { hg.putArticles(w, r) }},
		{"DELETE", "/articles", func(w http.ResponseWriter, r *http.Request) { hg.deleteArticles(w, r) }},
		{"POST", "/announces", func(w http.ResponseWriter, r *http.Request) { hg.postAnnounces(w, r) }},
		{"POST", "/follows", func(w http.ResponseWriter, r *http.Request) { hg.postFollows(w, r) }},
		{"DELETE", "/follows", func(w http.ResponseWriter, r *http.Request) { hg.deleteFollows(w, r) }},
		{"POST", "/approvals", func(w http.ResponseWriter, r *http.Request) { hg.postApprovals(w, r) }},
		{"POST", "/likes", func(w http.ResponseWriter, r *http.Request) { hg.postLikes(w, r) }},
		{"DELETE", "/likes", func(w http.ResponseWriter, r *http.Request) { hg.deleteLikes(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// decodeRequest parses the request body into req; on failure it writes the
// error response and returns false.
func (hg *apiHandlerGroup) decodeRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return false
	}
	if err := json.Unmarshal(bodyBytes, req); err != nil {
		hg.logger.Infof("Invalid request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return false
	}
	return true
}

func (hg *apiHandlerGroup) postArticles(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling article POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("articles")
	defer obs.Finish()

	var req dto.NewArticleRequest
	if !hg.decodeRequest(w, r, &req) {
		return
	}
	handle, host, err := shared.ParseMoniker(req.Author)
	if err != nil || host != "" {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	author, err := hg.resolver.Resolve(handle, "")
	if err != nil {
		writeOperationResult(hg.logger, w, err)
		return
	}

	article, err := hg.publisher.Publish(r.Context(), author.Id, req.Title, req.BodyMd,
		strings.Join(req.Tags, ","), req.Summary, time.Now().UTC())

	resp := dto.NewArticleResponse{ResultType: logic.ResultOf(err)}
	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.ArticleId = article.Id
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusOf(resp.ResultType))
	respJson, _ := json.Marshal(resp)
	_, _ = fmt.Fprintln(w, string(respJson))
}

func (hg *apiHandlerGroup) putArticles(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling article PUT: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("articles")
	defer obs.Finish()

	var req dto.UpdateArticleRequest
	if !hg.decodeRequest(w, r, &req) {
		return
	}
	err := hg.publisher.Update(r.Context(), req.ArticleId, req.UserId, req.Title,
		req.BodyMd, strings.Join(req.Tags, ","), req.Summary)
	writeOperationResult(hg.logger, w, err)
}

func (hg *apiHandlerGroup) deleteArticles(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling article DELETE: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("articles")
	defer obs.Finish()

	var req dto.DeleteArticleRequest
	if !hg.decodeRequest(w, r, &req) {
		return
	}
	err := hg.publisher.Delete(r.Context(), req.ArticleId, req.UserId)
	writeOperationResult(hg.logger, w, err)
}

func (hg *apiHandlerGroup) postAnnounces(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling announce POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("announces")
	defer obs.Finish()

	var req dto.AnnounceRequest
	if !hg.decodeRequest(w, r, &req) {
		return
	}
	when := req.AnnounceTime
	if when.IsZero() {
		when = time.Now().UTC()
	}
	err := hg.announcer.Announce(r.Context(), req.ArticleId, req.AnnouncerId, when)
	writeOperationResult(hg.logger, w, err)
}

func (hg *apiHandlerGroup) postFollows(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling follow POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("follows")
	defer obs.Finish()

	var req dto.FollowRequest
	if !hg.decodeRequest(w, r, &req) {
		return
	}
	_, err := hg.follows.SendFollowRequest(r.Context(), req.Follower, req.Followed)
	writeOperationResult(hg.logger, w, err)
}

func (hg *apiHandlerGroup) deleteFollows(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling follow DELETE: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("follows")
	defer obs.Finish()

	var req dto.FollowRequest
	if !hg.decodeRequest(w, r, &req) {
		return
	}
	err := hg.follows.SendUnfollow(r.Context(), req.Follower, req.Followed)
	writeOperationResult(hg.logger, w, err)
}

func (hg *apiHandlerGroup) postApprovals(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling approval POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("approvals")
	defer obs.Finish()

	var req dto.ApproveRequest
	if !hg.decodeRequest(w, r, &req) {
		return
	}
	err := hg.approver.Decide(req.Follower, req.Followed, req.Accept)
	writeOperationResult(hg.logger, w, err)
}

func (hg *apiHandlerGroup) postLikes(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling like POST: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("likes")
	defer obs.Finish()

	req, liker := hg.decodeLikeRequest(w, r)
	if liker == nil {
		return
	}
	err := hg.liker.Like(r.Context(), liker.Id, req.ArticleId)
	writeOperationResult(hg.logger, w, err)
}

func (hg *apiHandlerGroup) deleteLikes(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling like DELETE: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("likes")
	defer obs.Finish()

	req, liker := hg.decodeLikeRequest(w, r)
	if liker == nil {
		return
	}
	err := hg.liker.Unlike(r.Context(), liker.Id, req.ArticleId)
	writeOperationResult(hg.logger, w, err)
}

func (hg *apiHandlerGroup) decodeLikeRequest(w http.ResponseWriter, r *http.Request) (*dto.LikeRequest, *dal.Actor) {
	var req dto.LikeRequest
	if !hg.decodeRequest(w, r, &req) {
		return nil, nil
	}
	handle, host, err := shared.ParseMoniker(req.Liker)
	if err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return nil, nil
	}
	liker, err := hg.resolver.Resolve(handle, host)
	if err != nil {
		writeOperationResult(hg.logger, w, err)
		return nil, nil
	}
	return &req, liker
}
