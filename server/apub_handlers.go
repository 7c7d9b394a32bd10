package server

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gorilla/mux"

	"inkwell/dto"
	"inkwell/logic"
	"inkwell/shared"
)

// Groups together the handlers that make up the federation surface.
type apubHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    logic.IMetrics
	resolver   logic.IActorResolver
	inbox      logic.IInbox
	idb        shared.IdBuilder
	reResource *regexp.Regexp
}

func NewApubHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	resolver logic.IActorResolver,
	ibox logic.IInbox,
) IHandlerGroup {
	res := apubHandlerGroup{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		resolver: resolver,
		inbox:    ibox,
		idb:      shared.IdBuilder{Host: cfg.Host},
	}
	res.reResource = regexp.MustCompile("^acct:([^@]+)@([^@]+)$")
	return &res
}

func (hg *apubHandlerGroup) Prefix() string {
	return ""
}

func (hg *apubHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/.well-known/webfinger", func(w http.ResponseWriter, r *http.Request) { hg.getWebfinger(w, r) }},
		{"GET", "/ap/@{user}", func(w http.ResponseWriter, r *http.Request) { hg.getUser(w, r) }},
		{"POST", "/ap/@{user}/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postInbox(w, r) }},
	}
}

func (hg *apubHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *apubHandlerGroup) getWebfinger(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling webfinger GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("webfinger")
	defer obs.Finish()

	resourceParam := r.URL.Query().Get("resource")
	groups := hg.reResource.FindStringSubmatch(resourceParam)
	if groups == nil {
		hg.logger.Infof("Webfinger: Invalid request; 'resource' param is '%s'", resourceParam)
		writeErrorResponse(w, "Missing or invalid 'resource' param", http.StatusBadRequest)
		return
	}
	user, host := groups[1], groups[2]
	if host != hg.cfg.Host {
		hg.logger.Infof("Webfinger: Request for host %s, but we are %s", host, hg.cfg.Host)
		writeErrorResponse(w, "No such resource", http.StatusNotFound)
		return
	}

	actor, err := hg.resolver.Resolve(user, "")
	if err != nil {
		hg.logger.Infof("Webfinger: No such resource; 'resource' param is '%s'", resourceParam)
		writeErrorResponse(w, "No such resource", http.StatusNotFound)
		return
	}

	userUrl := hg.idb.UserUrl(actor.Handle)
	resp := dto.WebfingerResp{
		Subject: fmt.Sprintf("acct:%s@%s", actor.Handle, hg.cfg.Host),
		Aliases: []string{userUrl},
		Links: []dto.WebfingerLink{
			{Rel: "self", Type: "application/activity+json", Href: userUrl},
		},
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apubHandlerGroup) getUser(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user")
	defer obs.Finish()
	userName := mux.Vars(r)["user"]

	actor, err := hg.resolver.Resolve(userName, "")
	if err != nil {
		hg.logger.Infof("Info requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}

	doc := dto.ActorDoc{
		Context:           dto.ActivityContext,
		Id:                hg.idb.UserUrl(actor.Handle),
		Type:              "Person",
		PreferredUserName: actor.Handle,
		Name:              actor.DisplayName,
		Summary:           actor.Bio,
		ManuallyApproves:  actor.Private,
		Inbox:             hg.idb.UserInbox(actor.Handle),
		Outbox:            hg.idb.UserOutbox(actor.Handle),
		Followers:         hg.idb.UserFollowers(actor.Handle),
		Following:         hg.idb.UserFollowing(actor.Handle),
	}
	w.Header().Set("Content-Type", "application/activity+json")
	writeJsonResponse(hg.logger, w, doc)
}

func (hg *apubHandlerGroup) postInbox(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling inbox POST: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("inbox")
	defer obs.Finish()
	userName := mux.Vars(r)["user"]

	if !strings.Contains(r.Header.Get("Content-Type"), "json") {
		writeErrorResponse(w, "Content-Type must be JSON", http.StatusBadRequest)
		return
	}
	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}

	err := hg.inbox.HandleActivity(r.Context(), userName, bodyBytes)
	if err != nil {
		res := logic.ResultOf(err)
		if res == dto.ResultError400 {
			hg.logger.Infof("Invalid inbox activity: %v", err)
			writeErrorResponse(w, err.Error(), http.StatusBadRequest)
			return
		}
		hg.logger.Errorf("Error handling inbox activity: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, "OK")
}
