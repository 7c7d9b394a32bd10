package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"inkwell/logic"
	"inkwell/shared"
)

type webHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics logic.IMetrics
	feeds   logic.IFeedBuilder
}

func NewWebHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	feeds logic.IFeedBuilder,
) IHandlerGroup {
	return &webHandlerGroup{cfg, logger, metrics, feeds}
}

func (hg *webHandlerGroup) Prefix() string {
	return "/web"
}

func (hg *webHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/feeds/{user}", func(w http.ResponseWriter, r *http.Request) { hg.getUserFeed(w, r) }},
	}
}

func (hg *webHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *webHandlerGroup) getUserFeed(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling feed GET: %s", r.URL.Path)
	obs := hg.metrics.StartApiRequestIn("feed")
	defer obs.Finish()
	userName := mux.Vars(r)["user"]

	rssXml, err := hg.feeds.BuildUserFeed(userName)
	if err != nil {
		hg.logger.Infof("Feed requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml")
	_, _ = fmt.Fprint(w, rssXml)
}
