package logic

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_recommender.go -package mocks inkwell/logic IFollowRecommender

// IFollowRecommender tells the recommendation collaborators about follow
// changes. Strictly best-effort: failures are logged and swallowed, they
// never affect the persisted follow state.
type IFollowRecommender interface {
	NotifyFollowChange(followerId, followedId int64, following bool)
}

const recommenderTimeoutSec = 5

type followChangeMsg struct {
	Follower  int64 `json:"follower"`
	Followed  int64 `json:"followed"`
	Following bool  `json:"following"`
}

type recommenderSet struct {
	logger  shared.ILogger
	targets []shared.RecommenderInfo
}

// NewRecommenders resolves the configured recommender list once, at
// startup. There is no name-keyed dispatch after this point.
func NewRecommenders(cfg *shared.Config, logger shared.ILogger) IFollowRecommender {
	for _, t := range cfg.Recommenders {
		logger.Printf("Follow recommender active: %s -> %s", t.Name, t.Url)
	}
	return &recommenderSet{logger, cfg.Recommenders}
}

func (rs *recommenderSet) NotifyFollowChange(followerId, followedId int64, following bool) {

	if len(rs.targets) == 0 {
		return
	}
	bodyJson, _ := json.Marshal(followChangeMsg{followerId, followedId, following})

	client := http.Client{Timeout: time.Second * recommenderTimeoutSec}
	for _, t := range rs.targets {
		resp, err := client.Post(t.Url, "application/json", bytes.NewReader(bodyJson))
		if err != nil {
			rs.logger.Warnf("Recommender %s unreachable: %v", t.Name, err)
			continue
		}
		_ = resp.Body.Close()
		if resp.StatusCode >= 300 {
			rs.logger.Warnf("Recommender %s returned status %s", t.Name, resp.Status)
		}
	}
}
