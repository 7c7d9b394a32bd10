package dto

import "time"

// Result kinds surfaced by every API operation.
type ResultType string

const (
	ResultOk       ResultType = "OK"
	ResultError    ResultType = "ERROR"
	ResultError400 ResultType = "ERROR_400"
	ResultError401 ResultType = "ERROR_401"
)

type GeneralResponse struct {
	ResultType ResultType `json:"result_type"`
	Error      string     `json:"error,omitempty"`
}

type NewArticleRequest struct {
	Author  string   `json:"author"`
	Title   string   `json:"title"`
	BodyMd  string   `json:"body_md"`
	Tags    []string `json:"tags"`
	Summary string   `json:"summary"`
}

type NewArticleResponse struct {
	ResultType ResultType `json:"result_type"`
	Error      string     `json:"error,omitempty"`
	ArticleId  int64      `json:"article_id,omitempty"`
}

type UpdateArticleRequest struct {
	ArticleId int64    `json:"article_id"`
	UserId    int64    `json:"user_id"`
	Title     string   `json:"title"`
	BodyMd    string   `json:"body_md"`
	Tags      []string `json:"tags"`
	Summary   string   `json:"summary"`
}

type DeleteArticleRequest struct {
	ArticleId int64 `json:"article_id"`
	UserId    int64 `json:"user_id"`
}

type AnnounceRequest struct {
	ArticleId    int64     `json:"article_id"`
	AnnouncerId  int64     `json:"announcer_id"`
	AnnounceTime time.Time `json:"announce_time"`
}

type FollowRequest struct {
	Follower string `json:"follower"` // moniker, e.g. "@alice" or "alice@remote.example"
	Followed string `json:"followed"`
}

type ApproveRequest struct {
	Follower string `json:"follower"`
	Followed string `json:"followed"`
	Accept   bool   `json:"accept"`
}

type LikeRequest struct {
	ArticleId int64  `json:"article_id"`
	Liker     string `json:"liker"`
}
