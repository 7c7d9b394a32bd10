package dal

import (
	"time"
)

// Actor is a federation identity. Host is empty for local actors; a row
// with a non-empty host is a locally cached shadow of a foreign actor,
// created lazily on first contact.
type Actor struct {
	Id          int64
	CreatedAt   time.Time
	Handle      string // alice
	Host        string // remote.example; empty means local
	DisplayName string
	Bio         string
	Private     bool
}

func (a *Actor) IsLocal() bool {
	return a.Host == ""
}

type Article struct {
	Id          int64
	AuthorId    int64
	ApId        string // stable federation identifier; immutable once assigned
	Title       string
	BodyHtml    string
	BodyMd      string
	Tags        string
	Summary     string
	CreatedAt   time.Time
	LikesCount  int
	SharesCount int
}

// Follow edge states. Absence of a row means "not following".
const (
	FollowPending = 0
	FollowActive  = 1
)

type FollowEdge struct {
	FollowerId int64
	FollowedId int64
	State      int
	CreatedAt  time.Time
}
