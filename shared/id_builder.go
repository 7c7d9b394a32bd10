package shared

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

const PublicStream = "https://www.w3.org/ns/activitystreams#Public"

// ActorUrl is the public identity URL of an actor on any instance.
func ActorUrl(handle, host string) string {
	return fmt.Sprintf("https://%s/ap/@%s", host, handle)
}

// ActorInboxUrl is where activities addressed to the actor get POSTed.
func ActorInboxUrl(handle, host string) string {
	return ActorUrl(handle, host) + "/inbox"
}

// IdBuilder derives the URLs owned by the local instance.
type IdBuilder struct {
	Host string
}

func (idb *IdBuilder) UserUrl(handle string) string {
	return ActorUrl(handle, idb.Host)
}

func (idb *IdBuilder) UserInbox(handle string) string {
	return ActorInboxUrl(handle, idb.Host)
}

func (idb *IdBuilder) UserFollowers(handle string) string {
	return idb.UserUrl(handle) + "/followers"
}

func (idb *IdBuilder) UserFollowing(handle string) string {
	return idb.UserUrl(handle) + "/following"
}

func (idb *IdBuilder) UserOutbox(handle string) string {
	return idb.UserUrl(handle) + "/outbox"
}

// LocalArticleUrl is the human-facing address of a locally authored article.
func (idb *IdBuilder) LocalArticleUrl(handle string, articleId int64) string {
	return fmt.Sprintf("https://%s/@%s/articles/%s", idb.Host, handle, strconv.FormatInt(articleId, 10))
}

// ArticleApId is the stable federation identifier of an article; immutable
// once assigned.
func ArticleApId(handle, host string, articleId int64) string {
	return fmt.Sprintf("https://%s/ap/@%s/articles/%s", host, handle, strconv.FormatInt(articleId, 10))
}

func (idb *IdBuilder) NewActivityId() string {
	return fmt.Sprintf("https://%s/ap/activity/%s", idb.Host, uuid.NewString())
}
