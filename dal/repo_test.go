package dal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inkwell/shared"
)

type testLogger struct{}

func (l *testLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (l *testLogger) Debugf(format string, args ...interface{})     {}
func (l *testLogger) Info(msg interface{}, keyvals ...interface{})  {}
func (l *testLogger) Infof(format string, args ...interface{})      {}
func (l *testLogger) Warn(msg interface{}, keyvals ...interface{})  {}
func (l *testLogger) Warnf(format string, args ...interface{})      {}
func (l *testLogger) Error(msg interface{}, keyvals ...interface{}) {}
func (l *testLogger) Errorf(format string, args ...interface{})     {}
func (l *testLogger) Printf(format string, args ...interface{})     {}

func setupRepo(t *testing.T) IRepo {
	cfg := &shared.Config{
		Host:   "ink.test",
		DbFile: filepath.Join(t.TempDir(), "inkwell_test.db"),
	}
	repo := NewRepo(cfg, &testLogger{})
	repo.InitUpdateDb()
	return repo
}

func TestActorGetOrCreateIsIdempotent(t *testing.T) {
	repo := setupRepo(t)

	a1 := &Actor{Handle: "alice", Host: "remote.example", Bio: "hi"}
	isNew, err := repo.AddActorIfNotExist(a1)
	assert.Nil(t, err)
	assert.True(t, isNew)
	assert.NotZero(t, a1.Id)

	// Second insert for the same (handle, host) re-reads the existing row
	a2 := &Actor{Handle: "alice", Host: "remote.example", Bio: "different"}
	isNew, err = repo.AddActorIfNotExist(a2)
	assert.Nil(t, err)
	assert.False(t, isNew)
	assert.Equal(t, a1.Id, a2.Id)
	assert.Equal(t, "hi", a2.Bio)

	// Same handle on a different host is a different actor
	a3 := &Actor{Handle: "alice", Host: "other.example"}
	isNew, err = repo.AddActorIfNotExist(a3)
	assert.Nil(t, err)
	assert.True(t, isNew)
	assert.NotEqual(t, a1.Id, a3.Id)
}

func TestFollowEdgeLifecycle(t *testing.T) {
	repo := setupRepo(t)

	follower := &Actor{Handle: "bob", Host: "remote.example"}
	followed := &Actor{Handle: "carol"}
	_, _ = repo.AddActorIfNotExist(follower)
	_, _ = repo.AddActorIfNotExist(followed)

	isNew, err := repo.AddFollowIfNotExist(follower.Id, followed.Id, FollowPending)
	assert.Nil(t, err)
	assert.True(t, isNew)

	isNew, err = repo.AddFollowIfNotExist(follower.Id, followed.Id, FollowActive)
	assert.Nil(t, err)
	assert.False(t, isNew)

	edge, err := repo.GetFollow(follower.Id, followed.Id)
	assert.Nil(t, err)
	assert.Equal(t, FollowPending, edge.State)

	assert.Nil(t, repo.SetFollowState(follower.Id, followed.Id, FollowActive))
	edge, _ = repo.GetFollow(follower.Id, followed.Id)
	assert.Equal(t, FollowActive, edge.State)

	assert.Nil(t, repo.DeleteFollow(follower.Id, followed.Id))
	edge, err = repo.GetFollow(follower.Id, followed.Id)
	assert.Nil(t, err)
	assert.Nil(t, edge)

	// Deleting an absent edge is fine
	assert.Nil(t, repo.DeleteFollow(follower.Id, followed.Id))
}

func TestDeleteArticleRemovesShares(t *testing.T) {
	repo := setupRepo(t)

	author := &Actor{Handle: "dora"}
	sharer := &Actor{Handle: "eve", Host: "remote.example"}
	_, _ = repo.AddActorIfNotExist(author)
	_, _ = repo.AddActorIfNotExist(sharer)

	art := &Article{AuthorId: author.Id, Title: "Hello", BodyMd: "hello world"}
	id, err := repo.AddArticle(art)
	assert.Nil(t, err)

	isNew, err := repo.AddShareIfNotExist(sharer.Id, id, time.Now().UTC())
	assert.Nil(t, err)
	assert.True(t, isNew)
	assert.Nil(t, repo.IncrementSharesCount(id))

	sharers, err := repo.GetSharerIds(id)
	assert.Nil(t, err)
	assert.Equal(t, []int64{sharer.Id}, sharers)

	assert.Nil(t, repo.DeleteArticle(id))
	gone, err := repo.GetArticle(id)
	assert.Nil(t, err)
	assert.Nil(t, gone)
	sharers, err = repo.GetSharerIds(id)
	assert.Nil(t, err)
	assert.Empty(t, sharers)
}

func TestRemoveLikeReportsRemoval(t *testing.T) {
	repo := setupRepo(t)

	author := &Actor{Handle: "fay"}
	liker1 := &Actor{Handle: "gil", Host: "remote.example"}
	liker2 := &Actor{Handle: "hana", Host: "remote.example"}
	nonLiker := &Actor{Handle: "ivo", Host: "remote.example"}
	_, _ = repo.AddActorIfNotExist(author)
	_, _ = repo.AddActorIfNotExist(liker1)
	_, _ = repo.AddActorIfNotExist(liker2)
	_, _ = repo.AddActorIfNotExist(nonLiker)

	art := &Article{AuthorId: author.Id, Title: "Counted", BodyMd: "words"}
	id, err := repo.AddArticle(art)
	assert.Nil(t, err)

	for _, a := range []*Actor{liker1, liker2} {
		isNew, err := repo.AddLikeIfNotExist(a.Id, id)
		assert.Nil(t, err)
		assert.True(t, isNew)
	}

	// Retracting a like that was never recorded removes nothing
	removed, err := repo.RemoveLike(nonLiker.Id, id)
	assert.Nil(t, err)
	assert.False(t, removed)

	removed, err = repo.RemoveLike(liker1.Id, id)
	assert.Nil(t, err)
	assert.True(t, removed)

	// Already gone; a second retraction reports nothing removed
	removed, err = repo.RemoveLike(liker1.Id, id)
	assert.Nil(t, err)
	assert.False(t, removed)
}

func TestMarkActivityHandled(t *testing.T) {
	repo := setupRepo(t)

	already, err := repo.MarkActivityHandled("https://remote.example/ap/activity/abc", time.Now())
	assert.Nil(t, err)
	assert.False(t, already)

	already, err = repo.MarkActivityHandled("https://remote.example/ap/activity/abc", time.Now())
	assert.Nil(t, err)
	assert.True(t, already)
}
