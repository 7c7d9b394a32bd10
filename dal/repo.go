package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"

	"inkwell/shared"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks inkwell/dal IRepo

type IRepo interface {
	InitUpdateDb()
	AddActorIfNotExist(actor *Actor) (isNew bool, err error)
	GetActor(handle, host string) (*Actor, error)
	GetActorById(id int64) (*Actor, error)
	DeleteActor(id int64) error
	AddArticle(article *Article) (int64, error)
	GetArticle(id int64) (*Article, error)
	GetArticleByApId(apId string) (*Article, error)
	GetArticlesByAuthor(authorId int64, limit int) ([]*Article, error)
	UpdateArticle(article *Article) error
	SetArticleApId(id int64, apId string) error
	DeleteArticle(id int64) error
	AddFollowIfNotExist(followerId, followedId int64, state int) (isNew bool, err error)
	GetFollow(followerId, followedId int64) (*FollowEdge, error)
	SetFollowState(followerId, followedId int64, state int) error
	DeleteFollow(followerId, followedId int64) error
	GetFollowers(actorId int64, activeOnly bool) ([]*Actor, error)
	GetActiveFollowCount() (int, error)
	AddShareIfNotExist(userId, articleId int64, announcedAt time.Time) (isNew bool, err error)
	GetSharerIds(articleId int64) ([]int64, error)
	IncrementSharesCount(articleId int64) error
	AddLikeIfNotExist(userId, articleId int64) (isNew bool, err error)
	RemoveLike(userId, articleId int64) (removed bool, err error)
	IncrementLikesCount(articleId int64) error
	DecrementLikesCount(articleId int64) error
	MarkActivityHandled(id string, when time.Time) (alreadyHandled bool, err error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", i, err)
			panic(err)
		}
	}
}

func isDuplicateKey(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		// Composite primary keys report a different extended code than
		// unique indexes
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func (repo *Repo) AddActorIfNotExist(actor *Actor) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if actor.CreatedAt.IsZero() {
		actor.CreatedAt = time.Now().UTC()
	}

	isNew = true
	var res sql.Result
	res, err = repo.db.Exec(`INSERT INTO actors
    	(created_at, handle, host, display_name, bio, private)
		VALUES(?, ?, ?, ?, ?, ?)`,
		actor.CreatedAt, actor.Handle, actor.Host, actor.DisplayName, actor.Bio, actor.Private)
	if err == nil {
		actor.Id, err = res.LastInsertId()
		return
	}
	if isDuplicateKey(err) {
		// Actor with this (handle, host) already exists: re-read
		isNew = false
		var existing *Actor
		if existing, err = repo.getActor(actor.Handle, actor.Host); err != nil {
			return
		}
		*actor = *existing
	}
	return
}

func (repo *Repo) GetActor(handle, host string) (*Actor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	return repo.getActor(handle, host)
}

func (repo *Repo) getActor(handle, host string) (*Actor, error) {

	row := repo.db.QueryRow(
		`SELECT id, created_at, handle, host, display_name, bio, private
		FROM actors WHERE handle=? AND host=?`, handle, host)
	return scanActor(row)
}

func (repo *Repo) GetActorById(id int64) (*Actor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(
		`SELECT id, created_at, handle, host, display_name, bio, private
		FROM actors WHERE id=?`, id)
	return scanActor(row)
}

func scanActor(row *sql.Row) (*Actor, error) {
	var res Actor
	err := row.Scan(&res.Id, &res.CreatedAt, &res.Handle, &res.Host, &res.DisplayName, &res.Bio, &res.Private)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) DeleteActor(id int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec("DELETE FROM actors WHERE id=?", id)
	return err
}

func (repo *Repo) AddArticle(article *Article) (int64, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now().UTC()
	}

	res, err := repo.db.Exec(`INSERT INTO articles
    	(author_id, ap_id, title, body_html, body_md, tags, summary, created_at, likes_count, shares_count)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, 0, 0)`,
		article.AuthorId, article.ApId, article.Title, article.BodyHtml, article.BodyMd,
		article.Tags, article.Summary, article.CreatedAt)
	if err != nil {
		return 0, err
	}
	article.Id, err = res.LastInsertId()
	return article.Id, err
}

func (repo *Repo) GetArticle(id int64) (*Article, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(articleSelect+" WHERE id=?", id)
	return scanArticle(row)
}

func (repo *Repo) GetArticleByApId(apId string) (*Article, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(articleSelect+" WHERE ap_id=?", apId)
	return scanArticle(row)
}

const articleSelect = `SELECT id, author_id, ap_id, title, body_html, body_md, tags, summary,
	created_at, likes_count, shares_count FROM articles`

func scanArticle(row *sql.Row) (*Article, error) {
	var res Article
	err := row.Scan(&res.Id, &res.AuthorId, &res.ApId, &res.Title, &res.BodyHtml, &res.BodyMd,
		&res.Tags, &res.Summary, &res.CreatedAt, &res.LikesCount, &res.SharesCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) GetArticlesByAuthor(authorId int64, limit int) ([]*Article, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(articleSelect+" WHERE author_id=? ORDER BY id DESC LIMIT ?", authorId, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Article
	for rows.Next() {
		a := Article{}
		err = rows.Scan(&a.Id, &a.AuthorId, &a.ApId, &a.Title, &a.BodyHtml, &a.BodyMd,
			&a.Tags, &a.Summary, &a.CreatedAt, &a.LikesCount, &a.SharesCount)
		if err != nil {
			return nil, err
		}
		res = append(res, &a)
	}
	return res, rows.Err()
}

func (repo *Repo) UpdateArticle(article *Article) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE articles SET title=?, body_html=?, body_md=?, tags=?, summary=?
		WHERE id=?`,
		article.Title, article.BodyHtml, article.BodyMd, article.Tags, article.Summary, article.Id)
	return err
}

// SetArticleApId stamps the federation id once the row id is known.
func (repo *Repo) SetArticleApId(id int64, apId string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec("UPDATE articles SET ap_id=? WHERE id=?", apId, id)
	return err
}

func (repo *Repo) DeleteArticle(id int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	// Share and like rows only ever go away together with the article
	if _, err := repo.db.Exec("DELETE FROM shares WHERE article_id=?", id); err != nil {
		return err
	}
	if _, err := repo.db.Exec("DELETE FROM likes WHERE article_id=?", id); err != nil {
		return err
	}
	_, err := repo.db.Exec("DELETE FROM articles WHERE id=?", id)
	return err
}

func (repo *Repo) AddFollowIfNotExist(followerId, followedId int64, state int) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO follows (follower_id, followed_id, state, created_at)
		VALUES(?, ?, ?, ?)`,
		followerId, followedId, state, time.Now().UTC())
	if err != nil && isDuplicateKey(err) {
		isNew = false
		err = nil
	}
	return
}

func (repo *Repo) GetFollow(followerId, followedId int64) (*FollowEdge, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT follower_id, followed_id, state, created_at
		FROM follows WHERE follower_id=? AND followed_id=?`, followerId, followedId)
	var res FollowEdge
	err := row.Scan(&res.FollowerId, &res.FollowedId, &res.State, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) SetFollowState(followerId, followedId int64, state int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE follows SET state=? WHERE follower_id=? AND followed_id=?`,
		state, followerId, followedId)
	return err
}

func (repo *Repo) DeleteFollow(followerId, followedId int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	// Deleting an absent edge is not an error
	_, err := repo.db.Exec("DELETE FROM follows WHERE follower_id=? AND followed_id=?",
		followerId, followedId)
	return err
}

func (repo *Repo) GetActiveFollowCount() (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow("SELECT COUNT(*) FROM follows WHERE state=?", FollowActive)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Repo) GetFollowers(actorId int64, activeOnly bool) ([]*Actor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT a.id, a.created_at, a.handle, a.host, a.display_name, a.bio, a.private
		FROM actors a JOIN follows f ON f.follower_id=a.id
		WHERE f.followed_id=?`
	if activeOnly {
		query += fmt.Sprintf(" AND f.state=%d", FollowActive)
	}
	rows, err := repo.db.Query(query, actorId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Actor
	for rows.Next() {
		a := Actor{}
		err = rows.Scan(&a.Id, &a.CreatedAt, &a.Handle, &a.Host, &a.DisplayName, &a.Bio, &a.Private)
		if err != nil {
			return nil, err
		}
		res = append(res, &a)
	}
	return res, rows.Err()
}

func (repo *Repo) AddShareIfNotExist(userId, articleId int64, announcedAt time.Time) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO shares (user_id, article_id, announced_at) VALUES(?, ?, ?)`,
		userId, articleId, announcedAt)
	if err != nil && isDuplicateKey(err) {
		isNew = false
		err = nil
	}
	return
}

func (repo *Repo) GetSharerIds(articleId int64) ([]int64, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query("SELECT user_id FROM shares WHERE article_id=?", articleId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	return res, rows.Err()
}

func (repo *Repo) IncrementSharesCount(articleId int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec("UPDATE articles SET shares_count=shares_count+1 WHERE id=?", articleId)
	return err
}

func (repo *Repo) AddLikeIfNotExist(userId, articleId int64) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec("INSERT INTO likes (user_id, article_id) VALUES(?, ?)", userId, articleId)
	if err != nil && isDuplicateKey(err) {
		isNew = false
		err = nil
	}
	return
}

// RemoveLike reports whether a like row was actually deleted, so callers
// only adjust likes_count when there was something to retract.
func (repo *Repo) RemoveLike(userId, articleId int64) (bool, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec("DELETE FROM likes WHERE user_id=? AND article_id=?", userId, articleId)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n != 0, nil
}

func (repo *Repo) IncrementLikesCount(articleId int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec("UPDATE articles SET likes_count=likes_count+1 WHERE id=?", articleId)
	return err
}

func (repo *Repo) DecrementLikesCount(articleId int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec("UPDATE articles SET likes_count=MAX(likes_count-1, 0) WHERE id=?", articleId)
	return err
}

func (repo *Repo) MarkActivityHandled(id string, when time.Time) (alreadyHandled bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err = repo.db.Exec("INSERT INTO handled_activities (id, handled_at) VALUES(?, ?)", id, when)
	if err != nil {
		if isDuplicateKey(err) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
