package sqldb

import (
	"database/sql"
	"time"

	"github.com/wansing/chronik/core"
)

type article struct {
	id         int
	title      string
	content    string
	attachment string
	created    int64
	authorID   int
	authorName string
}

func (a *article) ID() int {
	return a.id
}

func (a *article) Title() string {
	return a.title
}

func (a *article) Content() string {
	return a.content
}

func (a *article) Attachment() string {
	return a.attachment
}

func (a *article) Created() int64 {
	return a.created
}

func (a *article) AuthorID() int {
	return a.authorID
}

func (a *article) AuthorName() string {
	return a.authorName
}

type ArticleDB struct {
	*sql.DB
	delete      *sql.Stmt
	get         *sql.Stmt
	getAll      *sql.Stmt
	getByAuthor *sql.Stmt
	insert      *sql.Stmt
	update      *sql.Stmt
}

func NewArticleDB(db *sql.DB) *ArticleDB {

	db.Exec(
		`CREATE TABLE IF NOT EXISTS article (
			id INTEGER PRIMARY KEY,
			title varchar(100) NOT NULL,
			content TEXT NOT NULL,
			attachment varchar(255) NOT NULL DEFAULT '',
			created INTEGER NOT NULL,
			authorId int(11) NOT NULL
		);`)

	// "id DESC" breaks ties among equal timestamps, so repeated listings are identical
	const cols = "article.id, article.title, article.content, article.attachment, article.created, article.authorId, usr.name"
	const from = "FROM article JOIN usr ON usr.id = article.authorId"
	const order = "ORDER BY article.created DESC, article.id DESC"

	var articleDB = &ArticleDB{}
	articleDB.DB = db
	articleDB.delete = mustPrepare(db, "DELETE FROM article WHERE id = ?")
	articleDB.get = mustPrepare(db, "SELECT "+cols+" "+from+" WHERE article.id = ? LIMIT 1")
	articleDB.getAll = mustPrepare(db, "SELECT "+cols+" "+from+" "+order)
	articleDB.getByAuthor = mustPrepare(db, "SELECT "+cols+" "+from+" WHERE article.authorId = ? "+order)
	articleDB.insert = mustPrepare(db, "INSERT INTO article (title, content, attachment, created, authorId) VALUES (?, ?, ?, ?, ?)")
	articleDB.update = mustPrepare(db, "UPDATE article SET title = ?, content = ?, attachment = ? WHERE id = ?")
	return articleDB
}

func (db *ArticleDB) GetArticle(id int) (core.DBArticle, error) {
	var a = &article{}
	err := db.get.QueryRow(id).Scan(&a.id, &a.title, &a.content, &a.attachment, &a.created, &a.authorID, &a.authorName)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (db *ArticleDB) GetAllArticles() ([]core.DBArticle, error) {
	rows, err := db.getAll.Query()
	if err != nil {
		return nil, err
	}
	return scanArticles(rows)
}

func (db *ArticleDB) GetArticlesBy(authorID int) ([]core.DBArticle, error) {
	rows, err := db.getByAuthor.Query(authorID)
	if err != nil {
		return nil, err
	}
	return scanArticles(rows)
}

func (db *ArticleDB) InsertArticle(authorID int, title, content, attachment string) (int, error) {
	res, err := db.insert.Exec(title, content, attachment, time.Now().Unix(), authorID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func (db *ArticleDB) UpdateArticle(id int, title, content, attachment string) error {
	_, err := db.update.Exec(title, content, attachment, id)
	return err
}

func (db *ArticleDB) DeleteArticle(id int) error {
	_, err := db.delete.Exec(id)
	return err
}

func scanArticles(rows *sql.Rows) ([]core.DBArticle, error) {

	defer rows.Close()

	var all = []core.DBArticle{}

	for rows.Next() {
		var a = &article{}
		if err := rows.Scan(&a.id, &a.title, &a.content, &a.attachment, &a.created, &a.authorID, &a.authorName); err != nil {
			return nil, err
		}
		all = append(all, a)
	}

	return all, rows.Err()
}
