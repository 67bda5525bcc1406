package core

import (
	"errors"
)

var ErrNotFound = errors.New("not found")

type DBArticle interface {
	ID() int
	Title() string
	Content() string
	Attachment() string // sanitized filename, empty if the article has none
	Created() int64
	AuthorID() int
	AuthorName() string
}

// ArticleDB does not authorize anything. Callers must apply RequireOwner
// before calling UpdateArticle or DeleteArticle.
type ArticleDB interface {
	GetArticle(id int) (DBArticle, error)
	GetAllArticles() ([]DBArticle, error)
	GetArticlesBy(authorID int) ([]DBArticle, error)
	InsertArticle(authorID int, title, content, attachment string) (int, error)
	UpdateArticle(id int, title, content, attachment string) error
	DeleteArticle(id int) error
}
