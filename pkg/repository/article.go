package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/homedeck/homedeck/pkg/domain"
)

// ArticleRepository handles saved article database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents a saved article for SQL operations
type articleSQL struct {
	ID            int64     `db:"id"`
	Title         string    `db:"title"`
	Link          string    `db:"link"`
	PublishedDate string    `db:"published_date"`
	Summary       string    `db:"summary"`
	Content       string    `db:"content"`
	Source        string    `db:"source"`
	Comment       string    `db:"comment"`
	CreatedAt     time.Time `db:"created_at"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// Save inserts the article, or replaces the stored fields when the same link
// was saved before. Re-saving refreshes created_at so the article moves to
// the top of the saved list.
func (r *ArticleRepository) Save(ctx context.Context, article *domain.SavedArticle) error {
	sqlArticle := &articleSQL{
		Title:         article.Title,
		Link:          article.Link,
		PublishedDate: article.PublishedDate,
		Summary:       article.Summary,
		Content:       article.Content,
		Source:        article.Source,
		Comment:       article.Comment,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO news (
				title, link, published_date, summary, content, source, comment
			) VALUES (
				:title, :link, :published_date, :summary, :content, :source, :comment
			)
			ON CONFLICT(link) DO UPDATE SET
				title = excluded.title,
				published_date = excluded.published_date,
				summary = excluded.summary,
				content = excluded.content,
				source = excluded.source,
				comment = excluded.comment,
				created_at = CURRENT_TIMESTAMP
		`
		if _, err := r.db.NamedExecContext(ctx, query, sqlArticle); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("save article: %w", err)}
		}
		return nil
	})
}

// List returns all saved articles, most recently saved first
func (r *ArticleRepository) List(ctx context.Context) ([]domain.SavedArticle, error) {
	var sqlArticles []articleSQL
	err := r.db.SelectContext(ctx, &sqlArticles,
		"SELECT * FROM news ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	articles := make([]domain.SavedArticle, len(sqlArticles))
	for i, a := range sqlArticles {
		articles[i] = domain.SavedArticle{
			ID:            a.ID,
			Title:         a.Title,
			Link:          a.Link,
			PublishedDate: a.PublishedDate,
			Summary:       a.Summary,
			Content:       a.Content,
			Source:        a.Source,
			Comment:       a.Comment,
			CreatedAt:     a.CreatedAt,
		}
	}
	return articles, nil
}

// Get returns one saved article by link
func (r *ArticleRepository) Get(ctx context.Context, link string) (*domain.SavedArticle, error) {
	var a articleSQL
	err := r.db.GetContext(ctx, &a, "SELECT * FROM news WHERE link = ?", link)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &domain.SavedArticle{
		ID:            a.ID,
		Title:         a.Title,
		Link:          a.Link,
		PublishedDate: a.PublishedDate,
		Summary:       a.Summary,
		Content:       a.Content,
		Source:        a.Source,
		Comment:       a.Comment,
		CreatedAt:     a.CreatedAt,
	}, nil
}

// Delete removes a saved article by id
func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM news WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
