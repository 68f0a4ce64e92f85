package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AshkanSharifii/blog/internal/core/domain"
)

var postSortColumns = map[domain.PostSortField]string{
	domain.PostSortCreatedAt: "created_at",
	domain.PostSortUpdatedAt: "updated_at",
	domain.PostSortTitle:     "title",
}

// List returns posts matching the filter, newest first by default.
func (s *Store) List(ctx context.Context, filter domain.PostFilter) ([]*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var clauses []string
	var args []any

	query := "SELECT DISTINCT p.id, p.title, p.content, p.image_url, p.is_archived, p.is_active, p.created_at, p.updated_at FROM posts p"
	if filter.Tag != "" {
		query += " JOIN post_tag pt ON pt.post_id = p.id JOIN tags t ON t.id = pt.tag_id"
		clauses = append(clauses, "t.name = ?")
		args = append(args, filter.Tag)
	}
	if !filter.ShowArchived {
		clauses = append(clauses, "p.is_archived = 0")
	}
	if !filter.ShowInactive {
		clauses = append(clauses, "p.is_active = 1")
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	sortColumn, ok := postSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "created_at"
		filter.SortDesc = true
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY p.%s %s", sortColumn, direction)

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, filter.Skip)

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	for _, post := range posts {
		if err := s.loadTags(ctx, post); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

// Get returns one post or domain.ErrPostNotFound.
func (s *Store) Get(ctx context.Context, id int64) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT id, title, content, image_url, is_archived, is_active, created_at, updated_at FROM posts WHERE id = ?", id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	if err := s.loadTags(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Create inserts the post and links its tags, creating missing tags.
func (s *Store) Create(ctx context.Context, draft domain.PostDraft) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin create post: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO posts (title, content, image_url, is_archived, is_active, created_at) VALUES (?, ?, NULLIF(?, ''), ?, ?, ?)",
		strings.TrimSpace(draft.Title), draft.Content, draft.CoverImage,
		boolToInt(draft.IsArchived), boolToInt(draft.IsActive), toMillis(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("post id: %w", err)
	}

	if err := replaceTags(ctx, tx, id, draft.Tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create post: %w", err)
	}
	return s.Get(ctx, id)
}

// Update rewrites the post fields. setCover controls whether the cover
// image column is touched; an empty cover clears it.
func (s *Store) Update(ctx context.Context, id int64, draft domain.PostDraft, setCover bool) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update post: %w", err)
	}
	defer tx.Rollback()

	var res sql.Result
	if setCover {
		res, err = tx.ExecContext(ctx,
			"UPDATE posts SET title = ?, content = ?, image_url = NULLIF(?, ''), is_archived = ?, is_active = ?, updated_at = ? WHERE id = ?",
			strings.TrimSpace(draft.Title), draft.Content, draft.CoverImage,
			boolToInt(draft.IsArchived), boolToInt(draft.IsActive), toMillis(time.Now()), id)
	} else {
		res, err = tx.ExecContext(ctx,
			"UPDATE posts SET title = ?, content = ?, is_archived = ?, is_active = ?, updated_at = ? WHERE id = ?",
			strings.TrimSpace(draft.Title), draft.Content,
			boolToInt(draft.IsArchived), boolToInt(draft.IsActive), toMillis(time.Now()), id)
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, domain.ErrPostNotFound
	}

	if draft.Tags != nil {
		if err := replaceTags(ctx, tx, id, draft.Tags); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update post: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *Store) SetArchived(ctx context.Context, id int64, archived bool) (*domain.Post, error) {
	return s.setPostColumn(ctx, id, "is_archived", boolToInt(archived))
}

func (s *Store) SetActive(ctx context.Context, id int64, active bool) (*domain.Post, error) {
	return s.setPostColumn(ctx, id, "is_active", boolToInt(active))
}

func (s *Store) SetCoverImage(ctx context.Context, id int64, filename string) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := s.sqlDB.ExecContext(ctx,
		"UPDATE posts SET image_url = NULLIF(?, ''), updated_at = ? WHERE id = ?",
		filename, toMillis(time.Now()), id)
	if err != nil {
		return nil, fmt.Errorf("set cover image: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, domain.ErrPostNotFound
	}
	return s.Get(ctx, id)
}

func (s *Store) SetContent(ctx context.Context, id int64, content string) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := s.sqlDB.ExecContext(ctx,
		"UPDATE posts SET content = ?, updated_at = ? WHERE id = ?",
		content, toMillis(time.Now()), id)
	if err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, domain.ErrPostNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes the post; post_tag rows cascade.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := s.sqlDB.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// ImageRefs returns the cover filename and raw content of every post,
// archived and inactive included. Feeds the orphaned image scan.
func (s *Store) ImageRefs(ctx context.Context) ([]domain.ImageRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, "SELECT image_url, content FROM posts")
	if err != nil {
		return nil, fmt.Errorf("image refs: %w", err)
	}
	defer rows.Close()

	refs := []domain.ImageRef{}
	for rows.Next() {
		var ref domain.ImageRef
		var imageURL sql.NullString
		if err := rows.Scan(&imageURL, &ref.Content); err != nil {
			return nil, fmt.Errorf("scan image ref: %w", err)
		}
		ref.CoverImage = imageURL.String
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate image refs: %w", err)
	}
	return refs, nil
}

// Stats aggregates post counts, per tag and per month.
func (s *Store) Stats(ctx context.Context) (*domain.PostStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &domain.PostStats{
		PostsByTag:   map[string]int64{},
		PostsByMonth: map[string]int64{},
	}

	err := s.sqlDB.QueryRowContext(ctx,
		"SELECT COUNT(1), COALESCE(SUM(is_active = 1 AND is_archived = 0), 0), COALESCE(SUM(is_archived = 1), 0) FROM posts").
		Scan(&stats.TotalPosts, &stats.ActivePosts, &stats.ArchivedPosts)
	if err != nil {
		return nil, fmt.Errorf("post totals: %w", err)
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT t.name, COUNT(pt.post_id) FROM tags t JOIN post_tag pt ON pt.tag_id = t.id GROUP BY t.id")
	if err != nil {
		return nil, fmt.Errorf("posts by tag: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var count int64
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("scan tag count: %w", err)
		}
		stats.PostsByTag[name] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tag counts: %w", err)
	}

	monthRows, err := s.sqlDB.QueryContext(ctx,
		"SELECT strftime('%Y-%m', created_at / 1000, 'unixepoch'), COUNT(1) FROM posts GROUP BY 1")
	if err != nil {
		return nil, fmt.Errorf("posts by month: %w", err)
	}
	defer monthRows.Close()
	for monthRows.Next() {
		var month string
		var count int64
		if err := monthRows.Scan(&month, &count); err != nil {
			return nil, fmt.Errorf("scan month count: %w", err)
		}
		stats.PostsByMonth[month] = count
	}
	if err := monthRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate month counts: %w", err)
	}

	return stats, nil
}

func (s *Store) setPostColumn(ctx context.Context, id int64, column string, value int) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := s.sqlDB.ExecContext(ctx,
		fmt.Sprintf("UPDATE posts SET %s = ?, updated_at = ? WHERE id = ?", column),
		value, toMillis(time.Now()), id)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", column, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, domain.ErrPostNotFound
	}
	return s.Get(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var post domain.Post
	var imageURL sql.NullString
	var archived, active int
	var createdAt int64
	var updatedAt sql.NullInt64

	err := row.Scan(&post.ID, &post.Title, &post.Content, &imageURL, &archived, &active, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	post.CoverImage = imageURL.String
	post.IsArchived = archived == 1
	post.IsActive = active == 1
	post.CreatedAt = fromMillis(createdAt)
	if updatedAt.Valid {
		t := fromMillis(updatedAt.Int64)
		post.UpdatedAt = &t
	}
	post.Tags = []string{}
	return &post, nil
}

func (s *Store) loadTags(ctx context.Context, post *domain.Post) error {
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT t.name FROM tags t JOIN post_tag pt ON pt.tag_id = t.id WHERE pt.post_id = ? ORDER BY t.name", post.ID)
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate tags: %w", err)
	}
	post.Tags = tags
	return nil
}

// replaceTags relinks the post to the given tag names, creating missing
// tags on the way.
func replaceTags(ctx context.Context, tx *sql.Tx, postID int64, names []string) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM post_tag WHERE post_id = ?", postID); err != nil {
		return fmt.Errorf("unlink tags: %w", err)
	}

	seen := map[string]bool{}
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		var tagID int64
		err := tx.QueryRowContext(ctx, "SELECT id FROM tags WHERE name = ?", name).Scan(&tagID)
		if errors.Is(err, sql.ErrNoRows) {
			res, err := tx.ExecContext(ctx, "INSERT INTO tags (name) VALUES (?)", name)
			if err != nil {
				return fmt.Errorf("create tag %s: %w", name, err)
			}
			tagID, err = res.LastInsertId()
			if err != nil {
				return fmt.Errorf("tag id: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("find tag %s: %w", name, err)
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO post_tag (post_id, tag_id) VALUES (?, ?)", postID, tagID); err != nil {
			return fmt.Errorf("link tag %s: %w", name, err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
