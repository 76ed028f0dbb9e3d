package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"recipe-catalog/internal/core/recipe"
	"recipe-catalog/internal/infrastructure/config"
)

// PostgresStore 以 Postgres 實作 recipe.Store。完整文件存在 doc JSONB
// 欄位，常用的過濾條件另外展開成欄位以便查詢。
type PostgresStore struct {
	db *sqlx.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS recipes (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	category TEXT NOT NULL,
	dietary_tags JSONB NOT NULL DEFAULT '[]',
	total_time INT NOT NULL DEFAULT 0,
	calories DOUBLE PRECISION NOT NULL DEFAULT 0,
	views INT NOT NULL DEFAULT 0,
	likes INT NOT NULL DEFAULT 0,
	search_text TEXT NOT NULL DEFAULT '',
	doc JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_recipes_category ON recipes (category);
CREATE INDEX IF NOT EXISTS idx_recipes_total_time ON recipes (total_time);
CREATE INDEX IF NOT EXISTS idx_recipes_calories ON recipes (calories);
CREATE INDEX IF NOT EXISTS idx_recipes_created_at ON recipes (created_at DESC);
`

// NewPostgresStore 建立並初始化 Postgres 儲存
func NewPostgresStore(cfg config.DatabaseConfig) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create recipes table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// searchText 拼出全文過濾用的文字欄位
func searchText(r *recipe.Recipe) string {
	parts := []string{r.Title, r.Description}
	parts = append(parts, r.SearchKeywords...)
	parts = append(parts, r.MainIngredients...)
	return strings.ToLower(strings.Join(parts, " "))
}

// escapeLike 關鍵字裡的 % 與 _ 是字面字元，不是萬用字元
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// List 依條件查詢食譜並回傳總數
func (s *PostgresStore) List(ctx context.Context, filter recipe.ListFilter) ([]recipe.Recipe, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	appendArg := func(clause string, value interface{}) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if filter.Query != "" {
		appendArg(`search_text LIKE '%%' || $%d || '%%' ESCAPE '\'`, escapeLike(strings.ToLower(filter.Query)))
	}
	if filter.Category != "" {
		appendArg("category = $%d", filter.Category)
	}
	if filter.Diet != "" {
		tag, err := json.Marshal([]string{strings.ToLower(filter.Diet)})
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal diet filter: %w", err)
		}
		appendArg("dietary_tags @> $%d::jsonb", string(tag))
	}
	if filter.MaxTime > 0 {
		appendArg("total_time <= $%d", filter.MaxTime)
	}
	if filter.MaxCalories > 0 {
		appendArg("calories <= $%d", filter.MaxCalories)
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM recipes WHERE " + whereClause
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(
		"SELECT doc FROM recipes WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		whereClause, len(args)-1, len(args),
	)

	recipes, err := s.queryDocs(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// Featured 取得首頁精選食譜，依瀏覽數、按讚數、建立時間排序
func (s *PostgresStore) Featured(ctx context.Context, limit int) ([]recipe.Recipe, error) {
	if limit <= 0 {
		limit = 12
	}
	return s.queryDocs(ctx,
		"SELECT doc FROM recipes ORDER BY views DESC, likes DESC, created_at DESC LIMIT $1",
		limit,
	)
}

// Get 取得單筆食譜，找不到時回傳 nil
func (s *PostgresStore) Get(ctx context.Context, id string) (*recipe.Recipe, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx, "SELECT doc FROM recipes WHERE id = $1", id).Scan(&doc)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return unmarshalDoc(doc)
}

// GetAndCountView 取得食譜並累加瀏覽數，找不到時回傳 nil
func (s *PostgresStore) GetAndCountView(ctx context.Context, id string) (*recipe.Recipe, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx, `
		UPDATE recipes
		SET views = views + 1,
		    doc = jsonb_set(doc, '{views}', to_jsonb(views + 1))
		WHERE id = $1
		RETURNING doc`, id).Scan(&doc)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return unmarshalDoc(doc)
}

// Create 寫入新食譜，ID 與時間戳在此指派
func (s *PostgresStore) Create(ctx context.Context, r *recipe.Recipe) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	return s.insert(ctx, r)
}

func (s *PostgresStore) insert(ctx context.Context, r *recipe.Recipe) error {
	doc, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe: %w", err)
	}
	tags, err := json.Marshal(r.DietaryTags)
	if err != nil {
		return fmt.Errorf("failed to marshal dietary tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO recipes (id, title, category, dietary_tags, total_time, calories, views, likes, search_text, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		r.ID, r.Title, r.Category, tags, r.TotalTime, r.Calories,
		r.Views, r.Likes, searchText(r), doc, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}
	return nil
}

// Replace 整筆覆蓋食譜內容，瀏覽數、按讚數與建立時間沿用原值。
// 找不到時回傳 nil。
func (s *PostgresStore) Replace(ctx context.Context, id string, r *recipe.Recipe) (*recipe.Recipe, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	r.ID = id
	r.Views = existing.Views
	r.Likes = existing.Likes
	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = time.Now().UTC()

	doc, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recipe: %w", err)
	}
	tags, err := json.Marshal(r.DietaryTags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dietary tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE recipes
		SET title = $2, category = $3, dietary_tags = $4, total_time = $5,
		    calories = $6, search_text = $7, doc = $8, updated_at = $9
		WHERE id = $1`,
		id, r.Title, r.Category, tags, r.TotalTime, r.Calories,
		searchText(r), doc, r.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}
	return r, nil
}

// Delete 刪除食譜，回傳是否確實存在
func (s *PostgresStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete recipe: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

// All 取得全部食譜，供索引重建使用
func (s *PostgresStore) All(ctx context.Context) ([]recipe.Recipe, error) {
	return s.queryDocs(ctx, "SELECT doc FROM recipes ORDER BY created_at")
}

// Count 食譜總數
func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return total, nil
}

// Ping 檢查資料庫連線
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close 關閉資料庫連線
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) queryDocs(ctx context.Context, query string, args ...interface{}) ([]recipe.Recipe, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []recipe.Recipe
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		r, err := unmarshalDoc(doc)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return recipes, nil
}

func unmarshalDoc(doc []byte) (*recipe.Recipe, error) {
	var r recipe.Recipe
	if err := json.Unmarshal(doc, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe: %w", err)
	}
	return &r, nil
}
