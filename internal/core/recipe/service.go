package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"recipe-catalog/internal/pkg/common"
)

// ListFilter 列表查詢條件
type ListFilter struct {
	Query       string
	Category    string
	Diet        string
	MaxTime     int
	MaxCalories int
	Page        int
	Limit       int
}

// Store 食譜持久化介面
type Store interface {
	List(ctx context.Context, filter ListFilter) ([]Recipe, int, error)
	Featured(ctx context.Context, limit int) ([]Recipe, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	GetAndCountView(ctx context.Context, id string) (*Recipe, error)
	Create(ctx context.Context, r *Recipe) error
	Replace(ctx context.Context, id string, r *Recipe) (*Recipe, error)
	Delete(ctx context.Context, id string) (bool, error)
	All(ctx context.Context) ([]Recipe, error)
	Count(ctx context.Context) (int, error)
}

// Indexer 搜尋索引的非同步交接點，寫入路徑只交付不等待
type Indexer interface {
	EnqueueSave(r *Recipe)
	EnqueueDelete(id string)
}

// Service 食譜目錄服務。每次寫入後把索引更新排進 Indexer，
// 索引失敗不影響呼叫端。
type Service struct {
	store   Store
	indexer Indexer
}

// NewService 建立食譜目錄服務
func NewService(store Store, indexer Indexer) *Service {
	return &Service{store: store, indexer: indexer}
}

// List 依條件查詢食譜
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Recipe, int, error) {
	recipes, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, total, nil
}

// Featured 首頁精選食譜
func (s *Service) Featured(ctx context.Context) ([]Recipe, error) {
	recipes, err := s.store.Featured(ctx, 12)
	if err != nil {
		return nil, fmt.Errorf("featured recipes: %w", err)
	}
	return recipes, nil
}

// Get 取得單筆食譜並累加瀏覽數
func (s *Service) Get(ctx context.Context, id string) (*Recipe, error) {
	r, err := s.store.GetAndCountView(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	if r == nil {
		return nil, common.ErrRecipeNotFound
	}
	return r, nil
}

// Create 建立食譜並排入索引更新
func (s *Service) Create(ctx context.Context, in Input) (*Recipe, error) {
	r := in.ToRecipe()
	if err := s.store.Create(ctx, &r); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	s.indexer.EnqueueSave(&r)
	return &r, nil
}

// Update 整筆覆蓋食譜並排入索引更新
func (s *Service) Update(ctx context.Context, id string, in Input) (*Recipe, error) {
	r := in.ToRecipe()
	updated, err := s.store.Replace(ctx, id, &r)
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	if updated == nil {
		return nil, common.ErrRecipeNotFound
	}
	s.indexer.EnqueueSave(updated)
	return updated, nil
}

// Delete 刪除食譜並排入索引刪除
func (s *Service) Delete(ctx context.Context, id string) error {
	found, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if !found {
		return common.ErrRecipeNotFound
	}
	s.indexer.EnqueueDelete(id)
	return nil
}

// PersistDraft 盡力持久化 AI 生成的草稿。失敗只記錄，草稿
// 仍回傳給呼叫端顯示；成功時才排入索引更新。
func (s *Service) PersistDraft(ctx context.Context, r *Recipe) bool {
	if err := s.store.Create(ctx, r); err != nil {
		common.LogError("草稿持久化失敗，僅回傳未儲存的結果",
			zap.Error(err),
			zap.String("title", r.Title),
		)
		return false
	}
	s.indexer.EnqueueSave(r)
	return true
}

// StringList 接受單一逗號分隔字串或字串陣列的欄位
type StringList []string

// UnmarshalJSON 先試陣列，再試字串
func (l *StringList) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err == nil {
		*l = values
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = nil
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			*l = append(*l, s)
		}
	}
	return nil
}

// IngredientSearchRequest 以現有食材搜尋食譜的請求
type IngredientSearchRequest struct {
	Ingredients         StringList `json:"ingredients"`
	DietaryRestrictions StringList `json:"dietaryRestrictions"`
	MaxTime             int        `json:"maxTime"`
	MaxCalories         int        `json:"maxCalories"`
}

// ScoredRecipe 附上食材重疊分數的搜尋結果
type ScoredRecipe struct {
	Recipe
	MatchScore      int `json:"matchScore"`
	MatchPercentage int `json:"matchPercentage"`
}

// SearchByIngredients 以食材重疊程度排序搜尋。先用飲食與時間
// 條件縮小候選，再逐筆計算主要食材的命中數。
func (s *Service) SearchByIngredients(ctx context.Context, req IngredientSearchRequest) ([]ScoredRecipe, error) {
	if len(req.Ingredients) == 0 {
		return nil, common.NewValidationError("請提供食材")
	}

	filter := ListFilter{
		MaxTime:     req.MaxTime,
		MaxCalories: req.MaxCalories,
		Limit:       200,
	}
	if len(req.DietaryRestrictions) > 0 {
		filter.Diet = strings.ToLower(req.DietaryRestrictions[0])
	}

	candidates, _, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search by ingredients: %w", err)
	}

	scored := make([]ScoredRecipe, 0, len(candidates))
	for _, r := range candidates {
		matches := 0
		for _, ing := range req.Ingredients {
			if matchesIngredient(r.MainIngredients, ing) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		scored = append(scored, ScoredRecipe{
			Recipe:          r,
			MatchScore:      matches,
			MatchPercentage: int(math.Round(float64(matches) * 100 / float64(len(req.Ingredients)))),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if len(scored) > 20 {
		scored = scored[:20]
	}
	return scored, nil
}

func matchesIngredient(mainIngredients []string, ingredient string) bool {
	needle := strings.ToLower(strings.TrimSpace(ingredient))
	if needle == "" {
		return false
	}
	for _, main := range mainIngredients {
		if strings.Contains(strings.ToLower(main), needle) {
			return true
		}
	}
	return false
}
