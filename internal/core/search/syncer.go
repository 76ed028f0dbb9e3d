package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"recipe-catalog/internal/core/recipe"
	"recipe-catalog/internal/infrastructure/config"
	"recipe-catalog/internal/pkg/common"
)

// RecipeSource 索引重建時的食譜來源
type RecipeSource interface {
	All(ctx context.Context) ([]recipe.Recipe, error)
}

type jobKind int

const (
	jobSave jobKind = iota
	jobDelete
)

type job struct {
	kind     jobKind
	record   Record
	objectID string
}

// Syncer 索引同步工作者。寫入路徑只把工作丟進緩衝通道後立即
// 返回，同步失敗只記錄不重試，不影響請求回應。
type Syncer struct {
	client    *Client
	jobs      chan job
	done      chan struct{}
	wg        sync.WaitGroup
	processed int64
	dropped   int64
	batchSize int
}

// NewSyncer 建立索引同步工作者並啟動背景協程
func NewSyncer(client *Client, cfg config.SyncConfig) *Syncer {
	s := &Syncer{
		client:    client,
		jobs:      make(chan job, cfg.QueueSize),
		done:      make(chan struct{}),
		batchSize: cfg.BatchSize,
	}

	s.wg.Add(1)
	go s.run()

	common.LogInfo("索引同步工作者已啟動",
		zap.Int("隊列容量", cfg.QueueSize),
		zap.Bool("索引已啟用", client.Enabled()),
	)

	return s
}

// EnqueueSave 排入單筆索引寫入，隊列滿時放棄並記錄
func (s *Syncer) EnqueueSave(r *recipe.Recipe) {
	s.enqueue(job{kind: jobSave, record: FromRecipe(r)})
}

// EnqueueDelete 排入索引刪除，隊列滿時放棄並記錄
func (s *Syncer) EnqueueDelete(id string) {
	s.enqueue(job{kind: jobDelete, objectID: id})
}

func (s *Syncer) enqueue(j job) {
	if !s.client.Enabled() {
		return
	}

	select {
	case s.jobs <- j:
	case <-s.done:
	default:
		atomic.AddInt64(&s.dropped, 1)
		common.LogWarn("同步隊列已滿，放棄此次索引更新",
			zap.Int64("累計放棄", atomic.LoadInt64(&s.dropped)),
		)
	}
}

// run 依序處理同步工作
func (s *Syncer) run() {
	defer s.wg.Done()

	for {
		select {
		case j, ok := <-s.jobs:
			if !ok {
				return
			}
			s.process(j)
		case <-s.done:
			// 清空殘留的工作再結束
			for {
				select {
				case j := <-s.jobs:
					s.process(j)
				default:
					return
				}
			}
		}
	}
}

func (s *Syncer) process(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	switch j.kind {
	case jobSave:
		err = s.client.SaveObject(ctx, j.record)
	case jobDelete:
		err = s.client.DeleteObject(ctx, j.objectID)
	}

	if err != nil {
		common.LogError("索引同步失敗",
			zap.Error(err),
			zap.String("object_id", s.jobID(j)),
		)
		return
	}

	atomic.AddInt64(&s.processed, 1)
}

func (s *Syncer) jobID(j job) string {
	if j.kind == jobDelete {
		return j.objectID
	}
	return j.record.ObjectID
}

// SyncAll 全量重建索引：套用索引設定後分批寫入全部食譜，
// 回傳同步筆數
func (s *Syncer) SyncAll(ctx context.Context, source RecipeSource) (int, error) {
	if !s.client.Enabled() {
		return 0, common.ErrSearchDisabled
	}

	recipes, err := source.All(ctx)
	if err != nil {
		return 0, err
	}
	if len(recipes) == 0 {
		common.LogWarn("資料庫沒有食譜，索引未更新")
		return 0, nil
	}

	if err := s.client.SetSettings(ctx); err != nil {
		return 0, err
	}

	records := make([]Record, 0, len(recipes))
	for i := range recipes {
		records = append(records, FromRecipe(&recipes[i]))
	}

	for start := 0; start < len(records); start += s.batchSize {
		end := start + s.batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := s.client.SaveObjects(ctx, records[start:end]); err != nil {
			return 0, err
		}
	}

	common.LogInfo("索引重建完成",
		zap.Int("筆數", len(records)),
	)
	return len(records), nil
}

// SyncStats 同步隊列的目前狀態
type SyncStats struct {
	QueueLength int   `json:"queue_length"`
	QueueSize   int   `json:"queue_size"`
	Processed   int64 `json:"processed"`
	Dropped     int64 `json:"dropped"`
	Enabled     bool  `json:"enabled"`
}

// Stats 回報隊列狀態
func (s *Syncer) Stats() SyncStats {
	return SyncStats{
		QueueLength: len(s.jobs),
		QueueSize:   cap(s.jobs),
		Processed:   atomic.LoadInt64(&s.processed),
		Dropped:     atomic.LoadInt64(&s.dropped),
		Enabled:     s.client.Enabled(),
	}
}

// Close 停止工作者並等待處理中的工作結束
func (s *Syncer) Close() {
	close(s.done)
	s.wg.Wait()
}
