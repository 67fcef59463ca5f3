// internal/analytics/cache.go
package analytics

import (
	"strings"
	"sync"

	"go_vocab_mastery/internal/model"

	"github.com/google/uuid"
)

// Cache は (学習者ID, フィルタハッシュ) をキーにしたスナップショットの
// リードスルーキャッシュです。TTLは持たず、新しい解答記録の到着時に
// 明示的に無効化します。グローバル変数ではなく、生存期間はこのオブジェクト
// を保持する側（通常はAnalyticsService）が決めます。
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*model.AnalyticsSnapshot
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*model.AnalyticsSnapshot),
	}
}

func cacheKey(learnerID uuid.UUID, f Filters) string {
	return learnerID.String() + "|" + f.Hash()
}

func (c *Cache) Get(learnerID uuid.UUID, f Filters) (*model.AnalyticsSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap, ok := c.entries[cacheKey(learnerID, f)]
	return snap, ok
}

func (c *Cache) Put(learnerID uuid.UUID, f Filters, snap *model.AnalyticsSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(learnerID, f)] = snap
}

// Clear は指定学習者のエントリをすべて削除します。
// その学習者の新しい解答記録が到着したときに呼び出します。
func (c *Cache) Clear(learnerID uuid.UUID) {
	prefix := learnerID.String() + "|"
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// ClearAll は全エントリを削除します。
func (c *Cache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*model.AnalyticsSnapshot)
}

// Len は保持中のエントリ数を返します（テスト・デバッグ用）。
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
