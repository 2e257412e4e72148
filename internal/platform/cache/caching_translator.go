// Package cache provides caching decorators for usecase interfaces.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"skillroots/internal/feature/translation/domain/entity"
	"skillroots/internal/feature/translation/usecase"
)

// DefaultTranslationTTL is used when the configured TTL is not positive.
const DefaultTranslationTTL = 24 * time.Hour

// CachingTranslator decorates a Translator with Redis caching.
// Only successful translations are cached; a failed call is retried on the next request.
type CachingTranslator struct {
	inner     usecase.Translator
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingTranslator decorates a Translator with Redis caching.
// If ttl is 0, it defaults to 24 hours. If namespace is empty, it uses "translations".
func NewCachingTranslator(rdb *redis.Client, ttl time.Duration, inner usecase.Translator, namespace string) *CachingTranslator {
	if ttl <= 0 {
		ttl = DefaultTranslationTTL
	}
	if namespace == "" {
		namespace = "translations"
	}
	return &CachingTranslator{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Translate returns the cached table for lang, falling back to the inner translator.
func (c *CachingTranslator) Translate(ctx context.Context, lang entity.Language, source entity.UITexts) (entity.UITexts, error) {
	if c.rdb == nil {
		return c.inner.Translate(ctx, lang, source)
	}

	key := c.cacheKey(lang.Code)

	// 1) キャッシュを確認
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		// 未知のキーは無視し、欠けたキーはsourceの値を使う
		if out, _, err := entity.Merge(source, b); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) 翻訳サービスへフォールバック
	out, err := c.inner.Translate(ctx, lang, source)
	if err != nil {
		return out, err
	}

	// 3) キャッシュに保存（ベストエフォート）
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// Purge removes every cached translation table and returns how many were deleted.
func (c *CachingTranslator) Purge(ctx context.Context) (int, error) {
	if c.rdb == nil {
		return 0, nil
	}
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, c.namespace+":*", 200).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := c.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += int(n)
		}
		cursor = cur
		if cursor == 0 {
			return deleted, nil
		}
	}
}

func (c *CachingTranslator) cacheKey(code string) string {
	return c.namespace + ":" + safe(code)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
