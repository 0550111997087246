/*
 * @module client/connectors/redis_cache
 * @description Redis评分缓存连接器，封装质量评分缓存记录的热层读写
 * @architecture 适配器模式 - 封装第三方Redis客户端，提供统一的缓存接口
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 连接建立 -> 缓存读写/删除 -> 连接断开
 * @rules 热层命中失败时由服务层回退数据库，缓存写入失败不阻断评分流程
 * @dependencies github.com/go-redis/redis/v8, encoding/json
 * @refs service/quality/quality_service.go, service/models/quality_models.go
 */

package connectors

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"transhub-service/service/models"
)

// 缓存键前缀
const scoreCacheKeyPrefix = "transhub:quality:score:"

// RedisScoreCache Redis评分缓存连接器
type RedisScoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisScoreCache 从环境变量创建Redis评分缓存连接器
func NewRedisScoreCache() (*RedisScoreCache, error) {
	host := getEnvWithDefault("REDIS_HOST", "localhost")
	port := getEnvWithDefault("REDIS_PORT", "6379")
	password := os.Getenv("REDIS_PASSWORD")
	db := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		fmt.Sscanf(dbStr, "%d", &db)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		Password:     password,
		DB:           db,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("Redis连接失败: %v", err)
	}

	return &RedisScoreCache{
		client: client,
		// 热层只是加速，持久层在数据库，过期后自动回源
		ttl: 24 * time.Hour,
	}, nil
}

// Get 读取翻译的评分缓存记录，未命中返回nil
func (rc *RedisScoreCache) Get(ctx context.Context, translationID string) (*models.QualityScoreCache, error) {
	data, err := rc.client.Get(ctx, scoreCacheKeyPrefix+translationID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取评分缓存失败: %v", err)
	}

	var record models.QualityScoreCache
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("反序列化评分缓存失败: %v", err)
	}
	return &record, nil
}

// Set 写入翻译的评分缓存记录
func (rc *RedisScoreCache) Set(ctx context.Context, record *models.QualityScoreCache) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("序列化评分缓存失败: %v", err)
	}

	if err := rc.client.Set(ctx, scoreCacheKeyPrefix+record.TranslationID, data, rc.ttl).Err(); err != nil {
		return fmt.Errorf("写入评分缓存失败: %v", err)
	}
	return nil
}

// Delete 删除翻译的评分缓存记录
func (rc *RedisScoreCache) Delete(ctx context.Context, translationID string) error {
	if err := rc.client.Del(ctx, scoreCacheKeyPrefix+translationID).Err(); err != nil {
		return fmt.Errorf("删除评分缓存失败: %v", err)
	}
	return nil
}

// Close 关闭Redis连接
func (rc *RedisScoreCache) Close() error {
	return rc.client.Close()
}

// getEnvWithDefault 获取环境变量，如果不存在则返回默认值
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
