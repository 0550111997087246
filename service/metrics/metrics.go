/*
 * @module service/metrics/metrics
 * @description Prometheus指标定义，暴露评分缓存命中率和上下文排序请求量
 * @architecture 监控层 - 指标注册与计数
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 服务调用 -> 计数器累加 -> /metrics 暴露
 * @rules 指标只增不减，命中率由 hits/(hits+misses) 在查询侧计算
 * @dependencies github.com/prometheus/client_golang
 * @refs main.go, service/quality/quality_service.go, api/controllers/context_controller.go
 */

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QualityCacheHits 评分缓存命中计数
	QualityCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quality_cache_hits_total",
		Help: "质量评分缓存命中次数",
	})

	// QualityCacheMisses 评分缓存未命中计数
	QualityCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quality_cache_misses_total",
		Help: "质量评分缓存未命中次数",
	})

	// ContextRankRequests 上下文排序请求计数
	ContextRankRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "context_rank_requests_total",
		Help: "上下文相关性排序请求次数",
	})

	// ContextCandidatesDropped 被剔除候选计数
	ContextCandidatesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "context_candidates_dropped_total",
		Help: "因置信度越界被剔除的候选条目数",
	})
)
