/*
 * @module service/scheduler/stale_score_sweeper
 * @description 过期评分扫描调度器，定时对照当前翻译文本清理指纹失配的评分缓存
 * @architecture 基于cron库的调度器模式
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 定时触发 -> 批量读取评分记录 -> 指纹比对 -> 清理失效记录
 * @rules 扫描周期通过环境变量配置，单轮扫描失败不影响下一轮
 * @dependencies github.com/robfig/cron/v3
 * @refs service/quality/quality_service.go
 */

package scheduler

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"transhub-service/service/quality"
)

// 默认每天凌晨三点扫描一次
const defaultSweepSpec = "0 3 * * *"

// StaleScoreSweeper 过期评分扫描调度器
type StaleScoreSweeper struct {
	qualityService *quality.QualityService
	reader         quality.TranslationReader
	cron           *cron.Cron
	spec           string
}

// NewStaleScoreSweeper 创建过期评分扫描调度器
func NewStaleScoreSweeper(qualityService *quality.QualityService, reader quality.TranslationReader) *StaleScoreSweeper {
	spec := defaultSweepSpec
	if envSpec := os.Getenv("SCORE_SWEEP_CRON"); envSpec != "" {
		spec = envSpec
	}

	return &StaleScoreSweeper{
		qualityService: qualityService,
		reader:         reader,
		cron:           cron.New(),
		spec:           spec,
	}
}

// Start 启动定时扫描
func (s *StaleScoreSweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runSweep); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("过期评分扫描调度器已启动, cron: %s", s.spec)
	return nil
}

// Stop 停止定时扫描
func (s *StaleScoreSweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("过期评分扫描调度器已停止")
}

// runSweep 执行单轮扫描
func (s *StaleScoreSweeper) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	removed, err := s.qualityService.SweepStaleScores(ctx, s.reader)
	if err != nil {
		log.Printf("过期评分扫描失败: %v", err)
		return
	}

	log.Printf("过期评分扫描完成, 清理记录数: %d", removed)
}
