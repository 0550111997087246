/*
 * @module service/init
 * @description 服务初始化模块，负责数据库连接、缓存连接、事件组件和业务服务的初始化
 * @architecture 分层架构 - 服务层
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 应用启动时执行初始化流程
 * @rules 数据库初始化失败直接终止进程，Redis/Kafka/MQTT不可用时降级为单数据库模式
 * @dependencies gorm.io/gorm, gorm.io/driver/postgres
 * @refs service/quality/, service/config/, client/connectors/
 */

package service

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"transhub-service/client"
	"transhub-service/client/connectors"
	"transhub-service/service/config"
	"transhub-service/service/models"
	"transhub-service/service/quality"
	"transhub-service/service/scheduler"
)

var (
	DB                         *gorm.DB
	GlobalQualityConfigService *config.QualityConfigService
	GlobalQualityService       *quality.QualityService
	GlobalScoreCache           *connectors.RedisScoreCache
	GlobalWorkflowPublisher    *connectors.KafkaWorkflowPublisher
	GlobalTranslationSub       *connectors.MQTTTranslationSubscriber
	GlobalStaleScoreSweeper    *scheduler.StaleScoreSweeper
)

func init() {
	initDatabase()
	runMigrations()
	initServices()
}

// initDatabase 初始化数据库连接
func initDatabase() {
	var dsn string

	// 优先使用DATABASE_URL环境变量
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		dsn = databaseURL
	} else {
		// 使用分离的环境变量构建连接字符串
		host := getEnvWithDefault("DB_HOST", "localhost")
		port := getEnvWithDefault("DB_PORT", "5432")
		user := getEnvWithDefault("DB_USER", "postgres")
		password := getEnvWithDefault("DB_PASSWORD", "postgres")
		dbname := getEnvWithDefault("DB_NAME", "postgres")
		sslmode := getEnvWithDefault("DB_SSLMODE", "disable")
		schema := getEnvWithDefault("DB_SCHEMA", "public")

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s TimeZone=Asia/Shanghai",
			host, port, user, password, dbname, sslmode, schema)
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	log.Println("数据库连接成功")
}

// getEnvWithDefault 获取环境变量，如果不存在则返回默认值
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// runMigrations 运行数据库迁移
func runMigrations() {
	log.Println("开始运行数据库迁移...")

	if err := DB.AutoMigrate(
		&models.QualityConfig{},
		&models.QualityScoreCache{},
	); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	log.Println("数据库表结构迁移完成")
}

// initServices 初始化业务服务和外部连接组件
func initServices() {
	logger := log.Default()

	// Redis热层不可用时降级为单数据库模式
	scoreCache, err := connectors.NewRedisScoreCache()
	if err != nil {
		log.Printf("Redis评分缓存初始化失败，降级为数据库直查: %v", err)
	} else {
		GlobalScoreCache = scoreCache
	}

	GlobalWorkflowPublisher = connectors.NewKafkaWorkflowPublisher(logger)
	GlobalQualityConfigService = config.NewQualityConfigService(DB)

	var cache quality.ScoreCache
	if GlobalScoreCache != nil {
		cache = GlobalScoreCache
	}

	GlobalQualityService = quality.NewQualityService(
		DB,
		cache,
		quality.NewRemoteEvaluator(),
		GlobalWorkflowPublisher,
		GlobalQualityConfigService,
	)

	// 翻译文本变更时做缓存失效检查
	if os.Getenv("MQTT_BROKER") != "" {
		GlobalTranslationSub = connectors.NewMQTTTranslationSubscriber(
			GlobalQualityService.HandleTranslationUpdated, logger)
		if err := GlobalTranslationSub.Start(); err != nil {
			log.Printf("MQTT翻译变更订阅器启动失败: %v", err)
			GlobalTranslationSub = nil
		}
	}

	// 定时清理指纹失配的评分记录
	GlobalStaleScoreSweeper = scheduler.NewStaleScoreSweeper(
		GlobalQualityService, client.NewTranslationStoreClient())
	if err := GlobalStaleScoreSweeper.Start(); err != nil {
		log.Printf("过期评分扫描调度器启动失败: %v", err)
	}

	log.Println("业务服务初始化完成")
}
