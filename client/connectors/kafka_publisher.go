/*
 * @module client/connectors/kafka_publisher
 * @description Kafka工作流事件发布器，将质量分类结果推送给外部工作流引擎
 * @architecture 适配器模式 - 封装第三方Kafka客户端，提供统一的事件发布接口
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 分类结果 -> 序列化 -> Kafka消息发送 -> 工作流引擎消费
 * @rules 事件发布失败只记录日志，不回滚评分结果
 * @dependencies github.com/segmentio/kafka-go, encoding/json
 * @refs service/quality/quality_service.go
 */

package connectors

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"transhub-service/service/models"
)

// ClassificationEvent 质量分类事件，由外部工作流引擎消费并落审批状态
type ClassificationEvent struct {
	TranslationID  string                `json:"translation_id"`
	ProjectID      string                `json:"project_id"`
	Score          int                   `json:"score"`
	Classification models.Classification `json:"classification"`
	Fingerprint    string                `json:"fingerprint"`
	FromCache      bool                  `json:"from_cache"`
	OccurredAt     time.Time             `json:"occurred_at"`
}

// KafkaWorkflowPublisher Kafka工作流事件发布器
type KafkaWorkflowPublisher struct {
	writer *kafka.Writer
	logger *log.Logger
}

// NewKafkaWorkflowPublisher 从环境变量创建Kafka工作流事件发布器
func NewKafkaWorkflowPublisher(logger *log.Logger) *KafkaWorkflowPublisher {
	brokers := strings.Split(getEnvWithDefault("KAFKA_BROKERS", "localhost:9092"), ",")
	topic := getEnvWithDefault("KAFKA_WORKFLOW_TOPIC", "translation-quality-events")

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 100 * time.Millisecond,
	}

	logger.Printf("Kafka工作流事件发布器已初始化, brokers: %v, topic: %s", brokers, topic)

	return &KafkaWorkflowPublisher{
		writer: writer,
		logger: logger,
	}
}

// PublishClassification 发布质量分类事件
func (kp *KafkaWorkflowPublisher) PublishClassification(ctx context.Context, event *ClassificationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("序列化分类事件失败: %v", err)
	}

	message := kafka.Message{
		Key:   []byte(event.TranslationID),
		Value: payload,
		Time:  time.Now(),
	}

	if err := kp.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("发送分类事件失败: %v", err)
	}

	kp.logger.Printf("分类事件已发布: translation=%s classification=%s score=%d",
		event.TranslationID, event.Classification, event.Score)
	return nil
}

// Close 关闭Kafka发布器
func (kp *KafkaWorkflowPublisher) Close() error {
	return kp.writer.Close()
}
