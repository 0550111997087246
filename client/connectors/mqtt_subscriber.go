/*
 * @module client/connectors/mqtt_subscriber
 * @description MQTT翻译变更订阅器，订阅翻译文本更新事件并触发评分缓存失效检查
 * @architecture 适配器模式 - 封装第三方MQTT客户端，提供统一的订阅接口
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 连接建立 -> 订阅翻译更新主题 -> 事件回调 -> 缓存失效检查
 * @rules 单条事件处理失败只记录日志，不中断订阅
 * @dependencies github.com/eclipse/paho.mqtt.golang, encoding/json
 * @refs service/quality/quality_service.go
 */

package connectors

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// TranslationUpdatedEvent 翻译文本更新事件
type TranslationUpdatedEvent struct {
	TranslationID string `json:"translation_id"`
	ProjectID     string `json:"project_id"`
	SourceText    string `json:"source_text"`
	TargetText    string `json:"target_text"`
}

// TranslationUpdatedHandler 翻译更新事件处理函数类型
type TranslationUpdatedHandler func(event *TranslationUpdatedEvent) error

// MQTTTranslationSubscriber MQTT翻译变更订阅器
type MQTTTranslationSubscriber struct {
	client  mqtt.Client
	topic   string
	handler TranslationUpdatedHandler
	logger  *log.Logger
}

// NewMQTTTranslationSubscriber 从环境变量创建MQTT翻译变更订阅器
func NewMQTTTranslationSubscriber(handler TranslationUpdatedHandler, logger *log.Logger) *MQTTTranslationSubscriber {
	broker := getEnvWithDefault("MQTT_BROKER", "tcp://localhost:1883")
	topic := getEnvWithDefault("MQTT_TRANSLATION_TOPIC", "translations/updated")
	clientID := getEnvWithDefault("MQTT_CLIENT_ID", "transhub-service")

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second).
		SetKeepAlive(30 * time.Second)

	return &MQTTTranslationSubscriber{
		client:  mqtt.NewClient(opts),
		topic:   topic,
		handler: handler,
		logger:  logger,
	}
}

// Start 建立MQTT连接并订阅翻译更新主题
func (ms *MQTTTranslationSubscriber) Start() error {
	if token := ms.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("MQTT连接失败: %v", token.Error())
	}

	token := ms.client.Subscribe(ms.topic, 1, ms.onMessage)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("订阅主题失败: %v", token.Error())
	}

	ms.logger.Printf("MQTT翻译变更订阅器已启动, topic: %s", ms.topic)
	return nil
}

// onMessage 处理收到的翻译更新事件
func (ms *MQTTTranslationSubscriber) onMessage(client mqtt.Client, message mqtt.Message) {
	var event TranslationUpdatedEvent
	if err := json.Unmarshal(message.Payload(), &event); err != nil {
		ms.logger.Printf("解析翻译更新事件失败: %v", err)
		return
	}

	if event.TranslationID == "" {
		ms.logger.Printf("翻译更新事件缺少translation_id，已忽略")
		return
	}

	if err := ms.handler(&event); err != nil {
		ms.logger.Printf("处理翻译更新事件失败: translation=%s, %v", event.TranslationID, err)
	}
}

// Stop 取消订阅并断开MQTT连接
func (ms *MQTTTranslationSubscriber) Stop() {
	ms.client.Unsubscribe(ms.topic)
	ms.client.Disconnect(250)
	ms.logger.Println("MQTT翻译变更订阅器已停止")
}
