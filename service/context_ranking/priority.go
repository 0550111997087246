/*
 * @module service/context_ranking/priority
 * @description 关系类型优先级权重表，定义五种关系类型的固定权重
 * @architecture 分层架构 - 业务服务层
 * @documentReference ai_docs/context_ranking_design.md
 * @stateFlow 无状态查表：关系类型 -> 权重
 * @rules 权重表为模块级不可变常量，运行时不允许修改
 * @dependencies transhub-service/service/models
 * @refs service/context_ranking/scorer.go
 */

package context_ranking

import (
	"transhub-service/service/models"
)

// 未知关系类型的兜底权重
const fallbackWeight = 0.5

// relationshipWeights 关系类型优先级权重表
// 相邻键最能反映界面上下文，语义相似度最弱
var relationshipWeights = map[models.RelationshipType]float64{
	models.RelationshipNearby:        1.0,
	models.RelationshipKeyPattern:    0.9,
	models.RelationshipSameComponent: 0.8,
	models.RelationshipSameFile:      0.7,
	models.RelationshipSemantic:      0.6,
}

// bucketOrder 桶的固定遍历顺序，用于排序的稳定性保证
var bucketOrder = []models.RelationshipType{
	models.RelationshipNearby,
	models.RelationshipKeyPattern,
	models.RelationshipSameComponent,
	models.RelationshipSameFile,
	models.RelationshipSemantic,
}

// PriorityWeight 返回关系类型的优先级权重，未知类型返回兜底权重
func PriorityWeight(relType models.RelationshipType) float64 {
	if weight, exists := relationshipWeights[relType]; exists {
		return weight
	}
	return fallbackWeight
}
