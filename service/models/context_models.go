/*
 * @module service/models/context_models
 * @description 翻译上下文模型，包含关联候选、关系类型和打分结果等模型
 * @architecture 数据模型层
 * @documentReference ai_docs/context_ranking_design.md
 * @stateFlow 关系分析器输出候选 -> 上下文排序 -> AI翻译上下文构建
 * @rules 候选数据由外部关系分析器生成，本服务只读不修改
 * @dependencies 无外部依赖，纯数据结构
 * @refs service/context_ranking/
 */

package models

// RelationshipType 文本键之间的关系类型
type RelationshipType string

const (
	RelationshipNearby        RelationshipType = "nearby"         // 相邻键
	RelationshipKeyPattern    RelationshipType = "key_pattern"    // 键名模式相似
	RelationshipSameComponent RelationshipType = "same_component" // 同一组件
	RelationshipSameFile      RelationshipType = "same_file"      // 同一源文件
	RelationshipSemantic      RelationshipType = "semantic"       // 语义相似
)

// 翻译审批状态
const (
	TranslationStatusApproved = "approved"
	TranslationStatusPending  = "pending"
	TranslationStatusRejected = "rejected"
)

// CandidateTranslation 候选条目的单语言翻译
type CandidateTranslation struct {
	Language       string `json:"language"`        // 语言代码，如 zh-CN、en
	Value          string `json:"value"`           // 翻译文本
	ApprovalStatus string `json:"approval_status"` // 审批状态
}

// RelatedCandidate 关系分析器输出的关联候选条目
type RelatedCandidate struct {
	ID           string                 `json:"id"`
	Confidence   float64                `json:"confidence"` // 关系置信度 [0,1]
	Translations []CandidateTranslation `json:"translations"`
}

// ScoredCandidate 带关系类型和相关性评分的候选条目
type ScoredCandidate struct {
	RelatedCandidate
	RelationshipType RelationshipType `json:"relationship_type"`
	Score            float64          `json:"score"`
}

// CandidateBuckets 按关系类型分组的候选集合，由关系分析器按固定顺序提供
type CandidateBuckets struct {
	Nearby        []RelatedCandidate `json:"nearby"`
	KeyPattern    []RelatedCandidate `json:"key_pattern"`
	SameComponent []RelatedCandidate `json:"same_component"`
	SameFile      []RelatedCandidate `json:"same_file"`
	Semantic      []RelatedCandidate `json:"semantic"`
}
