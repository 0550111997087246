/*
 * @module service/config/quality_config_service_test
 * @description 项目质量配置服务的单元测试
 * @architecture 测试层 - 基于内存sqlite
 * @documentReference ai_docs/test_plan.md
 * @stateFlow 测试数据准备 -> 服务调用 -> 结果验证
 * @rules 保存校验必须拒绝倒置阈值，读取必须在无记录时回退默认值
 * @dependencies testing, testify, testutil
 * @refs quality_config_service.go
 */

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"transhub-service/service/models"
	"transhub-service/testutil"
)

func newTestService(t *testing.T) (*QualityConfigService, *testutil.TestDB) {
	t.Helper()

	testDB := testutil.NewTestDB()
	t.Cleanup(testDB.Close)

	return NewQualityConfigService(testDB.DB), testDB
}

func TestGetProjectConfig_DefaultsWhenAbsent(t *testing.T) {
	service, _ := newTestService(t)

	config, err := service.GetProjectConfig("proj-new")

	assert.NoError(t, err)
	assert.Equal(t, "proj-new", config.ProjectID)
	assert.True(t, config.ScoreAfterAITranslation)
	assert.False(t, config.ScoreBeforeMerge)
	assert.Equal(t, models.DefaultAutoApproveThreshold, config.AutoApproveThreshold)
	assert.Equal(t, models.DefaultFlagThreshold, config.FlagThreshold)
	assert.True(t, config.AIEvaluationEnabled)
	assert.Nil(t, config.AIEvaluationProvider)
	assert.Nil(t, config.AIEvaluationModel)
}

func TestGetProjectConfig_EnvThresholdOverrides(t *testing.T) {
	service, _ := newTestService(t)

	t.Setenv("QUALITY_AUTO_APPROVE_THRESHOLD", "90")
	t.Setenv("QUALITY_FLAG_THRESHOLD", "70")

	config, err := service.GetProjectConfig("proj-env")

	assert.NoError(t, err)
	assert.Equal(t, 90, config.AutoApproveThreshold)
	assert.Equal(t, 70, config.FlagThreshold)
}

func TestGetProjectConfig_InvertedEnvThresholdsFallBack(t *testing.T) {
	service, _ := newTestService(t)

	// 环境变量各自合法但组合倒置，整体回退到内置默认值
	t.Setenv("QUALITY_AUTO_APPROVE_THRESHOLD", "50")
	t.Setenv("QUALITY_FLAG_THRESHOLD", "90")

	config, err := service.GetProjectConfig("proj-env-inverted")

	assert.NoError(t, err)
	assert.Equal(t, models.DefaultAutoApproveThreshold, config.AutoApproveThreshold)
	assert.Equal(t, models.DefaultFlagThreshold, config.FlagThreshold)
	assert.LessOrEqual(t, config.FlagThreshold, config.AutoApproveThreshold)
}

func TestGetProjectConfig_ReturnsStored(t *testing.T) {
	service, testDB := newTestService(t)

	factory := testutil.NewTestDataFactory(testDB.DB)
	factory.CreateQualityConfig("proj-a", func(c *models.QualityConfig) {
		c.AutoApproveThreshold = 95
		c.FlagThreshold = 40
	})

	config, err := service.GetProjectConfig("proj-a")

	assert.NoError(t, err)
	assert.Equal(t, 95, config.AutoApproveThreshold)
	assert.Equal(t, 40, config.FlagThreshold)
}

func TestGetProjectConfig_EmptyProjectID(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetProjectConfig("")

	assert.Error(t, err)
}

func TestSaveProjectConfig_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		config        models.QualityConfig
		expectedField string
	}{
		{
			name: "缺少project_id",
			config: models.QualityConfig{
				AutoApproveThreshold: 80,
				FlagThreshold:        60,
			},
			expectedField: "project_id",
		},
		{
			name: "自动批准阈值越界",
			config: models.QualityConfig{
				ProjectID:            "proj-v",
				AutoApproveThreshold: 101,
				FlagThreshold:        60,
			},
			expectedField: "auto_approve_threshold",
		},
		{
			name: "标记阈值为负",
			config: models.QualityConfig{
				ProjectID:            "proj-v",
				AutoApproveThreshold: 80,
				FlagThreshold:        -1,
			},
			expectedField: "flag_threshold",
		},
		{
			name: "标记阈值大于自动批准阈值",
			config: models.QualityConfig{
				ProjectID:            "proj-v",
				AutoApproveThreshold: 60,
				FlagThreshold:        80,
			},
			expectedField: "flag_threshold",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, _ := newTestService(t)

			err := service.SaveProjectConfig(&tc.config)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.expectedField, validationErr.Field)
		})
	}
}

func TestSaveProjectConfig_CreateAndUpdate(t *testing.T) {
	service, testDB := newTestService(t)

	created := &models.QualityConfig{
		ProjectID:            "proj-b",
		AutoApproveThreshold: 85,
		FlagThreshold:        50,
		AIEvaluationEnabled:  true,
	}
	assert.NoError(t, service.SaveProjectConfig(created))
	assert.NotEmpty(t, created.ID)

	// 同项目再次保存走更新路径，记录数不变
	updated := &models.QualityConfig{
		ProjectID:            "proj-b",
		AutoApproveThreshold: 90,
		FlagThreshold:        55,
	}
	assert.NoError(t, service.SaveProjectConfig(updated))
	assert.Equal(t, created.ID, updated.ID)

	var count int64
	testDB.DB.Model(&models.QualityConfig{}).Where("project_id = ?", "proj-b").Count(&count)
	assert.Equal(t, int64(1), count)

	config, err := service.GetProjectConfig("proj-b")
	assert.NoError(t, err)
	assert.Equal(t, 90, config.AutoApproveThreshold)
	assert.Equal(t, 55, config.FlagThreshold)
}

func TestSaveProjectConfig_EqualThresholdsAllowed(t *testing.T) {
	service, _ := newTestService(t)

	err := service.SaveProjectConfig(&models.QualityConfig{
		ProjectID:            "proj-eq",
		AutoApproveThreshold: 70,
		FlagThreshold:        70,
	})

	assert.NoError(t, err)
}
