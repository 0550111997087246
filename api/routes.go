/*
 * @module api/routes
 * @description API路由配置模块，负责初始化和配置所有HTTP路由
 * @architecture RESTful API架构
 * @documentReference ai_docs/quality_score_design.md
 * @stateFlow 无状态HTTP请求处理
 * @rules 遵循RESTful API设计规范，统一错误处理和响应格式
 * @dependencies github.com/go-chi/chi/v5, github.com/go-chi/cors, github.com/go-chi/render
 * @refs api/controllers/
 */

package api

import (
	"transhub-service/api/controllers"
	"transhub-service/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// InitRoute 初始化所有API路由
func InitRoute(r *chi.Mux) {
	// 基础中间件
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// CORS配置
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 健康检查
	healthController := controllers.NewHealthController(service.DB)
	r.Get("/health", healthController.Health)
	r.Get("/ready", healthController.Ready)

	// 翻译上下文排序
	r.Route("/context", func(r chi.Router) {
		contextController := controllers.NewContextController()
		r.Post("/rank", contextController.RankCandidates)
	})

	// 翻译质量管理
	r.Route("/quality", func(r chi.Router) {
		qualityController := controllers.NewQualityController(service.GlobalQualityService)
		configController := controllers.NewConfigController(service.GlobalQualityConfigService)

		// 质量评分
		r.Post("/score", qualityController.ScoreTranslation)

		// 评分缓存
		r.Route("/cache", func(r chi.Router) {
			r.Post("/validate", qualityController.ValidateCache)
			r.Get("/{translation_id}", qualityController.GetCacheRecord)
		})

		// 项目质量配置
		r.Route("/configs", func(r chi.Router) {
			r.Get("/{project_id}", configController.GetProjectConfig)
			r.Put("/{project_id}", configController.SaveProjectConfig)
		})
	})
}
