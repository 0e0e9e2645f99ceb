package router

import (
	"github.com/gin-gonic/gin"

	authhandler "task_backend/internal/feature/auth/transport/handler"
	taskshandler "task_backend/internal/feature/tasks/transport/handler"
	"task_backend/internal/platform/http/handler"
)

// NewRouter assembles the route table. Every /tasks route sits behind the
// auth middleware; signup, login and the health probe do not.
func NewRouter(authHandler *authhandler.AuthHandler, taskHandler *taskshandler.TaskHandler,
	authRequired gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/users", authHandler.Signup)
	// ログイン（アクセストークン発行）
	r.POST("/auth/login", authHandler.Login)

	// 認証必須のルート
	// リクエストヘッダーに Bearer トークンが必要になる
	tasks := r.Group("/tasks")
	tasks.Use(authRequired)
	{
		tasks.POST("", taskHandler.Create)
		tasks.GET("", taskHandler.List)
		tasks.GET("/:id", taskHandler.Get)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
	}

	return r
}
