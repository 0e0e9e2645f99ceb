// Package handler はtasksフィーチャーのHTTPハンドラーを提供します。
// すべてのエンドポイントは認証ミドルウェアの背後にあり、解決済みユーザーを
// コンテキストから取り出して各操作のスコープとして渡します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task_backend/internal/api"
	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/transport/http/dto"
	"task_backend/internal/feature/tasks/usecase"
	jwtmw "task_backend/internal/platform/jwt"
)

// TaskUsecase はタスク操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TaskUsecase interface {
	Create(ctx context.Context, owner uuid.UUID, title, description string) (*entity.Task, error)
	List(ctx context.Context, owner uuid.UUID, page, pageSize int) ([]entity.Task, int64, error)
	GetByID(ctx context.Context, owner, id uuid.UUID) (*entity.Task, error)
	Update(ctx context.Context, owner, id uuid.UUID, fields usecase.UpdateFields) (*entity.Task, error)
	Delete(ctx context.Context, owner, id uuid.UUID) error
}

// TaskHandler はタスク操作のHTTPリクエストを処理します。
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler はTaskHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からTaskUsecaseを注入します。
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Create はPOST /tasksを処理します。
// - バリデーションエラー・空タイトル時は422を返却
// - 同一オーナーのタイトル重複時は400を返却
// - 成功時は作成されたタスクと共に200を返却
func (h *TaskHandler) Create(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "invalid token"})
		return
	}

	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create task validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "invalid request"})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		h.renderError(c, err, "create task failed")
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskResp(task))
}

// List はGET /tasksを処理し、認証済みオーナーのタスクのみをページ単位で返します。
func (h *TaskHandler) List(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "invalid token"})
		return
	}

	var q dto.ListTasksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		slog.Warn("list tasks validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "invalid pagination parameters"})
		return
	}

	tasks, total, err := h.tasks.List(c.Request.Context(), user.ID, q.Page, q.PageSize)
	if err != nil {
		h.renderError(c, err, "list tasks failed")
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskListResp(tasks, total, q.Page, q.PageSize))
}

// Get はGET /tasks/:idを処理します。
// 存在しないタスクも他ユーザーのタスクも、同じ404を返します。
func (h *TaskHandler) Get(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "invalid token"})
		return
	}

	id, ok := h.taskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.GetByID(c.Request.Context(), user.ID, id)
	if err != nil {
		h.renderError(c, err, "get task failed")
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskResp(task))
}

// Update はPUT /tasks/:idを処理します（部分更新）。
func (h *TaskHandler) Update(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "invalid token"})
		return
	}

	id, ok := h.taskID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update task validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "invalid request"})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), user.ID, id, usecase.UpdateFields{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.renderError(c, err, "update task failed")
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskResp(task))
}

// Delete はDELETE /tasks/:idを処理します。
func (h *TaskHandler) Delete(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "invalid token"})
		return
	}

	id, ok := h.taskID(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), user.ID, id); err != nil {
		h.renderError(c, err, "delete task failed")
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// taskID はパスパラメータのタスクIDをパースします。不正なIDは422で終了します。
func (h *TaskHandler) taskID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		slog.Warn("malformed task id", "id", c.Param("id"), "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "invalid task id"})
		return uuid.Nil, false
	}
	return id, true
}

// renderError はユースケースのエラーをHTTPステータスに変換します。
func (h *TaskHandler) renderError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrEmptyTitle):
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "title must not be empty"})
	case errors.Is(err, usecase.ErrTaskAlreadyExists):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "task already exists"})
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "task not found"})
	default:
		slog.Error(logMsg, "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
