package dto

import (
	"time"

	"github.com/google/uuid"

	"task_backend/internal/feature/tasks/domain/entity"
)

// TaskResp はタスク1件のレスポンスボディを表します。
type TaskResp struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Status      entity.Status `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// NewTaskResp はエンティティからレスポンスDTOを組み立てます。
func NewTaskResp(t *entity.Task) TaskResp {
	return TaskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
}

// TaskListResp はページネーション付きタスク一覧のレスポンスボディを表します。
// Totalは認証済みオーナーの行のみを数えた値です。
type TaskListResp struct {
	Items      []TaskResp `json:"items"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int64      `json:"total_pages"`
}

// NewTaskListResp は一覧とページ情報からレスポンスDTOを組み立てます。
func NewTaskListResp(tasks []entity.Task, total int64, page, pageSize int) TaskListResp {
	items := make([]TaskResp, 0, len(tasks))
	for i := range tasks {
		items = append(items, NewTaskResp(&tasks[i]))
	}

	var totalPages int64
	if pageSize > 0 {
		totalPages = (total + int64(pageSize) - 1) / int64(pageSize)
	}

	return TaskListResp{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
