package dto

import "task_backend/internal/feature/tasks/domain/entity"

// UpdateTaskReq はPUT /tasks/:idのリクエストボディを表します。
// 部分更新のため全フィールドがポインタで、nilのフィールドは変更されません。
type UpdateTaskReq struct {
	Title       *string        `json:"title" binding:"omitempty"`
	Description *string        `json:"description" binding:"omitempty,max=2000"`
	Status      *entity.Status `json:"status" binding:"omitempty,oneof=PENDING COMPLETED"`
}
