// Package dto はtasksフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateTaskReq はPOST /tasksのリクエストボディを表します。
// タイトルの非空チェック（空白除去後）はユースケース層で行います。
type CreateTaskReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}
