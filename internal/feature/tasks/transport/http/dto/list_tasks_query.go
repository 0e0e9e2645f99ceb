package dto

// ListTasksQuery はGET /tasksのページネーションクエリパラメータを表します。
// パラメータ省略時はdefaultタグが適用されるため、0はバリデーションエラーになります。
type ListTasksQuery struct {
	Page     int `form:"page,default=1" binding:"gte=1"`
	PageSize int `form:"page_size,default=10" binding:"gte=1,lte=100"`
}
