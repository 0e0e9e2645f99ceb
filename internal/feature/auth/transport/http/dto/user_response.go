package dto

import (
	"time"

	"github.com/google/uuid"

	"task_backend/internal/feature/auth/domain/entity"
)

// UserResp はユーザー作成時のレスポンスボディを表します。
// パスワードハッシュは決して含めません。
type UserResp struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResp はエンティティからレスポンスDTOを組み立てます。
func NewUserResp(u *entity.User) UserResp {
	return UserResp{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
