// Package adapters はtasksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// taskGorm はTaskRepositoryインターフェースのGORM実装です。
// すべてのクエリはuser_idで絞り込まれ、オーナー外の行には決して触れません。
type taskGorm struct {
	db *gorm.DB
}

// taskGormがTaskRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TaskRepository = (*taskGorm)(nil)

// NewTaskGorm は指定されたgorm.DB接続でtaskGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewTaskGorm(db *gorm.DB) *taskGorm {
	return &taskGorm{db: db}
}

// Create はタスクをデータベースに追加します。
// (user_id, title)のユニーク制約に違反した場合、usecase.ErrTaskAlreadyExistsを返します。
// チェックと挿入は単一のINSERTなので、同時作成に対してもアトミックです。
func (r *taskGorm) Create(ctx context.Context, t *entity.Task) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrTaskAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID はオーナーのタスクをIDで取得します。
// 存在しない場合も、別ユーザー所有の場合も、同じusecase.ErrTaskNotFoundを返します。
func (r *taskGorm) FindByID(ctx context.Context, owner, id uuid.UUID) (*entity.Task, error) {
	var t entity.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, owner).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindByOwner はオーナーのタスクを挿入順（created_at, id）で取得します。
// 返す総件数はオーナーの行のみを対象とします。
func (r *taskGorm) FindByOwner(ctx context.Context, owner uuid.UUID, offset, limit int) ([]entity.Task, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Task{}).
		Where("user_id = ?", owner).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []entity.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// Update は取得済みタスクの変更を保存します。
// タイトル変更がユニーク制約に違反した場合、usecase.ErrTaskAlreadyExistsを返します。
func (r *taskGorm) Update(ctx context.Context, t *entity.Task) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrTaskAlreadyExists
		}
		return err
	}
	return nil
}

// Delete はオーナーのタスクを単一のDELETE文で削除します。
// 対象行がない場合（存在しない、または別ユーザー所有）、usecase.ErrTaskNotFoundを返します。
func (r *taskGorm) Delete(ctx context.Context, owner, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, owner).
		Delete(&entity.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTaskNotFound
	}
	return nil
}
