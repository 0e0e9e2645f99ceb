// Package usecase はtasksフィーチャーのビジネスロジックを実装します。
// すべての操作は認証済みユーザーのIDをスコープとして受け取り、
// 他ユーザーのタスクには一切触れられないことを保証します。
package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"task_backend/internal/feature/tasks/domain/entity"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// TaskRepository はタスクエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type TaskRepository interface {
	// Create は新しいタスクをストレージに永続化します。
	// 同一オーナーに同じタイトルのタスクが既に存在する場合、ErrTaskAlreadyExistsを返します。
	Create(ctx context.Context, task *entity.Task) error

	// FindByID は指定されたオーナーが所有するタスクを取得します。
	// 存在しない、または別ユーザーの所有である場合、ErrTaskNotFoundを返します。
	FindByID(ctx context.Context, owner, id uuid.UUID) (*entity.Task, error)

	// FindByOwner はオーナーのタスクを挿入順で取得し、オーナーの総件数を返します。
	FindByOwner(ctx context.Context, owner uuid.UUID, offset, limit int) ([]entity.Task, int64, error)

	// Update は取得済みタスクの変更を永続化します。
	// タイトル重複の場合、ErrTaskAlreadyExistsを返します。
	Update(ctx context.Context, task *entity.Task) error

	// Delete は指定されたオーナーが所有するタスクを削除します。
	// 対象が存在しない場合、ErrTaskNotFoundを返します。
	Delete(ctx context.Context, owner, id uuid.UUID) error
}

// UpdateFields は部分更新のフィールド集合です。nilのフィールドは変更されません。
type UpdateFields struct {
	Title       *string
	Description *string
	Status      *entity.Status
}

// taskUsecase はタスク管理のビジネスロジックを実装します。
type taskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase はtaskUsecaseの新しいインスタンスを生成します。
func NewTaskUsecase(tasks TaskRepository) *taskUsecase {
	return &taskUsecase{tasks: tasks}
}

// Create は新しいタスクをPENDING状態で作成します。
// タイトルは前後の空白を除去し、空になる場合はErrEmptyTitleを返します。
// 重複チェックはストレージ層のユニーク制約で行われ、同時作成に対しても安全です。
func (u *taskUsecase) Create(ctx context.Context, owner uuid.UUID, title, description string) (*entity.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	task := &entity.Task{
		Title:       title,
		Description: description,
		Status:      entity.StatusPending,
		UserID:      owner,
	}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// List はオーナーのタスクをページ単位で返します。
// 総件数はオーナーの行のみを数えます（グローバル件数は決して返しません）。
func (u *taskUsecase) List(ctx context.Context, owner uuid.UUID, page, pageSize int) ([]entity.Task, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	offset := (page - 1) * pageSize
	return u.tasks.FindByOwner(ctx, owner, offset, pageSize)
}

// GetByID はオーナーが所有するタスクを取得します。
func (u *taskUsecase) GetByID(ctx context.Context, owner, id uuid.UUID) (*entity.Task, error) {
	return u.tasks.FindByID(ctx, owner, id)
}

// Update は明示的に指定されたフィールドのみを更新します（部分更新）。
// タイトルが指定された場合、作成時と同じ非空ルールを適用します。
func (u *taskUsecase) Update(ctx context.Context, owner, id uuid.UUID, fields UpdateFields) (*entity.Task, error) {
	task, err := u.tasks.FindByID(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if fields.Title != nil {
		title := strings.TrimSpace(*fields.Title)
		if title == "" {
			return nil, ErrEmptyTitle
		}
		task.Title = title
	}
	if fields.Description != nil {
		task.Description = *fields.Description
	}
	if fields.Status != nil {
		task.Status = *fields.Status
	}

	if err := u.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete はオーナーが所有するタスクを削除します。
func (u *taskUsecase) Delete(ctx context.Context, owner, id uuid.UUID) error {
	return u.tasks.Delete(ctx, owner, id)
}
