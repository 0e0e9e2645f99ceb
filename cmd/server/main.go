package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"task_backend/internal/app/router"
	authadapters "task_backend/internal/feature/auth/adapters"
	authhandler "task_backend/internal/feature/auth/transport/handler"
	authusecase "task_backend/internal/feature/auth/usecase"
	tasksadapters "task_backend/internal/feature/tasks/adapters"
	taskshandler "task_backend/internal/feature/tasks/transport/handler"
	tasksusecase "task_backend/internal/feature/tasks/usecase"
	"task_backend/internal/platform/config"
	platformdb "task_backend/internal/platform/db"
	jwtmw "task_backend/internal/platform/jwt"
	"task_backend/internal/platform/password"
	platformredis "task_backend/internal/platform/redis"
)

func main() {
	// 設定はプロセス起動時に一度だけ読み込み、以後不変
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := platformdb.OpenDB(cfg.DatabaseURL, cfg.RunMigrations)

	// Redis
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := platformredis.NewRedisClient(cfg.RedisAddr, ""); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Platform
	hasher := password.NewHasher(cfg.BcryptCost)
	codec := jwtmw.NewCodec(cfg.JWTSecret, cfg.TokenLifetime)

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	taskRepo := tasksadapters.NewTaskGorm(db)

	// Redisキャッシュでラップ（ユーザーはサインアップ後不変なのでTTL=トークン有効期間）
	cachedUserRepo := authadapters.NewCachingUserRepository(rdb, cfg.TokenLifetime, userRepo, "users")

	// Usecase
	authUC := authusecase.NewAuthUsecase(cachedUserRepo, codec, hasher)
	taskUC := tasksusecase.NewTaskUsecase(taskRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskshandler.NewTaskHandler(taskUC)

	// ルータ生成（/tasks配下は認証ミドルウェア必須）
	router := router.NewRouter(authH, taskH, jwtmw.AuthRequired(codec, cachedUserRepo))

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
