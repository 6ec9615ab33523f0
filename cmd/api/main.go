// @title Clover API
// @description API for mission tracker app "Clover"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/limbo/clover/internal/api"
	"github.com/limbo/clover/internal/logging"
	"github.com/limbo/clover/internal/oauth"
	"github.com/limbo/clover/internal/repository"
	"github.com/limbo/clover/internal/service"
	"github.com/limbo/clover/internal/storage"
	"github.com/limbo/clover/internal/survey"
	"github.com/limbo/clover/migrations"
	"github.com/limbo/clover/pkg/cleanup"
	"github.com/limbo/clover/pkg/config"
	jwtservice "github.com/limbo/clover/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logging.Setup(cfg.GetStringOr("LOG_LEVEL", "info"), cfg.GetStringOr("LOG_FORMAT", "json"))
	loc := cfg.GetLocation("APP_TIMEZONE")

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	migrate(&dbCfg)
	pool := repository.NewPool(&dbCfg)
	rdb := repository.NewRedisClient(repository.RedisCfg{
		Address:  cfg.GetString("REDIS_ADDRESS"),
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetInt("REDIS_DB", 0),
	})

	membersRepo := repository.NewMembersRepo(pool)
	missionsRepo := repository.NewMissionsRepo(pool)
	assignmentsRepo := repository.NewAssignmentsRepo(pool)
	surveysRepo := repository.NewSurveysRepo(pool)
	tokensRepo := repository.NewRefreshTokensRepo(rdb)

	jwtService := jwtservice.New(
		cfg.GetString("JWT_SECRET"),
		cfg.GetDuration("JWT_ACCESS_TTL", 15*time.Minute),
		cfg.GetDuration("JWT_REFRESH_TTL", 14*24*time.Hour),
	)
	providers := oauth.NewRegistry(oauth.NewKakao(oauth.KakaoConfig{
		ClientID:     cfg.GetString("OAUTH_KAKAO_CLIENT_ID"),
		ClientSecret: cfg.GetString("OAUTH_KAKAO_CLIENT_SECRET"),
		RedirectURL:  cfg.GetString("OAUTH_KAKAO_REDIRECT_URL"),
	}))
	presigner := storage.NewS3Presigner(storage.S3Config{
		Endpoint:  cfg.GetString("S3_ENDPOINT"),
		Bucket:    cfg.GetString("S3_BUCKET"),
		Region:    cfg.GetStringOr("S3_REGION", "ap-northeast-2"),
		AccessKey: cfg.GetString("S3_ACCESS_KEY"),
		SecretKey: cfg.GetString("S3_SECRET_KEY"),
		TTL:       cfg.GetDuration("S3_PRESIGN_TTL", 15*time.Minute),
	})
	catalog, err := survey.Default()
	if err != nil {
		log.Fatal("loading survey questions error: " + err.Error())
	}

	serv := api.New(&api.ServicesList{
		AuthService:        service.NewAuthService(membersRepo, tokensRepo, providers, jwtService),
		MembersService:     service.NewMembersService(membersRepo, tokensRepo),
		MissionsService:    service.NewMissionsService(missionsRepo, loc),
		AssignmentsService: service.NewAssignmentsService(missionsRepo, assignmentsRepo, loc),
		StatsService:       service.NewStatsService(assignmentsRepo, loc),
		SurveysService:     service.NewSurveysService(surveysRepo, catalog),
		UploadsService:     service.NewUploadsService(presigner),
		JwtService:         jwtService,
		Location:           loc,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	cleanup.CleanUp()
}

func migrate(dbCfg repository.DBConfig) {
	db, err := sql.Open("postgres", dbCfg.ConnString()+"?sslmode=disable")
	if err != nil {
		log.Fatal("opening migrations connection error: " + err.Error())
	}
	defer db.Close()
	if err = migrations.Up(db); err != nil {
		log.Fatal("applying migrations error: " + err.Error())
	}
}
