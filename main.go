package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-rover/api"
	api_i "github.com/beka-birhanu/vinom-rover/api/i"
	"github.com/beka-birhanu/vinom-rover/api/identity"
	roverapi "github.com/beka-birhanu/vinom-rover/api/rover"
	"github.com/beka-birhanu/vinom-rover/config"
	logger "github.com/beka-birhanu/vinom-rover/infrastruture/log"
	"github.com/beka-birhanu/vinom-rover/infrastruture/repo"
	"github.com/beka-birhanu/vinom-rover/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-rover/infrastruture/token"
	"github.com/beka-birhanu/vinom-rover/service"
	"github.com/beka-birhanu/vinom-rover/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Global variables for dependencies
var (
	cfg                   config.Config
	mongoClient           *mongo.Client
	redisClient           *redis.Client
	reportRepo            i.ReportRepo
	recentQueue           i.SortedQueue
	explorer              i.Explorer
	explorationController api_i.Controller
	jwtTokenizer          i.Tokenizer
	router                *api.Router
	appLogger             *logger.Logger
)

func newLogger(prefix, color string) (*logger.Logger, error) {
	l, err := logger.NewWithLevel(prefix, color, os.Stdout, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("creating %s logger: %w", prefix, err)
	}
	return l, nil
}

func initMongo(ctx context.Context) {
	if cfg.MongoURI == "" {
		appLogger.Warn("MONGO_URI not set, exploration archive disabled")
		return
	}

	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		appLogger.Error("Failed to connect to MongoDB", zap.Error(err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error("MongoDB ping failed", zap.Error(err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initReportRepo(client *mongo.Client) {
	if client == nil {
		return
	}
	reportRepo = repo.NewReportRepo(client, cfg.DBName, "explorations")
	appLogger.Info("Report repository initialized")
}

func initRedis(ctx context.Context) {
	if cfg.RedisAddr == "" {
		appLogger.Warn("REDIS_ADDR not set, recent explorations disabled")
		return
	}

	redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error("Redis ping failed", zap.Error(err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRecentQueue(client *redis.Client) {
	if client == nil {
		return
	}
	queue, err := sortedstorage.NewRedisSortedQueue(client, cfg.QueueTTL)
	if err != nil {
		appLogger.Error("Creating recent explorations queue", zap.Error(err))
		os.Exit(1)
	}
	recentQueue = queue
	appLogger.Info("Recent explorations queue initialized")
}

func initExplorer() {
	opts := &service.Options{
		StepFactor:  cfg.StepFactor,
		RecentLimit: int64(cfg.RecentLimit),
		Repo:        reportRepo,
		Queue:       recentQueue,
	}

	explorerLogger, err := newLogger("EXPLORER", config.ColorCyan)
	if err != nil {
		appLogger.Error("Creating explorer logger", zap.Error(err))
		os.Exit(1)
	}

	explorer, err = service.NewExplorationService(explorerLogger, opts)
	if err != nil {
		appLogger.Error("Creating exploration service", zap.Error(err))
		os.Exit(1)
	}
	appLogger.Info("Exploration service initialized")
}

func initExplorationController() {
	var err error
	explorationController, err = roverapi.NewExplorationController(explorer)
	if err != nil {
		appLogger.Error("Creating exploration controller", zap.Error(err))
		os.Exit(1)
	}
	appLogger.Info("Exploration controller initialized")
}

func initJWTTokenizer() {
	if cfg.JWTSecret == "" {
		appLogger.Warn("JWT_SECRET not set, archive routes are public")
		return
	}
	jwtTokenizer = token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", cfg.HostIP, cfg.RESTPort),
		BaseURL:                 "/api",
		Mode:                    cfg.GinMode,
		Controllers:             []api_i.Controller{explorationController},
		AuthorizationMiddleware: identity.Authorize(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg = config.Load()
	var err error
	if appLogger, err = newLogger("APP", config.ColorGreen); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		_ = appLogger.Sync()
	}()
	if !cfg.EnvFileLoaded {
		appLogger.Debug("No .env file found, using the process environment")
	}

	initMongo(ctx)
	if mongoClient != nil {
		defer func() {
			_ = mongoClient.Disconnect(context.Background())
		}()
	}
	initReportRepo(mongoClient)

	initRedis(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}
	initRecentQueue(redisClient)

	initExplorer()
	initExplorationController()
	initJWTTokenizer()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error("Starting server", zap.Error(err))
		os.Exit(1)
	}
}
