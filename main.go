package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/mazegen-api/api"
	api_i "github.com/beka-birhanu/mazegen-api/api/i"
	"github.com/beka-birhanu/mazegen-api/api/identity"
	mazeapi "github.com/beka-birhanu/mazegen-api/api/maze"
	"github.com/beka-birhanu/mazegen-api/config"
	"github.com/beka-birhanu/mazegen-api/infrastruture/cache"
	"github.com/beka-birhanu/mazegen-api/infrastruture/repo"
	"github.com/beka-birhanu/mazegen-api/infrastruture/token"
	"github.com/beka-birhanu/mazegen-api/raster"
	"github.com/beka-birhanu/mazegen-api/service"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	userRepo       i.UserRepo
	renderCache    i.RenderCache
	rasterizer     i.Rasterizer
	mazeService    i.MazeService
	mazeController api_i.Controller
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	authController api_i.Controller
	router         *api.Router
	appLogger      *log.Logger
)

func newLogger(name, color string) *log.Logger {
	prefix := fmt.Sprintf("%s[%s]%s ", color, name, config.ColorReset)
	return log.New(os.Stdout, prefix, log.LstdFlags)
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Printf("Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Printf("MongoDB ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Printf("Redis ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Connected to Redis")
}

func initRepos() {
	mazeRepo = repo.NewMazeRepo(mongoClient, config.Envs.DBName, "mazes")
	userRepo = repo.NewUserRepo(mongoClient, config.Envs.DBName, "users")
	appLogger.Println("Repositories initialized")
}

func initRenderCache() {
	var err error
	renderCache, err = cache.New(redisClient, &cache.Options{
		Logger: newLogger("RENDER-CACHE", config.ColorCyan),
	})
	if err != nil {
		appLogger.Printf("Creating render cache: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Render cache initialized")
}

func initRasterizer() {
	var err error
	rasterizer, err = raster.NewPNG(config.Envs.CellPixels)
	if err != nil {
		appLogger.Printf("Creating rasterizer: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Rasterizer initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMaze(service.MazeConfig{
		Repo:         mazeRepo,
		Cache:        renderCache,
		Rasterizer:   rasterizer,
		Logger:       newLogger("MAZE", config.ColorMagenta),
		MaxDimension: config.Envs.MaxDimension,
	})
	if err != nil {
		appLogger.Printf("Creating maze service: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewController(mazeService)
	if err != nil {
		appLogger.Printf("Creating maze controller: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Maze controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Println("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuth(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Printf("Creating auth service: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Auth service initialized")
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Println("Auth controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Println("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger = newLogger("APP", config.ColorGreen)
	gin.SetMode(config.Envs.GinMode)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initRepos()
	initRenderCache()
	initRasterizer()
	initMazeService()
	initMazeController()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Printf("Starting server: %v", err)
		os.Exit(1)
	}
}
