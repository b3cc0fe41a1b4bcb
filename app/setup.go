package app

import (
	"fmt"
	"log"
	"os"
	"time"

	"eduportal/api"
	"eduportal/config"
	"eduportal/database"
	"eduportal/database/inmem"
	"eduportal/router"
	"eduportal/services/cron"
	"eduportal/services/spaces"
	"eduportal/store"
	"eduportal/utils/cache"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	gormStore, err := database.StartGORM()
	if err != nil {
		print("Check whether the Postgres is running or not\n")
		print("If not running, run the following command:\n")
		print("  make docker-up   (for Docker setup)\n")
		print("  make db-up       (for local PostgreSQL)\n")
		return err
	}

	if err := gormStore.Init(); err != nil {
		print("Failed to initialize database tables\n")
		return err
	}

	// Seed default data; idempotent
	if err := database.NewSeeder(gormStore.DB()).SeedAll(); err != nil {
		return err
	}

	// Sessions live in Redis when configured; the in-process fallback
	// only suits a single instance.
	var (
		redisCache *cache.RedisCache
		sessions   store.SessionStore
	)
	if getEnv.REDIS_URL != "" {
		redisCache, err = cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Falling back to in-process sessions.", err)
		}
	}
	if redisCache != nil {
		sessionTTL := time.Duration(getEnv.JWT_EXPIRY_HOURS) * time.Hour
		sessions = database.NewRedisSessionStore(redisCache, sessionTTL)
	} else {
		sessions = inmem.NewSessionStore()
	}

	records := store.New(gormStore.Repositories(), sessions)

	// Object storage for notice attachments; optional
	var uploader *spaces.Client
	if getEnv.SPACES_BUCKET != "" {
		uploader, err = spaces.NewClient(spaces.Config{
			AccessKey: getEnv.SPACES_ACCESS_KEY,
			SecretKey: getEnv.SPACES_SECRET_KEY,
			Bucket:    getEnv.SPACES_BUCKET,
			Region:    getEnv.SPACES_REGION,
			Endpoint:  getEnv.SPACES_ENDPOINT,
		})
		if err != nil {
			log.Printf("Warning: attachment storage unavailable: %v", err)
			uploader = nil
		}
	}

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		cronManager = cron.NewCronManager(gormStore.DB(), records, getEnv.ACTIVITY_RETENTION_DAYS)
		if err := cronManager.Start(); err != nil {
			log.Printf("Warning: Failed to start cron jobs: %v", err)
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		gormStore.Close()
	}()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	deps := router.Deps{
		Env:     getEnv,
		Health:  gormStore,
		Records: records,
		Redis:   redisCache,
	}
	if uploader != nil {
		deps.Uploader = uploader
	}

	// Setup Routes
	router.SetupRoutes(app, deps)

	// Get the PORT & Start the Server
	return server.Run()
}
