package container

import (
	"context"
	"fmt"

	"bookcatalog-backend/internal/config"
	infraCache "bookcatalog-backend/internal/infrastructure/cache"
	"bookcatalog-backend/internal/infrastructure/database"
	"bookcatalog-backend/pkg/cache"
	pkgdb "bookcatalog-backend/pkg/database"
	"bookcatalog-backend/pkg/logger"

	"bookcatalog-backend/internal/domains/author"
	authorHandler "bookcatalog-backend/internal/domains/author/handler"
	authorRepo "bookcatalog-backend/internal/domains/author/repository"
	authorService "bookcatalog-backend/internal/domains/author/service"
	"bookcatalog-backend/internal/domains/book"
	bookHandler "bookcatalog-backend/internal/domains/book/handler"
	bookRepo "bookcatalog-backend/internal/domains/book/repository"
	bookService "bookcatalog-backend/internal/domains/book/service"
)

// Container is the root of the dependency graph. Everything is wired
// here once, by explicit constructors, in dependency order.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo author.Repository
	BookRepo   book.Repository

	AuthorService author.Service
	BookService   book.Service

	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler

	redisCache *infraCache.RedisCache
}

// NewContainer initializes the whole dependency graph:
// config, then infrastructure, then repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	ctx := context.Background()

	db := database.NewPostgresDB(config.LoadDatabaseConfig(cfg))
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		// The app stays up without Redis, caching and rate limiting degrade.
		logger.Error("redis unavailable at startup", err)
	}
	c.redisCache = redisCache
	c.Cache = redisCache

	txManager := pkgdb.NewTxManager(db.Pool)

	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo, txManager)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, txManager)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, c.Cache)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService, c.Cache)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
