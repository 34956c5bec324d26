package cache

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/claimithub/claimit/internal/repository"
)

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]*repository.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// CategoryCache keeps category names in memory so the search classifier can
// probe candidate phrases without a round-trip per token. Lookups are
// case-insensitive; misses fall through to the repository.
type CategoryCache struct {
	mu     sync.RWMutex
	byName map[string]*repository.Category
	repo   CategoryRepository
	logger *zap.Logger
}

func NewCategoryCache(repo CategoryRepository, logger *zap.Logger) *CategoryCache {
	return &CategoryCache{
		byName: make(map[string]*repository.Category),
		repo:   repo,
		logger: logger,
	}
}

func (c *CategoryCache) LoadInitialData(ctx context.Context) error {
	categories, err := c.repo.GetAll(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, category := range categories {
		categoryCopy := *category
		c.byName[strings.ToLower(category.Name)] = &categoryCopy
	}
	c.logger.Info("loaded categories into cache", zap.Int("count", len(c.byName)))
	return nil
}

func (c *CategoryCache) Get(name string) (*repository.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	category, found := c.byName[strings.ToLower(name)]
	if !found {
		return nil, false
	}
	categoryCopy := *category
	return &categoryCopy, true
}

// Exists reports whether a category with the given name is known, checking
// the cache first and the repository on a miss.
func (c *CategoryCache) Exists(ctx context.Context, name string) (bool, error) {
	if _, found := c.Get(name); found {
		return true, nil
	}

	exists, err := c.repo.ExistsByName(ctx, name)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (c *CategoryCache) Set(category *repository.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	categoryCopy := *category
	c.byName[strings.ToLower(category.Name)] = &categoryCopy
}
