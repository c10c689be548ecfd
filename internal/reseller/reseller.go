package reseller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/mailmart/backend/internal/config"
	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/pkg/clients"
)

const (
	stockCacheKey = "reseller:stock"
	stockCacheTTL = time.Minute

	maxRetries   = 3
	retryBackoff = 500 * time.Millisecond
)

var (
	ErrResellerUnavailable = errors.New("reseller API unavailable")
	ErrOrderRejected       = errors.New("reseller rejected the order")
)

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (c *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

type Client struct {
	url    string
	apiKey string
	client clients.HTTPClientI
	cache  Cache
}

func NewClient(cfg *config.Config, client clients.HTTPClientI, cache Cache) *Client {
	return &Client{
		url:    cfg.ResellerAddress,
		apiKey: cfg.ResellerAPIKey,
		client: client,
		cache:  cache,
	}
}

func (c *Client) headers() http.Header {
	headers := http.Header{}
	headers.Set("X-Api-Key", c.apiKey)
	return headers
}

// ListProducts serves the catalog from the cache when it is fresh; the
// upstream call retries with exponential backoff on transport failures only.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if cached, err := c.cache.Get(ctx, stockCacheKey); err != nil {
		zap.L().Warn("stock cache read failed", zap.Error(err))
	} else if cached != "" {
		var products []domain.Product
		if err := json.Unmarshal([]byte(cached), &products); err == nil {
			return products, nil
		}
		zap.L().Warn("stock cache entry is corrupt, refetching")
	}

	var respBody []byte
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		statusCode, body, _, err := c.client.Get(c.url+"/api/stock", c.headers())
		if err != nil {
			return retry.RetryableError(err)
		}
		if statusCode >= http.StatusInternalServerError {
			return retry.RetryableError(fmt.Errorf("reseller returned status %d", statusCode))
		}
		if statusCode != http.StatusOK {
			return fmt.Errorf("reseller returned status %d: %w", statusCode, ErrResellerUnavailable)
		}
		respBody = body
		return nil
	})
	if err != nil {
		zap.L().Error("failed to fetch reseller stock", zap.Error(err))
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(respBody, &products); err != nil {
		return nil, fmt.Errorf("failed to parse reseller stock: %w", err)
	}

	if err := c.cache.Set(ctx, stockCacheKey, string(respBody), stockCacheTTL); err != nil {
		zap.L().Warn("stock cache write failed", zap.Error(err))
	}

	return products, nil
}

type buyRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type buyResponse struct {
	Items []domain.Credential `json:"items"`
}

// Buy is not retried: the order endpoint is not idempotent upstream and a
// duplicate order would double-charge our own balance sheet.
func (c *Client) Buy(ctx context.Context, productID string, quantity int) ([]domain.Credential, error) {
	body, err := json.Marshal(buyRequest{ProductID: productID, Quantity: quantity})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	statusCode, respBody, err := c.client.Post(c.url+"/api/buy", c.headers(), body)
	if err != nil {
		return nil, fmt.Errorf("reseller order request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		zap.L().Error("reseller rejected order", zap.String("productID", productID), zap.Int("status", statusCode))
		return nil, ErrOrderRejected
	}

	var resp buyResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, ErrOrderRejected
	}

	return resp.Items, nil
}
