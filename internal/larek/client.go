package larek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/jafarshop/weblarek/internal/config"
	"github.com/jafarshop/weblarek/internal/domain"
	"github.com/jafarshop/weblarek/pkg/errors"
)

type Client struct {
	baseURL    string
	cdnURL     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new storefront backend client
func NewClient(cfg config.LarekConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.APIURL, "/"),
		cdnURL:  strings.TrimSuffix(cfg.CDNURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// GetProductList fetches the whole catalog
func (c *Client) GetProductList(ctx context.Context) ([]domain.Product, error) {
	var list productList
	if err := c.do(ctx, http.MethodGet, PathProducts, nil, &list); err != nil {
		return nil, fmt.Errorf("failed to get product list: %w", err)
	}

	products := make([]domain.Product, 0, len(list.Items))
	for _, item := range list.Items {
		products = append(products, c.toProduct(item))
	}

	c.logger.Debug("Fetched catalog",
		zap.Int("total", list.Total),
		zap.Int("items", len(products)),
	)
	return products, nil
}

// GetProductItem fetches one product
func (c *Client) GetProductItem(ctx context.Context, id string) (domain.Product, error) {
	var item productRecord
	if err := c.do(ctx, http.MethodGet, productPath(id), nil, &item); err != nil {
		return domain.Product{}, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return c.toProduct(item), nil
}

// OrderProducts submits an order
func (c *Client) OrderProducts(ctx context.Context, order domain.OrderSnapshot) (domain.OrderResult, error) {
	req := orderRequest{
		Payment: string(order.Payment),
		Address: order.Address,
		Email:   order.Email,
		Phone:   order.Phone,
		Total:   json.Number(order.Total.String()),
		Items:   order.SellableIDs(),
	}

	var result domain.OrderResult
	if err := c.do(ctx, http.MethodPost, PathOrder, req, &result); err != nil {
		return domain.OrderResult{}, fmt.Errorf("failed to submit order: %w", err)
	}

	c.logger.Info("Order accepted",
		zap.String("order_id", result.ID),
		zap.String("total", result.Total.String()),
	)
	return result, nil
}

// do executes a JSON request and decodes a 2xx answer into out
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &errors.ErrAPI{Status: resp.StatusCode}
		if gjson.ValidBytes(respBody) {
			apiErr.Message = gjson.GetBytes(respBody, "error").String()
		}
		c.logger.Warn("Backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("error", apiErr.Message),
		)
		return apiErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// toProduct rewrites the relative image path onto the CDN.
// Unknown category labels are kept and rendered with the fallback modifier.
func (c *Client) toProduct(item productRecord) domain.Product {
	image := item.Image
	if image != "" && !strings.HasPrefix(image, "http://") && !strings.HasPrefix(image, "https://") {
		image = c.cdnURL + image
	}

	category := domain.Category(item.Category)
	if !category.IsValid() {
		c.logger.Warn("Unknown product category",
			zap.String("product_id", item.ID),
			zap.String("category", item.Category),
		)
	}

	return domain.Product{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Image:       image,
		Category:    category,
		Price:       item.Price,
	}
}
