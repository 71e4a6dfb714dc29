package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eating-helper/db"
	"eating-helper/models"
)

const NUTRITION_KEY_PREFIX_V1 = "nutrition_v1:"
const WEEKLY_NUTRITION_KEY_V1 = NUTRITION_KEY_PREFIX_V1 + "weekly"
const RECIPES_KEY_V1 = NUTRITION_KEY_PREFIX_V1 + "recipes"

// RedisNutritionDAO caches upstream nutrition snapshots as JSON in Redis.
type RedisNutritionDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisNutritionDAO initializes a RedisNutritionDAO. Entries expire after ttl; zero keeps them forever.
func NewRedisNutritionDAO(client db.RedisClient, ttl time.Duration) *RedisNutritionDAO {
	return &RedisNutritionDAO{client: client, ttl: ttl}
}

func (dao *RedisNutritionDAO) setJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := dao.client.Set(ctx, key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}
	return nil
}

// getJSON returns an error wrapping db.ErrCacheMiss when key is absent.
func (dao *RedisNutritionDAO) getJSON(ctx context.Context, key string, v interface{}) error {
	str, err := dao.client.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	if err := json.Unmarshal([]byte(str), v); err != nil {
		return fmt.Errorf("failed to unmarshal %s JSON: %w", key, err)
	}
	return nil
}

// SetWeeklyNutrition caches the daily window.
func (dao *RedisNutritionDAO) SetWeeklyNutrition(ctx context.Context, days []models.DailyNutrition) error {
	return dao.setJSON(ctx, WEEKLY_NUTRITION_KEY_V1, days)
}

// GetWeeklyNutrition retrieves the cached daily window.
func (dao *RedisNutritionDAO) GetWeeklyNutrition(ctx context.Context) ([]models.DailyNutrition, error) {
	var days []models.DailyNutrition
	if err := dao.getJSON(ctx, WEEKLY_NUTRITION_KEY_V1, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// SetRecipes caches the recipe list.
func (dao *RedisNutritionDAO) SetRecipes(ctx context.Context, recipes []models.Recipe) error {
	return dao.setJSON(ctx, RECIPES_KEY_V1, recipes)
}

// GetRecipes retrieves the cached recipe list.
func (dao *RedisNutritionDAO) GetRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := dao.getJSON(ctx, RECIPES_KEY_V1, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Invalidate drops every cached nutrition snapshot.
func (dao *RedisNutritionDAO) Invalidate(ctx context.Context) error {
	keys, err := dao.client.Keys(ctx, NUTRITION_KEY_PREFIX_V1+"*")
	if err != nil {
		return fmt.Errorf("failed to list nutrition keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := dao.client.Del(ctx, keys...); err != nil {
		return fmt.Errorf("failed to delete nutrition keys: %w", err)
	}
	return nil
}
