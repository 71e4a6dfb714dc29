package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eating-helper/dao/redis"
	"eating-helper/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNutritionSource_ReadThrough(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAPI{days: sampleWeek(), recipes: sampleRecipes()}
	cache := redis.NewRedisNutritionDAO(db.NewMockRedisClient(), time.Hour)
	source := NewNutritionSource(fake, cache, zap.NewNop())

	for i := 0; i < 3; i++ {
		days, err := source.WeeklyNutrition(ctx)
		require.NoError(t, err)
		assert.Equal(t, sampleWeek(), days)

		recipes, err := source.Recipes(ctx)
		require.NoError(t, err)
		assert.Equal(t, sampleRecipes(), recipes)
	}

	assert.Equal(t, int32(1), fake.weeklyCalls.Load())
	assert.Equal(t, int32(1), fake.recipesCalls.Load())
}

func TestNutritionSource_NoCache(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAPI{days: sampleWeek(), recipes: sampleRecipes()}
	source := NewNutritionSource(fake, nil, zap.NewNop())

	_, _ = source.WeeklyNutrition(ctx)
	_, _ = source.WeeklyNutrition(ctx)

	assert.Equal(t, int32(2), fake.weeklyCalls.Load())
}

func TestNutritionSource_InvalidWindowNotCached(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAPI{days: sampleWeek()[:5]}
	cache := redis.NewRedisNutritionDAO(db.NewMockRedisClient(), 0)
	source := NewNutritionSource(fake, cache, zap.NewNop())

	days, err := source.WeeklyNutrition(ctx)

	require.NoError(t, err)
	assert.Len(t, days, 5)
	_, err = cache.GetWeeklyNutrition(ctx)
	assert.ErrorIs(t, err, db.ErrCacheMiss)
}

func TestNutritionSource_CorruptCacheFallsBack(t *testing.T) {
	ctx := context.Background()
	client := db.NewMockRedisClient()
	_ = client.Set(ctx, redis.RECIPES_KEY_V1, "{broken", 0)
	fake := &fakeAPI{recipes: sampleRecipes()}
	source := NewNutritionSource(fake, redis.NewRedisNutritionDAO(client, 0), zap.NewNop())

	recipes, err := source.Recipes(ctx)

	require.NoError(t, err)
	assert.Equal(t, sampleRecipes(), recipes)
	assert.Equal(t, int32(1), fake.recipesCalls.Load())
}

func TestNutritionSource_UpstreamErrorNotCached(t *testing.T) {
	ctx := context.Background()
	upstreamErr := errors.New("boom")
	fake := &fakeAPI{daysErr: upstreamErr}
	cache := redis.NewRedisNutritionDAO(db.NewMockRedisClient(), 0)
	source := NewNutritionSource(fake, cache, zap.NewNop())

	_, err := source.WeeklyNutrition(ctx)

	assert.Same(t, upstreamErr, err)
	_, err = cache.GetWeeklyNutrition(ctx)
	assert.ErrorIs(t, err, db.ErrCacheMiss)
}
