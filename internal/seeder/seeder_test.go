package seeder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanCountsPassThrough(t *testing.T) {
	opts := Options{Users: 10, Products: 20, Carts: 5, Orders: 5, Reviews: 5}

	plan := planCounts(opts, 10, 20)
	require.Equal(t, 5, plan.Carts)
	require.Equal(t, 5, plan.Orders)
	require.Equal(t, 5, plan.Reviews)
}

func TestPlanCountsCappedByUserPool(t *testing.T) {
	opts := Options{Users: 10, Products: 20, Carts: 500, Orders: 1000, Reviews: 5}

	plan := planCounts(opts, 10, 20)
	require.Equal(t, 10, plan.Carts)
	require.Equal(t, 10, plan.Orders)
}

func TestPlanCountsReviewsCappedByProducts(t *testing.T) {
	opts := Options{Users: 10, Products: 3, Carts: 5, Orders: 5, Reviews: 2000}

	plan := planCounts(opts, 10, 3)
	require.Equal(t, 6, plan.Reviews)
}

func TestPlanCountsEmptyProductPool(t *testing.T) {
	opts := Options{Users: 10, Products: 0, Carts: 5, Orders: 5, Reviews: 5}

	plan := planCounts(opts, 10, 0)
	require.Zero(t, plan.Carts)
	require.Zero(t, plan.Orders)
	require.Zero(t, plan.Reviews)
}

func TestPlanCountsPoolLargerThanRequested(t *testing.T) {
	opts := Options{Users: 1000, Products: 2000, Carts: 500, Orders: 1000, Reviews: 2000}

	plan := planCounts(opts, 1000, 2000)
	require.Equal(t, 500, plan.Carts)
	require.Equal(t, 1000, plan.Orders)
	require.Equal(t, 2000, plan.Reviews)
}
