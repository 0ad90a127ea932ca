/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/ReversiGo/position"
)

func TestSetupSearchFallsBackToDefaultsOnNonPositiveValues(t *testing.T) {
	Settings.Search.Depth = 0
	Settings.Search.TTSize = -1
	setupSearch()

	assert.Equal(t, 8, Settings.Search.Depth)
	assert.Equal(t, 64, Settings.Search.TTSize)
}

func TestSetupSearchClampsMaxParallelismToNumCPU(t *testing.T) {
	Settings.Search.MaxParallelism = runtime.NumCPU() * 100
	setupSearch()

	assert.LessOrEqual(t, Settings.Search.MaxParallelism, runtime.NumCPU())
}

func TestSetupSearchLeavesZeroMaxParallelismAlone(t *testing.T) {
	Settings.Search.MaxParallelism = 0
	setupSearch()

	assert.Equal(t, 0, Settings.Search.MaxParallelism, "0 means \"use runtime.NumCPU()\" and must not be rewritten")
}

func TestSetupSearchAppliesMixSideToMoveToZobrist(t *testing.T) {
	defer func() { position.MixSideToMove = true }()

	Settings.Search.MixSideToMove = false
	setupSearch()
	assert.False(t, position.MixSideToMove)

	Settings.Search.MixSideToMove = true
	setupSearch()
	assert.True(t, position.MixSideToMove)
}
