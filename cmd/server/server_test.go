package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LittlestCube/toontown-archipelago/internal/config"
	"github.com/LittlestCube/toontown-archipelago/internal/orchestrators/delivery"
	"github.com/LittlestCube/toontown-archipelago/internal/testutils"
)

func testConfig(t *testing.T, vars map[string]string) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(vars)
	require.NoError(t, err)
	return cfg
}

func TestBuildServicesDeliversEndToEnd(t *testing.T) {
	backends := map[string]map[string]string{
		"redis":  {"TTAP_APPLIED_BACKEND": "redis"},
		"memory": {"TTAP_APPLIED_BACKEND": "memory"},
		"sqlite": {
			"TTAP_APPLIED_BACKEND": "sqlite",
			"TTAP_SQLITE_PATH":     filepath.Join(t.TempDir(), "applied.db"),
		},
	}

	for name, vars := range backends {
		t.Run(name, func(t *testing.T) {
			client, _ := testutils.CreateTestRedisServer(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			svc, cleanup, err := buildServices(testConfig(t, vars), client, logger)
			require.NoError(t, err)
			t.Cleanup(cleanup)

			ctx := context.Background()
			_, err = svc.orchestrator.CreateAvatar(ctx, &delivery.CreateAvatarInput{
				AvatarID: "toon_1",
				Name:     testutils.TestToonName,
			})
			require.NoError(t, err)

			batch := &delivery.DeliverItemsInput{
				AvatarID: "toon_1",
				Items:    []delivery.Item{{ItemID: 4000, OriginName: "Slot 2"}},
			}
			_, err = svc.orchestrator.DeliverItems(ctx, batch)
			require.NoError(t, err)
			out, err := svc.orchestrator.DeliverItems(ctx, batch)
			require.NoError(t, err)

			assert.True(t, out.Results[0].Skipped)
			assert.Len(t, svc.inbox.List("toon_1", 0), 1)
		})
	}
}

func TestBuildServicesRejectsBadDataFiles(t *testing.T) {
	client, _ := testutils.CreateTestRedisServer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := testConfig(t, map[string]string{"TTAP_TABLES_PATH": filepath.Join(t.TempDir(), "missing.yaml")})
	_, _, err := buildServices(cfg, client, logger)
	assert.Error(t, err)

	cfg = testConfig(t, map[string]string{"TTAP_CATALOG_PATH": filepath.Join(t.TempDir(), "missing.yaml")})
	_, _, err = buildServices(cfg, client, logger)
	assert.Error(t, err)
}
