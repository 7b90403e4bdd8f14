package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openmario/api/model"
	"github.com/openmario/api/services"
	"github.com/openmario/api/utils/cache"
	"gorm.io/gorm"
)

// catalogVersionKey stores the catalog ingestion version the cache was
// last flushed against
const catalogVersionKey = "catalog:version"

// RefreshRequisiteCache invalidates cached requisite payloads after a
// catalog re-ingestion. Course prerequisite structure only changes
// when the external scraper runs, so the job compares the newest
// ingestion version against the marker stored alongside the cache and
// flushes everything under the requisites prefix when they differ.
func (m *CronManager) RefreshRequisiteCache() {
	jobName := "refresh_requisite_cache"

	if m.cache == nil {
		m.logJobComplete(jobName, "Cache disabled, nothing to refresh")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var latest model.CatalogIngestion
	err := m.db.WithContext(ctx).
		Order("completed_at DESC").
		First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m.logJobComplete(jobName, "No catalog ingestions recorded yet")
		return
	}
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to query catalog ingestions: %w", err))
		return
	}

	marker, err := m.cache.Get(ctx, catalogVersionKey)
	if err != nil && !errors.Is(err, cache.ErrNotFound) {
		m.logJobError(jobName, fmt.Errorf("failed to read catalog version marker: %w", err))
		return
	}

	if marker == latest.Version {
		m.logJobComplete(jobName, "Catalog unchanged, cache kept")
		return
	}

	deleted, err := m.cache.DeleteByPattern(ctx, services.RequisitesCachePrefix+"*")
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to flush requisite cache: %w", err))
		return
	}

	if err := m.cache.Set(ctx, catalogVersionKey, latest.Version, 0); err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to store catalog version marker: %w", err))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Flushed %d cached payloads for catalog version %s", deleted, latest.Version))
}

// GraphHealthCheck verifies the graph store is still reachable so a
// dead connection shows up in the job log before users hit it.
func (m *CronManager) GraphHealthCheck() {
	jobName := "graph_health_check"

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := m.graphStore.HealthCheck(ctx); err != nil {
		m.logJobError(jobName, err)
		return
	}

	m.logJobComplete(jobName, "Graph store reachable")
}

// CleanupOldData prunes cron job logs older than 30 days
func (m *CronManager) CleanupOldData() {
	jobName := "cleanup_old_data"

	cutoff := time.Now().AddDate(0, 0, -30)

	result := m.db.Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&model.CronJobLog{})
	if result.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to prune cron job logs: %w", result.Error))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Pruned %d old cron job logs", result.RowsAffected))
}
