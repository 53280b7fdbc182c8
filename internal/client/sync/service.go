package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/P3rtang/tallyWeb-sub000/internal/client/storage"
	"github.com/P3rtang/tallyWeb-sub000/internal/countable"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

//go:generate moq -out remote_mock.go . Remote
//go:generate moq -out service_mock.go . Service

// Remote is the authoritative side of a sync
type Remote interface {
	// GetOwnerCountables returns the owner's rows; children lists are rebuilt by the caller
	GetOwnerCountables(ctx context.Context, owner uuid.UUID) ([]models.Countable, error)

	// SaveCountables creates or replaces the given nodes
	SaveCountables(ctx context.Context, owner uuid.UUID, nodes []models.Countable) error
}

// Service определяет интерфейс для sync.Service
type Service interface {
	// Sync выполняет полную синхронизацию с сервером
	Sync(ctx context.Context, owner uuid.UUID) (*SyncResult, error)

	// GetLastSyncTime возвращает время последней успешной синхронизации
	GetLastSyncTime(ctx context.Context) (time.Time, error)

	// GetPendingSyncCount возвращает количество узлов, измененных после последней синхронизации
	GetPendingSyncCount(ctx context.Context) (int, error)
}

// Service handles synchronization between the offline cache and the server
type service struct {
	remote          Remote
	localStorage    storage.CountableStorage
	metadataStorage storage.MetadataStorage
	logger          *slog.Logger
	now             func() time.Time
}

// NewService creates a new sync service
func NewService(remote Remote, localStorage storage.CountableStorage, metadataStorage storage.MetadataStorage, logger *slog.Logger) Service {
	return &service{
		remote:          remote,
		localStorage:    localStorage,
		metadataStorage: metadataStorage,
		logger:          logger,
		now:             time.Now,
	}
}

// SyncResult contains sync operation results
type SyncResult struct {
	countable.MergeResult
	Pulled   int `json:"pulled"`   // Pulled количество узлов, полученных с сервера
	Local    int `json:"local"`    // Local количество узлов в локальном кэше до синхронизации
	Stored   int `json:"stored"`   // Stored количество узлов, записанных на обе стороны
	Orphaned int `json:"orphaned"` // Orphaned узлы без родителя, отброшенные после слияния
}

// Sync performs full synchronization with server
// 1. Pulls the authoritative tree and rebuilds it from rows
// 2. Loads the offline tree
// 3. Merges the offline tree into the server tree
// 4. Writes the merged tree to both sides
func (s *service) Sync(ctx context.Context, owner uuid.UUID) (*SyncResult, error) {
	s.logger.Info("Starting synchronization", "owner", owner)

	records, err := s.remote.GetOwnerCountables(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch server countables: %w", err)
	}

	server, err := countable.FromRecords(owner, records)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild server tree: %w", err)
	}

	local, err := storage.LoadStore(ctx, s.localStorage, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load local tree: %w", err)
	}

	s.logger.Debug("Collected both trees", "server", server.Len(), "local", local.Len())

	merged, err := server.Merge(local)
	if err != nil {
		return nil, fmt.Errorf("merge failed: %w", err)
	}

	nodes, err := canonicalNodes(owner, server)
	if err != nil {
		return nil, err
	}
	if orphaned := server.Len() - len(nodes); orphaned > 0 {
		s.logger.Warn("Dropping unreachable countables", "count", orphaned)
	}

	// Сначала сервер: если запись на сервер упадет, локальный кэш останется нетронутым
	if err := s.remote.SaveCountables(ctx, owner, nodes); err != nil {
		return nil, fmt.Errorf("failed to push merged tree: %w", err)
	}

	if err := s.localStorage.ReplaceAll(ctx, nodes); err != nil {
		return nil, fmt.Errorf("failed to store merged tree locally: %w", err)
	}

	result := &SyncResult{
		MergeResult: merged,
		Pulled:      len(records),
		Local:       local.Len(),
		Stored:      len(nodes),
		Orphaned:    server.Len() - len(nodes),
	}

	s.logger.Info("Synchronization completed",
		"pulled", result.Pulled,
		"local", result.Local,
		"stored", result.Stored,
		"added", result.Added,
		"replaced", result.Replaced,
		"kept", result.Kept,
		"archived", result.Archived,
		"relinked", result.Relinked,
		"orphaned", result.Orphaned)

	if err := s.metadataStorage.SaveLastSyncTime(ctx, s.now().UTC()); err != nil {
		s.logger.Warn("Failed to save last sync time", "error", err)
		// Не прерываем синхронизацию из-за ошибки сохранения времени
	}

	return result, nil
}

// canonicalNodes rebuilds children lists from parent links.
// A replaced counter carries the children list of its winning side, so phases
// only the other side knew about are linked back here.
func canonicalNodes(owner uuid.UUID, merged *countable.Store) ([]models.Countable, error) {
	nodes, err := merged.Nodes()
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot merged tree: %w", err)
	}

	tree, err := countable.FromRecords(owner, nodes)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild merged tree: %w", err)
	}

	return tree.Nodes()
}

// GetLastSyncTime возвращает время последней синхронизации, нулевое если ее не было
func (s *service) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	last, err := s.metadataStorage.GetLastSyncTime(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}
	return last, nil
}

// GetPendingSyncCount считает локальные узлы с last_edit позже последней синхронизации
func (s *service) GetPendingSyncCount(ctx context.Context) (int, error) {
	last, err := s.metadataStorage.GetLastSyncTime(ctx)
	if err != nil {
		// Если время не найдено, считаем все узлы несинхронизированными
		s.logger.Debug("No last sync time found, counting every node", "error", err)
		last = time.Time{}
	}

	nodes, err := s.localStorage.GetAllCountables(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get pending countables: %w", err)
	}

	pending := 0
	for _, c := range nodes {
		if c.LastEdit().After(last) {
			pending++
		}
	}
	return pending, nil
}
