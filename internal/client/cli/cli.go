package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/P3rtang/tallyWeb-sub000/internal/client/iocli"
	"github.com/P3rtang/tallyWeb-sub000/internal/client/storage"
	"github.com/P3rtang/tallyWeb-sub000/internal/client/sync"
	"github.com/P3rtang/tallyWeb-sub000/internal/countable"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

var (
	// ErrUnknownID indicates that no countable matches the given id or prefix
	ErrUnknownID = errors.New("no countable matches id")

	// ErrAmbiguousID indicates that an id prefix matches several countables
	ErrAmbiguousID = errors.New("id prefix matches several countables")

	// ErrOwnerMismatch indicates an import of a tree that belongs to another owner
	ErrOwnerMismatch = errors.New("snapshot belongs to another owner")
)

// shortIDLen длина сокращенного идентификатора в выводе
const shortIDLen = 8

type Cli struct {
	io          iocli.IO
	countables  storage.CountableStorage
	metadata    storage.MetadataStorage
	syncService sync.Service
	logger      *slog.Logger
	stdin       io.Reader
	now         func() time.Time
	owner       uuid.UUID
}

func New(io iocli.IO, countables storage.CountableStorage, metadata storage.MetadataStorage, syncService sync.Service, logger *slog.Logger, owner uuid.UUID) *Cli {
	return &Cli{
		io:          io,
		countables:  countables,
		metadata:    metadata,
		syncService: syncService,
		logger:      logger,
		stdin:       os.Stdin,
		now:         time.Now,
		owner:       owner,
	}
}

// ResolveOwner returns the configured owner, or the one saved in the local cache.
// A fresh cache gets a new owner, which is saved for later runs.
func ResolveOwner(ctx context.Context, metadata storage.MetadataStorage, configured uuid.UUID, ok bool) (uuid.UUID, error) {
	if ok {
		if err := metadata.SaveOwnerID(ctx, configured); err != nil {
			return uuid.Nil, fmt.Errorf("failed to save owner: %w", err)
		}
		return configured, nil
	}

	owner, err := metadata.GetOwnerID(ctx)
	if err == nil {
		return owner, nil
	}
	if !errors.Is(err, storage.ErrOwnerNotSet) {
		return uuid.Nil, fmt.Errorf("failed to get owner: %w", err)
	}

	owner = uuid.New()
	if err := metadata.SaveOwnerID(ctx, owner); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save owner: %w", err)
	}
	return owner, nil
}

// loadStore читает локальное дерево
func (c *Cli) loadStore(ctx context.Context) (*countable.Store, error) {
	return storage.LoadStore(ctx, c.countables, c.owner)
}

// saveStore записывает дерево, если оно изменилось
func (c *Cli) saveStore(ctx context.Context, s *countable.Store) error {
	written, err := storage.SaveStore(ctx, c.countables, s)
	if err != nil {
		return err
	}
	if written {
		c.logger.Debug("Saved local tree", "nodes", s.Len())
	}
	return nil
}

// edit loads the tree, applies fn and saves the result
func (c *Cli) edit(ctx context.Context, fn func(s *countable.Store) error) (*countable.Store, error) {
	s, err := c.loadStore(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	if err := c.saveStore(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// resolveID accepts a full id or a unique prefix of one
func resolveID(s *countable.Store, arg string) (models.CountableID, error) {
	if id, err := models.ParseCountableID(arg); err == nil {
		if !s.Contains(id) {
			return models.NilCountableID, fmt.Errorf("%w: %s", ErrUnknownID, arg)
		}
		return id, nil
	}

	prefix := strings.ToLower(strings.TrimSpace(arg))
	if prefix == "" {
		return models.NilCountableID, fmt.Errorf("%w: empty id", ErrUnknownID)
	}

	var matches []models.CountableID
	for _, id := range s.IDs() {
		if strings.HasPrefix(id.String(), prefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return models.NilCountableID, fmt.Errorf("%w: %s", ErrUnknownID, arg)
	case 1:
		return matches[0], nil
	default:
		return models.NilCountableID, fmt.Errorf("%w: %s (%d matches)", ErrAmbiguousID, arg, len(matches))
	}
}

func shortID(id models.CountableID) string {
	return id.String()[:shortIDLen]
}
