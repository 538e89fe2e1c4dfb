package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rjcampbel/DisneyMagic/internal/config"
	"github.com/rjcampbel/DisneyMagic/internal/domain"
)

// CatalogService builds the in-memory catalog in one synchronous pass
type CatalogService struct {
	repo     domain.CatalogRepository
	resolver *Resolver
	images   *ImageLoader
	tile     config.TileConfig
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service. A nil image loader builds
// every item as a text tile without touching the network for artwork.
func NewCatalogService(repo domain.CatalogRepository, images *ImageLoader, tile config.TileConfig, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		repo:     repo,
		resolver: NewResolver(repo, logger),
		images:   images,
		tile:     tile,
		logger:   logger,
	}
}

// Build fetches the home document, resolves every collection and constructs
// its items. Only a failure to load the home document is returned; everything
// after that degrades per node or per item.
func (s *CatalogService) Build(ctx context.Context, observer domain.BuildObserver) ([]*domain.CatalogNode, error) {
	if observer == nil {
		observer = domain.NoOpObserver{}
	}

	collections, err := s.repo.GetHome(ctx)
	if err != nil {
		s.logger.Error("failed to load home document", "error", err)
		return nil, fmt.Errorf("loading home catalog: %w", err)
	}

	nodes := make([]*domain.CatalogNode, 0, len(collections))
	for i, coll := range collections {
		node := s.buildNode(ctx, coll)
		nodes = append(nodes, node)
		observer.OnProgress(domain.BuildProgress{
			Index: i,
			Total: len(collections),
			Title: node.Title(),
			Items: node.Len(),
			State: node.State(),
		})
	}

	observer.OnProgress(domain.BuildProgress{Index: len(nodes) - 1, Total: len(nodes), Done: true})
	s.logger.Info("catalog built", "rows", len(nodes))
	return nodes, nil
}

func (s *CatalogService) buildNode(ctx context.Context, coll domain.CollectionDescriptor) *domain.CatalogNode {
	if coll.Title == "" {
		s.logger.Warn("collection without title", "type", coll.Type, "refId", coll.RefID)
	}

	res := s.resolver.Resolve(ctx, coll)
	if !res.State.IsTerminal() {
		s.logger.Error("collection left in non-terminal state", "title", coll.Title, "state", res.State.String())
		res = Resolution{State: domain.StateResolvedEmpty}
	}
	items := make([]*domain.CatalogItem, 0, len(res.Items))
	for _, desc := range res.Items {
		items = append(items, s.buildItem(ctx, desc))
	}

	s.logger.Debug("collection built", "title", coll.Title, "state", res.State.String(), "items", len(items))
	return domain.NewCatalogNode(coll.Title, coll.RefID, res.State, items)
}

func (s *CatalogService) buildItem(ctx context.Context, desc domain.ItemDescriptor) *domain.CatalogItem {
	w, h := float64(s.tile.Width), float64(s.tile.Height)
	if s.images == nil || desc.ImageURL == "" {
		return domain.NewCatalogItem(desc.Title, desc.Kind, desc.ImageURL, nil, w, h)
	}

	img, err := s.images.Load(ctx, desc.ImageURL)
	if err != nil {
		s.logger.Warn("image unavailable, using text tile", "title", desc.Title, "url", desc.ImageURL, "error", err)
		img = nil
	}
	item := domain.NewCatalogItem(desc.Title, desc.Kind, desc.ImageURL, img, w, h)
	if item.HasVisual() {
		s.logger.Debug("tile scaled", "title", desc.Title, "scale", item.BaseScale())
	}
	return item
}
