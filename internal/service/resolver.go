package service

import (
	"context"
	"log/slog"

	"github.com/rjcampbel/DisneyMagic/internal/domain"
)

// Resolution is the outcome of resolving one collection
type Resolution struct {
	Items []domain.ItemDescriptor
	State domain.NodeState
	Err   error // set when State is StateResolvedEmpty
}

// Resolver decides where a collection's items come from and, for SetRef
// collections, fetches the referenced set.
type Resolver struct {
	repo   domain.CatalogRepository
	logger *slog.Logger
}

// NewResolver creates a new resolver
func NewResolver(repo domain.CatalogRepository, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{repo: repo, logger: logger}
}

// Resolve returns the collection's items and the terminal state it reached.
// Failures never propagate: a reference that cannot be fetched or parsed
// resolves to an empty item list.
func (r *Resolver) Resolve(ctx context.Context, coll domain.CollectionDescriptor) Resolution {
	if coll.Err != nil {
		r.trace(coll, domain.StateResolvedEmpty)
		return Resolution{State: domain.StateResolvedEmpty, Err: coll.Err}
	}
	if !coll.IsReference() {
		r.trace(coll, domain.StateResolvedDirect)
		return Resolution{Items: coll.Items, State: domain.StateResolvedDirect}
	}

	r.trace(coll, domain.StateResolvingReference)
	items, err := r.repo.GetSet(ctx, coll.RefID)
	if err != nil {
		r.logger.Warn("reference resolution failed", "title", coll.Title, "refId", coll.RefID, "error", err)
		r.trace(coll, domain.StateResolvedEmpty)
		return Resolution{State: domain.StateResolvedEmpty, Err: err}
	}

	r.trace(coll, domain.StateResolved)
	return Resolution{Items: items, State: domain.StateResolved}
}

func (r *Resolver) trace(coll domain.CollectionDescriptor, state domain.NodeState) {
	r.logger.Debug("collection state", "title", coll.Title, "refId", coll.RefID, "state", state.String())
}
