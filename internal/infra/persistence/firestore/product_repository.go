package firestore

import (
	"context"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// productScanLimit bounds the documents read for a free-text search, which
// Firestore cannot evaluate server-side.
const productScanLimit = 500

type productRepository struct {
	client *firestore.Client
}

// NewProductRepository creates a ProductRepository on the products collection.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (repo *productRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionProducts)
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if _, err := repo.collection().Doc(product.ID).Create(ctx, newProductDoc(product)); err != nil {
		return translateError(err, "failed to create product")
	}

	return nil
}

// Update replaces an existing document. Callers carry createdAt over from the stored product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	ref := repo.collection().Doc(product.ID)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			return err
		}

		return tx.Set(ref, newProductDoc(product))
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrProductNotFound
		}

		return translateError(err, "failed to update product")
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id string) error {
	ref := repo.collection().Doc(id)
	// Delete with Exists turns a missing document into NotFound.
	if _, err := ref.Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrProductNotFound
		}

		return translateError(err, "failed to delete product")
	}

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, translateError(err, "failed to find product")
	}

	var doc productDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode product %s", id)
	}

	return doc.toEntity(snap.Ref.ID), nil
}

// List filters by category on the server. Search is applied in memory over at
// most productScanLimit documents.
func (repo *productRepository) List(ctx context.Context, filter *repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.collection().OrderBy(fieldCreatedAt, firestore.Desc)
	if filter.Category != "" {
		query = repo.collection().Where(fieldCategory, "==", filter.Category).OrderBy(fieldCreatedAt, firestore.Desc)
	}

	limit := repository.ClampLimit(filter.Limit)
	offset := max(filter.Offset, 0)
	if filter.Search == "" {
		query = query.Offset(offset).Limit(limit)
	} else {
		query = query.Limit(productScanLimit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	skipped := 0
	for len(products) < limit {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, translateError(err, "failed to list products")
		}

		var doc productDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode product %s", snap.Ref.ID)
		}

		product := doc.toEntity(snap.Ref.ID)
		if filter.Search != "" {
			if !product.Matches("", filter.Search) {
				continue
			}
			if skipped < offset {
				skipped++

				continue
			}
		}
		products = append(products, product)
	}

	return products, nil
}
