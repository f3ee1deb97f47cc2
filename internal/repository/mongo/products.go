package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
)

// ProductRepo manages the hosted catalog.
type ProductRepo struct {
	db *mongodrv.Database
}

func (r *ProductRepo) collection() *mongodrv.Collection {
	return r.db.Collection(collProducts)
}

func (r *ProductRepo) List(ctx context.Context, publishedOnly bool) ([]domain.Product, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["isPublished"] = true
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}}))
}

func (r *ProductRepo) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"isPublished": true, "isFeatured": true},
		options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}}))
}

func (r *ProductRepo) ListByCategorySlug(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	categories, products, err := r.categoriesAndPublished(ctx)
	if err != nil {
		return nil, err
	}
	return repository.FilterByCategorySlug(categorySlug, categories, products), nil
}

func (r *ProductRepo) ListBySubcategorySlugs(ctx context.Context, categorySlug, subcategorySlug string) ([]domain.Product, error) {
	categories, products, err := r.categoriesAndPublished(ctx)
	if err != nil {
		return nil, err
	}
	return repository.FilterBySubcategorySlugs(categorySlug, subcategorySlug, categories, products), nil
}

func (r *ProductRepo) ListRelatedBySlug(ctx context.Context, slug string, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = repository.DefaultRelatedLimit
	}
	return r.find(ctx,
		bson.M{"isPublished": true, "slug": bson.M{"$ne": slug}},
		options.Find().SetLimit(int64(limit)))
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (domain.Product, error) {
	var product domain.Product
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return domain.Product{}, fmt.Errorf("product %q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

func (r *ProductRepo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (domain.Product, error) {
	filter := bson.M{"slug": slug}
	if publishedOnly {
		filter["isPublished"] = true
	}

	var product domain.Product
	err := r.collection().FindOne(ctx, filter).Decode(&product)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return domain.Product{}, fmt.Errorf("product %q: %w", slug, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product by slug: %w", err)
	}
	return product, nil
}

func (r *ProductRepo) Create(ctx context.Context, input repository.ProductUpsertInput) (domain.Product, error) {
	slugBase := input.Slug
	if slugBase == "" {
		slugBase = input.Name
	}
	slug, err := r.uniqueSlug(ctx, slugBase, "")
	if err != nil {
		return domain.Product{}, err
	}

	now := time.Now()
	product := domain.Product{
		ID:            uuid.NewString(),
		SKU:           input.SKU,
		Name:          input.Name,
		Slug:          slug,
		Description:   input.Description,
		CategoryID:    input.CategoryID,
		BasePrice:     input.BasePrice,
		SalePrice:     input.SalePrice,
		IsFeatured:    input.IsFeatured,
		IsPublished:   input.IsPublished,
		ColorVariants: normalizeVariants(input.ColorVariants),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := r.collection().InsertOne(ctx, product); err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return product, nil
}

func (r *ProductRepo) Update(ctx context.Context, id string, input repository.ProductUpsertInput) (domain.Product, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	slugBase := input.Slug
	if slugBase == "" {
		slugBase = input.Name
	}
	if slugBase == "" {
		slugBase = existing.Name
	}
	slug, err := r.uniqueSlug(ctx, slugBase, id)
	if err != nil {
		return domain.Product{}, err
	}

	updated := domain.Product{
		ID:            id,
		SKU:           input.SKU,
		Name:          input.Name,
		Slug:          slug,
		Description:   input.Description,
		CategoryID:    input.CategoryID,
		BasePrice:     input.BasePrice,
		SalePrice:     input.SalePrice,
		IsFeatured:    input.IsFeatured,
		IsPublished:   input.IsPublished,
		ColorVariants: normalizeVariants(input.ColorVariants),
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now(),
	}

	if _, err := r.collection().ReplaceOne(ctx, bson.M{"_id": id}, updated); err != nil {
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// SoftDelete unpublishes a product; a missing id is a no-op.
func (r *ProductRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"isPublished": false, "updatedAt": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) Duplicate(ctx context.Context, id string) (domain.Product, error) {
	source, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	slug, err := r.uniqueSlug(ctx, source.Slug+"-copy", "")
	if err != nil {
		return domain.Product{}, err
	}

	now := time.Now()
	dup := source
	dup.ID = uuid.NewString()
	dup.Name = source.Name + " (Copy)"
	dup.Slug = slug
	if source.SKU != "" {
		dup.SKU = source.SKU + "-COPY"
	}
	dup.IsPublished = false
	dup.CreatedAt = now
	dup.UpdatedAt = now

	variants := make([]domain.ColorVariant, len(source.ColorVariants))
	for i, v := range source.ColorVariants {
		v.ID = v.ID + "-copy-" + domain.RandomSuffix()
		variants[i] = v
	}
	dup.ColorVariants = variants

	if _, err := r.collection().InsertOne(ctx, dup); err != nil {
		return domain.Product{}, fmt.Errorf("duplicate product: %w", err)
	}
	return dup, nil
}

// ToggleBulkStatus sets isPublished on every listed product, skipping ids
// that do not exist, and returns how many rows were touched.
func (r *ProductRepo) ToggleBulkStatus(ctx context.Context, ids []string, isPublished bool) (int, error) {
	res, err := r.collection().UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"isPublished": isPublished, "updatedAt": time.Now()}})
	if err != nil {
		return 0, fmt.Errorf("toggle bulk status: %w", err)
	}
	return int(res.MatchedCount), nil
}

func (r *ProductRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]domain.Product, error) {
	cursor, err := r.collection().Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (r *ProductRepo) categoriesAndPublished(ctx context.Context) ([]domain.Category, []domain.Product, error) {
	categories, err := (&CategoryRepo{db: r.db}).List(ctx, false)
	if err != nil {
		return nil, nil, err
	}
	products, err := r.find(ctx, bson.M{"isPublished": true},
		options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}}))
	if err != nil {
		return nil, nil, err
	}
	return categories, products, nil
}

// uniqueSlug normalizes the base and probes the collection for an unused
// slug, appending -1, -2, ... Rows with currentID are ignored so an update
// keeps its own slug.
func (r *ProductRepo) uniqueSlug(ctx context.Context, base, currentID string) (string, error) {
	clean := domain.Slugify(base)
	if clean == "" {
		clean = "product-" + domain.RandomSuffix()
	}

	candidate := clean
	for attempt := 1; ; attempt++ {
		filter := bson.M{"slug": candidate}
		if currentID != "" {
			filter["_id"] = bson.M{"$ne": currentID}
		}

		count, err := r.collection().CountDocuments(ctx, filter)
		if err != nil {
			return "", fmt.Errorf("probe slug: %w", err)
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", clean, attempt)
	}
}

func normalizeVariants(variants []domain.ColorVariant) []domain.ColorVariant {
	out := make([]domain.ColorVariant, len(variants))
	for i, v := range variants {
		if v.ID == "" {
			v.ID = "variant-" + domain.RandomSuffix()
		}
		out[i] = v
	}
	return out
}
