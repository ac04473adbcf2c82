package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

var productSortFields = map[string]string{
	"name":       "p.name",
	"price":      "p.price",
	"created_at": "p.created_at",
}

// searchCond widens recall on purpose: relevance-ranked full-text OR a plain
// substring match on the name, so short queries that score poorly under
// ranking still surface name matches.
const searchCond = `(to_tsvector('english', coalesce(p.name,'') || ' ' || coalesce(p.description,'') || ' ' || coalesce(p.meta_keywords,'')) @@ plainto_tsquery('english', ?) OR p.name ILIKE ?)`

const productColumns = `p.id, p.uuid, p.name, p.slug, p.description, p.price, p.stock,
	p.category_id, p.created_by, p.image_url, p.image_original_name, p.image_mime_type,
	p.image_size, p.meta_title, p.meta_description, p.meta_keywords, p.is_active,
	p.created_at, p.updated_at, c.name, c.slug, u.name`

const productJoins = ` FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	LEFT JOIN users u ON p.created_by = u.id`

// ProductRepository is the PostgreSQL implementation of ports.ProductRepository.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	img := imageFields(p.Image)
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO products (uuid, name, slug, description, price, stock, category_id, created_by,
			image_url, image_original_name, image_mime_type, image_size,
			meta_title, meta_description, meta_keywords, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		 RETURNING id`,
		p.UUID, p.Name, p.Slug, nullString(p.Description), p.Price, p.Stock,
		nullInt64Ptr(p.CategoryID), p.CreatedBy,
		img.url, img.originalName, img.mimeType, img.size,
		nullString(p.MetaTitle), nullString(p.MetaDescription), nullString(p.MetaKeywords),
		p.IsActive, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) FindByUUID(ctx context.Context, uid string) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+productJoins+` WHERE p.uuid = $1`, uid)
	return scanProductNotFound(row)
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+productJoins+` WHERE p.slug = $1 AND p.is_active = TRUE`, slug)
	return scanProductNotFound(row)
}

func (r *ProductRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.Product, int, error) {
	b := &condBuilder{}
	// Owner scoping is the first constraint so every variant of the query
	// shares the rest of the filter set.
	if opts.OwnerID != nil {
		b.and("p.created_by = ?", *opts.OwnerID)
	}
	if opts.ActiveOnly {
		b.and("p.is_active = TRUE")
	}
	if opts.Search != "" {
		b.and(searchCond, opts.Search, "%"+opts.Search+"%")
	}
	if opts.CategoryID != nil {
		b.and("p.category_id = ?", *opts.CategoryID)
	}
	if opts.MinPrice != nil {
		b.and("p.price >= ?", *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		b.and("p.price <= ?", *opts.MaxPrice)
	}

	countQuery := `SELECT COUNT(*) FROM products p WHERE ` + b.where()
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	column, direction := resolveSort(productSortFields, opts.SortBy, opts.SortOrder, "created_at")
	query := fmt.Sprintf(`SELECT %s%s WHERE %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		productColumns, productJoins, b.where(), column, direction, b.next(), b.next()+1)
	args := append(b.args, opts.Limit, opts.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, id int64, ownerID *int64, upd domain.ProductUpdate) error {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		set("name", *upd.Name)
	}
	if upd.Slug != nil {
		set("slug", *upd.Slug)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.Price != nil {
		set("price", *upd.Price)
	}
	if upd.Stock != nil {
		set("stock", *upd.Stock)
	}
	if upd.CategoryID != nil {
		set("category_id", nullInt64Value(*upd.CategoryID))
	}
	if upd.Image != nil {
		set("image_url", upd.Image.URL)
		set("image_original_name", upd.Image.OriginalName)
		set("image_mime_type", upd.Image.MimeType)
		set("image_size", upd.Image.Size)
	}
	if upd.MetaTitle != nil {
		set("meta_title", *upd.MetaTitle)
	}
	if upd.MetaDescription != nil {
		set("meta_description", *upd.MetaDescription)
	}
	if upd.MetaKeywords != nil {
		set("meta_keywords", *upd.MetaKeywords)
	}
	if upd.IsActive != nil {
		set("is_active", *upd.IsActive)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	if ownerID != nil {
		args = append(args, *ownerID)
		query += fmt.Sprintf(` AND created_by = $%d`, len(args))
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64, ownerID *int64) error {
	query := `DELETE FROM products WHERE id = $1`
	args := []any{id}
	if ownerID != nil {
		query += ` AND created_by = $2`
		args = append(args, *ownerID)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE slug = $1 AND id <> $2)`,
		slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product slug exists: %w", err)
	}
	return exists, nil
}

func (r *ProductRepository) Count(ctx context.Context, ownerID *int64) (int, error) {
	query := `SELECT COUNT(*) FROM products`
	var args []any
	if ownerID != nil {
		query += ` WHERE created_by = $1`
		args = append(args, *ownerID)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

func (r *ProductRepository) Recent(ctx context.Context, ownerID *int64, limit int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + productJoins
	args := []any{}
	if ownerID != nil {
		query += ` WHERE p.created_by = $1`
		args = append(args, *ownerID)
	}
	query += fmt.Sprintf(` ORDER BY p.created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		p             domain.Product
		description   sql.NullString
		categoryID    sql.NullInt64
		imageURL      sql.NullString
		imageOrigName sql.NullString
		imageMime     sql.NullString
		imageSize     sql.NullInt64
		metaTitle     sql.NullString
		metaDesc      sql.NullString
		metaKeywords  sql.NullString
		categoryName  sql.NullString
		categorySlug  sql.NullString
		creatorName   sql.NullString
	)

	err := row.Scan(&p.ID, &p.UUID, &p.Name, &p.Slug, &description, &p.Price, &p.Stock,
		&categoryID, &p.CreatedBy, &imageURL, &imageOrigName, &imageMime, &imageSize,
		&metaTitle, &metaDesc, &metaKeywords, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		&categoryName, &categorySlug, &creatorName)
	if err != nil {
		return nil, err
	}

	p.Description = description.String
	if categoryID.Valid {
		p.CategoryID = &categoryID.Int64
	}
	if imageURL.Valid {
		p.Image = &domain.Image{
			URL:          imageURL.String,
			OriginalName: imageOrigName.String,
			MimeType:     imageMime.String,
			Size:         imageSize.Int64,
		}
	}
	p.MetaTitle = metaTitle.String
	p.MetaDescription = metaDesc.String
	p.MetaKeywords = metaKeywords.String
	p.CategoryName = categoryName.String
	p.CategorySlug = categorySlug.String
	p.CreatedByName = creatorName.String
	return &p, nil
}

func scanProductNotFound(row *sql.Row) (*domain.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return p, nil
}

type imageColumns struct {
	url          sql.NullString
	originalName sql.NullString
	mimeType     sql.NullString
	size         sql.NullInt64
}

func imageFields(img *domain.Image) imageColumns {
	if img == nil {
		return imageColumns{}
	}
	return imageColumns{
		url:          sql.NullString{String: img.URL, Valid: true},
		originalName: sql.NullString{String: img.OriginalName, Valid: img.OriginalName != ""},
		mimeType:     sql.NullString{String: img.MimeType, Valid: img.MimeType != ""},
		size:         sql.NullInt64{Int64: img.Size, Valid: img.Size > 0},
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64Ptr(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// nullInt64Value maps the sentinel 0 to NULL so an update can clear the
// category reference.
func nullInt64Value(v int64) sql.NullInt64 {
	if v == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: v, Valid: true}
}
