package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"menu-bridge/internal/model"
	"menu-bridge/internal/product/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	groups, err := r.loadOptionGroups(ctx, []int64{p.ID})
	if err != nil {
		return nil, err
	}
	p.OptionGroups = groups[p.ID]
	if p.OptionGroups == nil {
		p.OptionGroups = []model.OptionGroup{}
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var products []model.Product
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.CategoryID != 0 {
		conditions = append(conditions, "category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name ILIKE :search OR description ILIKE :search OR short_description ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM products" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	// Whitelist sort fields to keep the interpolation safe.
	orderBy := "name ASC"
	if f.SortBy != "" {
		switch f.SortBy {
		case "name":
			orderBy = "name"
		case "price":
			orderBy = "price"
		case "updated_at":
			orderBy = "updated_at"
		default:
			orderBy = "name"
		}
		if strings.ToLower(f.SortOrder) == "desc" {
			orderBy += " DESC"
		} else {
			orderBy += " ASC"
		}
	}

	query := fmt.Sprintf("SELECT * FROM products%s ORDER BY %s", whereClause, orderBy)
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		if offset < 0 {
			offset = 0
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &products, args); err != nil {
		return nil, 0, err
	}

	if len(products) > 0 {
		ids := make([]int64, len(products))
		for i, p := range products {
			ids[i] = p.ID
		}
		groups, err := r.loadOptionGroups(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range products {
			products[i].OptionGroups = groups[products[i].ID]
			if products[i].OptionGroups == nil {
				products[i].OptionGroups = []model.OptionGroup{}
			}
		}
	}

	return products, count, nil
}

func (r *PGRepository) loadOptionGroups(ctx context.Context, productIDs []int64) (map[int64][]model.OptionGroup, error) {
	query, inArgs, err := sqlx.In(
		`SELECT * FROM option_groups WHERE product_id IN (?) ORDER BY sort_order ASC, id ASC`,
		productIDs,
	)
	if err != nil {
		return nil, err
	}
	var groups []model.OptionGroup
	if err := r.DB.SelectContext(ctx, &groups, r.DB.Rebind(query), inArgs...); err != nil {
		return nil, err
	}

	out := make(map[int64][]model.OptionGroup, len(productIDs))
	if len(groups) == 0 {
		return out, nil
	}

	groupIDs := make([]int64, len(groups))
	for i, g := range groups {
		groupIDs[i] = g.ID
	}

	query, inArgs, err = sqlx.In(
		`SELECT * FROM option_values WHERE group_id IN (?) ORDER BY sort_order ASC, id ASC`,
		groupIDs,
	)
	if err != nil {
		return nil, err
	}
	var values []model.OptionValue
	if err := r.DB.SelectContext(ctx, &values, r.DB.Rebind(query), inArgs...); err != nil {
		return nil, err
	}

	byGroup := make(map[int64][]model.OptionValue, len(groups))
	for _, v := range values {
		byGroup[v.GroupID] = append(byGroup[v.GroupID], v)
	}
	for i := range groups {
		groups[i].Values = byGroup[groups[i].ID]
		if groups[i].Values == nil {
			groups[i].Values = []model.OptionValue{}
		}
		out[groups[i].ProductID] = append(out[groups[i].ProductID], groups[i])
	}
	return out, nil
}

func (r *PGRepository) CountByCategory(ctx context.Context) (map[int64]int, error) {
	rows, err := r.DB.QueryxContext(ctx,
		`SELECT category_id, count(*) FROM products WHERE is_active AND category_id IS NOT NULL GROUP BY category_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[int64]int{}
	for rows.Next() {
		var categoryID int64
		var n int
		if err := rows.Scan(&categoryID, &n); err != nil {
			return nil, err
		}
		counts[categoryID] = n
	}
	return counts, rows.Err()
}

func (r *PGRepository) Upsert(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, category_id, name, short_description, description,
            price, currency, image_url, is_active, updated_at
        )
        VALUES (
            :id, :category_id, :name, :short_description, :description,
            :price, :currency, :image_url, :is_active, :updated_at
        )
        ON CONFLICT (id) DO UPDATE SET
            category_id = EXCLUDED.category_id,
            name = EXCLUDED.name,
            short_description = EXCLUDED.short_description,
            description = EXCLUDED.description,
            price = EXCLUDED.price,
            currency = EXCLUDED.currency,
            image_url = EXCLUDED.image_url,
            is_active = EXCLUDED.is_active,
            updated_at = EXCLUDED.updated_at
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

// ReplaceOptionGroups swaps the product's option group tree atomically.
// Option values are removed by the FK cascade on option_groups.
func (r *PGRepository) ReplaceOptionGroups(ctx context.Context, productID int64, groups []model.OptionGroup) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM option_groups WHERE product_id = $1`, productID); err != nil {
		return err
	}

	groupQuery := `
        INSERT INTO option_groups (id, product_id, name, display_type, sort_order)
        VALUES (:id, :product_id, :name, :display_type, :sort_order)
    `
	valueQuery := `
        INSERT INTO option_values (
            id, group_id, name, price_extra, sort_order,
            linked_product_id, linked_product_name, linked_product_price
        )
        VALUES (
            :id, :group_id, :name, :price_extra, :sort_order,
            :linked_product_id, :linked_product_name, :linked_product_price
        )
    `
	for _, g := range groups {
		g.ProductID = productID
		if _, err := tx.NamedExecContext(ctx, groupQuery, g); err != nil {
			return err
		}
		for _, v := range g.Values {
			v.GroupID = g.ID
			if _, err := tx.NamedExecContext(ctx, valueQuery, v); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}
