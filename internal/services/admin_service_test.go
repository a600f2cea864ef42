package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"carwo/internal/domain"
	"carwo/internal/faults"
	"carwo/internal/repos"
	"carwo/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newAdmin(db *sqlx.DB) (*services.AdminService, *services.CatalogService) {
	cats := repos.NewCategoryRepo(db)
	prods := repos.NewProductRepo(db)
	return services.NewAdminService(cats, prods), services.NewCatalogService(cats, prods)
}

func TestCreateCategoryThenRefetchIncludesIt(t *testing.T) {
	db := memdb(t)
	admin, catalog := newAdmin(db)

	c, err := admin.CreateCategory(domain.Category{NameEn: "Shaadh Cusub", NameSo: "Shaadh Cusub"})
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)

	list, err := catalog.ListCategories()
	require.NoError(t, err)
	found := false
	for _, got := range list {
		if got.ID == c.ID {
			found = true
			assert.Equal(t, "Shaadh Cusub", got.NameEn)
		}
	}
	assert.True(t, found, "re-fetch after insert must include the new category")
}

func TestCreateCategoryRequiresBothNames(t *testing.T) {
	db := memdb(t)
	admin, catalog := newAdmin(db)

	before, err := catalog.ListCategories()
	require.NoError(t, err)

	_, err = admin.CreateCategory(domain.Category{NameEn: "Only EN"})
	require.Error(t, err)
	assert.True(t, faults.Is(err, faults.Validation))
	assert.Equal(t, "Missing required category fields", err.Error())

	// blocked client-side: no row was written
	after, err := catalog.ListCategories()
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestCreateProductMissingPriceBlocked(t *testing.T) {
	db := memdb(t)
	admin, catalog := newAdmin(db)

	before, err := catalog.ListProducts()
	require.NoError(t, err)

	p := domain.Product{Name: "Shaadh", NameEn: "Shaadh", NameSo: "Shaadh"}
	_, err = admin.CreateProduct(p, false)
	require.Error(t, err)
	assert.True(t, faults.Is(err, faults.Validation))
	assert.Equal(t, "Missing required product fields", err.Error())

	after, err := catalog.ListProducts()
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestCreateProductNormalizesEmptyCategory(t *testing.T) {
	db := memdb(t)
	admin, _ := newAdmin(db)

	p := domain.Product{Name: "Shaadh", NameEn: "Shaadh", NameSo: "Shaadh", Category: "", Price: 900}
	p, err := admin.CreateProduct(p, true)
	require.NoError(t, err)

	// stored as NULL, never ''
	var nullCat int
	require.NoError(t, db.Get(&nullCat, `SELECT COUNT(*) FROM products WHERE id=? AND category IS NULL`, p.ID))
	assert.Equal(t, 1, nullCat)

	// and read back as the empty "uncategorized" value
	prods := repos.NewProductRepo(db)
	got, err := prods.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Category)
}

func TestUpdateProductHasNoRequiredGate(t *testing.T) {
	db := memdb(t)
	admin, _ := newAdmin(db)

	p := domain.Product{Name: "Shaadh", NameEn: "Shaadh", NameSo: "Shaadh", Price: 900, Category: "shaadh"}
	p, err := admin.CreateProduct(p, true)
	require.NoError(t, err)

	p.Category = ""
	p.Material = "Cotton"
	require.NoError(t, admin.UpdateProduct(p))

	prods := repos.NewProductRepo(db)
	got, err := prods.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Category)
	assert.Equal(t, "Cotton", got.Material)
}

func TestDeleteProductThenRefetchExcludesIt(t *testing.T) {
	db := memdb(t)
	admin, catalog := newAdmin(db)

	p, err := admin.CreateProduct(domain.Product{Name: "X", NameEn: "X", NameSo: "X", Price: 10}, true)
	require.NoError(t, err)

	require.NoError(t, admin.DeleteProduct(p.ID))

	_, err = catalog.GetProduct(p.ID)
	require.Error(t, err)
	assert.True(t, faults.Is(err, faults.NotFound))
}
