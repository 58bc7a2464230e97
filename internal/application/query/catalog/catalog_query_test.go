// internal/application/query/catalog/catalog_query_test.go
package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdom "coutellerie/internal/domain/catalog"
)

var (
	catCouteaux = &catalogdom.Category{ID: 1, Name: "Couteaux", Slug: "couteaux"}
	catArts     = &catalogdom.Category{ID: 2, Name: "Arts de la table", Slug: "arts-de-la-table"}

	subPliants = &catalogdom.SubCategory{ID: 10, Name: "Couteaux pliants", Slug: "pliants"}
	subChasse  = &catalogdom.SubCategory{ID: 11, Name: "Couteaux de chasse", Slug: "chasse"}

	brandX = &catalogdom.Brand{ID: 100, Name: "Forge X", Slug: "forge-x"}
	brandY = &catalogdom.Brand{ID: 101, Name: "Atelier Y", Slug: "atelier-y"}
)

func product(id int, name string, price float64, opts ...func(*catalogdom.Product)) catalogdom.Product {
	p := catalogdom.Product{ID: id, DocumentID: fmt.Sprintf("doc-%d", id), Name: name, Price: price}
	for _, o := range opts {
		o(&p)
	}
	return p
}

func inCategory(c *catalogdom.Category) func(*catalogdom.Product) {
	return func(p *catalogdom.Product) { p.Category = c }
}

func inSubCategory(sc *catalogdom.SubCategory) func(*catalogdom.Product) {
	return func(p *catalogdom.Product) { p.SubCategory = sc }
}

func ofBrand(b *catalogdom.Brand) func(*catalogdom.Product) {
	return func(p *catalogdom.Product) { p.Brand = b }
}

func TestSearchIsConjunctive(t *testing.T) {
	products := []catalogdom.Product{
		product(1, "Couteau de chasse en acier damas", 120),
		product(2, "Couteau en bois", 45),
		product(3, "Planche en acier", 30),
	}

	q := NewCatalogQuery()
	sel := NewSelection()
	sel.SetSearch("couteau acier")

	res := q.Apply(products, sel)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "Couteau de chasse en acier damas", res.Products[0].Name)
}

func TestSearchCoversTaxonomyAndDescription(t *testing.T) {
	damas := product(1, "Le Damas", 200, inCategory(catCouteaux), ofBrand(brandX))
	damas.Description = catalogdom.RichText{Blocks: []catalogdom.RichTextBlock{
		{Type: "paragraph", Children: []catalogdom.RichTextChild{{Type: "text", Text: "Lame forgée en acier carbone."}}},
	}}
	products := []catalogdom.Product{damas, product(2, "Autre", 10)}

	q := NewCatalogQuery()
	sel := NewSelection()

	// keyword living only in the description
	sel.SetSearch("carbone")
	assert.Len(t, q.Apply(products, sel).Products, 1)

	// keyword living only in the brand name
	sel.SetSearch("forge")
	assert.Len(t, q.Apply(products, sel).Products, 1)

	// case-insensitive
	sel.SetSearch("DAMAS")
	assert.Len(t, q.Apply(products, sel).Products, 1)
}

func TestTaxonomyFilters(t *testing.T) {
	products := []catalogdom.Product{
		product(1, "Pliant X", 50, inCategory(catCouteaux), inSubCategory(subPliants), ofBrand(brandX)),
		product(2, "Chasse Y", 80, inCategory(catCouteaux), inSubCategory(subChasse), ofBrand(brandY)),
		product(3, "Assiette", 20, inCategory(catArts)),
	}
	q := NewCatalogQuery()

	sel := NewSelection()
	sel.SetCategory("couteaux")
	assert.Equal(t, 2, q.Apply(products, sel).TotalMatches)

	sel.SetSubCategory("pliants")
	res := q.Apply(products, sel)
	require.Equal(t, 1, res.TotalMatches)
	assert.Equal(t, "Pliant X", res.Products[0].Name)

	sel = NewSelection()
	sel.SetCategory("couteaux")
	sel.ToggleBrand("atelier-y")
	res = q.Apply(products, sel)
	require.Equal(t, 1, res.TotalMatches)
	assert.Equal(t, "Chasse Y", res.Products[0].Name)
}

func TestFlagFiltersAreANDCombined(t *testing.T) {
	promo := product(1, "Promo", 10)
	promo.IsPromo = true
	both := product(2, "Promo limitée", 20)
	both.IsPromo = true
	both.LimitedEdition = true
	plain := product(3, "Classique", 30)

	products := []catalogdom.Product{promo, both, plain}
	q := NewCatalogQuery()

	sel := NewSelection()
	sel.SetFlags(Flags{PromoOnly: true})
	assert.Equal(t, 2, q.Apply(products, sel).TotalMatches)

	sel.SetFlags(Flags{PromoOnly: true, LimitedEditionOnly: true})
	res := q.Apply(products, sel)
	require.Equal(t, 1, res.TotalMatches)
	assert.Equal(t, "Promo limitée", res.Products[0].Name)
}

func TestSortByPrice(t *testing.T) {
	products := []catalogdom.Product{
		product(1, "A", 19.90),
		product(2, "B", 5.00),
		product(3, "C", 42.00),
	}
	q := NewCatalogQuery()

	sel := NewSelection()
	sel.SetSort(SortPriceAsc)
	res := q.Apply(products, sel)
	prices := []float64{res.Products[0].Price, res.Products[1].Price, res.Products[2].Price}
	assert.Equal(t, []float64{5.00, 19.90, 42.00}, prices)

	sel.SetSort(SortPriceDesc)
	res = q.Apply(products, sel)
	prices = []float64{res.Products[0].Price, res.Products[1].Price, res.Products[2].Price}
	assert.Equal(t, []float64{42.00, 19.90, 5.00}, prices)
}

func TestSortByNameUsesFrenchCollation(t *testing.T) {
	products := []catalogdom.Product{
		product(1, "étage", 1),
		product(2, "eau", 1),
		product(3, "école", 1),
	}
	q := NewCatalogQuery()

	sel := NewSelection()
	res := q.Apply(products, sel)
	names := []string{res.Products[0].Name, res.Products[1].Name, res.Products[2].Name}
	assert.Equal(t, []string{"eau", "école", "étage"}, names)

	sel.SetSort(SortNameDesc)
	res = q.Apply(products, sel)
	names = []string{res.Products[0].Name, res.Products[1].Name, res.Products[2].Name}
	assert.Equal(t, []string{"étage", "école", "eau"}, names)
}

func TestPagination(t *testing.T) {
	products := make([]catalogdom.Product, 0, 60)
	for i := 1; i <= 60; i++ {
		products = append(products, product(i, fmt.Sprintf("Produit %03d", i), float64(i)))
	}
	q := NewCatalogQuery()

	sel := NewSelection()
	res := q.Apply(products, sel)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 60, res.TotalMatches)
	assert.Len(t, res.Products, PageSize)

	sel.SetPage(3)
	res = q.Apply(products, sel)
	require.Len(t, res.Products, 10)
	assert.Equal(t, "Produit 051", res.Products[0].Name)
	assert.Equal(t, "Produit 060", res.Products[9].Name)

	// out-of-range pages clamp instead of erroring
	sel.SetPage(99)
	res = q.Apply(products, sel)
	assert.Equal(t, 3, res.Page)
	assert.Len(t, res.Products, 10)
}

func TestUpstreamChangeResetsPage(t *testing.T) {
	sel := NewSelection()
	sel.SetPage(3)
	sel.SetCategory("couteaux")
	assert.Equal(t, 1, sel.Page)

	sel.SetPage(2)
	sel.SetSearch("damas")
	assert.Equal(t, 1, sel.Page)

	sel.SetPage(2)
	sel.SetSort(SortPriceAsc)
	assert.Equal(t, 1, sel.Page)
}

func TestEmptyResultStillHasOnePage(t *testing.T) {
	q := NewCatalogQuery()
	sel := NewSelection()
	sel.SetSearch("introuvable")

	res := q.Apply([]catalogdom.Product{product(1, "Couteau", 10)}, sel)
	assert.Equal(t, 0, res.TotalMatches)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 1, res.TotalPages)
	assert.Empty(t, res.Products)
}

func TestAvailableSubCategoriesIgnoreLowerFilters(t *testing.T) {
	products := []catalogdom.Product{
		product(1, "Pliant", 50, inCategory(catCouteaux), inSubCategory(subPliants), ofBrand(brandX)),
		product(2, "Chasse", 80, inCategory(catCouteaux), inSubCategory(subChasse), ofBrand(brandY)),
		product(3, "Assiette", 20, inCategory(catArts)),
	}
	q := NewCatalogQuery()

	sel := NewSelection()
	sel.SetCategory("couteaux")
	sel.SetSubCategory("pliants")
	sel.ToggleBrand("forge-x")
	sel.SetSearch("pliant")

	// both sub-categories of "couteaux" stay visible even though the
	// sub-category/brand/search filters would hide the chasse product
	subs := q.AvailableSubCategories(products, sel)
	require.Len(t, subs, 2)
	assert.Equal(t, "Couteaux de chasse", subs[0].Name)
	assert.Equal(t, "Couteaux pliants", subs[1].Name)
}

func TestAvailableBrands(t *testing.T) {
	products := []catalogdom.Product{
		product(1, "P1", 10, inCategory(catCouteaux), ofBrand(brandX)),
		product(2, "P2", 20, inCategory(catArts), ofBrand(brandY)),
	}
	q := NewCatalogQuery()

	// no category context → no brand options
	sel := NewSelection()
	assert.Empty(t, q.AvailableBrands(products, sel))

	// category A → only brands of category A
	sel.SetCategory("couteaux")
	brands := q.AvailableBrands(products, sel)
	require.Len(t, brands, 1)
	assert.Equal(t, "forge-x", brands[0].Slug)
}

func TestAvailableBrandsNarrowBySubCategory(t *testing.T) {
	products := []catalogdom.Product{
		product(1, "Pliant X", 50, inCategory(catCouteaux), inSubCategory(subPliants), ofBrand(brandX)),
		product(2, "Chasse Y", 80, inCategory(catCouteaux), inSubCategory(subChasse), ofBrand(brandY)),
	}
	q := NewCatalogQuery()

	sel := NewSelection()
	sel.SetCategory("couteaux")
	require.Len(t, q.AvailableBrands(products, sel), 2)

	sel.SetSubCategory("chasse")
	brands := q.AvailableBrands(products, sel)
	require.Len(t, brands, 1)
	assert.Equal(t, "atelier-y", brands[0].Slug)
}
