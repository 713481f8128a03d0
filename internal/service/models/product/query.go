package product

// QueryProductsModel is a filter for querying products.
type QueryProductsModel struct {
	Ids        []int64
	BrandID    int64
	Search     string
	OnlyActive bool
	Limit      int
	Offset     int
}
