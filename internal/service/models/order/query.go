package order

// QueryOrdersModel is a filter for querying orders.
type QueryOrdersModel struct {
	Ids         []int64
	CustomerIds []int64
	Limit       int
	Offset      int
}
