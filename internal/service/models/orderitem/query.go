package orderitem

// QueryOrderItemsModel is a filter for querying order items.
type QueryOrderItemsModel struct {
	OrderIds []int64
}
