package item

// Item is the body accepted by the update route. It lives for one request.
type Item struct {
	Name    string
	Price   float64
	IsOffer *bool // nil when the client did not say
}

// --- UseCase Inputs ---

type ReadItemInput struct {
	ItemID int64
	Q      *string
}

type UpdateItemInput struct {
	ItemID int64
	Item   Item
}

// --- UseCase Outputs ---

type ReadItemOutput struct {
	ItemID int64
	Q      *string
}

type UpdateItemOutput struct {
	ItemName string
	ItemID   int64
}
