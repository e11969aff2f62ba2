package usecase

import (
	"context"
	"math"

	"item-api/internal/item"
)

// Update accepts a validated Item for the given ID and reports its name back.
// Nothing is stored.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	if math.IsNaN(input.Item.Price) || math.IsInf(input.Item.Price, 0) {
		return item.UpdateItemOutput{}, item.ErrInvalidPrice
	}

	uc.l.Debugf(ctx, "uc.Update item_id=%d name=%q price=%v is_offer_set=%t",
		input.ItemID, input.Item.Name, input.Item.Price, input.Item.IsOffer != nil)

	return item.UpdateItemOutput{
		ItemName: input.Item.Name,
		ItemID:   input.ItemID,
	}, nil
}
