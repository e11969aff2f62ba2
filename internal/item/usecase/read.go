package usecase

import (
	"context"

	"item-api/internal/item"
)

// Read echoes the item ID and the optional query string back.
func (uc *implUseCase) Read(ctx context.Context, input item.ReadItemInput) (item.ReadItemOutput, error) {
	uc.l.Debugf(ctx, "uc.Read item_id=%d q_set=%t", input.ItemID, input.Q != nil)

	return item.ReadItemOutput{
		ItemID: input.ItemID,
		Q:      input.Q,
	}, nil
}
