package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Read(ctx context.Context, input ReadItemInput) (ReadItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
}
