package commands

import (
	"context"

	reqdto "festserve/internal/handler/dto/request"
	"festserve/internal/infra"
	"festserve/internal/pkg/errs"
	"festserve/internal/usecase/queries"
	"festserve/internal/usecase/shared"
)

var (
	ErrDuplicateStall     = errs.New("stall already exists for location and date")
	ErrInvalidStallDate   = errs.New("invalid stall date")
	ErrCatalogWriteFailed = errs.New("catalog write failed")
)

type CatalogCommands interface {
	CreateStall(ctx context.Context, req reqdto.CreateStallRequest) (*queries.StallView, error)
	CreateProduct(ctx context.Context, req reqdto.CreateProductRequest) (*queries.ProductView, error)
}

type catalogCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogCommands(uow shared.UnitOfWork) CatalogCommands {
	return &catalogCommandsImpl{uow: uow}
}

func (c *catalogCommandsImpl) CreateStall(ctx context.Context, req reqdto.CreateStallRequest) (*queries.StallView, error) {
	date, err := req.ParsedDate()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStallDate)
	}

	newStall := shared.NewStall{
		LocationName: req.LocationName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Date:         date,
	}

	var view *queries.StallView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Catalog().CreateStall(ctx, tx.DB(), newStall)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.Mark(createErr, ErrDuplicateStall)
			}
			return errs.Mark(createErr, ErrCatalogWriteFailed)
		}
		view = &queries.StallView{
			ID:           id,
			LocationName: newStall.LocationName,
			Latitude:     newStall.Latitude,
			Longitude:    newStall.Longitude,
			Date:         newStall.Date,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *catalogCommandsImpl) CreateProduct(ctx context.Context, req reqdto.CreateProductRequest) (*queries.ProductView, error) {
	newProduct := shared.NewProduct{
		Name:        req.Name,
		Description: req.Description,
	}

	var view *queries.ProductView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Catalog().CreateProduct(ctx, tx.DB(), newProduct)
		if createErr != nil {
			return errs.Mark(createErr, ErrCatalogWriteFailed)
		}
		view = &queries.ProductView{
			ID:          id,
			Name:        newProduct.Name,
			Description: newProduct.Description,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
