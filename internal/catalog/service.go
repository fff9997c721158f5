package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/orderpadhq/pricing-engine/internal/pricing"
	"github.com/orderpadhq/pricing-engine/internal/units"
	"github.com/orderpadhq/pricing-engine/pkg/config"
	pkgerrors "github.com/orderpadhq/pricing-engine/pkg/errors"
	"github.com/orderpadhq/pricing-engine/pkg/logger"
	"github.com/orderpadhq/pricing-engine/pkg/money"
)

// Service exposes the two engine operations the product form triggers:
// the Calculate Prices action and the Save-time payload assembly.
type Service interface {
	CalculatePrices(ctx context.Context, input CalculateInput) (*CalculateResult, error)
	AssemblePayload(ctx context.Context, input AssembleInput) (*Payload, error)
}

type service struct {
	engineCfg config.EngineConfig
	logg      *logger.Logger
}

// NewService constructs the catalog engine service.
func NewService(engineCfg config.EngineConfig, logg *logger.Logger) (Service, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if engineCfg.DefaultChannelID <= 0 {
		return nil, fmt.Errorf("default channel id must be positive")
	}
	if strings.TrimSpace(engineCfg.DefaultChannelName) == "" {
		return nil, fmt.Errorf("default channel name required")
	}
	return &service{
		engineCfg: engineCfg,
		logg:      logg,
	}, nil
}

// CalculatePrices derives every unit's monetary fields from the bought-by
// reference unit and returns the refreshed form state. The caller's input
// is never mutated.
func (s *service) CalculatePrices(ctx context.Context, input CalculateInput) (*CalculateResult, error) {
	if !input.BoughtBy.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("unknown bought-by unit %q", input.BoughtBy))
	}

	levels := pricing.ToLevels(input.Units)
	records := pricing.RecordsFromForms(input.Units)

	distributed, err := pricing.Distribute(input.BoughtBy, levels, records)
	if err != nil {
		return nil, err
	}

	ctx = s.logg.WithUnit(ctx, input.BoughtBy.String())
	s.logg.Debug(ctx, "distributed unit prices from reference unit")

	return &CalculateResult{
		Units: pricing.ApplyRecords(input.Units, distributed),
	}, nil
}

// AssemblePayload validates the form state and composes the multi-channel
// submission. It either returns a complete payload or the first validation
// failure; caller state is never partially updated.
func (s *service) AssemblePayload(ctx context.Context, input AssembleInput) (*Payload, error) {
	if !input.SoldBy.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("unknown sold-by unit %q", input.SoldBy))
	}
	if !input.BoughtBy.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("unknown bought-by unit %q", input.BoughtBy))
	}

	if err := validateForAssembly(input); err != nil {
		return nil, err
	}

	unitPrices := pricing.BuildUnitPrices(input.Units)
	levels := pricing.ToLevels(input.Units)
	inBase := units.MultiplierToBase(input.SoldBy, levels)

	channels := input.Channels
	if len(channels) == 0 {
		// A payload is never channel-less; synthesize the primary channel
		// with zeroed quantities.
		channels = []ChannelForm{{
			ID:   s.engineCfg.DefaultChannelID,
			Name: s.engineCfg.DefaultChannelName,
		}}
	}

	channelInfo := make([]ChannelInfo, 0, len(channels))
	for _, channel := range channels {
		channelInfo = append(channelInfo, buildChannelInfo(channel, input, inBase, unitPrices))
	}

	ctx = s.logg.WithProductSKU(ctx, input.Attributes.SKU)
	s.logg.Info(ctx, fmt.Sprintf("assembled catalog payload with %d channel(s) and %d unit price(s)",
		len(channelInfo), len(unitPrices)))

	payload := &Payload{
		ProductID:      input.Attributes.ProductID,
		SKU:            input.Attributes.SKU,
		Name:           input.Attributes.Name,
		Description:    input.Attributes.Description,
		CategoryIDs:    append([]int64(nil), input.Attributes.CategoryIDs...),
		MainCategoryID: *input.Attributes.MainCategoryID,
		BrandID:        input.Attributes.BrandID,
		SupplierID:     input.Attributes.SupplierID,
		ManufacturerID: input.Attributes.ManufacturerID,
		IsActive:       input.Attributes.IsActive,
		IsFeatured:     input.Attributes.IsFeatured,
		IsMSACompliant: input.Attributes.IsMSACompliant,
		SEO:            input.Attributes.SEO,
		CurrencyCode:   s.engineCfg.CurrencyCode,
		UnitPrices:     unitPrices,
		ChannelInfo:    channelInfo,
	}
	if input.Attributes.IsMSACompliant {
		payload.MSA = input.Attributes.MSA
	}
	return payload, nil
}

// buildChannelInfo converts one channel's user-entered quantities from the
// sold-by unit into base-unit integers.
func buildChannelInfo(channel ChannelForm, input AssembleInput, inBase int64, unitPrices []pricing.UnitPrice) ChannelInfo {
	return ChannelInfo{
		ChannelID:    channel.ID,
		ChannelName:  channel.Name,
		InHand:       money.ParseQty(channel.AvailableQty) * inBase,
		OnHold:       money.ParseQty(channel.OnHoldQty) * inBase,
		Damaged:      money.ParseQty(channel.DamagedQty) * inBase,
		BackOrder:    optionalQty(channel.BackOrderQty, inBase),
		ComingSoon:   optionalQty(channel.ComingSoonQty, inBase),
		MinQty:       input.Attributes.MinOrderQty,
		MaxQty:       input.Attributes.MaxOrderQty,
		SoldByUnit:   input.SoldBy,
		BoughtByUnit: input.BoughtBy,
		UnitPrices:   unitPrices,
	}
}

// optionalQty converts a quantity that transmits zero as null, the explicit
// "unset" sentinel for back orders and coming-soon stock.
func optionalQty(raw string, inBase int64) *int64 {
	parsed := money.ParseQty(raw)
	if parsed == 0 {
		return nil
	}
	converted := parsed * inBase
	return &converted
}
