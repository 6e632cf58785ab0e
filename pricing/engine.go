// Package pricing computes the sale price and full cost/profit breakdown
// of a project. The whole package is a pure function over snapshots of the
// material catalog, the platform catalog and the company settings: it does
// no I/O, keeps no state between calls and never fails — incomplete or
// inconsistent input (a quote still being edited, a stale material id, a
// zero denominator) degrades to safe defaults instead of erroring, because
// the quote editor recalculates on every keystroke.
package pricing

import (
	"atelie-gestor/models"
	"atelie-gestor/utils"
)

// Engine holds the immutable snapshots a breakdown is computed against.
// It is safe for concurrent use; Breakdown never mutates the engine or
// its inputs.
type Engine struct {
	materials map[string]models.Material
	platforms map[string]models.Platform
	company   models.CompanyData
}

// NewEngine builds an engine from catalog and settings snapshots.
// Materials and platforms are indexed by id; duplicate ids keep the last
// entry, matching the behavior of the collection they were loaded from.
func NewEngine(materials []models.Material, platforms []models.Platform, company models.CompanyData) *Engine {
	e := &Engine{
		materials: make(map[string]models.Material, len(materials)),
		platforms: make(map[string]models.Platform, len(platforms)),
		company:   company,
	}
	for _, m := range materials {
		e.materials[m.ID] = m
	}
	for _, p := range platforms {
		e.platforms[p.ID] = p
	}
	return e
}

// Breakdown computes the full pricing breakdown for a project. The ledger
// is optional; when present it is scanned for payments already tied to the
// project (see reconcile.go). A nil project yields the zero breakdown.
func (e *Engine) Breakdown(project *models.Project, ledger []models.Transaction) *models.PricingBreakdown {
	if project == nil {
		project = &models.Project{}
	}

	var totalVariable, totalLabor, totalFixed float64
	var basePieceValue float64

	for _, item := range project.Items {
		costs := e.itemCosts(item)
		totalVariable += costs.Variable
		totalLabor += costs.Labor
		totalFixed += costs.Fixed

		// Manual price path: the quoted price is whatever was typed in,
		// and the implied profit is resolved top-down below.
		if item.UnitPrice > 0 {
			basePieceValue += item.UnitPrice * float64(item.Quantity)
			continue
		}

		// Cost-plus path.
		baseCost := costs.Variable + costs.Labor
		if item.ManualBaseCost > 0 {
			baseCost = item.ManualBaseCost
		}
		itemSubtotal := baseCost + costs.Fixed
		itemProfit := itemSubtotal * item.ProfitMargin / 100
		basePieceValue += itemSubtotal + itemProfit
	}

	// The excedente is a safety margin applied once over the whole quote's
	// summed internal cost, unlike the per-item profit margin.
	subtotalCosts := totalVariable + totalLabor + totalFixed
	excedenteAmount := subtotalCosts * project.Excedente / 100
	totalInternalCosts := subtotalCosts + excedenteAmount

	// Profit is recomputed top-down as the residual between what will be
	// charged and the total internal cost, so manually priced items are
	// accounted for and underpricing is absorbed by the excedente instead
	// of being reported as negative profit.
	profit := basePieceValue - totalInternalCosts
	if profit < 0 {
		profit = 0
	}

	totalDiscount := basePieceValue*project.DiscountPercentage/100 + project.DiscountAmount
	valueAfterDiscount := basePieceValue - totalDiscount
	if valueAfterDiscount < 0 {
		valueAfterDiscount = 0
	}

	// The platform fee is charged on the gross price the customer pays,
	// so the gross is solved for: gross = net / (1 - rate). A rate at or
	// above 100% would make the price infinite or negative, so it is
	// treated as a configuration error and skipped.
	priceWithFees := valueAfterDiscount
	var platformFees float64
	if platform, ok := e.platforms[project.PlatformID]; ok {
		feeRate := platform.FeePercentage / 100
		if feeRate > 0 && feeRate < 1 {
			priceWithFees = valueAfterDiscount / (1 - feeRate)
			platformFees = priceWithFees - valueAfterDiscount
		}
	}

	finalPrice := utils.CeilToCents(priceWithFees + project.Shipping)

	totalPaid := e.resolvePaid(project, ledger)
	remaining := finalPrice - totalPaid
	if remaining < 0 {
		remaining = 0
	}
	remaining = utils.CeilToCents(remaining)

	return &models.PricingBreakdown{
		VariableCosts:    totalVariable,
		LaborCosts:       totalLabor,
		FixedCosts:       totalFixed,
		Excedente:        excedenteAmount,
		Profit:           profit,
		PlatformFees:     platformFees,
		Shipping:         project.Shipping,
		TotalDiscount:    totalDiscount,
		BasePieceValue:   basePieceValue,
		DownPayment:      totalPaid,
		RemainingBalance: remaining,
		FinalPrice:       finalPrice,
	}
}
