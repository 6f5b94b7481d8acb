/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package cost estimates the monthly and setup cost of a stack type.
package cost

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/model"
	"github.com/sitestack/sitestack/internal/resolve"
)

// Infrastructure prices in US dollars per month. Business tuning values.
var (
	hostingMonthly   = Range{Min: decimal.NewFromInt(1), Max: decimal.NewFromInt(5)}
	cdnMonthly       = Range{Min: decimal.NewFromInt(1), Max: decimal.NewFromInt(20)}
	messagingMonthly = Range{Min: decimal.NewFromInt(3), Max: decimal.NewFromInt(15)}
	buildMinutePrice = decimal.RequireFromString("0.005")
	hundred          = decimal.NewFromInt(100)
)

// DefaultBuildsPerMonth is assumed when Assumptions.BuildsPerMonth is zero
const DefaultBuildsPerMonth = 60

// Line item names
const (
	ItemHosting         = "hosting"
	ItemCDN             = "cdn"
	ItemBuild           = "build"
	ItemMessaging       = "messaging"
	ItemTransactionFees = "transaction fees"
)

// Assumptions tune the estimate. The zero value means direct integration, no
// sales volume and the default build frequency.
type Assumptions struct {
	EventDriven        bool
	MonthlySalesVolume decimal.Decimal
	BuildsPerMonth     int
}

// Range is an inclusive cost range
type Range struct {
	Min decimal.Decimal `json:"min" yaml:"min"`
	Max decimal.Decimal `json:"max" yaml:"max"`
}

func fixed(amount decimal.Decimal) Range {
	return Range{Min: amount, Max: amount}
}

func fromCatalog(r catalog.CostRange) Range {
	return Range{Min: decimal.NewFromInt(int64(r.Min)), Max: decimal.NewFromInt(int64(r.Max))}
}

// Add returns the element-wise sum
func (r Range) Add(other Range) Range {
	return Range{Min: r.Min.Add(other.Min), Max: r.Max.Add(other.Max)}
}

// String renders the range in dollars, collapsing equal bounds
func (r Range) String() string {
	if r.Min.Equal(r.Max) {
		return "$" + r.Min.StringFixed(2)
	}
	return fmt.Sprintf("$%s - $%s", r.Min.StringFixed(2), r.Max.StringFixed(2))
}

// LineItem is one entry of a cost breakdown
type LineItem struct {
	Name    string `json:"name" yaml:"name"`
	Detail  string `json:"detail" yaml:"detail"`
	Monthly Range  `json:"monthly" yaml:"monthly"`
	Setup   Range  `json:"setup" yaml:"setup"`
}

// Breakdown is an itemised estimate with totals
type Breakdown struct {
	StackType    model.StackTypeID `json:"stack_type" yaml:"stack_type"`
	Engine       model.Engine      `json:"engine" yaml:"engine"`
	Items        []LineItem        `json:"items" yaml:"items"`
	MonthlyTotal Range             `json:"monthly_total" yaml:"monthly_total"`
	SetupTotal   Range             `json:"setup_total" yaml:"setup_total"`
}

// Estimate prices a stack type. An empty engine resolves the way the stack
// factory would; an unsupported engine fails with a CompatibilityError.
func Estimate(cat *catalog.Catalog, stackType model.StackTypeID, engine model.Engine, assumptions Assumptions) (*Breakdown, error) {
	st, err := cat.StackType(stackType)
	if err != nil {
		return nil, err
	}

	engine, providers, err := resolveStack(cat, st, engine)
	if err != nil {
		return nil, err
	}

	engineDescriptor, err := cat.Engine(engine)
	if err != nil {
		return nil, err
	}

	builds := assumptions.BuildsPerMonth
	if builds <= 0 {
		builds = DefaultBuildsPerMonth
	}
	buildMinutes := int64(max(engineDescriptor.BuildMinutes, 1) * builds)

	items := []LineItem{
		{Name: ItemHosting, Detail: "S3 storage and requests", Monthly: hostingMonthly},
		{Name: ItemCDN, Detail: "CloudFront delivery", Monthly: cdnMonthly},
		{
			Name:    ItemBuild,
			Detail:  fmt.Sprintf("%d %s build minutes", buildMinutes, engineDescriptor.Name),
			Monthly: fixed(buildMinutePrice.Mul(decimal.NewFromInt(buildMinutes))),
		},
	}
	if assumptions.EventDriven {
		items = append(items, LineItem{Name: ItemMessaging, Detail: "SNS, SQS and DynamoDB event pipeline", Monthly: messagingMonthly})
	}

	for _, p := range providers {
		items = append(items, LineItem{
			Name:    string(p.ID),
			Detail:  p.Name + " subscription",
			Monthly: fromCatalog(p.MonthlyCost),
			Setup:   fromCatalog(p.SetupCost),
		})
	}

	if assumptions.MonthlySalesVolume.IsPositive() {
		for _, p := range providers {
			if p.TransactionFeePercent <= 0 {
				continue
			}
			percent := decimal.NewFromFloat(p.TransactionFeePercent)
			fee := assumptions.MonthlySalesVolume.Mul(percent).Div(hundred).Round(2)
			items = append(items, LineItem{
				Name:    ItemTransactionFees,
				Detail:  fmt.Sprintf("%s%% of $%s %s sales", percent.String(), assumptions.MonthlySalesVolume.StringFixed(2), p.Name),
				Monthly: fixed(fee),
			})
		}
	}

	breakdown := &Breakdown{
		StackType:    st.ID,
		Engine:       engine,
		Items:        items,
		MonthlyTotal: fixed(decimal.Zero),
		SetupTotal:   fixed(decimal.Zero),
	}
	for _, item := range items {
		breakdown.MonthlyTotal = breakdown.MonthlyTotal.Add(item.Monthly)
		breakdown.SetupTotal = breakdown.SetupTotal.Add(item.Setup)
	}
	return breakdown, nil
}

// resolveStack returns the engine and the CMS and e-commerce providers of a stack type
func resolveStack(cat *catalog.Catalog, st catalog.StackType, engine model.Engine) (model.Engine, []catalog.ProviderDescriptor, error) {
	var providers []catalog.ProviderDescriptor
	for _, id := range []model.ProviderID{st.CMSProvider, st.EcommerceProvider} {
		if id == "" {
			continue
		}
		p, err := cat.Provider(id)
		if err != nil {
			return "", nil, err
		}
		providers = append(providers, p)
	}

	switch st.Category {
	case model.StackCategoryFoundation:
		return st.FixedEngine, providers, nil
	case model.StackCategoryComposed:
		resolved, err := resolve.Engine(cat, st.CMSProvider, st.EcommerceProvider, engine)
		return resolved, providers, err
	default:
		resolved, err := resolve.SupportedEngine(cat, providers[0], engine)
		return resolved, providers, err
	}
}
