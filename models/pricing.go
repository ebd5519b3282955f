package models

import "time"

// SalePricing is the pricing block of a residential (and rural) listing.
type SalePricing struct {
	SalePrice     Tracked[float64] `json:"salePrice"`
	SalePriceText Tracked[string]  `json:"salePriceText"`
	IsUnderOffer  Tracked[bool]    `json:"isUnderOffer"`
}

func (p *SalePricing) IsModified() bool {
	return p.SalePrice.IsModified() ||
		p.SalePriceText.IsModified() ||
		p.IsUnderOffer.IsModified()
}

func (p *SalePricing) MergeFrom(src *SalePricing) {
	p.SalePrice.MergeFrom(src.SalePrice)
	p.SalePriceText.MergeFrom(src.SalePriceText)
	p.IsUnderOffer.MergeFrom(src.IsUnderOffer)
}

func (p *SalePricing) ClearAllModified() {
	p.SalePrice.ClearModified()
	p.SalePriceText.ClearModified()
	p.IsUnderOffer.ClearModified()
}

// RentalPricing is the pricing block of a rental listing. RentalPrice is
// always the weekly cadence.
type RentalPricing struct {
	RentalPrice          Tracked[float64]              `json:"rentalPrice"`
	RentalPriceText      Tracked[string]               `json:"rentalPriceText"`
	Bond                 Tracked[float64]              `json:"bond"`
	AvailableOn          Tracked[time.Time]            `json:"availableOn"`
	PaymentFrequencyType Tracked[PaymentFrequencyType] `json:"paymentFrequencyType"`
}

func (p *RentalPricing) IsModified() bool {
	return p.RentalPrice.IsModified() ||
		p.RentalPriceText.IsModified() ||
		p.Bond.IsModified() ||
		p.AvailableOn.IsModified() ||
		p.PaymentFrequencyType.IsModified()
}

func (p *RentalPricing) MergeFrom(src *RentalPricing) {
	p.RentalPrice.MergeFrom(src.RentalPrice)
	p.RentalPriceText.MergeFrom(src.RentalPriceText)
	p.Bond.MergeFrom(src.Bond)
	p.AvailableOn.MergeFrom(src.AvailableOn)
	p.PaymentFrequencyType.MergeFrom(src.PaymentFrequencyType)
}

func (p *RentalPricing) ClearAllModified() {
	p.RentalPrice.ClearModified()
	p.RentalPriceText.ClearModified()
	p.Bond.ClearModified()
	p.AvailableOn.ClearModified()
	p.PaymentFrequencyType.ClearModified()
}
