package models

import "strings"

type StatusType string

const (
	StatusUnknown   StatusType = "unknown"
	StatusCurrent   StatusType = "current"
	StatusSold      StatusType = "sold"
	StatusLeased    StatusType = "leased"
	StatusWithdrawn StatusType = "withdrawn"
	StatusOffMarket StatusType = "offmarket"
)

var statusTable = map[string]StatusType{
	"current":    StatusCurrent,
	"sold":       StatusSold,
	"leased":     StatusLeased,
	"withdrawn":  StatusWithdrawn,
	"offmarket":  StatusOffMarket,
	"off market": StatusOffMarket,
}

// ParseStatusType maps raw REA status text to a StatusType.
// Unrecognized text maps to StatusUnknown.
func ParseStatusType(s string) StatusType {
	if v, ok := statusTable[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v
	}
	return StatusUnknown
}

type PropertyType string

const (
	PropertyUnknown   PropertyType = "unknown"
	PropertyHouse     PropertyType = "house"
	PropertyUnit      PropertyType = "unit"
	PropertyTownhouse PropertyType = "townhouse"
	PropertyVilla     PropertyType = "villa"
	PropertyApartment PropertyType = "apartment"
	PropertyStudio    PropertyType = "studio"
	PropertyDuplex    PropertyType = "duplex"
	PropertyLand      PropertyType = "land"
	PropertyRural     PropertyType = "rural"
	PropertyOther     PropertyType = "other"
)

var propertyTable = map[string]PropertyType{
	"house":              PropertyHouse,
	"home":               PropertyHouse,
	"unit":               PropertyUnit,
	"townhouse":          PropertyTownhouse,
	"terrace":            PropertyTownhouse,
	"villa":              PropertyVilla,
	"apartment":          PropertyApartment,
	"flat":               PropertyApartment,
	"studio":             PropertyStudio,
	"duplex":             PropertyDuplex,
	"semi-detached":      PropertyDuplex,
	"land":               PropertyLand,
	"vacant land":        PropertyLand,
	"rural":              PropertyRural,
	"acreage":            PropertyRural,
	"acreage/semi-rural": PropertyRural,
	"other":              PropertyOther,
}

// ParsePropertyType maps a raw REA category name to a PropertyType.
// Unrecognized text maps to PropertyUnknown.
func ParsePropertyType(s string) PropertyType {
	if v, ok := propertyTable[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v
	}
	return PropertyUnknown
}

// CategoryType is the coarse classification used to pick which listing
// variant a fragment becomes.
type CategoryType string

const (
	CategoryUnknown CategoryType = "unknown"
	CategorySale    CategoryType = "sale"
	CategoryRent    CategoryType = "rent"
	CategoryLand    CategoryType = "land"
	CategoryRural   CategoryType = "rural"
)

var categoryTable = map[string]CategoryType{
	"residential": CategorySale,
	"rental":      CategoryRent,
	"land":        CategoryLand,
	"rural":       CategoryRural,
}

// ParseCategoryType classifies a fragment by its element tag name.
func ParseCategoryType(tag string) CategoryType {
	if v, ok := categoryTable[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return v
	}
	return CategoryUnknown
}

type CommunicationType string

const (
	CommunicationEmail    CommunicationType = "email"
	CommunicationLandline CommunicationType = "landline"
)

type PaymentFrequencyType string

const (
	PaymentFrequencyUnknown PaymentFrequencyType = "unknown"
	PaymentFrequencyWeekly  PaymentFrequencyType = "weekly"
	PaymentFrequencyMonthly PaymentFrequencyType = "monthly"
)
