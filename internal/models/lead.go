package models

import (
	"time"
)

// Lead statuses used by the workflow
const (
	StatusHot  = "HOT"
	StatusWarm = "WARM"
	StatusCold = "COLD"
	StatusPass = "PASS"
)

// Lead is a tax-delinquent-property lead record. Optional numbers and dates
// are pointers so a missing value is distinguishable from zero.
type Lead struct {
	ID               string     `json:"id"`
	OwnerName        string     `json:"ownerName"`
	PropertyAddress  string     `json:"propertyAddress"`
	TaxID            string     `json:"taxId"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Status           string     `json:"status"`
	County           string     `json:"county"`
	CurrentArrears   *float64   `json:"currentArrears,omitempty"`
	TaxLawsuitNumber string     `json:"taxLawsuitNumber"`
	CreatedBy        string     `json:"createdBy"`
	SellerContact    string     `json:"sellerContact"`
	Tags             []string   `json:"tags,omitempty"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// Lead field keys as registered in the lead schema
const (
	FieldID               = "id"
	FieldOwnerName        = "ownerName"
	FieldPropertyAddress  = "propertyAddress"
	FieldTaxID            = "taxId"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldStatus           = "status"
	FieldCounty           = "county"
	FieldCurrentArrears   = "currentArrears"
	FieldTaxLawsuitNumber = "taxLawsuitNumber"
	FieldCreatedBy        = "createdBy"
	FieldSellerContact    = "sellerContact"
	FieldTags             = "tags"
	FieldCreatedAt        = "createdAt"
	FieldUpdatedAt        = "updatedAt"
)
