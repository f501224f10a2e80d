package api

// PurchaseResponse reports the outcome of a purchase attempt. A repeat
// purchase is not an error: AlreadyPurchased is set and the ledger is
// returned unchanged.
// swagger:model api.PurchaseResponse
type PurchaseResponse struct {
	AlreadyPurchased bool             `json:"already_purchased" example:"false"`
	PurchasedCourses []CourseResponse `json:"purchased_courses"`
}
