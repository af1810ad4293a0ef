package models

// Transfer is one step of a settlement plan: FromUserID pays ToUserID.
type Transfer struct {
	// FromUserID is the debtor (positive balance).
	FromUserID string

	// ToUserID is the creditor (negative balance).
	ToUserID string

	// Amount is always positive, in minor units.
	Amount int64
}
