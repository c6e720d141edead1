package dto

// ItemView is a catalog item with its ownership state resolved against the
// profile, ready for display.
type ItemView struct {
	ID       string
	ImageID  string
	Price    int
	Category string
	Owned    bool
	Selected bool
}

type PurchaseOutput struct {
	Item     ItemView
	Currency int
}
