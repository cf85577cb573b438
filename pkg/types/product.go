package types

// Rating mirrors the remote catalog's rating record.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is the display-ready catalog record: price already converted to
// whole COP and category/title/description localized. Only the transform
// layer produces these from remote data; handlers fabricate them solely for
// the simulated admin write endpoints.
type Product struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Rating      Rating `json:"rating"`
}

// CartItem couples a product with the quantity in the cart. Quantity is
// always at least 1; dropping to zero removes the item instead.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
