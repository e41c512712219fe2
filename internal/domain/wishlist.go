package domain

// Wishlist is an ordered set of saved product IDs. Insertion order is
// preserved so the page renders items in the order they were saved.
type Wishlist struct {
	ProductIDs []string `json:"product_ids"`
}

// Contains reports whether the product is on the wishlist.
func (w *Wishlist) Contains(productID string) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// Add appends the product if not already present and reports whether it
// was added.
func (w *Wishlist) Add(productID string) bool {
	if w.Contains(productID) {
		return false
	}
	w.ProductIDs = append(w.ProductIDs, productID)
	return true
}

// Remove deletes the product from the wishlist and reports whether it
// was present.
func (w *Wishlist) Remove(productID string) bool {
	for i, id := range w.ProductIDs {
		if id == productID {
			w.ProductIDs = append(w.ProductIDs[:i], w.ProductIDs[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle adds the product when absent and removes it when present,
// returning true when the product ends up on the wishlist.
func (w *Wishlist) Toggle(productID string) bool {
	if w.Remove(productID) {
		return false
	}
	w.ProductIDs = append(w.ProductIDs, productID)
	return true
}
