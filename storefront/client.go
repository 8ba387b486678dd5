package storefront

import (
	"github.com/sweetdelights/bakery/config"
	"github.com/sweetdelights/bakery/pkg/storage"
)

// Client bundles the cart, the local history and the checkout flow for one
// shopping session.
type Client struct {
	Cart     *Cart
	History  *History
	Checkout *Checkout
}

// NewClient builds a session wired to the configured API base URL, with the
// local history kept under the client state directory.
func NewClient() *Client {
	cart := NewCart()
	history := NewHistory(storage.NewLocalDisk(config.ClientStateDir()))
	return &Client{
		Cart:     cart,
		History:  history,
		Checkout: NewCheckout(cart, history, config.APIBaseURL()),
	}
}
