package cart

import "errors"

var (
	ErrItemNotFound      = errors.New("item not in cart")
	ErrPriceMismatch     = errors.New("unit price differs from cart")
	ErrInvalidItem       = errors.New("invalid item")
	ErrInvalidPrice      = errors.New("invalid price")
	ErrMalformedCheckout = errors.New("malformed checkout link")
	ErrUnknownProduct    = errors.New("unknown product")
)
