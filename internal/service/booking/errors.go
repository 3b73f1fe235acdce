package booking

import "errors"

var (
	ErrInvalidGoodsType = errors.New("invalid goods type")
	ErrInvalidQuantity  = errors.New("quantity must be between 1 and 1000 tons")
)
