package booking

import "freightforge/internal/entities"

const (
	minQuantityTons = 1
	maxQuantityTons = 1000
)

func isValidGoodsType(t entities.GoodsType) bool {
	switch t {
	case entities.GoodsWheat, entities.GoodsCorn, entities.GoodsSoybean:
		return true
	default:
		return false
	}
}

func isValidQuantity(tons int) bool {
	return tons >= minQuantityTons && tons <= maxQuantityTons
}

func validate(request entities.BookingRequest) error {
	if !isValidGoodsType(request.GoodsType) {
		return ErrInvalidGoodsType
	}
	if !isValidQuantity(request.QuantityTons) {
		return ErrInvalidQuantity
	}
	return nil
}
