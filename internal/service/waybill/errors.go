package waybill

import "errors"

var (
	ErrInvalidReference  = errors.New("invalid waybill reference")
	ErrWaybillNotFound   = errors.New("waybill not found")
	ErrAlreadyDelivered  = errors.New("waybill already delivered")
	ErrReferenceConflict = errors.New("waybill reference already exists")
)
