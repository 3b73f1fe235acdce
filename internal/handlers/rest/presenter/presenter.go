// Package presenter maps domain entities onto the generated API types.
package presenter

import (
	"freightforge/internal/entities"
	"freightforge/internal/generated/dto"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func Account(a entities.Account) dto.Account {
	return dto.Account{
		Username:      a.Username,
		BusinessName:  a.BusinessName,
		ContactPerson: a.ContactPerson,
		Email:         a.Email,
		Mobile:        a.Mobile,
		TaxId:         a.TaxID,
		BusinessType:  a.BusinessType.String(),
		Address:       a.Address,
		Role:          dto.AccountRole(a.Role),
		ApprovalState: dto.AccountApprovalState(a.ApprovalState),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func Accounts(accounts []entities.Account) dto.AccountList {
	out := make(dto.AccountList, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, Account(a))
	}
	return out
}

func Shipment(s entities.Shipment) dto.Shipment {
	return dto.Shipment{
		WaybillRef:      s.WaybillRef,
		Username:        s.Username,
		ShipperName:     s.ShipperName,
		GoodsType:       s.GoodsType.String(),
		QuantityTons:    s.QuantityTons,
		Origin:          s.Origin,
		Destination:     s.Destination,
		DispatchDate:    openapi_types.Date{Time: s.DispatchDate},
		TransportOption: s.TransportOption,
		DistanceKm:      s.DistanceKm,
		RatePerTonKm:    s.RatePerTonKm.String(),
		Charge:          s.Charge.StringFixed(2),
		Status:          dto.ShipmentStatus(s.Status),
		BookedAt:        s.BookedAt,
	}
}

func Waybill(w entities.Waybill) dto.Waybill {
	tracking := make([]dto.TrackingEvent, 0, len(w.Tracking))
	for _, event := range w.Tracking {
		tracking = append(tracking, dto.TrackingEvent{
			Status: event.Status.String(),
			At:     event.At,
		})
	}

	return dto.Waybill{
		Reference: w.Reference,
		Details:   Shipment(w.Details),
		Tracking:  tracking,
		Status:    w.Status.String(),
		Eta:       w.ETA,
	}
}

func Waybills(waybills []entities.Waybill) dto.WaybillList {
	out := make(dto.WaybillList, 0, len(waybills))
	for _, w := range waybills {
		out = append(out, Waybill(w))
	}
	return out
}

func Quote(q entities.FreightQuote) dto.FreightQuote {
	options := make([]dto.TransportOption, 0, len(q.Options))
	for _, option := range q.Options {
		options = append(options, dto.TransportOption{
			Code:        option.Code,
			Description: option.Description,
			DepartsAt:   option.DepartsAt,
		})
	}

	return dto.FreightQuote{
		GoodsType:        q.GoodsType.String(),
		QuantityTons:     q.QuantityTons,
		Origin:           q.Origin,
		Destination:      q.Destination,
		DistanceKm:       q.DistanceKm,
		RatePerTonKm:     q.RatePerTonKm.String(),
		Charge:           q.Charge.StringFixed(2),
		TransportOptions: options,
	}
}
