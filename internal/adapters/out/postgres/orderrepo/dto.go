// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The aggregate's nested value objects (items, packing
// evidence, pack check, shipment record) are stored as JSONB documents on the
// order row, keeping one row per aggregate.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// status and package_code are indexed: every task list filters on status, and
// batch assembly resolves scans by package code.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageCode     string    `gorm:"index"`
	Platform        string
	PlatformOrderID string
	Notes           string
	DueDate         time.Time
	CreatedBy       uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
	LastUpdatedAt   time.Time
	Status          int              `gorm:"index"`
	Items           []ItemDTO        `gorm:"serializer:json;type:jsonb"`
	PackingInfo     *PackingInfoDTO  `gorm:"serializer:json;type:jsonb"`
	PackCheck       *PackCheckDTO    `gorm:"serializer:json;type:jsonb"`
	ShipmentInfo    *ShipmentInfoDTO `gorm:"serializer:json;type:jsonb"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one product line within the order document.
type ItemDTO struct {
	ID          string `json:"id"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
}

// PackingInfoDTO is the stored packing evidence.
type PackingInfoDTO struct {
	PackedBy          string    `json:"packedBy"`
	PackedAt          time.Time `json:"packedAt"`
	EvidencePhotoRefs []string  `json:"evidencePhotoRefs"`
	OperatorNotes     string    `json:"operatorNotes,omitempty"`
}

// PackCheckDTO is the stored supervisor verdict.
type PackCheckDTO struct {
	CheckedBy  string    `json:"checkedBy"`
	CheckedAt  time.Time `json:"checkedAt"`
	IsApproved bool      `json:"isApproved"`
	Notes      string    `json:"notes,omitempty"`
}

// ShipmentInfoDTO is the stored shipment record.
type ShipmentInfoDTO struct {
	BatchID         string     `json:"batchId"`
	ShippedAt       time.Time  `json:"shippedAt"`
	AdminVerifiedBy *string    `json:"adminVerifiedBy,omitempty"`
	AdminVerifiedAt *time.Time `json:"adminVerifiedAt,omitempty"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for itemID, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          itemID.String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Unit:        item.Unit(),
		})
	}

	var packingInfo *PackingInfoDTO
	if info := aggregate.PackingInfo(); info != nil {
		packingInfo = &PackingInfoDTO{
			PackedBy:          info.PackedBy().String(),
			PackedAt:          info.PackedAt(),
			EvidencePhotoRefs: info.EvidencePhotoRefs(),
			OperatorNotes:     info.OperatorNotes(),
		}
	}

	var packCheck *PackCheckDTO
	if check := aggregate.PackCheck(); check != nil {
		packCheck = &PackCheckDTO{
			CheckedBy:  check.CheckedBy().String(),
			CheckedAt:  check.CheckedAt(),
			IsApproved: check.IsApproved(),
			Notes:      check.Notes(),
		}
	}

	var shipmentInfo *ShipmentInfoDTO
	if info := aggregate.ShipmentInfo(); info != nil {
		shipmentInfo = &ShipmentInfoDTO{
			BatchID:   info.BatchID().String(),
			ShippedAt: info.ShippedAt(),
		}
		if verifiedBy := info.AdminVerifiedBy(); verifiedBy != nil {
			raw := verifiedBy.String()
			shipmentInfo.AdminVerifiedBy = &raw
			shipmentInfo.AdminVerifiedAt = info.AdminVerifiedAt()
		}
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		PackageCode:     aggregate.PackageCode(),
		Platform:        aggregate.Platform(),
		PlatformOrderID: aggregate.PlatformOrderID(),
		Notes:           aggregate.Notes(),
		DueDate:         aggregate.DueDate(),
		CreatedBy:       aggregate.CreatedBy().Bytes(),
		CreatedAt:       aggregate.CreatedAt(),
		LastUpdatedAt:   aggregate.LastUpdatedAt(),
		Status:          int(aggregate.Status()),
		Items:           items,
		PackingInfo:     packingInfo,
		PackCheck:       packCheck,
		ShipmentInfo:    shipmentInfo,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	items := make(map[kernel.UUID]order.Item, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromString(itemDTO.ID)
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewItem(itemDTO.ProductName, itemDTO.Quantity, itemDTO.Unit)
		if itemErr != nil {
			return nil, itemErr
		}
		items[itemID] = item
	}

	var packingInfo *order.PackingInfo
	if dto.PackingInfo != nil {
		packedBy, infoErr := kernel.UUIDFromString(dto.PackingInfo.PackedBy)
		if infoErr != nil {
			return nil, infoErr
		}
		info, infoErr := order.NewPackingInfo(
			packedBy, dto.PackingInfo.PackedAt, dto.PackingInfo.EvidencePhotoRefs, dto.PackingInfo.OperatorNotes)
		if infoErr != nil {
			return nil, infoErr
		}
		packingInfo = &info
	}

	var packCheck *order.PackCheck
	if dto.PackCheck != nil {
		checkedBy, checkErr := kernel.UUIDFromString(dto.PackCheck.CheckedBy)
		if checkErr != nil {
			return nil, checkErr
		}
		check, checkErr := order.NewPackCheck(
			checkedBy, dto.PackCheck.CheckedAt, dto.PackCheck.IsApproved, dto.PackCheck.Notes)
		if checkErr != nil {
			return nil, checkErr
		}
		packCheck = &check
	}

	var shipmentInfo *order.ShipmentInfo
	if dto.ShipmentInfo != nil {
		batchID, infoErr := kernel.UUIDFromString(dto.ShipmentInfo.BatchID)
		if infoErr != nil {
			return nil, infoErr
		}

		var verifiedBy *kernel.UUID
		if dto.ShipmentInfo.AdminVerifiedBy != nil {
			vb, vbErr := kernel.UUIDFromString(*dto.ShipmentInfo.AdminVerifiedBy)
			if vbErr != nil {
				return nil, vbErr
			}
			verifiedBy = &vb
		}

		info, infoErr := order.RestoreShipmentInfo(
			batchID, dto.ShipmentInfo.ShippedAt, verifiedBy, dto.ShipmentInfo.AdminVerifiedAt)
		if infoErr != nil {
			return nil, infoErr
		}
		shipmentInfo = &info
	}

	return order.RestoreOrder(
		id,
		dto.PackageCode,
		dto.Platform,
		dto.PlatformOrderID,
		dto.Notes,
		dto.DueDate,
		createdBy,
		dto.CreatedAt,
		dto.LastUpdatedAt,
		items,
		order.Status(dto.Status),
		packingInfo,
		packCheck,
		shipmentInfo,
	)
}
