package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/repair-workshop/internal/model"
)

type partRequestDTO struct {
	PartID   string `json:"part_id" validate:"required,uuid"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

type createRepairRequest struct {
	CustomerName  string           `json:"customer_name" validate:"required,max=200"`
	CustomerPhone string           `json:"customer_phone" validate:"max=32"`
	BrandID       string           `json:"brand_id" validate:"required,uuid"`
	ModelID       string           `json:"model_id" validate:"required,uuid"`
	IssueType     string           `json:"issue_type" validate:"max=100"`
	Description   string           `json:"description" validate:"max=2000"`
	LaborCost     decimal.Decimal  `json:"labor_cost"`
	Parts         []partRequestDTO `json:"parts" validate:"dive"`
}

func (req createRepairRequest) toParams() model.CreateRepairParams {
	return model.CreateRepairParams{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		BrandID:       uuid.MustParse(req.BrandID),
		ModelID:       uuid.MustParse(req.ModelID),
		IssueType:     req.IssueType,
		Description:   req.Description,
		LaborCost:     req.LaborCost,
		Parts: lo.Map(req.Parts, func(p partRequestDTO, _ int) model.PartRequest {
			return model.PartRequest{PartID: uuid.MustParse(p.PartID), Quantity: p.Quantity}
		}),
	}
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type partUsageResponse struct {
	ID                  uuid.UUID       `json:"id"`
	PartID              uuid.UUID       `json:"part_id"`
	PartName            string          `json:"part_name"`
	Quantity            int64           `json:"quantity"`
	PriceAtTime         decimal.Decimal `json:"price_at_time"`
	PurchasePriceAtTime decimal.Decimal `json:"purchase_price_at_time"`
}

type repairResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	BrandID       uuid.UUID           `json:"brand_id"`
	BrandName     string              `json:"brand_name,omitempty"`
	ModelID       uuid.UUID           `json:"model_id"`
	ModelName     string              `json:"model_name,omitempty"`
	IssueType     string              `json:"issue_type"`
	Description   string              `json:"description"`
	Status        model.RepairStatus  `json:"status"`
	LaborCost     decimal.Decimal     `json:"labor_cost"`
	PartsCost     decimal.Decimal     `json:"parts_cost"`
	TotalCost     decimal.Decimal     `json:"total_cost"`
	Profit        decimal.Decimal     `json:"profit"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	CompletedAt   *time.Time          `json:"completed_at,omitempty"`
	Parts         []partUsageResponse `json:"parts"`
}

func repairToResponse(r *model.Repair) repairResponse {
	return repairResponse{
		ID:            r.ID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		BrandID:       r.BrandID,
		BrandName:     r.BrandName,
		ModelID:       r.ModelID,
		ModelName:     r.ModelName,
		IssueType:     r.IssueType,
		Description:   r.Description,
		Status:        r.Status,
		LaborCost:     r.LaborCost,
		PartsCost:     r.PartsCost,
		TotalCost:     r.TotalCost,
		Profit:        r.Profit,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		CompletedAt:   r.CompletedAt,
		Parts: lo.Map(r.Parts, func(u model.PartUsage, _ int) partUsageResponse {
			return partUsageResponse{
				ID:                  u.ID,
				PartID:              u.PartID,
				PartName:            u.PartName,
				Quantity:            u.Quantity,
				PriceAtTime:         u.PriceAtTime,
				PurchasePriceAtTime: u.PurchasePriceAtTime,
			}
		}),
	}
}

type summaryResponse struct {
	Total    int64                        `json:"total"`
	ByStatus map[model.RepairStatus]int64 `json:"by_status"`
	Open     int64                        `json:"open"`
	Revenue  decimal.Decimal              `json:"revenue"`
	Profit   decimal.Decimal              `json:"profit"`
	Labor    decimal.Decimal              `json:"labor"`
}

type stockChangeResponse struct {
	PartID   uuid.UUID `json:"part_id"`
	Quantity int64     `json:"quantity"`
	Previous int64     `json:"previous"`
	Current  int64     `json:"current"`
}

func stockChangeToResponse(c model.StockChange) stockChangeResponse {
	return stockChangeResponse{PartID: c.PartID, Quantity: c.Quantity, Previous: c.Previous, Current: c.Current}
}

type deleteWarningResponse struct {
	PartID   uuid.UUID `json:"part_id"`
	Quantity int64     `json:"quantity"`
	Reason   string    `json:"reason"`
}

type deleteRepairResponse struct {
	RepairID  uuid.UUID               `json:"repair_id"`
	Restocked []stockChangeResponse   `json:"restocked"`
	Warnings  []deleteWarningResponse `json:"warnings"`
}

func deleteResultToResponse(res *model.DeleteRepairResult) deleteRepairResponse {
	return deleteRepairResponse{
		RepairID:  res.RepairID,
		Restocked: lo.Map(res.Restocked, func(c model.StockChange, _ int) stockChangeResponse { return stockChangeToResponse(c) }),
		Warnings: lo.Map(res.Warnings, func(w model.DeleteWarning, _ int) deleteWarningResponse {
			return deleteWarningResponse{PartID: w.PartID, Quantity: w.Quantity, Reason: w.Reason}
		}),
	}
}

type createPartRequest struct {
	Name              string          `json:"name" validate:"required,max=200"`
	Category          string          `json:"category" validate:"max=100"`
	ScreenQuality     string          `json:"screen_quality" validate:"max=100"`
	BrandID           string          `json:"brand_id" validate:"required,uuid"`
	ModelID           string          `json:"model_id" validate:"required,uuid"`
	Quantity          int64           `json:"quantity" validate:"gte=0"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	LowStockThreshold *int64          `json:"low_stock_threshold" validate:"omitempty,gte=0"`
}

func (req createPartRequest) toParams() model.CreatePartParams {
	return model.CreatePartParams{
		Name:              req.Name,
		Category:          req.Category,
		ScreenQuality:     req.ScreenQuality,
		BrandID:           uuid.MustParse(req.BrandID),
		ModelID:           uuid.MustParse(req.ModelID),
		Quantity:          req.Quantity,
		PurchasePrice:     req.PurchasePrice,
		SellingPrice:      req.SellingPrice,
		LowStockThreshold: req.LowStockThreshold,
	}
}

type receivePartRequest struct {
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
	Note     string `json:"note" validate:"max=500"`
}

type partResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	ScreenQuality     string          `json:"screen_quality"`
	BrandID           uuid.UUID       `json:"brand_id"`
	ModelID           uuid.UUID       `json:"model_id"`
	Quantity          int64           `json:"quantity"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	LowStock          bool            `json:"low_stock"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func partToResponse(p *model.SparePart) partResponse {
	return partResponse{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		ScreenQuality:     p.ScreenQuality,
		BrandID:           p.BrandID,
		ModelID:           p.ModelID,
		Quantity:          p.Quantity,
		PurchasePrice:     p.PurchasePrice,
		SellingPrice:      p.SellingPrice,
		LowStockThreshold: p.LowStockThreshold,
		LowStock:          p.IsLowStock(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func partsToResponse(parts []model.SparePart) []partResponse {
	return lo.Map(parts, func(p model.SparePart, _ int) partResponse { return partToResponse(&p) })
}

type movementResponse struct {
	ID            uuid.UUID          `json:"id"`
	Type          model.MovementType `json:"type"`
	Delta         int64              `json:"delta"`
	QuantityAfter int64              `json:"quantity_after"`
	RepairID      *uuid.UUID         `json:"repair_id,omitempty"`
	Note          string             `json:"note,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

type nameRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type brandResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	ModelCount int64     `json:"model_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type modelResponse struct {
	ID        uuid.UUID `json:"id"`
	BrandID   uuid.UUID `json:"brand_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type settingsRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	Address         string `json:"address" validate:"max=500"`
	Phone           string `json:"phone" validate:"max=32"`
	ThankYouMessage string `json:"thank_you_message" validate:"max=1000"`
}

type settingsResponse struct {
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	Phone           string    `json:"phone"`
	ThankYouMessage string    `json:"thank_you_message"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func settingsToResponse(s *model.WorkshopSettings) settingsResponse {
	return settingsResponse{
		Name:            s.Name,
		Address:         s.Address,
		Phone:           s.Phone,
		ThankYouMessage: s.ThankYouMessage,
		UpdatedAt:       s.UpdatedAt,
	}
}
