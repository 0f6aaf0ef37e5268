package update_pricing

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/service/pricing/models"
)

// UpdatePricingRequest HTTP модель запроса на изменение тарифа.
// Суммы принимаются строкой или числом ("5.00", 5).
type UpdatePricingRequest struct {
	HourlyRate    decimal.Decimal `json:"hourlyRate"`
	MinimumCharge decimal.Decimal `json:"minimumCharge"`
	Currency      *string         `json:"currency,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdatePricingRequest) ToServiceRequest(userID string) *models.UpdatePricingRequest {
	return &models.UpdatePricingRequest{
		UserID:        userID,
		HourlyRate:    r.HourlyRate,
		MinimumCharge: r.MinimumCharge,
		Currency:      r.Currency,
	}
}
