package services

import (
	"github.com/FT-Key/Ravello-web-sub001/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultCurrency = "ARS"

// OrderService coordinates the checkout flow: create a gateway preference,
// persist the Payment, persist the Order, back-fill the payment's order
// reference. Handles are injected so tests can run against sqlite and a fake
// gateway.
type OrderService struct {
	db      *gorm.DB
	gateway PreferenceGateway
}

func NewOrderService(db *gorm.DB, gateway PreferenceGateway) *OrderService {
	return &OrderService{db: db, gateway: gateway}
}

// CreateOrderResult is what the checkout endpoint returns to the client.
type CreateOrderResult struct {
	InitPoint string
	Order     models.Order
	Payment   models.Payment
}

// normalizeItems resolves the legacy field aliases and fills defaults.
func normalizeItems(inputs []models.OrderItemInput) []PreferenceItem {
	items := make([]PreferenceItem, 0, len(inputs))
	for _, in := range inputs {
		title := in.Title
		if title == "" {
			title = in.Name
		}
		qty := in.Quantity
		if qty == 0 {
			qty = in.Qty
		}
		if qty <= 0 {
			qty = 1
		}
		price := in.UnitPrice
		if price == 0 {
			price = in.Price
		}
		currency := in.Currency
		if currency == "" {
			currency = defaultCurrency
		}
		items = append(items, PreferenceItem{
			Title:      title,
			Quantity:   qty,
			UnitPrice:  price,
			CurrencyID: currency,
		})
	}
	return items
}

// CreateOrder runs the two-phase create-then-backfill link between Payment
// and Order. The database writes happen in one transaction, so a crash can
// no longer leave a payment without its order. The gateway call stays
// outside the transaction: if the writes fail afterwards, the preference is
// orphaned on the gateway side. Amount is taken from the client-supplied
// total, not recomputed from the items.
func (s *OrderService) CreateOrder(req *models.CreateOrderRequest) (*CreateOrderResult, error) {
	if len(req.Items) == 0 {
		return nil, Validation("Order must contain at least one item")
	}
	if req.UserID == 0 {
		return nil, Validation("userId is required")
	}

	items := normalizeItems(req.Items)

	pref, err := s.gateway.CreatePreference(items, req.ReturnURL)
	if err != nil {
		return nil, Internal("Failed to create payment preference", err)
	}

	payment := models.Payment{
		PreferenceID: pref.ID,
		Amount:       req.TotalAmount,
		Status:       "pending",
		Method:       "mercadopago",
	}

	var order models.Order

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		order = models.Order{
			OrderNumber:   uuid.NewString(),
			UserID:        req.UserID,
			TotalAmount:   req.TotalAmount,
			PaymentID:     payment.ID,
			PaymentStatus: payment.Status,
			Status:        "created",
		}
		for i, it := range items {
			order.Items = append(order.Items, models.OrderItem{
				PackageID: req.Items[i].PackageID,
				Title:     it.Title,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		payment.OrderID = &order.ID
		return tx.Save(&payment).Error
	})
	if err != nil {
		return nil, Internal("Failed to save order", err)
	}

	return &CreateOrderResult{
		InitPoint: pref.InitPoint,
		Order:     order,
		Payment:   payment,
	}, nil
}
