package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
	"github.com/naijamart/storefront/internal/domain/repository"
)

// CheckoutUseCase creates orders from cart contents. Item names, prices and
// images are snapshotted from the catalogue at checkout time so later product
// edits never rewrite an invoice.
type CheckoutUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	users    repository.UserRepository
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(orders repository.OrderRepository, products repository.ProductRepository, users repository.UserRepository) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, products: products, users: users}
}

// PlaceOrder validates the cart and shipment details and creates the order in
// pending_payment. For pure-cashback orders the balance is prechecked here;
// the authoritative check happens again when the debit is applied.
func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, userID int64, items []model.CartItem, method model.PaymentMethod, details model.ShipmentDetails) (*model.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", domainErrors.ErrValidation)
	}
	if err := validateShipmentDetails(details); err != nil {
		return nil, err
	}
	switch method {
	case model.PaymentMethodCashback, model.PaymentMethodDirect, model.PaymentMethodMixed:
	default:
		return nil, fmt.Errorf("%w: unknown payment method %q", domainErrors.ErrValidation, method)
	}

	snapshots := make([]model.CartItem, 0, len(items))
	var total float64
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", domainErrors.ErrValidation)
		}
		product, err := u.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.AvailableIn(details.State) {
			return nil, fmt.Errorf("%w: %s is not available in %s", domainErrors.ErrValidation, product.Name, details.State)
		}
		snapshot := model.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.EffectivePrice(),
			Quantity:  item.Quantity,
		}
		if len(product.Images) > 0 {
			snapshot.Image = product.Images[0]
		}
		snapshots = append(snapshots, snapshot)
		total += snapshot.Price * float64(snapshot.Quantity)
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if method == model.PaymentMethodCashback && user.CashbackBalance < total {
		return nil, domainErrors.ErrInsufficientFunds
	}

	order := &model.Order{
		UserID:          userID,
		UserEmail:       user.Email,
		Items:           snapshots,
		TotalAmount:     total,
		Status:          model.OrderStatusPendingPayment,
		PaymentMethod:   method,
		ShipmentDetails: details,
	}
	return u.orders.Create(ctx, order)
}

// ListByUser returns the user's orders, newest first.
func (u *CheckoutUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// GetForActor fetches an order, restricting customers to their own orders.
func (u *CheckoutUseCase) GetForActor(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != actor.UserID && !actor.IsStaff() {
		return nil, domainErrors.ErrUnauthorized
	}
	return order, nil
}

// ListAll returns every order for the admin surface.
func (u *CheckoutUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

func validateShipmentDetails(details model.ShipmentDetails) error {
	if strings.TrimSpace(details.Phone) == "" {
		return fmt.Errorf("%w: phone is required", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(details.Address) == "" {
		return fmt.Errorf("%w: address is required", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(details.State) == "" {
		return fmt.Errorf("%w: state is required", domainErrors.ErrValidation)
	}
	if !model.IsNigerianState(details.State) {
		return fmt.Errorf("%w: unknown state %q", domainErrors.ErrValidation, details.State)
	}
	return nil
}
