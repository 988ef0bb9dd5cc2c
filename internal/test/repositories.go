package test

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs a stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Seed registers a user directly, bypassing validation.
func (s *UserRepositoryStub) Seed(user *model.User) *model.User {
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if user.ID == 0 {
		if s.Next == 0 {
			s.Next = 1
		}
		user.ID = s.Next
		s.Next++
	}
	s.ByEmail[user.Email] = user
	s.ByID[user.ID] = user
	return user
}

// Create registers a user unless one already exists with the same email.
func (s *UserRepositoryStub) Create(ctx context.Context, email, fullName, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	return s.Seed(&model.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}), nil
}

// GetByEmail fetches a user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches a user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all seeded users.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		result = append(result, *u)
	}
	return result, nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn              func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn             func(context.Context, string) (*model.Order, error)
	ListByUserFn          func(context.Context, int64) ([]model.Order, error)
	ListByStatusFn        func(context.Context, ...model.OrderStatus) ([]model.Order, error)
	ListAllFn             func(context.Context) ([]model.Order, error)
	SelectShippedBeforeFn func(context.Context, time.Time, int) ([]model.Order, error)

	Orders map[string]*model.Order
	Next   int
}

// Seed stores an order for later retrieval.
func (s *OrderRepositoryStub) Seed(order *model.Order) *model.Order {
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	if order.ID == "" {
		s.Next++
		order.ID = fmt.Sprintf("order-%06d", s.Next)
	}
	s.Orders[order.ID] = order
	return order
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	return s.Seed(order), nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if order, ok := s.Orders[id]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) ListByStatus(ctx context.Context, statuses ...model.OrderStatus) ([]model.Order, error) {
	if s.ListByStatusFn != nil {
		return s.ListByStatusFn(ctx, statuses...)
	}
	var result []model.Order
	for _, o := range s.Orders {
		for _, st := range statuses {
			if o.Status == st {
				result = append(result, *o)
				break
			}
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	result := make([]model.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		result = append(result, *o)
	}
	return result, nil
}

func (s *OrderRepositoryStub) SelectShippedBefore(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	if s.SelectShippedBeforeFn != nil {
		return s.SelectShippedBeforeFn(ctx, cutoff, limit)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.Status == model.OrderStatusShipped && o.UpdatedAt.Before(cutoff) {
			result = append(result, *o)
			if len(result) == limit {
				break
			}
		}
	}
	return result, nil
}

// WorkflowRepositoryStub lets tests script transition outcomes.
type WorkflowRepositoryStub struct {
	SubmitPaymentProofFn func(context.Context, string, model.PaymentProof) (*model.Order, error)
	ApprovePaymentFn     func(context.Context, string) (*model.Order, error)
	RejectOrderFn        func(context.Context, string, string) (*model.Order, error)
	MarkShippedFn        func(context.Context, string) (*model.Order, error)
	DelayShipmentFn      func(context.Context, string) (*model.Order, error)
	MarkDeliveredFn      func(context.Context, string) (*model.Order, error)
}

func (s *WorkflowRepositoryStub) SubmitPaymentProof(ctx context.Context, orderID string, proof model.PaymentProof) (*model.Order, error) {
	if s.SubmitPaymentProofFn != nil {
		return s.SubmitPaymentProofFn(ctx, orderID, proof)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPendingApproval, PaymentProof: &proof}, nil
}

func (s *WorkflowRepositoryStub) ApprovePayment(ctx context.Context, orderID string) (*model.Order, error) {
	if s.ApprovePaymentFn != nil {
		return s.ApprovePaymentFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusApproved}, nil
}

func (s *WorkflowRepositoryStub) RejectOrder(ctx context.Context, orderID, reason string) (*model.Order, error) {
	if s.RejectOrderFn != nil {
		return s.RejectOrderFn(ctx, orderID, reason)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusRejected, RejectionReason: reason}, nil
}

func (s *WorkflowRepositoryStub) MarkShipped(ctx context.Context, orderID string) (*model.Order, error) {
	if s.MarkShippedFn != nil {
		return s.MarkShippedFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusShipped}, nil
}

func (s *WorkflowRepositoryStub) DelayShipment(ctx context.Context, orderID string) (*model.Order, error) {
	if s.DelayShipmentFn != nil {
		return s.DelayShipmentFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPendingApproval}, nil
}

func (s *WorkflowRepositoryStub) MarkDelivered(ctx context.Context, orderID string) (*model.Order, error) {
	if s.MarkDeliveredFn != nil {
		return s.MarkDeliveredFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusDelivered}, nil
}

// LedgerRepositoryStub keeps entries and balances in-memory.
type LedgerRepositoryStub struct {
	DebitFn      func(context.Context, int64, float64, string) (*model.LedgerEntry, error)
	CreditFn     func(context.Context, int64, float64, model.EntryType, string) (*model.LedgerEntry, error)
	SetBalanceFn func(context.Context, int64, float64, string) (*model.LedgerEntry, error)

	Balances map[int64]float64
	Entries  []model.LedgerEntry
	Next     int
}

func (s *LedgerRepositoryStub) append(userID int64, amount float64, entryType model.EntryType, description string) *model.LedgerEntry {
	s.Next++
	entry := model.LedgerEntry{
		ID:          fmt.Sprintf("entry-%06d", s.Next),
		UserID:      userID,
		Amount:      amount,
		Type:        entryType,
		Description: description,
		CreatedAt:   time.Now(),
	}
	s.Entries = append(s.Entries, entry)
	return &entry
}

func (s *LedgerRepositoryStub) Debit(ctx context.Context, userID int64, amount float64, description string) (*model.LedgerEntry, error) {
	if s.DebitFn != nil {
		return s.DebitFn(ctx, userID, amount, description)
	}
	if s.Balances == nil {
		s.Balances = make(map[int64]float64)
	}
	if s.Balances[userID] < amount {
		return nil, domainErrors.ErrInsufficientFunds
	}
	s.Balances[userID] -= amount
	return s.append(userID, amount, model.EntryTypePurchase, description), nil
}

func (s *LedgerRepositoryStub) Credit(ctx context.Context, userID int64, amount float64, entryType model.EntryType, description string) (*model.LedgerEntry, error) {
	if s.CreditFn != nil {
		return s.CreditFn(ctx, userID, amount, entryType, description)
	}
	if s.Balances == nil {
		s.Balances = make(map[int64]float64)
	}
	s.Balances[userID] += amount
	return s.append(userID, amount, entryType, description), nil
}

func (s *LedgerRepositoryStub) SetBalance(ctx context.Context, userID int64, balance float64, description string) (*model.LedgerEntry, error) {
	if s.SetBalanceFn != nil {
		return s.SetBalanceFn(ctx, userID, balance, description)
	}
	if s.Balances == nil {
		s.Balances = make(map[int64]float64)
	}
	current := s.Balances[userID]
	s.Balances[userID] = balance
	if balance > current {
		return s.append(userID, balance-current, model.EntryTypeCashbackCredit, description), nil
	}
	if balance < current {
		return s.append(userID, current-balance, model.EntryTypePurchase, description), nil
	}
	return nil, nil
}

func (s *LedgerRepositoryStub) Balance(ctx context.Context, userID int64) (float64, error) {
	return s.Balances[userID], nil
}

func (s *LedgerRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.LedgerEntry, error) {
	var result []model.LedgerEntry
	for _, e := range s.Entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

// NotificationRepositoryStub records notifications in-memory.
type NotificationRepositoryStub struct {
	CreateFn   func(context.Context, int64, string, model.NotificationType) (*model.Notification, error)
	MarkReadFn func(context.Context, int64, string) error

	Notifications map[string]*model.Notification
	Next          int
}

func (s *NotificationRepositoryStub) Create(ctx context.Context, userID int64, message string, kind model.NotificationType) (*model.Notification, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, message, kind)
	}
	if s.Notifications == nil {
		s.Notifications = make(map[string]*model.Notification)
	}
	s.Next++
	n := &model.Notification{
		ID:        fmt.Sprintf("notif-%06d", s.Next),
		UserID:    userID,
		Message:   message,
		Type:      kind,
		CreatedAt: time.Now(),
	}
	s.Notifications[n.ID] = n
	return n, nil
}

func (s *NotificationRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	var result []model.Notification
	for _, n := range s.Notifications {
		if n.UserID == userID {
			result = append(result, *n)
		}
	}
	return result, nil
}

func (s *NotificationRepositoryStub) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	for _, n := range s.Notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *NotificationRepositoryStub) MarkRead(ctx context.Context, userID int64, id string) error {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(ctx, userID, id)
	}
	n, ok := s.Notifications[id]
	if !ok || n.UserID != userID {
		return domainErrors.ErrNotFound
	}
	n.Read = true
	return nil
}

// ProductRepositoryStub keeps catalogue items in-memory.
type ProductRepositoryStub struct {
	Products map[string]*model.Product
	Next     int
	Err      error
}

// Seed stores a product for later retrieval.
func (s *ProductRepositoryStub) Seed(product *model.Product) *model.Product {
	if s.Products == nil {
		s.Products = make(map[string]*model.Product)
	}
	if product.ID == "" {
		s.Next++
		product.ID = fmt.Sprintf("product-%06d", s.Next)
	}
	s.Products[product.ID] = product
	return product
}

func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	product.CreatedAt = time.Now()
	return s.Seed(product), nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[product.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Products[product.ID] = product
	return nil
}

func (s *ProductRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		result = append(result, *p)
	}
	return result, nil
}

// PublisherStub records read-model events for assertions.
type PublisherStub struct {
	OrderEvents        []model.Order
	NotificationEvents []model.Notification
	Err                error
}

func (s *PublisherStub) PublishOrderStatus(ctx context.Context, order *model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	s.OrderEvents = append(s.OrderEvents, *order)
	return nil
}

func (s *PublisherStub) PublishNotification(ctx context.Context, notification *model.Notification) error {
	if s.Err != nil {
		return s.Err
	}
	s.NotificationEvents = append(s.NotificationEvents, *notification)
	return nil
}
