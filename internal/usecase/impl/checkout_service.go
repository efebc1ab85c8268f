package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/store"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultReturnPath    = "/checkout"
	defaultLockTTL       = 15 * time.Second
	defaultRedirectAfter = 3 * time.Second
	defaultDeliveryDays  = 5
)

type checkoutService struct {
	registry      *store.Registry
	state         repository.StateStore
	txManager     repository.TransactionManager
	customers     repository.CustomerRepository
	orders        repository.OrderRepository
	publisher     service.EventPublisher
	policy        pricing.Policy
	lockTTL       time.Duration
	redirectAfter time.Duration
	deliveryDays  int
	now           func() time.Time
	logger        *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Registry  *store.Registry
	State     repository.StateStore
	TxManager repository.TransactionManager
	Customers repository.CustomerRepository
	Orders    repository.OrderRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService creates the checkout usecase.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	srv := &checkoutService{
		registry:      params.Registry,
		state:         params.State,
		txManager:     params.TxManager,
		customers:     params.Customers,
		orders:        params.Orders,
		publisher:     params.Publisher,
		policy:        policyFromConfig(params.Config),
		lockTTL:       defaultLockTTL,
		redirectAfter: defaultRedirectAfter,
		deliveryDays:  defaultDeliveryDays,
		now:           time.Now,
		logger:        params.Logger,
	}

	if cfg := params.Config; cfg != nil && cfg.Checkout != nil {
		if cfg.Checkout.SubmitLockTTL > 0 {
			srv.lockTTL = cfg.Checkout.SubmitLockTTL
		}
		if cfg.Checkout.ConfirmationRedirectDelay > 0 {
			srv.redirectAfter = cfg.Checkout.ConfirmationRedirectDelay
		}
		if cfg.Checkout.EstimatedDeliveryDays > 0 {
			srv.deliveryDays = cfg.Checkout.EstimatedDeliveryDays
		}
	}

	return srv
}

func (s *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *checkoutService) Quote(ctx context.Context, clientID string, principal *entity.Principal) (*usecase.CheckoutQuote, error) {
	cart, err := s.registry.Cart(clientID).Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if cart.IsEmpty() {
		return &usecase.CheckoutQuote{Empty: true, Items: []entity.LineItem{}}, nil
	}

	totals := s.policy.ForCart(cart.Items)
	quote := &usecase.CheckoutQuote{
		Items:             cart.Items,
		ItemCount:         cart.ItemCount(),
		Totals:            &totals,
		EstimatedDelivery: s.estimatedDelivery(s.now()),
	}

	if principal.IsAuthenticated() {
		customer, err := s.customers.FindByID(ctx, principal.UID)
		switch {
		case err == nil:
			quote.DefaultAddress = customer.DefaultAddress
		case errors.Is(err, repository.ErrCustomerNotFound):
		default:
			s.log(ctx).Warn("Failed to load default address", slog.String("uid", principal.UID), slog.Any("error", err))
		}
	}

	return quote, nil
}

func (s *checkoutService) estimatedDelivery(from time.Time) time.Time {
	return from.AddDate(0, 0, s.deliveryDays)
}

func loginRedirect(returnPath string) string {
	returnPath = strings.TrimSpace(returnPath)
	if returnPath == "" || !strings.HasPrefix(returnPath, "/") || strings.HasPrefix(returnPath, "//") {
		returnPath = defaultReturnPath
	}

	return "/login?redirect=" + url.QueryEscape(returnPath)
}

func (s *checkoutService) SubmitOrder(ctx context.Context, input *usecase.SubmitOrderInput) (*usecase.SubmitOrderResult, error) {
	cartStore := s.registry.Cart(input.ClientID)

	// A retry after a committed submission finds its order before the cart
	// checks: the first attempt has already emptied the cart.
	if existing, err := s.findSubmitted(ctx, input); err != nil {
		return nil, err
	} else if existing != nil {
		return s.submitResult(ctx, existing, true), nil
	}

	cart, err := cartStore.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domainerrors.NewRedirectError(domainerrors.ErrCartEmpty, "/cart")
	}
	if !input.Principal.IsAuthenticated() {
		return nil, domainerrors.NewRedirectError(domainerrors.ErrAuthenticationRequired, loginRedirect(input.ReturnPath))
	}

	release, err := s.acquireLock(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	defer release()

	// Re-read under the lock; a concurrent submission may have cleared it.
	cart, err = cartStore.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domainerrors.NewRedirectError(domainerrors.ErrCartEmpty, "/cart")
	}

	customer, err := s.customers.FindByID(ctx, input.Principal.UID)
	if err != nil && !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, classifyOrderError(err)
	}

	order, err := s.assembleOrder(input, cart, customer)
	if err != nil {
		return nil, err
	}

	replayed, err := s.persist(ctx, order)
	if err != nil {
		s.log(ctx).Error("Failed to place order",
			slog.String("order_id", order.ID),
			slog.String("uid", order.UserID),
			slog.Any("error", err),
		)

		return nil, classifyOrderError(err)
	}
	if replayed {
		existing, err := s.orders.FindByID(ctx, order.ID)
		if err != nil {
			return nil, classifyOrderError(err)
		}
		order = existing
	}

	if _, err := cartStore.Clear(ctx); err != nil {
		s.log(ctx).Error("Failed to clear cart after order", slog.String("order_id", order.ID), slog.Any("error", err))
	}

	if !replayed {
		if input.SaveAddress && input.ShippingAddress != nil {
			s.saveDefaultAddress(ctx, input.Principal, customer, *input.ShippingAddress)
		}
		s.publishCreated(ctx, order)
	}

	return s.submitResult(ctx, order, replayed), nil
}

// acquireLock takes the per-client checkout lock under a token unique to this
// attempt. The returned release only deletes the lock while it still holds
// that token, so an attempt that outlived its TTL cannot free a lock taken
// over by a newer submission.
func (s *checkoutService) acquireLock(ctx context.Context, clientID string) (func(), error) {
	lockKey := constants.StateKeyCheckoutLock + clientID
	token := []byte(uuid.NewString())

	acquired, err := s.state.SetNX(ctx, lockKey, token, s.lockTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire checkout lock")
	}
	if !acquired {
		return nil, domainerrors.ErrCheckoutInProgress.WithDetails("try again in " + util.FormatDuration(s.lockTTL))
	}

	return func() {
		released, err := s.state.DeleteIfEquals(context.WithoutCancel(ctx), lockKey, token)
		switch {
		case err != nil:
			s.log(ctx).Warn("Failed to release checkout lock", slog.String("client_id", clientID), slog.Any("error", err))
		case !released:
			s.log(ctx).Warn("Checkout lock expired before release", slog.String("client_id", clientID))
		}
	}, nil
}

// findSubmitted returns the order already created for the caller's
// idempotency key, or nil when there is none or no key was sent.
func (s *checkoutService) findSubmitted(ctx context.Context, input *usecase.SubmitOrderInput) (*entity.Order, error) {
	key := strings.TrimSpace(input.IdempotencyKey)
	if key == "" || !input.Principal.IsAuthenticated() {
		return nil, nil
	}

	existing, err := s.orders.FindByID(ctx, entity.OrderIDFor(input.Principal.UID, key))
	switch {
	case err == nil:
		return existing, nil
	case errors.Is(err, repository.ErrOrderNotFound):
		return nil, nil
	default:
		return nil, classifyOrderError(err)
	}
}

func (s *checkoutService) submitResult(ctx context.Context, order *entity.Order, replayed bool) *usecase.SubmitOrderResult {
	s.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID),
		slog.String("uid", order.UserID),
		slog.Float64("total", order.Total),
		slog.Bool("replayed", replayed),
	)

	return &usecase.SubmitOrderResult{
		Order:         order,
		Replayed:      replayed,
		Redirect:      "/orders/" + order.ID,
		RedirectAfter: s.redirectAfter,
	}
}

func (s *checkoutService) assembleOrder(input *usecase.SubmitOrderInput, cart entity.Cart, customer *entity.Customer) (*entity.Order, error) {
	address := input.ShippingAddress
	if address == nil && customer != nil {
		address = customer.DefaultAddress
	}
	if address == nil {
		return nil, domainerrors.ErrShippingAddressRequired
	}

	key := strings.TrimSpace(input.IdempotencyKey)
	if key == "" {
		key = uuid.NewString()
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentMethodCard
	}

	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, li := range cart.Items {
		items = append(items, entity.OrderItem{
			ProductID: li.ProductID,
			Name:      li.Title,
			UnitPrice: li.UnitPrice,
			Quantity:  li.Quantity,
			ImageURL:  li.ImageURL,
			Variant:   li.Variant,
		})
	}

	totals := s.policy.ForOrder(items)
	principal := input.Principal
	name := principal.DisplayName
	if name == "" && customer != nil {
		name = customer.DisplayName
	}
	now := s.now()

	return &entity.Order{
		ID:                entity.OrderIDFor(principal.UID, key),
		UserID:            principal.UID,
		UserEmail:         principal.Email,
		UserName:          name,
		Items:             items,
		Subtotal:          totals.Subtotal,
		Shipping:          totals.Shipping,
		Tax:               totals.Tax,
		Total:             totals.Total,
		Status:            entity.OrderStatusProcessing,
		PaymentMethod:     paymentMethod,
		PaymentStatus:     entity.PaymentStatusPending,
		ShippingAddress:   *address,
		EstimatedDelivery: s.estimatedDelivery(now),
		Notes:             strings.TrimSpace(input.Notes),
		IdempotencyKey:    key,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// persist writes the order and bumps the customer aggregate in one transaction.
// It reports replayed when the order id already exists.
func (s *checkoutService) persist(ctx context.Context, order *entity.Order) (bool, error) {
	replayed := false
	err := s.txManager.Execute(ctx, func(tx repository.RepositoryFactory) error {
		if err := tx.OrderRepo().Create(ctx, order); err != nil {
			if errors.Is(err, repository.ErrDuplicateOrder) {
				replayed = true

				return nil
			}

			return err
		}

		return tx.CustomerRepo().RecordOrder(ctx, order)
	})
	if errors.Is(err, repository.ErrDuplicateOrder) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return replayed, nil
}

func (s *checkoutService) saveDefaultAddress(ctx context.Context, principal *entity.Principal, customer *entity.Customer, address entity.ShippingAddress) {
	now := s.now()
	if customer == nil {
		customer = &entity.Customer{
			UID:         principal.UID,
			Email:       principal.Email,
			DisplayName: principal.DisplayName,
			CreatedAt:   now,
		}
	}
	customer.DefaultAddress = &address
	customer.UpdatedAt = now

	if err := s.customers.Upsert(ctx, customer); err != nil {
		s.log(ctx).Warn("Failed to save default address", slog.String("uid", principal.UID), slog.Any("error", err))
	}
}

func (s *checkoutService) publishCreated(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       service.OrderEventCreated,
		OrderID:    order.ID,
		UserID:     order.UserID,
		UserEmail:  order.UserEmail,
		UserName:   order.UserName,
		Status:     order.Status.String(),
		Total:      order.Total,
		OccurredAt: order.CreatedAt,
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.log(ctx).Error("Failed to publish order event",
			slog.String("order_id", order.ID),
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

// classifyOrderError maps a persistence failure onto the user-facing order error.
func classifyOrderError(err error) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case isPermissionDenied(err):
		return domainerrors.ErrOrderPermissionDenied.WithDetails(err.Error())
	case isNetworkFailure(err):
		return domainerrors.ErrOrderNetwork.WithDetails(err.Error())
	default:
		return domainerrors.ErrOrderFailed.WithDetails(err.Error())
	}
}

func grpcCode(err error) codes.Code {
	var withStatus interface{ GRPCStatus() *status.Status }
	if errors.As(err, &withStatus) {
		return withStatus.GRPCStatus().Code()
	}

	return codes.OK
}

func isPermissionDenied(err error) bool {
	if errors.Is(err, repository.ErrPermissionDenied) || grpcCode(err) == codes.PermissionDenied {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "permission-denied") || strings.Contains(msg, "permission denied")
}

func isNetworkFailure(err error) bool {
	if errors.Is(err, repository.ErrStoreUnavailable) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	switch grpcCode(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "network") || strings.Contains(msg, "unavailable")
}
