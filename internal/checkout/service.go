package checkout

import (
	"context"
	"fmt"

	"paytrailgw/internal/controller/apperror"
	"paytrailgw/internal/domain/order"
	"paytrailgw/internal/domain/payment"
	"paytrailgw/internal/external/paytrail"
	"paytrailgw/pkg/logger"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=checkout

// Gateway is the slice of the provider client the checkout flows use.
type Gateway interface {
	CreatePayment(ctx context.Context, req paytrail.CreatePaymentRequest) (paytrail.CreatePaymentResponse, error)
	Refund(ctx context.Context, transactionID string, req paytrail.RefundRequest) (paytrail.RefundResponse, error)
	GetToken(ctx context.Context, tokenizationID string) (paytrail.TokenizationResponse, error)
	TokenCharge(ctx context.Context, req paytrail.CreatePaymentRequest) (paytrail.TokenPaymentResponse, error)
	TokenAuthorize(ctx context.Context, req paytrail.CreatePaymentRequest) (paytrail.TokenPaymentResponse, error)
	TokenCommit(ctx context.Context, transactionID string, req paytrail.CreatePaymentRequest) (paytrail.TokenPaymentResponse, error)
	TokenRevert(ctx context.Context, transactionID string) (paytrail.TokenPaymentResponse, error)
}

type Reconciler interface {
	Apply(ctx context.Context, ev payment.ProviderEvent) (payment.Payment, error)
}

// Service drives the outbound payment operations for an order.
type Service struct {
	orders     order.Repo
	payments   payment.Repo
	gateway    Gateway
	reconciler Reconciler
	builder    *Builder
	legacy     *paytrail.AuthcodeSigner
	log        *logger.Logger
}

func NewService(
	orders order.Repo,
	payments payment.Repo,
	gateway Gateway,
	reconciler Reconciler,
	builder *Builder,
	legacy *paytrail.AuthcodeSigner,
	log *logger.Logger,
) *Service {
	return &Service{
		orders:     orders,
		payments:   payments,
		gateway:    gateway,
		reconciler: reconciler,
		builder:    builder,
		legacy:     legacy,
		log:        log,
	}
}

// Checkout builds and sends a create-payment request for the order and
// returns the provider response carrying the redirect href. The stamp is
// persisted before the wire call so a callback for this attempt can always
// be correlated, even if the response is lost.
func (s *Service) Checkout(ctx context.Context, orderID string) (paytrail.CreatePaymentResponse, error) {
	ord, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return paytrail.CreatePaymentResponse{}, fmt.Errorf("load order %s: %w", orderID, err)
	}
	if ord.Paid {
		return paytrail.CreatePaymentResponse{}, fmt.Errorf("%w: order %s already paid", apperror.ErrIllegalTransition, orderID)
	}

	req, err := s.builder.BuildCreateRequest(ord)
	if err != nil {
		return paytrail.CreatePaymentResponse{}, err
	}

	if err = s.orders.SetStamp(ctx, ord.ID, req.Stamp); err != nil {
		return paytrail.CreatePaymentResponse{}, fmt.Errorf("persist stamp for order %s: %w", ord.ID, err)
	}

	resp, err := s.gateway.CreatePayment(ctx, req)
	if err != nil {
		return paytrail.CreatePaymentResponse{}, err
	}

	s.log.Info("checkout: order %s -> transaction %s", ord.ID, resp.TransactionID)
	return resp, nil
}

// LegacyForm builds and signs a legacy E1 form submission for the order.
func (s *Service) LegacyForm(ctx context.Context, orderID string) (paytrail.LegacyForm, error) {
	ord, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return paytrail.LegacyForm{}, fmt.Errorf("load order %s: %w", orderID, err)
	}

	form := s.builder.BuildLegacyForm(ord)
	if err = form.Sign(s.legacy); err != nil {
		return paytrail.LegacyForm{}, err
	}
	return form, nil
}

// RefundOrder refunds the given minor-unit amount of the order's payment.
// The balance check runs locally before any network call; only after the
// provider accepts is the local state advanced, inside a transaction that
// re-verifies the balance against concurrent refunds.
func (s *Service) RefundOrder(ctx context.Context, orderID string, amount int64) (payment.Payment, error) {
	ord, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("load order %s: %w", orderID, err)
	}

	p, err := s.payments.GetPaymentForOrder(ctx, orderID)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("load payment for order %s: %w", orderID, err)
	}

	// Pre-flight on a copy. Rejects over-balance and wrong-state refunds
	// before the provider is contacted.
	preflight := p
	if err = preflight.Refund(amount); err != nil {
		return payment.Payment{}, err
	}

	req := s.builder.BuildRefundRequest(ord, amount)
	if _, err = s.gateway.Refund(ctx, p.RemoteID, req); err != nil {
		return payment.Payment{}, err
	}

	var refunded payment.Payment
	err = s.payments.InTransaction(ctx, func(tx payment.TxRepo) error {
		current, err := tx.GetPaymentForOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if current.RemoteID != p.RemoteID {
			return fmt.Errorf("%w: payment for order %s changed to %s",
				apperror.ErrRemoteIDMismatch, orderID, current.RemoteID)
		}
		if err = current.Refund(amount); err != nil {
			return err
		}
		if err = tx.UpdatePayment(ctx, current); err != nil {
			return err
		}
		if err = tx.CreateEvent(ctx, payment.NewEvent(current, payment.EventRefunded, payment.ChannelMerchant)); err != nil {
			return err
		}
		refunded = current
		return nil
	})
	if err != nil {
		return payment.Payment{}, err
	}

	s.log.Info("refund: order %s amount %d, state %s", orderID, amount, refunded.State)
	return refunded, nil
}

// ResolveToken exchanges a tokenization id from the add-card redirect for a
// reusable card token.
func (s *Service) ResolveToken(ctx context.Context, tokenizationID string) (paytrail.TokenizationResponse, error) {
	return s.gateway.GetToken(ctx, tokenizationID)
}

// ChargeToken performs a merchant-initiated charge against a stored card
// token and settles the resulting payment locally.
func (s *Service) ChargeToken(ctx context.Context, orderID, token string) (payment.Payment, error) {
	resp, ord, err := s.tokenPayment(ctx, orderID, token, s.gateway.TokenCharge)
	if err != nil {
		return payment.Payment{}, err
	}

	// A token charge authorizes and captures in one step.
	p, err := s.applyToken(ctx, ord, resp.TransactionID, payment.CallbackOk)
	if err != nil {
		return payment.Payment{}, err
	}
	if p.State == payment.StateAuthorization {
		return s.applyToken(ctx, ord, resp.TransactionID, payment.CallbackOk)
	}
	return p, nil
}

// AuthorizeToken places an authorization hold against a stored card token.
// The hold is committed or reverted later.
func (s *Service) AuthorizeToken(ctx context.Context, orderID, token string) (payment.Payment, error) {
	resp, ord, err := s.tokenPayment(ctx, orderID, token, s.gateway.TokenAuthorize)
	if err != nil {
		return payment.Payment{}, err
	}
	return s.applyToken(ctx, ord, resp.TransactionID, payment.CallbackOk)
}

// CommitAuthorization captures a previously placed authorization hold.
func (s *Service) CommitAuthorization(ctx context.Context, orderID string) (payment.Payment, error) {
	ord, p, err := s.orderAndPayment(ctx, orderID)
	if err != nil {
		return payment.Payment{}, err
	}

	req, err := s.builder.BuildCreateRequest(ord)
	if err != nil {
		return payment.Payment{}, err
	}
	if _, err = s.gateway.TokenCommit(ctx, p.RemoteID, req); err != nil {
		return payment.Payment{}, err
	}
	return s.applyToken(ctx, ord, p.RemoteID, payment.CallbackOk)
}

// RevertAuthorization releases a previously placed authorization hold.
func (s *Service) RevertAuthorization(ctx context.Context, orderID string) (payment.Payment, error) {
	ord, p, err := s.orderAndPayment(ctx, orderID)
	if err != nil {
		return payment.Payment{}, err
	}

	if _, err = s.gateway.TokenRevert(ctx, p.RemoteID); err != nil {
		return payment.Payment{}, err
	}
	return s.applyToken(ctx, ord, p.RemoteID, payment.CallbackFail)
}

func (s *Service) tokenPayment(
	ctx context.Context,
	orderID, token string,
	call func(context.Context, paytrail.CreatePaymentRequest) (paytrail.TokenPaymentResponse, error),
) (paytrail.TokenPaymentResponse, order.Order, error) {
	ord, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return paytrail.TokenPaymentResponse{}, order.Order{}, fmt.Errorf("load order %s: %w", orderID, err)
	}

	req, err := s.builder.BuildCreateRequest(ord)
	if err != nil {
		return paytrail.TokenPaymentResponse{}, order.Order{}, err
	}
	req.Token = token

	if err = s.orders.SetStamp(ctx, ord.ID, req.Stamp); err != nil {
		return paytrail.TokenPaymentResponse{}, order.Order{}, fmt.Errorf("persist stamp for order %s: %w", ord.ID, err)
	}

	resp, err := call(ctx, req)
	if err != nil {
		return paytrail.TokenPaymentResponse{}, order.Order{}, err
	}
	return resp, ord, nil
}

func (s *Service) orderAndPayment(ctx context.Context, orderID string) (order.Order, payment.Payment, error) {
	ord, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return order.Order{}, payment.Payment{}, fmt.Errorf("load order %s: %w", orderID, err)
	}
	p, err := s.payments.GetPaymentForOrder(ctx, orderID)
	if err != nil {
		return order.Order{}, payment.Payment{}, fmt.Errorf("load payment for order %s: %w", orderID, err)
	}
	return ord, p, nil
}

func (s *Service) applyToken(ctx context.Context, ord order.Order, transactionID string, status payment.CallbackStatus) (payment.Payment, error) {
	amount, err := order.ToMinorUnits(ord.Total)
	if err != nil {
		return payment.Payment{}, err
	}

	return s.reconciler.Apply(ctx, payment.ProviderEvent{
		OrderID:       ord.ID,
		TransactionID: transactionID,
		Status:        status,
		Amount:        amount,
		Currency:      ord.Total.Currency,
		Channel:       payment.ChannelMerchant,
	})
}
