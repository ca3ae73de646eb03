package paytrail

import "context"

// BeforeSendHook mutates a create-payment request before it is signed and
// transmitted. Typical uses: billing info enrichment, shipping line
// injection. Hooks run in registration order; the first error aborts the
// call. A hook must not change the request reference.
type BeforeSendHook func(ctx context.Context, req *CreatePaymentRequest) error

// AfterCreateHook observes the provider response to a create-payment call.
type AfterCreateHook func(ctx context.Context, req CreatePaymentRequest, resp *CreatePaymentResponse) error

// Hooks is an explicit ordered list of callbacks invoked at named extension
// points inside the request builders.
type Hooks struct {
	beforeSend  []BeforeSendHook
	afterCreate []AfterCreateHook
}

func NewHooks() *Hooks {
	return &Hooks{}
}

// OnBeforeSend registers a hook for the before-send extension point.
func (h *Hooks) OnBeforeSend(hook BeforeSendHook) {
	h.beforeSend = append(h.beforeSend, hook)
}

// OnAfterCreate registers a hook for the after-create extension point.
func (h *Hooks) OnAfterCreate(hook AfterCreateHook) {
	h.afterCreate = append(h.afterCreate, hook)
}

func (h *Hooks) runBeforeSend(ctx context.Context, req *CreatePaymentRequest) error {
	for _, hook := range h.beforeSend {
		if err := hook(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hooks) runAfterCreate(ctx context.Context, req CreatePaymentRequest, resp *CreatePaymentResponse) error {
	for _, hook := range h.afterCreate {
		if err := hook(ctx, req, resp); err != nil {
			return err
		}
	}
	return nil
}
