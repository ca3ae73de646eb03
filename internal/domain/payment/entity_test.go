package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_CanTransitionTo(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		from    State
		to      State
		allowed bool
	}{
		{name: "should allow new to authorization", from: StateNew, to: StateAuthorization, allowed: true},
		{name: "should allow authorization to completed", from: StateAuthorization, to: StateCompleted, allowed: true},
		{name: "should allow authorization to voided", from: StateAuthorization, to: StateAuthorizationVoided, allowed: true},
		{name: "should allow completed to partially refunded", from: StateCompleted, to: StatePartiallyRefunded, allowed: true},
		{name: "should allow completed to refunded", from: StateCompleted, to: StateRefunded, allowed: true},
		{name: "should allow repeated partial refunds", from: StatePartiallyRefunded, to: StatePartiallyRefunded, allowed: true},
		{name: "should allow partially refunded to refunded", from: StatePartiallyRefunded, to: StateRefunded, allowed: true},
		{name: "should reject new to completed", from: StateNew, to: StateCompleted, allowed: false},
		{name: "should reject completed to authorization", from: StateCompleted, to: StateAuthorization, allowed: false},
		{name: "should reject anything from refunded", from: StateRefunded, to: StatePartiallyRefunded, allowed: false},
		{name: "should reject anything from voided", from: StateAuthorizationVoided, to: StateCompleted, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestPayment_Authorize(t *testing.T) {
	t.Parallel()

	t.Run("should record remote id on authorization", func(t *testing.T) {
		// given
		p := Payment{State: StateNew}

		// when
		err := p.Authorize("tx-42")

		// then
		assert.NoError(t, err)
		assert.Equal(t, StateAuthorization, p.State)
		assert.Equal(t, "tx-42", p.RemoteID)
	})

	t.Run("should reject authorization of a completed payment", func(t *testing.T) {
		// given
		p := Payment{State: StateCompleted, RemoteID: "tx-42"}

		// when
		err := p.Authorize("tx-43")

		// then
		assert.ErrorIs(t, err, ErrIllegalTransition)
		assert.Equal(t, "tx-42", p.RemoteID)
	})
}

func TestPayment_Refund(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		payment       Payment
		amount        int64
		expectedState State
		expectedError error
	}{
		{
			name:          "should move to partially refunded below the balance",
			payment:       Payment{State: StateCompleted, Amount: 1000},
			amount:        300,
			expectedState: StatePartiallyRefunded,
		},
		{
			name:          "should move to refunded when the balance is emptied",
			payment:       Payment{State: StateCompleted, Amount: 1000},
			amount:        1000,
			expectedState: StateRefunded,
		},
		{
			name:          "should empty the balance across successive refunds",
			payment:       Payment{State: StatePartiallyRefunded, Amount: 1000, RefundedAmount: 300},
			amount:        700,
			expectedState: StateRefunded,
		},
		{
			name:          "should reject a refund exceeding the balance",
			payment:       Payment{State: StateCompleted, Amount: 1000, RefundedAmount: 900},
			amount:        200,
			expectedState: StateCompleted,
			expectedError: ErrRefundExceedsBalance,
		},
		{
			name:          "should reject a refund of a non-settled payment",
			payment:       Payment{State: StateAuthorization, Amount: 1000},
			amount:        100,
			expectedState: StateAuthorization,
			expectedError: ErrIllegalTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := tc.payment.Refund(tc.amount)

			// then
			assert.Equal(t, tc.expectedState, tc.payment.State)
			if tc.expectedError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expectedError)
			}
		})
	}

	t.Run("should reject a non-positive amount", func(t *testing.T) {
		p := Payment{State: StateCompleted, Amount: 1000}

		assert.Error(t, p.Refund(0))
		assert.Error(t, p.Refund(-5))
		assert.Equal(t, StateCompleted, p.State)
	})
}

func TestParseCallbackStatus(t *testing.T) {
	t.Parallel()

	t.Run("should accept every documented status", func(t *testing.T) {
		for _, raw := range []string{"new", "ok", "fail", "pending", "delayed"} {
			status, err := ParseCallbackStatus(raw)
			assert.NoError(t, err)
			assert.Equal(t, CallbackStatus(raw), status)
		}
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		_, err := ParseCallbackStatus("settled")

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}
