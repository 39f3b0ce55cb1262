package domain

import (
	"testing"

	"go-shop/pkg/errors"
)

func validOrder() *Order {
	return &Order{
		UserID: "user-1",
		Items: []OrderItem{
			{ProductID: "p1", Name: "Keyboard", Amount: 1, Price: 25},
		},
		TotalPrice: 25,
	}
}

func TestValidate(t *testing.T) {
	if err := validOrder().Validate(); err != nil {
		t.Fatalf("expected valid order, got %v", err)
	}

	o := validOrder()
	o.UserID = ""
	if err := o.Validate(); !errors.Is(err, errors.CodeValidation) {
		t.Errorf("expected validation error for missing user, got %v", err)
	}

	o = validOrder()
	o.Items = nil
	if err := o.Validate(); err != ErrItemsRequired {
		t.Errorf("expected ErrItemsRequired, got %v", err)
	}

	o = validOrder()
	o.Items[0].Amount = 0
	if err := o.Validate(); err != ErrItemAmountInvalid {
		t.Errorf("expected ErrItemAmountInvalid, got %v", err)
	}

	o = validOrder()
	o.TotalPrice = -1
	if err := o.Validate(); err != ErrTotalNegative {
		t.Errorf("expected ErrTotalNegative, got %v", err)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusAwaitingPayment, StatusProcessing, StatusCancelled} {
		if !s.Valid() {
			t.Errorf("expected status %d to be valid", s)
		}
	}
	// 2 is deliberately unassigned.
	if Status(2).Valid() {
		t.Error("status 2 must not be valid")
	}
	if Status(7).Valid() {
		t.Error("status 7 must not be valid")
	}
}

func TestCancel(t *testing.T) {
	o := validOrder()
	if !o.Cancellable() {
		t.Fatal("unpaid order must be cancellable")
	}

	o.IsPaid = PaymentPaid
	if o.Cancellable() {
		t.Fatal("paid order must not be cancellable")
	}

	o.IsPaid = PaymentUnpaid
	o.Cancel()
	if o.Status != StatusCancelled {
		t.Errorf("expected cancelled status, got %d", o.Status)
	}
}
