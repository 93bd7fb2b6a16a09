package api

import (
	"context"
	"sync"
)

type ChargeRecord struct {
	CustomerID string
	Amount     float64
	Reason     string
}

// PaymentsMock records charges and fails on demand.
type PaymentsMock struct {
	mock sync.Mutex

	Charges []ChargeRecord

	// FailNext makes that many upcoming charges return ErrChargeDeclined.
	FailNext int
}

func (m *PaymentsMock) Charge(_ context.Context, customerID string, amount float64, reason string) error {
	m.mock.Lock()
	defer m.mock.Unlock()

	if m.FailNext > 0 {
		m.FailNext--
		return ErrChargeDeclined
	}

	m.Charges = append(m.Charges, ChargeRecord{
		CustomerID: customerID,
		Amount:     amount,
		Reason:     reason,
	})
	return nil
}

func (m *PaymentsMock) ChargeCount() int {
	m.mock.Lock()
	defer m.mock.Unlock()

	return len(m.Charges)
}
