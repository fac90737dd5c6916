package types

// WaitEstimate is the provider's expected wait window in minutes for one
// service method.
type WaitEstimate struct {
	MinMinutes int `json:"minMinutes"`
	MaxMinutes int `json:"maxMinutes"`
}

// Store is one candidate store from a lookup. Immutable once produced.
type Store struct {
	ID             string       `json:"storeId"`
	Address        string       `json:"address"`
	Phone          string       `json:"phone"`
	IsOpen         bool         `json:"isOpen"`
	IsOnline       bool         `json:"isOnline"`
	AllowsDelivery bool         `json:"allowsDelivery"`
	AllowsCarryout bool         `json:"allowsCarryout"`
	DeliveryWait   WaitEstimate `json:"deliveryWait"`
	CarryoutWait   WaitEstimate `json:"carryoutWait"`
	DistanceMiles  float64      `json:"distanceMiles"`
}

// Orderable reports whether the store can take an online order right now.
// Lookup results are filtered to orderable stores.
func (s Store) Orderable() bool {
	return s.IsOpen && s.IsOnline
}
