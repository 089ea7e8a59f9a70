// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/inventory_store.go -destination=inventory_store_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/supplier_ledger.go -destination=supplier_ledger_mock.go -package=mocks
