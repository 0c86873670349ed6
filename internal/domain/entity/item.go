package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ítem de inventario (unidad inmobiliaria). Una venta lo lleva a
// Booked o Sold según el estado de pago; borrar/restaurar la venta revierte.
const (
	ItemStatusAvailable = "Available"
	ItemStatusBooked    = "Booked"
	ItemStatusSold      = "Sold"
	ItemStatusBlocked   = "Blocked"
)

// ItemArea medidas del inmueble.
type ItemArea struct {
	PlotArea    decimal.Decimal `json:"plotArea"`
	BuiltUpArea decimal.Decimal `json:"builtUpArea"`
	CarpetArea  decimal.Decimal `json:"carpetArea"`
	Unit        string          `json:"unit,omitempty"` // Sq.Ft, Sq.M, Acre, ...
}

// Item unidad de inventario vendible (plot, flat, shop, ...). Es el recurso
// compartido más disputado: las ventas y compras concurrentes lo mutan, por lo
// que lleva Version para lock optimista (conditional write).
type Item struct {
	ID            string
	CompanyID     string
	BranchID      string
	ItemCode      string // único dentro de (companyId, branchId)
	ItemName      string
	PropertyType  string // Plot, Flat, Shop, Office, ...
	ProjectName   string
	Area          ItemArea
	HSNCode       string
	RatePerUnit   decimal.Decimal
	TotalPrice    decimal.Decimal
	BookingAmount decimal.Decimal
	Status        string
	OpeningStock  int64
	CurrentStock  int64
	Description   string
	ShowInSales   bool
	GroupID       string
	CategoryID    string
	IsActive      bool
	IsDeleted     bool
	Version       int64 // lock optimista; se incrementa en cada escritura de estado
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
