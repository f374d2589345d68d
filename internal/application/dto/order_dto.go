package dto

import "time"

// CreateOrderRequest entrada para registrar un movimiento. Date es opcional:
// si no viene, se usa la hora actual.
type CreateOrderRequest struct {
	EmployeeName string     `json:"employeename" validate:"required"`
	EmployeeID   string     `json:"employeeid" validate:"required"`
	Role         string     `json:"role" validate:"required"`
	ProductID    string     `json:"productid" validate:"required"`
	ProductName  string     `json:"productname" validate:"required"`
	Quantity     *int       `json:"quantity" validate:"required,min=0"`
	Type         string     `json:"type" validate:"required,oneof=Add Export"`
	Date         *time.Time `json:"date" validate:"omitempty"`
}

// OrderResponse salida de un movimiento.
type OrderResponse struct {
	ID           string    `json:"id"`
	EmployeeName string    `json:"employeename"`
	EmployeeID   string    `json:"employeeid"`
	Role         string    `json:"role"`
	ProductID    string    `json:"productid"`
	ProductName  string    `json:"productname"`
	Quantity     int       `json:"quantity"`
	Type         string    `json:"type"`
	Date         time.Time `json:"date"`
}

// DeleteOrderResponse salida de una corrección administrativa: el registro eliminado.
type DeleteOrderResponse struct {
	Message      string        `json:"message"`
	DeletedOrder OrderResponse `json:"deletedOrder"`
}
