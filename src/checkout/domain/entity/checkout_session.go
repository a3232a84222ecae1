package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod es el medio de pago de la venta
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Efectivo"
	PaymentTransfer PaymentMethod = "Transferencia"
)

// ParsePaymentMethod valida un medio de pago recibido por la API
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	switch PaymentMethod(value) {
	case PaymentCash, PaymentTransfer:
		return PaymentMethod(value), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// SessionStatus es el estado de la sesión de checkout
type SessionStatus string

const (
	// StatusBuilding: el carrito se está armando o editando
	StatusBuilding SessionStatus = "BUILDING"
	// StatusSubmitting: hay un envío de venta en vuelo; se rechazan
	// nuevos intentos de finalizar hasta que resuelva
	StatusSubmitting SessionStatus = "SUBMITTING"
)

// CheckoutSession es el agregado que posee todo el estado transitorio de un
// checkout: carrito, medio de pago, datos del cliente y estado de envío.
// Se crea vacío al entrar a la vista POS y se descarta al salir; nada de
// esto se persiste, la autoridad sobre la venta es el API remoto.
//
// El repositorio entrega el mismo puntero a todos los handlers, así que
// toda mutación y toda lectura compuesta pasan por métodos que toman mu;
// dos requests concurrentes sobre la misma sesión no deben pisarse el
// carrito.
type CheckoutSession struct {
	ID               uuid.UUID
	SellerNIT        string
	Cart             Cart
	MedioPago        PaymentMethod
	FacturaConNombre bool
	Cliente          Customer
	Status           SessionStatus
	CreatedAt        time.Time

	mu sync.Mutex
}

// NewCheckoutSession crea una sesión vacía con los valores por defecto
func NewCheckoutSession(sellerNIT string) (*CheckoutSession, error) {
	if sellerNIT == "" {
		return nil, ErrSellerNITRequired
	}
	return &CheckoutSession{
		ID:        uuid.New(),
		SellerNIT: sellerNIT,
		MedioPago: PaymentCash,
		Cliente:   GenericCustomer(),
		Status:    StatusBuilding,
		CreatedAt: time.Now(),
	}, nil
}

// AddItem agrega un producto del catálogo al carrito de la sesión
func (s *CheckoutSession) AddItem(item CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cart.AddItem(item)
}

// UpdateQuantity aplica un delta a la cantidad de una línea del carrito
func (s *CheckoutSession) UpdateQuantity(itemID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cart.UpdateQuantity(itemID, delta)
}

// RemoveItem elimina una línea completa del carrito
func (s *CheckoutSession) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cart.RemoveItem(itemID)
}

// SetPaymentMethod cambia el medio de pago de la venta
func (s *CheckoutSession) SetPaymentMethod(method PaymentMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MedioPago = method
}

// SetNamedInvoice marca la venta como factura con nombre y guarda los datos
// del cliente; con flag en false la venta vuelve al cliente genérico
func (s *CheckoutSession) SetNamedInvoice(flag bool, customer Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FacturaConNombre = flag
	if flag {
		s.Cliente = customer
	} else {
		s.Cliente = GenericCustomer()
	}
}

// BuildSaleOrder valida el estado del checkout y arma el snapshot de la
// venta para el API de facturación. Falla con ErrEmptyCart si el carrito
// está vacío y con ErrIncompleteCustomer si la factura es con nombre y
// faltan nombre o documento del cliente. No tiene efectos secundarios.
func (s *CheckoutSession) BuildSaleOrder() (SaleOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Cart.IsEmpty() {
		return SaleOrder{}, ErrEmptyCart
	}

	cliente := GenericCustomer()
	if s.FacturaConNombre {
		if !s.Cliente.IsComplete() {
			return SaleOrder{}, ErrIncompleteCustomer
		}
		cliente = s.Cliente
	}

	items := make([]SaleOrderItem, 0, len(s.Cart.Lines))
	for _, line := range s.Cart.Lines {
		items = append(items, SaleOrderItem{
			ID:            line.ItemID,
			Nombre:        line.Nombre,
			Cantidad:      line.Cantidad,
			ValorUnitario: line.ValorUnitario,
		})
	}

	return SaleOrder{
		MedioPago: string(s.MedioPago),
		FormaPago: FormaPagoContado,
		Total:     s.Cart.Total(),
		NIT:       s.SellerNIT,
		Items:     items,
		Tipo:      TipoVenta,
		Cliente:   cliente,
	}, nil
}

// BeginSubmission pasa la sesión a SUBMITTING. Si ya hay un envío en vuelo
// retorna ErrSaleInProgress, evitando ventas duplicadas por doble click.
func (s *CheckoutSession) BeginSubmission() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Status == StatusSubmitting {
		return ErrSaleInProgress
	}
	s.Status = StatusSubmitting
	return nil
}

// EndSubmission vuelve la sesión a BUILDING sin tocar el resto del estado;
// se usa cuando el envío falla y el carrito debe conservarse intacto
func (s *CheckoutSession) EndSubmission() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Status = StatusBuilding
}

// ResetAfterSale limpia todo el estado del checkout luego de una venta
// registrada con éxito: carrito vacío, medio de pago Efectivo, factura sin
// nombre y cliente genérico
func (s *CheckoutSession) ResetAfterSale() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cart.Clear()
	s.MedioPago = PaymentCash
	s.FacturaConNombre = false
	s.Cliente = GenericCustomer()
	s.Status = StatusBuilding
}

// SessionSnapshot es una copia consistente del estado de la sesión, tomada
// bajo el lock, para armar respuestas sin carreras contra otros handlers
type SessionSnapshot struct {
	ID               uuid.UUID
	Lines            []CartLine
	Total            decimal.Decimal
	TotalItems       int
	MedioPago        PaymentMethod
	FacturaConNombre bool
	Cliente          Customer
	Status           SessionStatus
}

// Snapshot copia el estado actual de la sesión
func (s *CheckoutSession) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]CartLine, len(s.Cart.Lines))
	copy(lines, s.Cart.Lines)
	return SessionSnapshot{
		ID:               s.ID,
		Lines:            lines,
		Total:            s.Cart.Total(),
		TotalItems:       s.Cart.TotalItems(),
		MedioPago:        s.MedioPago,
		FacturaConNombre: s.FacturaConNombre,
		Cliente:          s.Cliente,
		Status:           s.Status,
	}
}
