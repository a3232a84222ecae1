package usecase

import (
	"context"
	"testing"

	"pos/src/checkout/domain/entity"
	"pos/src/checkout/infrastructure/cache"
	"pos/src/checkout/infrastructure/persistence"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// submitterSpy registra los envíos recibidos y responde lo configurado
type submitterSpy struct {
	calls   int
	lastOrd entity.SaleOrder
	message string
	err     error
}

func (s *submitterSpy) Submit(_ context.Context, order entity.SaleOrder) (string, error) {
	s.calls++
	s.lastOrd = order
	if s.err != nil {
		return "", s.err
	}
	return s.message, nil
}

// catalogSourceStub entrega un catálogo fijo
type catalogSourceStub struct {
	items []entity.CatalogItem
}

func (s *catalogSourceStub) FetchCatalog(_ context.Context) ([]entity.CatalogItem, error) {
	return s.items, nil
}

func testCatalog(t *testing.T) *cache.CatalogCache {
	t.Helper()
	source := &catalogSourceStub{items: []entity.CatalogItem{
		{ID: "1", Nombre: "Pan", Valor: decimal.NewFromInt(1000), Stock: 10},
		{ID: "2", Nombre: "Leche", Valor: decimal.NewFromInt(2500), Stock: 5},
	}}
	catalog := cache.NewCatalogCache(source)
	require.NoError(t, catalog.Refresh(context.Background()))
	return catalog
}

func seedSession(t *testing.T, repo *persistence.SessionMemoryRepository) *entity.CheckoutSession {
	t.Helper()
	session, err := entity.NewCheckoutSession("900123456")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), session))
	return session
}

func TestFinalizeSaleEmptyCartDoesNotSubmit(t *testing.T) {
	repo := persistence.NewSessionMemoryRepository()
	spy := &submitterSpy{}
	uc := NewFinalizeSaleUseCase(repo, spy, testCatalog(t))
	session := seedSession(t, repo)

	_, err := uc.Execute(context.Background(), session.ID)

	assert.ErrorIs(t, err, entity.ErrEmptyCart)
	assert.Zero(t, spy.calls)
	// La sesión vuelve a BUILDING para poder seguir editando
	assert.Equal(t, entity.StatusBuilding, session.Status)
}

func TestFinalizeSaleIncompleteCustomerDoesNotSubmit(t *testing.T) {
	repo := persistence.NewSessionMemoryRepository()
	spy := &submitterSpy{}
	uc := NewFinalizeSaleUseCase(repo, spy, testCatalog(t))
	session := seedSession(t, repo)
	session.AddItem(entity.CatalogItem{ID: "1", Nombre: "Pan", Valor: decimal.NewFromInt(1000)})
	session.SetNamedInvoice(true, entity.Customer{Correo: "x@y.com"})

	_, err := uc.Execute(context.Background(), session.ID)

	assert.ErrorIs(t, err, entity.ErrIncompleteCustomer)
	assert.Zero(t, spy.calls)
	assert.False(t, session.Cart.IsEmpty())
}

func TestFinalizeSaleSuccessResetsSession(t *testing.T) {
	repo := persistence.NewSessionMemoryRepository()
	spy := &submitterSpy{message: "Factura #42 creada"}
	uc := NewFinalizeSaleUseCase(repo, spy, testCatalog(t))
	session := seedSession(t, repo)
	session.AddItem(entity.CatalogItem{ID: "1", Nombre: "Pan", Valor: decimal.NewFromInt(1000)})
	session.AddItem(entity.CatalogItem{ID: "1", Nombre: "Pan", Valor: decimal.NewFromInt(1000)})
	session.SetPaymentMethod(entity.PaymentTransfer)
	session.SetNamedInvoice(true, entity.Customer{Nombre: "Ana", Documento: "123"})

	resp, err := uc.Execute(context.Background(), session.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, spy.calls)
	assert.Equal(t, "Factura #42 creada", resp.Message)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, 2, resp.TotalItems)
	assert.Equal(t, "Transferencia", resp.MedioPago)

	// El snapshot enviado conserva lo vendido
	assert.Equal(t, "900123456", spy.lastOrd.NIT)
	require.Len(t, spy.lastOrd.Items, 1)
	assert.Equal(t, 2, spy.lastOrd.Items[0].Cantidad)

	// La sesión quedó lista para la próxima venta
	assert.True(t, session.Cart.IsEmpty())
	assert.Equal(t, entity.PaymentCash, session.MedioPago)
	assert.False(t, session.FacturaConNombre)
	assert.Equal(t, entity.GenericCustomer(), session.Cliente)
	assert.Equal(t, entity.StatusBuilding, session.Status)
}

func TestFinalizeSaleRejectionPreservesCart(t *testing.T) {
	repo := persistence.NewSessionMemoryRepository()
	spy := &submitterSpy{err: &entity.SaleRejectedError{Message: "Stock insuficiente"}}
	uc := NewFinalizeSaleUseCase(repo, spy, testCatalog(t))
	session := seedSession(t, repo)
	session.AddItem(entity.CatalogItem{ID: "1", Nombre: "Pan", Valor: decimal.NewFromInt(1000)})
	session.SetPaymentMethod(entity.PaymentTransfer)

	_, err := uc.Execute(context.Background(), session.ID)

	var rejected *entity.SaleRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "Stock insuficiente", rejected.Message)

	// Todo el estado del checkout se conserva para corregir y reintentar
	require.Len(t, session.Cart.Lines, 1)
	assert.Equal(t, 1, session.Cart.Lines[0].Cantidad)
	assert.Equal(t, entity.PaymentTransfer, session.MedioPago)
	assert.Equal(t, entity.StatusBuilding, session.Status)
}

// saveFailingRepo simula un repositorio que ya no acepta escrituras
type saveFailingRepo struct {
	*persistence.SessionMemoryRepository
}

func (r *saveFailingRepo) Save(_ context.Context, _ *entity.CheckoutSession) error {
	return errors.New("repository unavailable")
}

func TestFinalizeSaleSucceedsWhenSessionSaveFails(t *testing.T) {
	repo := persistence.NewSessionMemoryRepository()
	spy := &submitterSpy{message: "Factura #43 creada"}
	uc := NewFinalizeSaleUseCase(&saveFailingRepo{repo}, spy, testCatalog(t))
	session := seedSession(t, repo)
	session.AddItem(entity.CatalogItem{ID: "1", Nombre: "Pan", Valor: decimal.NewFromInt(1000)})

	resp, err := uc.Execute(context.Background(), session.ID)

	// La venta ya quedó registrada del lado remoto: el fallo al guardar la
	// sesión reseteada no puede volver como error al cajero
	require.NoError(t, err)
	assert.Equal(t, "Factura #43 creada", resp.Message)
	assert.Equal(t, 1, spy.calls)
	assert.True(t, session.Cart.IsEmpty())
}

func TestFinalizeSaleRejectsConcurrentSubmission(t *testing.T) {
	repo := persistence.NewSessionMemoryRepository()
	spy := &submitterSpy{message: "ok"}
	uc := NewFinalizeSaleUseCase(repo, spy, testCatalog(t))
	session := seedSession(t, repo)
	session.AddItem(entity.CatalogItem{ID: "1", Nombre: "Pan", Valor: decimal.NewFromInt(1000)})
	require.NoError(t, session.BeginSubmission())

	_, err := uc.Execute(context.Background(), session.ID)

	assert.ErrorIs(t, err, entity.ErrSaleInProgress)
	assert.Zero(t, spy.calls)
}

func TestFinalizeSaleUnknownSession(t *testing.T) {
	repo := persistence.NewSessionMemoryRepository()
	uc := NewFinalizeSaleUseCase(repo, &submitterSpy{}, testCatalog(t))

	session, err := entity.NewCheckoutSession("900123456")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), session.ID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}
