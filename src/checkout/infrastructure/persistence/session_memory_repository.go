package persistence

import (
	"context"
	"sync"

	"pos/src/checkout/domain/entity"

	"github.com/google/uuid"
)

// SessionMemoryRepository guarda las sesiones de checkout en memoria.
// Las sesiones son estado transitorio por contrato: toda la información
// durable de una venta vive en el API remoto, así que un reinicio del
// servicio simplemente descarta los carritos a medio armar.
type SessionMemoryRepository struct {
	sessions map[uuid.UUID]*entity.CheckoutSession
	mu       sync.RWMutex
}

// NewSessionMemoryRepository crea un repositorio de sesiones vacío
func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{
		sessions: make(map[uuid.UUID]*entity.CheckoutSession),
	}
}

// Save guarda o reemplaza la sesión
func (r *SessionMemoryRepository) Save(_ context.Context, session *entity.CheckoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

// FindByID busca una sesión por su ID; retorna ErrSessionNotFound si no existe
func (r *SessionMemoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.CheckoutSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	return session, nil
}

// Delete elimina la sesión; borrar una sesión inexistente no es un error
func (r *SessionMemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// Len retorna la cantidad de sesiones activas
func (r *SessionMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
