// Package order implementa la máquina de estados del ciclo de vida de las
// órdenes de compra y el cálculo del monto total (servicio de dominio puro).
package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hemis-api/internal/domain/entity"
)

// InvalidTransitionError señala un cambio de estado no permitido por la
// máquina de estados. Nombra el estado actual y el solicitado.
type InvalidTransitionError struct {
	From entity.OrderStatus
	To   entity.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transición de orden inválida: %s → %s", e.From, e.To)
}

// transitions tabla de transiciones permitidas. DELIVERED y CANCELLED son
// terminales; CANCELLED es alcanzable desde cualquier estado no terminal.
var transitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderPending:   {entity.OrderApproved, entity.OrderCancelled},
	entity.OrderApproved:  {entity.OrderOrdered, entity.OrderCancelled},
	entity.OrderOrdered:   {entity.OrderDelivered, entity.OrderCancelled},
	entity.OrderDelivered: {},
	entity.OrderCancelled: {},
}

// ValidStatus verifica que el estado sea uno de los cinco enumerados.
func ValidStatus(s entity.OrderStatus) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reporta si el cambio from → to está permitido. La transición
// al mismo estado siempre se acepta como no-op idempotente.
func CanTransition(from, to entity.OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition valida el cambio from → to y devuelve el estado resultante.
// El sistema nunca avanza estados solo: cada transición es una actualización
// explícita del usuario.
func Transition(from, to entity.OrderStatus) (entity.OrderStatus, error) {
	if !ValidStatus(to) {
		return from, &InvalidTransitionError{From: from, To: to}
	}
	if !CanTransition(from, to) {
		return from, &InvalidTransitionError{From: from, To: to}
	}
	return to, nil
}

// Total calcula el monto total de la orden: quantity × unitPrice. Operandos
// ausentes o negativos por defecto cuentan como 0; el resultado se recalcula
// en cada create/update y nunca se toma del caller.
func Total(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	if quantity <= 0 || unitPrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
