package ledger

import (
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	domledger "github.com/govindweb777/erp-sales-backend/internal/domain/ledger"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

// Efectos de un documento con inventario sobre sus ítems. Solo sales y
// purchase los tienen; corren dentro de la misma transacción que el documento
// y usan escritura condicional por versión: si otro escritor tocó el ítem
// entre la lectura y el write, el repo retorna domain.ErrConcurrency y la
// transacción completa se revierte.

// applyItemEffects aplica el efecto del documento sobre cada ítem referenciado.
//
// sales: descuenta stock (ErrItemUnavailable si no alcanza o el ítem está
// bloqueado) y al llegar a cero marca Sold o Booked según el estado de pago.
// purchase: suma stock y reabre a Available un ítem que estaba agotado.
func applyItemEffects(itemRepo repository.ItemRepository, doc *entity.LedgerDocument, spec domledger.TypeSpec) error {
	if !spec.Inventory {
		return nil
	}
	for _, line := range doc.Lines {
		if line.ItemID == "" {
			continue
		}
		item, err := itemRepo.GetByID(line.ItemID)
		if err != nil {
			return err
		}
		if item == nil || item.CompanyID != doc.CompanyID || item.IsDeleted {
			return domain.ErrNotFound
		}
		qty := line.Qty.IntPart()
		if qty <= 0 {
			return domain.ErrInvalidInput
		}

		switch doc.Type {
		case entity.DocTypeSales:
			if !item.IsActive || item.Status == entity.ItemStatusBlocked {
				return domain.ErrItemUnavailable
			}
			if item.CurrentStock < qty {
				return domain.ErrItemUnavailable
			}
			item.CurrentStock -= qty
			if item.CurrentStock == 0 {
				if doc.PaymentStatus == entity.PaymentStatusPaid {
					item.Status = entity.ItemStatusSold
				} else {
					item.Status = entity.ItemStatusBooked
				}
			}
		case entity.DocTypePurchase:
			item.CurrentStock += qty
			if item.Status == entity.ItemStatusSold || item.Status == entity.ItemStatusBooked {
				item.Status = entity.ItemStatusAvailable
			}
		}

		if err := itemRepo.UpdateState(item, item.Version); err != nil {
			return err
		}
	}
	return nil
}

// revertItemEffects deshace el efecto de un documento persistido (borrado
// lógico o update que reemplaza líneas). Es la inversa exacta de
// applyItemEffects: una venta devuelve stock y reabre el ítem; una compra
// retira el stock que había sumado (piso en cero).
func revertItemEffects(itemRepo repository.ItemRepository, doc *entity.LedgerDocument, spec domledger.TypeSpec) error {
	if !spec.Inventory {
		return nil
	}
	for _, line := range doc.Lines {
		if line.ItemID == "" {
			continue
		}
		item, err := itemRepo.GetByID(line.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			// El ítem pudo borrarse después del documento; no hay nada que revertir.
			continue
		}
		qty := line.Qty.IntPart()

		switch doc.Type {
		case entity.DocTypeSales:
			item.CurrentStock += qty
			if item.Status == entity.ItemStatusSold || item.Status == entity.ItemStatusBooked {
				item.Status = entity.ItemStatusAvailable
			}
		case entity.DocTypePurchase:
			item.CurrentStock -= qty
			if item.CurrentStock < 0 {
				item.CurrentStock = 0
			}
		}

		if err := itemRepo.UpdateState(item, item.Version); err != nil {
			return err
		}
	}
	return nil
}
