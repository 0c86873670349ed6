package repository

// SequenceRepository contador monotónico por (companyId, branchId, clave).
// La clave es el tipo de documento o "branch" para códigos de sucursal (las
// secuencias de sucursal usan branchId vacío: son por empresa).
type SequenceRepository interface {
	// Next incrementa el contador y retorna el nuevo valor en una sola
	// operación atómica. El valor retornado nunca se repite para la misma
	// tupla, aunque el documento que lo consumió se borre después.
	Next(companyID, branchID, key string) (int64, error)
	// Current retorna el último valor emitido sin consumir (0 si nunca se
	// emitió). Solo para previsualizar el próximo número; el número real se
	// asigna dentro de la transacción de creación.
	Current(companyID, branchID, key string) (int64, error)
}
