package ledger

import "fmt"

// FormatNumber produce el número legible de documento: prefijo + sufijo
// numérico con padding a 5 dígitos (INV00007, JV00012, BR00001). El sufijo
// viene de un contador atómico por (companyId, branchId, tipo), no de un
// count de documentos: los números nunca se reusan aunque haya borrados.
func FormatNumber(prefix string, n int64) string {
	return fmt.Sprintf("%s%05d", prefix, n)
}
