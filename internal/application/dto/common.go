package dto

// Response sobre estándar de la API: toda respuesta exitosa viaja como
// {success, message, data}.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK construye la envolvente de éxito.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Pagination metadatos de página en respuestas de listado.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalDocs   int64 `json:"totalDocs"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination calcula los metadatos a partir de página 1-based, límite y
// total de documentos.
func NewPagination(page, limit int, total int64) Pagination {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalDocs:   total,
		Limit:       limit,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1 && total > 0,
	}
}

// ListQuery parámetros de listado comunes (paginación 1-based + filtros).
type ListQuery struct {
	Page     int    `query:"page" validate:"omitempty,min=1"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Search   string `query:"search"`
	BranchID string `query:"branchId"`
	IsActive string `query:"isActive"` // "true" | "false" | vacío (todos)
	From     string `query:"from"`     // YYYY-MM-DD
	To       string `query:"to"`       // YYYY-MM-DD
}

// DefaultPage aplica valores por defecto si Page/Limit son cero.
func (q *ListQuery) DefaultPage() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
}

// Offset convierte la página 1-based en offset de filas.
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
