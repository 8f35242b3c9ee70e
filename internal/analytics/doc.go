// Package analytics derives the dashboard figures from a snapshot of the
// record store: client ranking, the maintenance list, monthly financials and
// the per-service margins.
//
// Every function is total. Unknown client or service references degrade to
// placeholder names and zero values instead of failing.
package analytics

const (
	ClientNotFound  = "Cliente não encontrado"
	ServiceNotFound = "Serviço não encontrado"
	NoService       = "Nenhum"
)
