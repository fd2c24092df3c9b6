package entity

type AuditResultStatus string

const (
	AuditResultStatusOK               AuditResultStatus = "OK"
	AuditResultStatusSupplierNotFound AuditResultStatus = "SUPPLIER_NOT_FOUND"
)

func (s AuditResultStatus) String() string {
	return string(s)
}

// AuditResult is one row of an audit run: a payment snapshot, the resolved
// supplier and the computed retention breakdown. Rows are transient, they are
// never persisted. Supplier is zero-valued when the registry does not know
// the payment's tax ID; Detail then carries the resolution error.
type AuditResult struct {
	Payment   Payment
	Supplier  Supplier
	Retention Retention
	Status    AuditResultStatus
	Detail    string
}
