package repository

const (
	selectPayment = `SELECT
		id,
		client_id,
		supplier_tax_id,
		amount,
		issue_date,
		payment_date,
		document_number,
		description,
		status,
		created_at,
		updated_at
	FROM payments`

	selectSupplier = `SELECT
		id,
		tax_id,
		legal_name,
		trade_name,
		activity_description,
		activity_code,
		address,
		city,
		state,
		postal_code,
		phone,
		email,
		created_at,
		updated_at
	FROM suppliers`

	selectRule = `SELECT
		id,
		activity_code,
		description,
		irrf_rate,
		pis_rate,
		cofins_rate,
		csll_rate,
		iss_rate,
		minimum_value,
		created_at,
		updated_at
	FROM retention_rules`
)
