package audit

const (
	insert = "INSERT INTO transactions(id, account_id, transaction_type, amount, created_at) VALUES($1,$2,$3,$4,$5);"
)
