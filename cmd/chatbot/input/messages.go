package input

const (
	msgAccountFormat   = "Account number must be a whole number."
	msgAccountNotFound = "Account number does not exist"
	msgAmountFormat    = "Invalid Amount. Amount must be numeric."
	msgAmountPositive  = "Invalid Amount. Please enter a positive number."
	msgSelection       = "Invalid Task. Please choose balance, deposit, or exit."
)
