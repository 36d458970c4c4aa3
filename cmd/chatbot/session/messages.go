package session

const (
	welcome       = "Welcome! I'm the PiXELL River Financial Chatbot!  Let's get chatting!"
	farewell      = "Thank you for banking with PiXELL River Financial."
	menuPrompt    = "What would you like to do (balance/deposit/exit): "
	accountPrompt = "Please enter your account number: "
	amountPrompt  = "Enter the transaction amount: "
)

const (
	accountMissing  = "Account does not exist."
	negativeDeposit = "Invalid amount. Please enter a positive number."
	operationFailed = "Sorry, that request could not be completed."
)
