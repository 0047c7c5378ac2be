package models

// PaymentSettings backs the admin "payment settings" screen. The gateway
// fields are stored but nothing in this service moves money; top-ups only
// create pending wallet transactions.
type PaymentSettings struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	GatewayAPIKey  string  `gorm:"size:191" json:"GATEWAY_API_KEY"`
	GatewayProject string  `gorm:"size:191" json:"GATEWAY_PROJECT"`
	BankName       string  `gorm:"size:100" json:"BANK_NAME"`
	BankCode       string  `gorm:"size:50" json:"BANK_CODE"`
	AccountNumber  string  `gorm:"size:100" json:"ACCOUNT_NUMBER"`
	AccountName    string  `gorm:"size:100" json:"ACCOUNT_NAME"`
	TopupAmount    float64 `gorm:"type:decimal(15,2)" json:"TOPUP_AMOUNT"`
}

func (PaymentSettings) TableName() string { return "payment_settings" }
