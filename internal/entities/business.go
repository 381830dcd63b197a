package entities

// Business is the onboarding request for POST /api/v2/businesses.
type Business struct {
	ClientReferenceId string          `json:"client_reference_id"`
	Kyb               bool            `json:"kyb"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	Business          BusinessProfile `json:"business"`
	BusinessOwners    []BusinessOwner `json:"business_owners"`
	BankAccount       BankAccount     `json:"bank_account"`
}

type BusinessProfile struct {
	Name                        string                 `json:"name"`
	Tin                         string                 `json:"tin"`
	TradingName                 string                 `json:"trading_name"`
	EntityType                  string                 `json:"entity_type"`
	IncorporationDate           string                 `json:"incorporation_date"`
	IncorporationState          string                 `json:"incorporation_state"`
	Industry                    string                 `json:"industry"`
	IndustryClassification      IndustryClassification `json:"industry_classification"`
	SourceOfWealth              string                 `json:"source_of_wealth"`
	SourceOfFunds               string                 `json:"source_of_funds"`
	FirstTransactionCompletedAt string                 `json:"first_transaction_completed_at"`
	ProductType                 string                 `json:"product_type"`
	RegisteredAsInactive        bool                   `json:"registered_as_inactive"`
	AddressType                 string                 `json:"address_type"`
	Address                     Address                `json:"address"`
}

type IndustryClassification struct {
	CodeType    string   `json:"code_type"`
	Codes       []string `json:"codes"`
	Description string   `json:"description"`
}

type Address struct {
	Line1 string `json:"line_1"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

type BusinessOwner struct {
	FirstName                   string  `json:"first_name"`
	LastName                    string  `json:"last_name"`
	Dob                         string  `json:"dob"`
	Ssn9                        string  `json:"ssn9"`
	Address                     Address `json:"address"`
	IsBeneficialOwner           bool    `json:"is_beneficial_owner"`
	IsDirector                  bool    `json:"is_director"`
	IsAccountOwner              bool    `json:"is_account_owner"`
	IsShareHolder               bool    `json:"is_share_holder"`
	IsSignificantControlPerson  bool    `json:"is_significant_control_person"`
	OwnershipPercentage         int     `json:"ownership_percentage"`
	Email                       string  `json:"email"`
	Phone                       string  `json:"phone"`
	Occupation                  string  `json:"occupation"`
	FirstTransactionCompletedAt string  `json:"first_transaction_completed_at"`
	ProductType                 string  `json:"product_type"`
}

type BankAccount struct {
	Custom CustomBankAccount `json:"custom"`
}

type CustomBankAccount struct {
	AccountNumber string `json:"account_number"`
	RoutingNumber string `json:"routing_number"`
	AccountName   string `json:"account_name"`
	AccountType   string `json:"account_type"`
}

// AccountRouting is the test bank account attached to a generated business.
type AccountRouting struct {
	RoutingNumber string
	AccountNumber string
}
