package entities

// Transaction moves money between two businesses addressed by uuid. Amounts are in cents.
type Transaction struct {
	PayerUuid string `json:"payer_uuid"`
	PayeeUuid string `json:"payee_uuid"`
	Amount    int64  `json:"amount"`
}

// TransactionMid addresses the payee by its processor merchant id instead of a uuid.
type TransactionMid struct {
	PayerUuid    string `json:"payer_uuid"`
	ProcessorMid string `json:"processor_mid"`
	Amount       int64  `json:"amount"`
}

type TransactionRefund struct {
	ClientReferenceId string `json:"client_reference_id"`
	Amount            int64  `json:"amount"`
}

// TransactionListPageSize is the only page size the list command ever asks for.
const TransactionListPageSize = 200
